package lattice

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// ExportDir is where Export writes canvas captures. Override before the
// first capture to redirect them.
var ExportDir = "exports"

// exportMargin is the padding kept around the content when an editor-mode
// capture is cropped to its node boxes.
const exportMargin = 24

// Export queues a labeled capture of the editor canvas. The capture is taken
// at the end of the current frame's Draw call and written to ExportDir as a
// PNG named after the label, the session mode, and the selection. Safe to
// call from Update or Draw.
//
// The capture re-renders the current snapshot rather than reading the
// composed screen, so overlays drawn by the host game are not included, and
// editor-mode captures are cropped to the area the nodes occupy.
func (c *Canvas) Export(label string) {
	c.exportQueue = append(c.exportQueue, label)
}

// flushExports renders the current snapshot once and writes it for every
// queued label. Called at the end of Canvas.Draw.
func (c *Canvas) flushExports(screen *ebiten.Image) {
	if len(c.exportQueue) == 0 {
		return
	}

	if err := os.MkdirAll(ExportDir, 0o755); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "[lattice] export: mkdir %s: %v\n", ExportDir, err)
		c.exportQueue = c.exportQueue[:0]
		return
	}

	snap := c.editor.Snapshot()
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	frame := ebiten.NewImage(w, h)
	c.renderer.Draw(frame, snap)

	pixels := make([]byte, 4*w*h)
	frame.ReadPixels(pixels)
	frame.Deallocate()

	img := cropNRGBA(pixels, w, contentBounds(snap, w, h))

	stamp := time.Now().Format("20060102_150405")
	for _, label := range c.exportQueue {
		path := filepath.Join(ExportDir, exportFileName(stamp, label, snap))
		if err := writePNG(path, img); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "[lattice] export: %v\n", err)
		}
	}
	c.exportQueue = c.exportQueue[:0]
}

// contentBounds returns the pixel window an editor-mode capture keeps: the
// union of all node boxes plus exportMargin, clamped to the frame. Preview
// mode and an empty canvas keep the full frame.
func contentBounds(snap *Snapshot, w, h int) image.Rectangle {
	full := image.Rect(0, 0, w, h)
	if snap.Mode == ModePreview || len(snap.Nodes) == 0 {
		return full
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, v := range snap.Nodes {
		b := v.Box()
		minX = math.Min(minX, b.X)
		minY = math.Min(minY, b.Y)
		maxX = math.Max(maxX, b.X+b.Width)
		maxY = math.Max(maxY, b.Y+b.Height)
	}
	content := image.Rect(
		int(minX)-exportMargin, int(minY)-exportMargin,
		int(maxX)+exportMargin, int(maxY)+exportMargin,
	)
	return content.Intersect(full)
}

// cropNRGBA copies the window out of a premultiplied RGBA frame into a
// straight-alpha image ready for PNG encoding.
func cropNRGBA(pixels []byte, stride int, window image.Rectangle) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, window.Dx(), window.Dy()))
	for y := 0; y < window.Dy(); y++ {
		for x := 0; x < window.Dx(); x++ {
			src := 4 * ((window.Min.Y+y)*stride + window.Min.X + x)
			dst := 4 * (y*window.Dx() + x)
			a := pixels[src+3]
			img.Pix[dst+0] = unmultiply(pixels[src+0], a)
			img.Pix[dst+1] = unmultiply(pixels[src+1], a)
			img.Pix[dst+2] = unmultiply(pixels[src+2], a)
			img.Pix[dst+3] = a
		}
	}
	return img
}

// unmultiply converts one premultiplied channel back to straight alpha.
func unmultiply(c, a uint8) uint8 {
	if a == 0 || a == 255 {
		return c
	}
	v := int(c) * 255 / int(a)
	if v > 255 {
		v = 255
	}
	return uint8(v)
}

// exportFileName composes <stamp>_<label>_<mode>[_selN].png from the session
// state the capture was taken in.
func exportFileName(stamp, label string, snap *Snapshot) string {
	mode := "editor"
	if snap.Mode == ModePreview {
		mode = "preview"
	}
	name := fmt.Sprintf("%s_%s_%s", stamp, sanitizeLabel(label), mode)
	if snap.Selected.IsSet() {
		name += fmt.Sprintf("_sel%d", snap.Selected)
	}
	return name + ".png"
}

// sanitizeLabel maps characters that are unsafe in file names to
// underscores. Empty labels fall back to "canvas".
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "canvas"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			return r
		}
		return '_'
	}, label)
}

// writePNG encodes the image and writes the file in one shot.
func writePNG(path string, img *image.NRGBA) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
