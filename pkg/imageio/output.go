// Package imageio turns a rendered renderer.Buffer into files on disk: the
// full-resolution PNG plus a downsized preview thumbnail.
package imageio

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"

	"github.com/mhollis/tracepath/pkg/renderer"
)

// thumbnailMaxWidth bounds the preview image written alongside the
// full-resolution render.
const thumbnailMaxWidth = 256

// WriteImage gamma-corrects and quantizes buf, then writes it to path as a
// PNG. If path's directory doesn't exist it is created.
func WriteImage(buf *renderer.Buffer, path string) error {
	img := toRGBA(buf)

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output directory %q: %w", dir, err)
		}
	}

	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("writing image %q: %w", path, err)
	}
	return nil
}

// WriteThumbnail writes a Lanczos-resampled preview of buf to path, scaled
// so its width does not exceed thumbnailMaxWidth. Images already narrower
// than the cap are written unscaled.
func WriteThumbnail(buf *renderer.Buffer, path string) error {
	img := toRGBA(buf)

	width := buf.Width
	if width > thumbnailMaxWidth {
		width = thumbnailMaxWidth
	}
	thumb := imaging.Resize(img, width, 0, imaging.Lanczos)

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output directory %q: %w", dir, err)
		}
	}

	if err := imaging.Save(thumb, path); err != nil {
		return fmt.Errorf("writing thumbnail %q: %w", path, err)
	}
	return nil
}

// toRGBA converts a renderer.Buffer's gamma-corrected byte data into a
// standard library image, the common currency imaging's functions expect.
// ToRGBBytes packs 3 bytes per pixel (no alpha); image.RGBA needs 4, so the
// opaque alpha byte is filled in here.
func toRGBA(buf *renderer.Buffer) *image.RGBA {
	rgb := buf.ToRGBBytes()
	img := image.NewRGBA(image.Rect(0, 0, buf.Width, buf.Height))
	for i := 0; i < buf.Width*buf.Height; i++ {
		img.Pix[i*4+0] = rgb[i*3+0]
		img.Pix[i*4+1] = rgb[i*3+1]
		img.Pix[i*4+2] = rgb[i*3+2]
		img.Pix[i*4+3] = 255
	}
	return img
}
