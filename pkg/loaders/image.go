package loaders

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"github.com/mhollis/tracepath/pkg/core"
	"github.com/mhollis/tracepath/pkg/material"
)

// LoadImageTexture decodes a PNG, JPEG, BMP, or TIFF file (detected by
// content, not extension) into a material.ImageTexture. Alpha, if
// present, is discarded; the renderer's texture model is opaque RGB.
func LoadImageTexture(path string) (*material.ImageTexture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening image %q: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding image %q: %w", path, err)
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	data := make([]byte, width*height*3)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			offset := (y*width + x) * 3
			data[offset] = byte(r >> 8)
			data[offset+1] = byte(g >> 8)
			data[offset+2] = byte(b >> 8)
		}
	}

	return material.NewImageTexture(width, height, data), nil
}

// LoadImageTextureOrPlaceholder loads path as an image texture, falling
// back to a magenta placeholder rather than failing the scene build when
// the file is missing or undecodable. The placeholder logs the failure
// once, the first time it's sampled, per the texture-load-failure edge
// case: never abort.
func LoadImageTextureOrPlaceholder(path string, logger core.Logger) *material.ImageTexture {
	tex, err := LoadImageTexture(path)
	if err != nil {
		return material.NewMissingImageTexture(logger, err.Error())
	}
	return tex
}
