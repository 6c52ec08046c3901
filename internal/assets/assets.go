// Package assets provides the overlay images. Default assets are embedded
// into the binary; a directory override lets users supply their own artwork
// without rebuilding.
package assets

import (
	"bytes"
	_ "embed"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"os"
	"path/filepath"

	_ "image/jpeg"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

//go:embed sunglasses.png
var sunglassesPNG []byte

//go:embed rabbit_ears.png
var rabbitEarsPNG []byte

// File names looked up in an override directory.
const (
	SunglassesFile = "sunglasses.png"
	RabbitEarsFile = "rabbit_ears.png"
)

// Library holds the decoded overlay assets, shared read-only across frames.
// A nil entry means the asset could not be loaded and its overlay is skipped.
type Library struct {
	Sunglasses *image.NRGBA
	RabbitEars *image.NRGBA
}

// Embedded decodes the built-in overlay assets. The embedded files are part
// of the binary, so a decode failure is a build defect.
func Embedded() (*Library, error) {
	sunglasses, err := decodePNG(sunglassesPNG)
	if err != nil {
		return nil, fmt.Errorf("decoding embedded %s: %w", SunglassesFile, err)
	}
	rabbitEars, err := decodePNG(rabbitEarsPNG)
	if err != nil {
		return nil, fmt.Errorf("decoding embedded %s: %w", RabbitEarsFile, err)
	}
	return &Library{Sunglasses: sunglasses, RabbitEars: rabbitEars}, nil
}

// Load returns the overlay library, preferring files from dir when set.
// Missing or unreadable override files fall back to the embedded asset for
// that overlay; the pipeline must keep running with whatever loaded.
func Load(dir string) (*Library, error) {
	lib, err := Embedded()
	if err != nil {
		return nil, err
	}
	if dir == "" {
		return lib, nil
	}

	if img, err := loadImage(filepath.Join(dir, SunglassesFile)); err == nil {
		lib.Sunglasses = img
	}
	if img, err := loadImage(filepath.Join(dir, RabbitEarsFile)); err == nil {
		lib.RabbitEars = img
	}
	return lib, nil
}

// LoadImage decodes an image file (PNG, JPEG, BMP or WebP) into the NRGBA
// layout the compositor works with.
func LoadImage(path string) (*image.NRGBA, error) {
	return loadImage(path)
}

// Decode decodes an image stream (PNG, JPEG, BMP or WebP) into the NRGBA
// layout the compositor works with.
func Decode(r io.Reader) (*image.NRGBA, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decoding image: %w", err)
	}
	return toNRGBA(img), nil
}

func loadImage(path string) (*image.NRGBA, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from user flags/config
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return toNRGBA(img), nil
}

func decodePNG(data []byte) (*image.NRGBA, error) {
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return toNRGBA(img), nil
}

func toNRGBA(img image.Image) *image.NRGBA {
	if nrgba, ok := img.(*image.NRGBA); ok {
		return nrgba
	}
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}
