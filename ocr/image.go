package ocr

import (
	"bytes"
	"fmt"
	"image"

	_ "image/jpeg" // register decoders for the formats flyer scans arrive in
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// DecodeSize returns the pixel dimensions of an image without decoding its
// pixel data. PNG, JPEG, TIFF, and BMP are supported; scanned flyers most
// often arrive as TIFF or PNG.
func DecodeSize(imageData []byte) (width, height int, err error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(imageData))
	if err != nil {
		return 0, 0, fmt.Errorf("decoding image dimensions: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return 0, 0, fmt.Errorf("image has degenerate dimensions %dx%d", cfg.Width, cfg.Height)
	}
	return cfg.Width, cfg.Height, nil
}
