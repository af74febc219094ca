// Package imagemeta performs structural validation of uploaded images
// and derives the coarse descriptive metadata fed into prompts.
package imagemeta

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"
)

// ErrDecode reports that a payload is not a structurally valid image.
var ErrDecode = errors.New("image decode failed")

const (
	OrientationLandscape = "landscape"
	OrientationPortrait  = "portrait"
	OrientationSquare    = "square"

	TierHigh     = "high-resolution"
	TierStandard = "standard-resolution"
)

// Images above this pixel count are classified high-resolution.
const highResPixels = 1_000_000

// Metadata describes a decoded image. It is derived per request and
// never cached.
type Metadata struct {
	Format      string
	Width       int
	Height      int
	Orientation string
	Tier        string
}

// Validate reports whether the bytes decode as a supported image.
// It never panics past this boundary: failure is a value.
func Validate(data []byte) bool {
	_, err := Inspect(data)
	return err == nil
}

// Inspect decodes the image header and derives orientation and
// resolution tier. Any decode failure yields ErrDecode.
func Inspect(data []byte) (Metadata, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return Metadata{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	m := Metadata{
		Format: format,
		Width:  cfg.Width,
		Height: cfg.Height,
	}

	switch {
	case cfg.Width > cfg.Height:
		m.Orientation = OrientationLandscape
	case cfg.Width < cfg.Height:
		m.Orientation = OrientationPortrait
	default:
		m.Orientation = OrientationSquare
	}

	if cfg.Width*cfg.Height > highResPixels {
		m.Tier = TierHigh
	} else {
		m.Tier = TierStandard
	}
	return m, nil
}

// Describe formats metadata as "<orientation> <tier> <FORMAT>",
// e.g. "landscape high-resolution JPEG". Total over well-formed input.
func Describe(m Metadata) string {
	return fmt.Sprintf("%s %s %s", m.Orientation, m.Tier, strings.ToUpper(m.Format))
}

// MIMEType returns the content type matching the decoded format.
func MIMEType(m Metadata) string {
	return "image/" + m.Format
}
