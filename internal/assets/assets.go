// Package assets holds the packed bitmaps the screens draw and the embedded
// web UI, plus converters from standard images and QR payloads.
package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image/png"
	"io/fs"

	"github.com/Paciente8159/uCNC-modules-sub000/internal/gfx"
)

//go:embed web
var webFS embed.FS

// WebUI is the embedded filesystem rooted at internal/assets/web.
var WebUI fs.FS

func init() {
	sub, err := fs.Sub(webFS, "web")
	if err != nil {
		panic(err)
	}
	WebUI = sub
}

//go:embed logo.png
var logoPNG []byte

// LogoFor renders the embedded wordmark artwork to fit width x height.
func LogoFor(width, height int) (gfx.Bitmap, error) {
	img, err := png.Decode(bytes.NewReader(logoPNG))
	if err != nil {
		return gfx.Bitmap{}, fmt.Errorf("assets: decode logo: %w", err)
	}
	if width <= 0 || height <= 0 {
		return gfx.Bitmap{}, fmt.Errorf("assets: logo area %dx%d is empty", width, height)
	}
	return FromImage(img, width, height), nil
}

// Logo is the 48x12 µCNC wordmark, used when the artwork cannot be scaled.
var Logo = gfx.Bitmap{Width: 48, Height: 12, Data: []byte{
	0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x3f, 0x0c, 0x18, 0x0f, 0xc0,
	0x00, 0xc0, 0xce, 0x18, 0x30, 0x30, 0x33, 0x00, 0x0f, 0x18, 0xc0, 0x00,
	0x33, 0x00, 0x0d, 0x98, 0xc0, 0x00, 0x33, 0x00, 0x0c, 0xd8, 0xc0, 0x00,
	0x33, 0x00, 0x0c, 0x78, 0xc0, 0x00, 0x33, 0x00, 0x0c, 0x38, 0xc0, 0x00,
	0x3b, 0x00, 0xcc, 0x18, 0x30, 0x30, 0x34, 0xff, 0x0c, 0x18, 0x0f, 0xc0,
	0x30, 0x00, 0x00, 0x00, 0x00, 0x00, 0x60, 0x00, 0x00, 0x00, 0x00, 0x00,
}}

// 8x8 status icons.
var (
	Warning = gfx.Bitmap{Width: 8, Height: 8, Data: []byte{0x18, 0x24, 0x24, 0x5a, 0x5a, 0x81, 0x99, 0xff}}
	Home    = gfx.Bitmap{Width: 8, Height: 8, Data: []byte{0x18, 0x3c, 0x7e, 0xff, 0x42, 0x5a, 0x5a, 0x7e}}
)
