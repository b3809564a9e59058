//go:build !linux

package system

import "errors"

var errNoConsole = errors.New("console control requires linux")

func setMode(mode int) error { return errNoConsole }
func writeVT(s string) error { return errNoConsole }

const (
	kdText     = 0x00
	kdGraphics = 0x01
	hideCursor = ""
	showCursor = ""
)
