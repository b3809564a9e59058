//go:build !cgo

package main

import (
	"context"
	"errors"

	"github.com/Paciente8159/uCNC-modules-sub000/internal/buttons"
	"github.com/Paciente8159/uCNC-modules-sub000/internal/transport"
)

func runWindow(context.Context, *transport.Canvas, *buttons.Chan, int) error {
	return errors.New("window mode requires cgo (build/run with CGO_ENABLED=1), or pass -headless")
}
