package system

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

type lines []string

func (l *lines) Infof(component, format string, args ...interface{}) {
	*l = append(*l, component+": "+fmt.Sprintf(format, args...))
}

func (l *lines) Errorf(component, format string, args ...interface{}) {
	*l = append(*l, "ERROR "+component+": "+fmt.Sprintf(format, args...))
}

func TestConsoleAcquireRelease(t *testing.T) {
	var log lines
	var modes []int
	var writes []string
	c := &Console{
		Logger:  &log,
		setMode: func(m int) error { modes = append(modes, m); return nil },
		write:   func(s string) error { writes = append(writes, s); return nil },
	}

	c.Release()
	assert.Empty(t, modes)

	c.Acquire()
	c.Release()
	c.Release()
	assert.Equal(t, []int{kdGraphics, kdText}, modes)
	assert.Equal(t, []string{hideCursor, showCursor}, writes)
	assert.Equal(t, []string{"tty: KD_GRAPHICS set", "tty: KD_TEXT set"}, []string(log))
}

func TestConsoleFailuresAreLogged(t *testing.T) {
	var log lines
	fail := errors.New("no tty")
	c := &Console{
		Logger:  &log,
		setMode: func(int) error { return fail },
		write:   func(string) error { return fail },
	}
	c.Acquire()
	c.Release()
	assert.Equal(t, []string{
		"ERROR tty: KD_GRAPHICS failed: no tty",
		"ERROR tty: hide cursor failed: no tty",
		"ERROR tty: show cursor failed: no tty",
		"ERROR tty: KD_TEXT failed: no tty",
	}, []string(log))
}
