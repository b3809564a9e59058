package system

type Logger interface {
	Infof(component string, format string, args ...interface{})
	Errorf(component string, format string, args ...interface{})
}

// Console takes the virtual terminal away from the kernel text console
// while the display is driven through the framebuffer, so the blinking
// cursor and console messages do not bleed into the picture.
type Console struct {
	Logger Logger

	setMode func(mode int) error
	write   func(s string) error
	active  bool
}

func NewConsole(logger Logger) *Console {
	return &Console{Logger: logger, setMode: setMode, write: writeVT}
}

// Acquire switches the console to graphics mode and hides the cursor.
// Failures are logged; the display works without them.
func (c *Console) Acquire() {
	if err := c.setMode(kdGraphics); err != nil {
		c.Logger.Errorf("tty", "KD_GRAPHICS failed: %v", err)
	} else {
		c.Logger.Infof("tty", "KD_GRAPHICS set")
	}
	if err := c.write(hideCursor); err != nil {
		c.Logger.Errorf("tty", "hide cursor failed: %v", err)
	}
	c.active = true
}

// Release undoes Acquire. It is a no-op when Acquire was not called.
func (c *Console) Release() {
	if !c.active {
		return
	}
	c.active = false
	if err := c.write(showCursor); err != nil {
		c.Logger.Errorf("tty", "show cursor failed: %v", err)
	}
	if err := c.setMode(kdText); err != nil {
		c.Logger.Errorf("tty", "KD_TEXT failed: %v", err)
	} else {
		c.Logger.Infof("tty", "KD_TEXT set")
	}
}
