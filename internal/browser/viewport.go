package browser

import "fmt"

// Viewport is a named browser window size.
type Viewport struct {
	Name   string `yaml:"name"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

// DesktopViewport returns the default desktop window size.
func DesktopViewport() Viewport {
	return Viewport{Name: "desktop", Width: 1280, Height: 720}
}

// MobileViewport returns the default mobile window size.
func MobileViewport() Viewport {
	return Viewport{Name: "mobile", Width: 375, Height: 667}
}

// DefaultViewports returns the matrix used when no profile file is configured.
func DefaultViewports() []Viewport {
	return []Viewport{DesktopViewport(), MobileViewport()}
}

func (v Viewport) String() string {
	return fmt.Sprintf("%s (%dx%d)", v.Name, v.Width, v.Height)
}
