package browser

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/playwright-community/playwright-go"
)

// CaptureScreenshot writes a full-page screenshot into dir and returns the
// file path. File names carry a random suffix so parallel captures with the
// same label never overwrite each other.
func CaptureScreenshot(page playwright.Page, dir, label string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create screenshot directory: %w", err)
	}

	name := fmt.Sprintf("%s-%s.png", sanitizeLabel(label), uuid.New().String())
	path := filepath.Join(dir, name)

	if _, err := page.Screenshot(playwright.PageScreenshotOptions{
		Path:     playwright.String(path),
		FullPage: playwright.Bool(true),
	}); err != nil {
		return "", fmt.Errorf("failed to capture screenshot: %w", err)
	}
	return path, nil
}

func sanitizeLabel(label string) string {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '-' || r == '_':
			return r
		default:
			return '-'
		}
	}, strings.TrimSpace(label))
	if cleaned == "" {
		return "page"
	}
	return cleaned
}
