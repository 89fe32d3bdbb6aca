package browser

import (
	"log/slog"
	"sync"

	"github.com/playwright-community/playwright-go"

	"github.com/cmblandon/creai/internal/logutil"
	"github.com/cmblandon/creai/internal/obs"
)

// ConsoleRecorder collects console error messages emitted by a page.
// Playwright delivers console events on its own goroutine, so access to the
// collected slice is mutex-guarded.
type ConsoleRecorder struct {
	mu     sync.Mutex
	errors []string
	log    *slog.Logger
}

// NewConsoleRecorder subscribes to the page's console messages. Non-error
// messages are logged at debug level; error messages are also retained.
func NewConsoleRecorder(page playwright.Page) *ConsoleRecorder {
	r := newConsoleRecorder()
	page.OnConsole(func(msg playwright.ConsoleMessage) {
		r.record(msg.Type(), msg.Text())
	})
	return r
}

func newConsoleRecorder() *ConsoleRecorder {
	return &ConsoleRecorder{log: obs.Pkg("browser")}
}

func (r *ConsoleRecorder) record(msgType, text string) {
	r.log.Debug("console message", "msg", logutil.FormatConsoleForLog(msgType, text, 200))
	if msgType != "error" {
		return
	}
	r.mu.Lock()
	r.errors = append(r.errors, text)
	r.mu.Unlock()
}

// Errors returns a snapshot of the error messages captured so far.
func (r *ConsoleRecorder) Errors() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.errors))
	copy(out, r.errors)
	return out
}

// Reset discards everything captured so far.
func (r *ConsoleRecorder) Reset() {
	r.mu.Lock()
	r.errors = r.errors[:0]
	r.mu.Unlock()
}
