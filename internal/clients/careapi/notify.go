package careapi

import (
	"sync"
	"time"
)

// DefaultNotifyClear is how long a transient message stays visible.
const DefaultNotifyClear = 5 * time.Second

// Notifier holds the current transient success/error messages that feature
// code surfaces as banners. A message clears itself after the configured
// delay without further interaction. Safe for concurrent use.
type Notifier struct {
	mu         sync.Mutex
	clearAfter time.Duration
	success    string
	error      string
	successGen int
	errorGen   int
	onChange   func()
}

// NewNotifier creates a notifier with the given auto-clear delay.
func NewNotifier(clearAfter time.Duration) *Notifier {
	if clearAfter <= 0 {
		clearAfter = DefaultNotifyClear
	}
	return &Notifier{clearAfter: clearAfter}
}

// OnChange registers a callback invoked whenever a message is set or cleared.
func (n *Notifier) OnChange(fn func()) {
	n.mu.Lock()
	n.onChange = fn
	n.mu.Unlock()
}

// Success sets the transient success message.
func (n *Notifier) Success(msg string) {
	n.mu.Lock()
	n.success = msg
	n.successGen++
	gen := n.successGen
	fn := n.onChange
	n.mu.Unlock()

	if fn != nil {
		fn()
	}

	time.AfterFunc(n.clearAfter, func() {
		n.clearSuccess(gen)
	})
}

// Error sets the transient error message.
func (n *Notifier) Error(msg string) {
	n.mu.Lock()
	n.error = msg
	n.errorGen++
	gen := n.errorGen
	fn := n.onChange
	n.mu.Unlock()

	if fn != nil {
		fn()
	}

	time.AfterFunc(n.clearAfter, func() {
		n.clearError(gen)
	})
}

// Messages returns the current success and error messages ("" when unset).
func (n *Notifier) Messages() (success, errMsg string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.success, n.error
}

// clearSuccess clears the success message unless a newer one replaced it.
func (n *Notifier) clearSuccess(gen int) {
	n.mu.Lock()
	fn := n.onChange
	cleared := false
	if n.successGen == gen {
		n.success = ""
		cleared = true
	}
	n.mu.Unlock()

	if cleared && fn != nil {
		fn()
	}
}

// clearError clears the error message unless a newer one replaced it.
func (n *Notifier) clearError(gen int) {
	n.mu.Lock()
	fn := n.onChange
	cleared := false
	if n.errorGen == gen {
		n.error = ""
		cleared = true
	}
	n.mu.Unlock()

	if cleared && fn != nil {
		fn()
	}
}
