package tui

import (
	"time"

	"github.com/reelmood/reelmood/internal/core/notify"
)

// toastTTL is how long a toast stays visible. A new toast replaces the
// current one and restarts the clock.
const toastTTL = 3 * time.Second

// ToastController manages the single active toast. Each Show bumps a
// generation counter so the expiry timer of an overwritten toast cannot
// dismiss its replacement early.
type ToastController struct {
	current *notify.Notification
	gen     int
}

func NewToastController() *ToastController {
	return &ToastController{}
}

// Show replaces the active toast and returns the generation to hand to
// the expiry timer.
func (c *ToastController) Show(n notify.Notification) int {
	c.current = &n
	c.gen++
	return c.gen
}

// Expire dismisses the active toast if gen is still current. Stale
// generations are ignored.
func (c *ToastController) Expire(gen int) bool {
	if gen != c.gen || c.current == nil {
		return false
	}
	c.current = nil
	return true
}

// Dismiss removes the active toast unconditionally.
func (c *ToastController) Dismiss() {
	c.current = nil
}

// Active returns the currently displayed toast, if any.
func (c *ToastController) Active() (notify.Notification, bool) {
	if c.current == nil {
		return notify.Notification{}, false
	}
	return *c.current, true
}
