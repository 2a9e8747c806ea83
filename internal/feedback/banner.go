// Package feedback owns the transient notification banner surfaced to the
// user after operations.
package feedback

import (
	"sync"

	"photofeed/internal/models"
	"photofeed/internal/observability"
)

// Banner is a single-slot status message. Show unconditionally replaces the
// current message; there is no queueing or stacking.
type Banner struct {
	mu      sync.RWMutex
	current models.Banner
}

// NewBanner returns a hidden banner with an empty info message.
func NewBanner() *Banner {
	return &Banner{
		current: models.Banner{Kind: models.BannerInfo},
	}
}

// Show replaces the current notification and marks it visible.
func (b *Banner) Show(kind models.BannerKind, message string) {
	b.mu.Lock()
	b.current = models.Banner{Kind: kind, Message: message, Visible: true}
	b.mu.Unlock()
	observability.BannerShowsTotal.WithLabelValues(string(kind)).Inc()
}

// Hide marks the current notification as not visible. Kind and message are
// retained; visibility alone gates rendering.
func (b *Banner) Hide() {
	b.mu.Lock()
	b.current.Visible = false
	b.mu.Unlock()
}

// Current returns the banner state.
func (b *Banner) Current() models.Banner {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.current
}
