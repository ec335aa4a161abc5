package infrastructure

import (
	"context"
	"sync"
	"time"

	"prayertimes.app/internal/ports"
)

// NoticeBoard keeps the latest user-facing notice for the UI to poll.
// A notice expires after ttl so it is shown once rather than forever.
type NoticeBoard struct {
	logger ports.Logger
	ttl    time.Duration
	now    func() time.Time

	mu       sync.RWMutex
	message  string
	postedAt time.Time
}

func NewNoticeBoard(logger ports.Logger, ttl time.Duration) *NoticeBoard {
	return &NoticeBoard{
		logger: logger,
		ttl:    ttl,
		now:    time.Now,
	}
}

// Notify implements ports.Notifier
func (b *NoticeBoard) Notify(ctx context.Context, message string) {
	b.mu.Lock()
	b.message = message
	b.postedAt = b.now()
	b.mu.Unlock()

	b.logger.Info("User notice posted", ports.F("notice", message))
}

// Clear implements ports.Notifier
func (b *NoticeBoard) Clear(ctx context.Context) {
	b.mu.Lock()
	had := b.message != ""
	b.message = ""
	b.postedAt = time.Time{}
	b.mu.Unlock()

	if had {
		b.logger.Debug("User notice cleared")
	}
}

// Latest returns the current notice, or "" once it has expired
func (b *NoticeBoard) Latest() string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.message == "" {
		return ""
	}
	if b.ttl > 0 && b.now().Sub(b.postedAt) > b.ttl {
		return ""
	}
	return b.message
}
