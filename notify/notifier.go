// Package notify shows transient notifications that remove themselves after
// a fixed delay.
//
// Notifications are not queued: each one is appended to its container as soon
// as it is shown and removed when its own timer fires, so several may be
// visible at once.
package notify

import (
	"github.com/google/uuid"
	"github.com/viant/sitekit/internal/collection"
	"time"
)

// DefaultTTL is how long a notification stays visible
const DefaultTTL = 3000 * time.Millisecond

// BaseClass is the style class shared by all notifications
const BaseClass = "notification"

// Kind selects the notification style
type Kind string

const (
	Info    Kind = "info"
	Success Kind = "success"
	Warning Kind = "warning"
	Error   Kind = "error"
)

// Notification is a single transient message
type Notification struct {
	ID    string
	Kind  Kind
	Class string
	Text  string
}

// Container displays notifications
type Container interface {
	Append(notification *Notification)
	Remove(notification *Notification)
}

type Notifier struct {
	container Container
	ttl       time.Duration
	active    *collection.SyncMap[string, *Notification]
}

// Show appends a notification with message to the container and schedules its
// removal after the notifier TTL. An empty kind means Info.
func (n *Notifier) Show(message string, kind Kind) *Notification {
	if kind == "" {
		kind = Info
	}
	notification := &Notification{
		ID:    uuid.New().String(),
		Kind:  kind,
		Class: BaseClass + " " + string(kind),
		Text:  message,
	}
	n.active.Put(notification.ID, notification)
	n.container.Append(notification)
	time.AfterFunc(n.ttl, func() {
		if n.active.Delete(notification.ID) {
			n.container.Remove(notification)
		}
	})
	return notification
}

// Active returns notifications still on display, oldest first
func (n *Notifier) Active() []*Notification {
	return n.active.Values()
}

// Option customises a Notifier
type Option func(n *Notifier)

// WithTTL sets the display duration
func WithTTL(ttl time.Duration) Option {
	return func(n *Notifier) {
		if ttl > 0 {
			n.ttl = ttl
		}
	}
}

func New(container Container, options ...Option) *Notifier {
	ret := &Notifier{
		container: container,
		ttl:       DefaultTTL,
		active:    collection.NewSyncMap[string, *Notification](),
	}
	for _, opt := range options {
		opt(ret)
	}
	return ret
}
