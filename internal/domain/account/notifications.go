package account

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Notification is one message delivered to a subscriber's inbox.
type Notification struct {
	ID          string `json:"-"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// NewNotification builds a notification with a fresh ID.
func NewNotification(name, description string) Notification {
	return Notification{ID: uuid.New().String(), Name: name, Description: description}
}

// Deliver appends a notification to the user's inbox.
func (u *User) Deliver(n Notification) {
	u.inbox = append(u.inbox, n)
}

// Notifications drains the inbox, returning everything delivered since the
// last call.
func (u *User) Notifications() []Notification {
	out := u.inbox
	u.inbox = nil
	if out == nil {
		out = []Notification{}
	}
	return out
}

// Subscribed reports whether the user is in the artist's subscriber list.
func (a *Artist) Subscribed(u *User) bool {
	for _, sub := range a.subscribers {
		if sub == u {
			return true
		}
	}
	return false
}

// Subscribe adds the user to the artist's subscriber list.
func (a *Artist) Subscribe(u *User) {
	a.subscribers = append(a.subscribers, u)
}

// Unsubscribe removes the user from the artist's subscriber list.
func (a *Artist) Unsubscribe(u *User) {
	for i, sub := range a.subscribers {
		if sub == u {
			a.subscribers = append(a.subscribers[:i], a.subscribers[i+1:]...)
			return
		}
	}
}

// Publish delivers a notification to every subscriber.
func (a *Artist) Publish(n Notification) {
	for _, sub := range a.subscribers {
		sub.Deliver(n)
	}
	log.Debug().
		Str("artist", a.Username).
		Str("notification", n.Name).
		Int("subscribers", len(a.subscribers)).
		Msg("Published artist notification")
}

// Subscribed reports whether the user is in the host's subscriber list.
func (h *Host) Subscribed(u *User) bool {
	for _, sub := range h.subscribers {
		if sub == u {
			return true
		}
	}
	return false
}

// Subscribe adds the user to the host's subscriber list.
func (h *Host) Subscribe(u *User) {
	h.subscribers = append(h.subscribers, u)
}

// Unsubscribe removes the user from the host's subscriber list.
func (h *Host) Unsubscribe(u *User) {
	for i, sub := range h.subscribers {
		if sub == u {
			h.subscribers = append(h.subscribers[:i], h.subscribers[i+1:]...)
			return
		}
	}
}

// Publish delivers a notification to every subscriber.
func (h *Host) Publish(n Notification) {
	for _, sub := range h.subscribers {
		sub.Deliver(n)
	}
	log.Debug().
		Str("host", h.Username).
		Str("notification", n.Name).
		Int("subscribers", len(h.subscribers)).
		Msg("Published host notification")
}
