// Package notifier delivers out-of-band messages such as confirmation codes.
package notifier

import "context"

// Message is an email-like notification
type Message struct {
	To      string `json:"to"`
	From    string `json:"from,omitempty"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// Notifier sends a message synchronously; an error means it was not delivered
type Notifier interface {
	Notify(ctx context.Context, msg Message) error
}
