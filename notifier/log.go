package notifier

import (
	"context"

	"github.com/yamdb-api/logging"
)

// LogNotifier writes messages to the application log instead of sending them
type LogNotifier struct {
	logger logging.Logger
	from   string
}

func NewLogNotifier(logger logging.Logger, from string) *LogNotifier {
	return &LogNotifier{logger: logger, from: from}
}

func (n *LogNotifier) Notify(ctx context.Context, msg Message) error {
	if msg.From == "" {
		msg.From = n.from
	}
	n.logger.Info(ctx, "notification",
		"to", msg.To,
		"from", msg.From,
		"subject", msg.Subject,
		"body", msg.Body,
	)
	return nil
}
