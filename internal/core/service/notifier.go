package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/compayre/account-service/internal/core/ports"
)

// LogNotifier delivers account notifications to the structured log. It
// stands in for a mail or webhook sender; the dispatcher and ports contract
// stay the same when a real channel is plugged in.
type LogNotifier struct {
	log zerolog.Logger
}

func NewLogNotifier(log zerolog.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) Send(_ context.Context, event ports.AccountNotification) error {
	n.log.Info().
		Str("type", event.Type).
		Str("user_id", event.UserID).
		Str("username", event.Username).
		Str("subscription", event.Subscription).
		Bool("is_admin", event.IsAdmin).
		Msg("account notification")
	return nil
}
