package mail

import (
	"context"
	"log/slog"
)

// LogSender writes the code to the log instead of sending mail. Used in dev
// environments where no SMTP relay is configured.
type LogSender struct {
	Logger *slog.Logger
}

func (s *LogSender) SendConfirmationCode(ctx context.Context, email, username, code string) error {
	s.Logger.Info("confirmation code issued (mail disabled)",
		"email", email,
		"username", username,
		"code", code,
	)
	return nil
}
