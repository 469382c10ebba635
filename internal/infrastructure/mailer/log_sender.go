package mailer

import (
	"context"
	"log"
)

// LogSender writes messages to the log instead of delivering them.
type LogSender struct {
	Logger *log.Logger
}

func (s LogSender) Send(_ context.Context, m Message) error {
	logger := s.Logger
	if logger == nil {
		logger = log.Default()
	}
	logger.Printf("[Mailer] to=%q name=%q subject=%q bytes=%d", m.To, m.Name, m.Subject, len(m.Body))
	return nil
}
