package app

import "monprof_backend/internal/email"

// NoopEmailProvider swallows outgoing mail when SMTP is not configured.
type NoopEmailProvider struct{}

func (m *NoopEmailProvider) Send(msg *email.Email) error { return nil }
func (m *NoopEmailProvider) Validate() error             { return nil }
