package email

// Provider sends outbound email. Services hold the interface so tests
// can swap in a recording fake.
type Provider interface {
	Send(email *Email) error
	Validate() error
}
