package email

// Email is one outbound message.
type Email struct {
	To       []string
	Subject  string
	Body     string
	HTMLBody string
}

// TemplateData feeds the notice builders.
type TemplateData map[string]interface{}
