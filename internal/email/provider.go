package email

// Message is a plain outbound mail.
type Message struct {
	To      string
	Subject string
	Body    string
}

// Provider sends transactional mail. Implementations must be safe for
// concurrent use.
type Provider interface {
	Send(msg *Message) error
}
