package models

// MailMessage is a plain-text email handed to a mail transport.
type MailMessage struct {
	To      string
	Subject string
	Body    string
}
