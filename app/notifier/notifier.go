package notifier

import (
	"fmt"
	"time"

	"github.com/wneessen/go-mail"

	"pressradar/app/cfg"
)

// Notifier delivers the rendered digest over SMTP.
type Notifier struct {
	host          string
	port          int
	user          string
	password      string
	from          string
	to            string
	subjectPrefix string
}

func New(subjectPrefix string) *Notifier {
	c := cfg.Get()
	return &Notifier{
		host:          c.SMTPHost,
		port:          c.SMTPPort,
		user:          c.SMTPUser,
		password:      c.SMTPPassword,
		from:          c.EmailFrom,
		to:            c.EmailTo,
		subjectPrefix: subjectPrefix,
	}
}

// Send mails body as a plain-text message. The subject carries the run
// date so daily digests thread predictably in the recipient's mailbox.
func (n *Notifier) Send(body string, now time.Time) error {
	msg := mail.NewMsg()
	if err := msg.From(n.from); err != nil {
		return fmt.Errorf("invalid sender address: %w", err)
	}
	if err := msg.To(n.to); err != nil {
		return fmt.Errorf("invalid recipient address: %w", err)
	}
	msg.Subject(fmt.Sprintf("%s (%s)", n.subjectPrefix, now.Format("2006-01-02")))
	msg.SetBodyString(mail.TypeTextPlain, body)

	client, err := mail.NewClient(n.host,
		mail.WithPort(n.port),
		mail.WithSMTPAuth(mail.SMTPAuthLogin),
		mail.WithUsername(n.user),
		mail.WithPassword(n.password),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return fmt.Errorf("failed to create SMTP client: %w", err)
	}

	if err := client.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send digest: %w", err)
	}

	return nil
}
