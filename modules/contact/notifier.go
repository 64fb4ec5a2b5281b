package contact

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/formdesk/contactapi/pkg/email"
	"github.com/formdesk/contactapi/pkg/logger"
	"github.com/formdesk/contactapi/pkg/sanitizer"
)

// Delivery outcome reasons reported when a notification was not sent.
const (
	ReasonNoCredentials    = "no-mail-credentials"
	ReasonTransportFailure = "transport-failure"
)

// defaultSubject is used when a submission carries no subject line.
const defaultSubject = "New Contact Message"

// renderPlaceholder stands in for absent optional fields in the email body.
const renderPlaceholder = "N/A"

// DeliveryResult is the tagged outcome of a notification attempt. Reason is
// empty when Sent is true; Detail carries the transport error message when
// Reason is ReasonTransportFailure.
type DeliveryResult struct {
	Sent   bool   `json:"sent"`
	Reason string `json:"reason,omitempty"`
	Detail string `json:"error,omitempty"`
}

// Notifier attempts best-effort email delivery for submissions. Delivery
// failures are logged and reported in the DeliveryResult, never escalated
// as errors: mail is informational metadata, not part of the request's
// success criteria.
type Notifier struct {
	cfg    email.Config
	sender email.EmailSender
	log    *slog.Logger
}

// NewNotifier creates a notifier. sender may be nil when cfg is not
// configured; Send then reports the no-credentials outcome without any
// network activity.
func NewNotifier(cfg email.Config, sender email.EmailSender, log *slog.Logger) *Notifier {
	return &Notifier{cfg: cfg, sender: sender, log: log}
}

// Send composes and dispatches the notification email for a submission.
func (n *Notifier) Send(ctx context.Context, sub Submission) DeliveryResult {
	if !n.cfg.Configured() || n.sender == nil {
		return DeliveryResult{Sent: false, Reason: ReasonNoCredentials}
	}

	subject := sub.Subject
	if strings.TrimSpace(subject) == "" {
		subject = defaultSubject
	}

	params := email.SendEmailParams{
		SendTo:   n.cfg.InboxEmail,
		FromName: sanitizer.EscapeHTML(sub.Name),
		// Reply-To is a protocol header, not rendered HTML; it stays raw.
		ReplyTo:  sub.Email,
		Subject:  subject,
		BodyHTML: notificationBody(sub),
		Tag:      "contact-form",
	}

	if err := n.sender.SendEmail(ctx, params); err != nil {
		n.log.ErrorContext(ctx, "contact notification delivery failed",
			logger.Component("notifier"),
			logger.SubmissionID(sub.ID.Hex()),
			logger.Error(err),
		)
		return DeliveryResult{Sent: false, Reason: ReasonTransportFailure, Detail: err.Error()}
	}

	return DeliveryResult{Sent: true}
}

// notificationBody renders the HTML email body. All user-supplied values
// are escaped; the message additionally gets newline-to-<br/> conversion
// after escaping.
func notificationBody(sub Submission) string {
	phone := sub.Phone
	if strings.TrimSpace(phone) == "" {
		phone = renderPlaceholder
	}
	subject := sub.Subject
	if strings.TrimSpace(subject) == "" {
		subject = renderPlaceholder
	}

	var b strings.Builder
	b.WriteString("<h3>New Contact Form Submission</h3>")
	fmt.Fprintf(&b, "<p><strong>Name:</strong> %s</p>", sanitizer.EscapeHTML(sub.Name))
	fmt.Fprintf(&b, "<p><strong>Email:</strong> %s</p>", sanitizer.EscapeHTML(sub.Email))
	fmt.Fprintf(&b, "<p><strong>Phone:</strong> %s</p>", sanitizer.EscapeHTML(phone))
	fmt.Fprintf(&b, "<p><strong>Subject:</strong> %s</p>", sanitizer.EscapeHTML(subject))
	fmt.Fprintf(&b, "<p><strong>Message:</strong><br/>%s</p>",
		sanitizer.NewlineToBreaks(sanitizer.EscapeHTML(sub.Message)))
	return b.String()
}
