package email

// Config holds outbound-mail configuration.
//
// Every field is optional: when credentials are absent the application keeps
// accepting submissions and reports notification as skipped instead of
// failing requests. Use Configured to distinguish the two modes.
type Config struct {
	PostmarkServerToken  string `env:"POSTMARK_SERVER_TOKEN"`
	PostmarkAccountToken string `env:"POSTMARK_ACCOUNT_TOKEN"`
	SenderEmail          string `env:"CONTACT_SENDER_EMAIL"`
	InboxEmail           string `env:"CONTACT_INBOX_EMAIL"`
}

// Configured reports whether outbound mail can be attempted at all.
func (c Config) Configured() bool {
	return c.PostmarkServerToken != "" && c.SenderEmail != "" && c.InboxEmail != ""
}
