// Package email provides outbound mail delivery for contact notifications.
//
// The EmailSender interface abstracts the transport. Two implementations
// exist: a Postmark-backed client for production and DevSender, which
// writes messages to disk for local development.
//
// Credentials are optional by design. Config.Configured reports whether a
// transport can be constructed; callers degrade to a "not sent" outcome
// when it returns false instead of failing the surrounding operation.
package email
