// Package contact implements the contact-form feature: accepting a
// submission, persisting it to the document store, and forwarding it by
// email on a best-effort basis.
//
// The submission pipeline runs validation, persistence and notification in
// sequence. Validation and persistence failures abort the request;
// notification failure is downgraded to response metadata (DeliveryResult)
// so mail problems never reject an otherwise valid submission.
package contact
