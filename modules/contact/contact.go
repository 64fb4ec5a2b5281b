package contact

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Submission is a single stored contact-form entry. Once created it is
// never updated; the lifecycle is create-then-read-only.
type Submission struct {
	ID        bson.ObjectID `bson:"_id" json:"id"`
	Name      string        `bson:"name" json:"name"`
	Email     string        `bson:"email" json:"email"`
	Phone     string        `bson:"phone,omitempty" json:"phone,omitempty"`
	Subject   string        `bson:"subject,omitempty" json:"subject,omitempty"`
	Message   string        `bson:"message" json:"message"`
	CreatedAt time.Time     `bson:"created_at" json:"createdAt"`
}

// CreateSubmissionParams carries the user-supplied fields of a new
// submission. Name, Email and Message are required; Phone and Subject are
// optional and rendered with placeholders when absent.
type CreateSubmissionParams struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Message string
}

// Validate checks that all required fields are present. Whitespace-only
// values count as missing.
func (p CreateSubmissionParams) Validate() error {
	if strings.TrimSpace(p.Name) == "" ||
		strings.TrimSpace(p.Email) == "" ||
		strings.TrimSpace(p.Message) == "" {
		return ErrMissingRequiredFields
	}
	return nil
}
