package contact

import (
	"context"
	"slices"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// InMemRepository is a Repository backed by process memory. It mirrors the
// MongoDB repository's contract, including identifier validation, and is
// intended for tests and credentials-free local development.
type InMemRepository struct {
	mu   sync.RWMutex
	subs []Submission
}

// NewInMemRepository returns an empty in-memory repository.
func NewInMemRepository() *InMemRepository {
	return &InMemRepository{}
}

// Create stores a new submission, assigning its identifier and creation timestamp.
func (r *InMemRepository) Create(ctx context.Context, params CreateSubmissionParams) (Submission, error) {
	sub := Submission{
		ID:        bson.NewObjectID(),
		Name:      params.Name,
		Email:     params.Email,
		Phone:     params.Phone,
		Subject:   params.Subject,
		Message:   params.Message,
		CreatedAt: time.Now().UTC(),
	}

	r.mu.Lock()
	r.subs = append(r.subs, sub)
	r.mu.Unlock()

	return sub, nil
}

// ListAll returns all stored submissions in insertion order.
func (r *InMemRepository) ListAll(ctx context.Context) ([]Submission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Clone(r.subs), nil
}

// GetByID returns the submission with the given hex identifier.
func (r *InMemRepository) GetByID(ctx context.Context, id string) (Submission, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return Submission{}, ErrInvalidID
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, sub := range r.subs {
		if sub.ID == oid {
			return sub, nil
		}
	}
	return Submission{}, ErrNotFound
}
