package contact

import (
	"context"
	"log/slog"

	"github.com/formdesk/contactapi/pkg/logger"
)

// Service orchestrates the submission pipeline: validation, persistence,
// best-effort notification, and response shaping. Only validation and
// persistence failures abort a submission; the notification outcome is
// carried alongside the stored record.
type Service struct {
	repo     Repository
	notifier *Notifier
	log      *slog.Logger
}

// NewService creates the contact service.
func NewService(repo Repository, notifier *Notifier, log *slog.Logger) *Service {
	return &Service{repo: repo, notifier: notifier, log: log}
}

// SubmitResult pairs the persisted submission with its notification outcome.
type SubmitResult struct {
	Submission Submission
	Mail       DeliveryResult
}

// Submit runs the pipeline for one inbound submission. It returns
// ErrMissingRequiredFields for incomplete input and a persistence error
// when the store rejects the write; notification failure never produces an
// error.
func (s *Service) Submit(ctx context.Context, params CreateSubmissionParams) (SubmitResult, error) {
	if err := params.Validate(); err != nil {
		return SubmitResult{}, err
	}

	sub, err := s.repo.Create(ctx, params)
	if err != nil {
		s.log.ErrorContext(ctx, "failed to persist contact submission", logger.Error(err))
		return SubmitResult{}, err
	}

	mail := s.notifier.Send(ctx, sub)

	s.log.InfoContext(ctx, "contact submission received",
		logger.SubmissionID(sub.ID.Hex()),
		slog.Bool("mail_sent", mail.Sent),
	)

	return SubmitResult{Submission: sub, Mail: mail}, nil
}

// List returns all stored submissions in store order.
func (s *Service) List(ctx context.Context) ([]Submission, error) {
	return s.repo.ListAll(ctx)
}

// Get returns the submission with the given identifier.
func (s *Service) Get(ctx context.Context, id string) (Submission, error) {
	return s.repo.GetByID(ctx, id)
}
