package contact

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/formdesk/contactapi/pkg/binder"
	"github.com/formdesk/contactapi/pkg/handler"
	"github.com/formdesk/contactapi/pkg/logger"
)

// SubmitRequest is the inbound contact-form payload.
type SubmitRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// GetContactRequest identifies a single submission.
type GetContactRequest struct {
	ID string `path:"id"`
}

type submitResponse struct {
	Msg  string         `json:"msg"`
	Mail DeliveryResult `json:"mail"`
}

type errorResponse struct {
	Msg   string `json:"msg"`
	Error string `json:"error,omitempty"`
}

type listResponse struct {
	Success bool         `json:"success"`
	Data    []Submission `json:"data"`
}

type listErrorResponse struct {
	Success bool   `json:"success"`
	Msg     string `json:"msg"`
	Error   string `json:"error,omitempty"`
}

// Handle returns the HTTP surface of the contact module, meant to be
// mounted by the embedding service (typically under /api/contact).
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()

	r.Post("/", handler.Wrap(s.submit,
		handler.WithBinders[SubmitRequest](binder.JSON()),
		handler.WithErrorHandler[SubmitRequest](s.handleError),
	))

	r.Get("/", handler.Wrap(s.list,
		handler.WithErrorHandler[struct{}](s.handleError),
	))

	r.Get("/{id}", handler.Wrap(s.byID,
		handler.WithBinders[GetContactRequest](binder.Path(chi.URLParam)),
		handler.WithErrorHandler[GetContactRequest](s.handleError),
	))

	return r
}

func (s *Service) submit(ctx handler.Context, req SubmitRequest) handler.Response {
	res, err := s.Submit(ctx, CreateSubmissionParams{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	})
	switch {
	case errors.Is(err, ErrMissingRequiredFields):
		return handler.JSON(errorResponse{Msg: "Please fill all required fields"},
			handler.WithStatus(http.StatusBadRequest))
	case err != nil:
		return handler.JSON(errorResponse{Msg: "Server error", Error: err.Error()},
			handler.WithStatus(http.StatusInternalServerError))
	}

	// 201 in all three notify outcomes: persistence success alone
	// determines the status, mail is informational metadata.
	msg := "Message received successfully! (saved to DB)"
	switch res.Mail.Reason {
	case "":
		if res.Mail.Sent {
			msg = "Message received and email sent successfully!"
		}
	case ReasonTransportFailure:
		msg = "Message received successfully! (saved to DB, but mail failed)"
	}

	return handler.JSON(submitResponse{Msg: msg, Mail: res.Mail},
		handler.WithStatus(http.StatusCreated))
}

func (s *Service) list(ctx handler.Context, _ struct{}) handler.Response {
	subs, err := s.List(ctx)
	if err != nil {
		return handler.JSON(listErrorResponse{Msg: "Server error", Error: err.Error()},
			handler.WithStatus(http.StatusInternalServerError))
	}

	// Empty collection is surfaced as not-found, matching the documented
	// behavior of the public API.
	if len(subs) == 0 {
		return handler.JSON(listErrorResponse{Msg: "No contacts found"},
			handler.WithStatus(http.StatusNotFound))
	}

	return handler.JSON(listResponse{Success: true, Data: subs})
}

func (s *Service) byID(ctx handler.Context, req GetContactRequest) handler.Response {
	sub, err := s.Get(ctx, req.ID)
	switch {
	case errors.Is(err, ErrInvalidID):
		return handler.JSON(errorResponse{Msg: "Invalid contact id"},
			handler.WithStatus(http.StatusBadRequest))
	case errors.Is(err, ErrNotFound):
		return handler.JSON(errorResponse{Msg: "Message not found"},
			handler.WithStatus(http.StatusNotFound))
	case err != nil:
		return handler.JSON(errorResponse{Msg: "Server error", Error: err.Error()},
			handler.WithStatus(http.StatusInternalServerError))
	}

	return handler.JSON(sub)
}

// handleError maps binding and rendering failures to the API's error
// bodies: malformed input is a client error, everything else a 500.
func (s *Service) handleError(ctx handler.Context, err error) {
	status := http.StatusInternalServerError
	body := errorResponse{Msg: "Server error", Error: err.Error()}

	if errors.Is(err, binder.ErrInvalidJSON) ||
		errors.Is(err, binder.ErrMissingContentType) ||
		errors.Is(err, binder.ErrUnsupportedMediaType) {
		status = http.StatusBadRequest
		body = errorResponse{Msg: "Invalid request body"}
	} else {
		s.log.ErrorContext(ctx, "contact request failed", logger.Error(err))
	}

	w := ctx.ResponseWriter()
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
