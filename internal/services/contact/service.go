package contact

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"artistryprime-go/internal/model"
	"artistryprime-go/internal/repositories"
)

const (
	SuccessMessage = "Thank you! Your message has been sent successfully."
	ErrorMessage   = "Sorry, something went wrong. Please try again later."
)

// Submission is the form as it should be displayed after a submit, together
// with the resulting state.
type Submission struct {
	Form  model.ContactForm
	State model.SubmissionState
}

type Service struct {
	mailer  Mailer
	archive repositories.SubmissionRepository
	toEmail string

	onState func(model.SubmissionState)
	now     func() time.Time
}

type Option func(*Service)

// WithStateHook registers a callback invoked on every state transition.
func WithStateHook(hook func(model.SubmissionState)) Option {
	return func(s *Service) {
		s.onState = hook
	}
}

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func NewService(mailer Mailer, archive repositories.SubmissionRepository, toEmail string, options ...Option) *Service {
	if archive == nil {
		archive = repositories.NopSubmissionRepository{}
	}
	s := &Service{
		mailer:  mailer,
		archive: archive,
		toEmail: toEmail,
		onState: func(model.SubmissionState) {},
		now:     time.Now,
	}
	for _, option := range options {
		option(s)
	}
	return s
}

func (s *Service) Submit(ctx context.Context, form model.ContactForm) Submission {
	state := model.SubmissionState{InFlight: true}
	s.onState(state)

	err := s.mailer.Send(ctx, s.templateParams(form))

	out := Submission{Form: form}
	outcome := model.OutcomeSent
	if err != nil {
		log.Printf("[contact] send failed: %v", err)
		outcome = model.OutcomeFailed
		state.Result = model.SubmissionResult{Type: model.ResultError, Message: ErrorMessage}
	} else {
		log.Printf("[contact] message from %s sent", form.Email)
		state.Result = model.SubmissionResult{Type: model.ResultSuccess, Message: SuccessMessage}
		out.Form = model.ContactForm{}
	}

	s.record(ctx, form, outcome)

	state.InFlight = false
	s.onState(state)
	out.State = state
	return out
}

func (s *Service) templateParams(form model.ContactForm) map[string]string {
	return map[string]string{
		"to_email":   s.toEmail,
		"from_name":  form.Name,
		"from_email": form.Email,
		"message":    form.Message,
		"reply_to":   form.Email,
	}
}

func (s *Service) record(ctx context.Context, form model.ContactForm, outcome string) {
	id, err := uuid.NewV7()
	if err != nil {
		log.Printf("[contact] archive id: %v", err)
		return
	}
	err = s.archive.Save(ctx, model.SubmissionRecord{
		ID:        id,
		Name:      form.Name,
		Email:     form.Email,
		Message:   form.Message,
		Outcome:   outcome,
		CreatedAt: s.now(),
	})
	if err != nil {
		log.Printf("[contact] archive failed: %v", err)
	}
}
