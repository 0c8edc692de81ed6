package qa

import (
	"context"
	"errors"

	DTO_http "qa_ai_service/internal/DTO/http"
)

// Completer is the narrow slice of the completion client consumed by this
// service, so tests can substitute a double without a network dependency.
type Completer interface {
	Complete(ctx context.Context, question, model string) (string, error)
}

type service struct {
	completer Completer
	model     string
}

type Service interface {
	Ask(ctx context.Context, question string) (DTO_http.QAResult, error)
}

func NewService(completer Completer, model string) (Service, error) {
	if completer == nil {
		return nil, errors.New("completer is required")
	}
	return &service{
		completer: completer,
		model:     model,
	}, nil
}

// Ask forwards the question to the completion client and pairs the reply with
// the original question. The question is passed through unchanged — empty
// strings included — and completer failures are returned untranslated.
func (s *service) Ask(ctx context.Context, question string) (DTO_http.QAResult, error) {
	answer, err := s.completer.Complete(ctx, question, s.model)
	if err != nil {
		return DTO_http.QAResult{}, err
	}

	return DTO_http.QAResult{
		Question: question,
		Answer:   answer,
	}, nil
}
