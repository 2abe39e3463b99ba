package usecase

import (
	"context"

	"github.com/runoshun/routinify/internal/domain"
)

// ShowSummaryInput contains the parameters for showing the summary.
type ShowSummaryInput struct{}

// ShowSummaryOutput contains the current focus and top-task path.
type ShowSummaryOutput struct {
	Focus string
	Path  []domain.Task // First unchecked root down to the deepest first unchecked child
}

// ShowSummary is the use case for showing what to work on next.
type ShowSummary struct {
	session *Session
}

// NewShowSummary creates a new ShowSummary use case.
func NewShowSummary(session *Session) *ShowSummary {
	return &ShowSummary{session: session}
}

// Execute returns the focus line and the current top-task path.
func (uc *ShowSummary) Execute(_ context.Context, _ ShowSummaryInput) (*ShowSummaryOutput, error) {
	out := &ShowSummaryOutput{Focus: uc.session.Focus()}
	uc.session.View(func(list *domain.TodoList) {
		out.Path = list.FirstTaskSummary()
	})
	return out, nil
}
