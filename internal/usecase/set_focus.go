package usecase

import (
	"context"

	"github.com/runoshun/routinify/internal/domain"
)

// SetFocusInput contains the parameters for setting the focus line.
type SetFocusInput struct {
	Focus string // Empty clears the focus
}

// SetFocusOutput contains the result of setting the focus line.
type SetFocusOutput struct {
	Previous string
}

// SetFocus is the use case for changing the session focus line.
type SetFocus struct {
	session *Session
}

// NewSetFocus creates a new SetFocus use case.
func NewSetFocus(session *Session) *SetFocus {
	return &SetFocus{session: session}
}

// Execute replaces the focus line.
func (uc *SetFocus) Execute(_ context.Context, in SetFocusInput) (*SetFocusOutput, error) {
	prev := uc.session.Focus()
	if err := uc.session.SetFocus(domain.NormalizeText(in.Focus)); err != nil {
		return nil, err
	}
	return &SetFocusOutput{Previous: prev}, nil
}
