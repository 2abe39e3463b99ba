// Package prompt provides interactive terminal prompts.
package prompt

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/runoshun/routinify/internal/domain"
)

// Ensure Confirmer implements domain.Confirmer.
var _ domain.Confirmer = (*Confirmer)(nil)

// Confirmer asks yes/no questions with a huh confirm form.
type Confirmer struct {
	// AssumeYes answers every question with yes without prompting.
	AssumeYes bool
}

// NewConfirmer creates a Confirmer.
func NewConfirmer(assumeYes bool) *Confirmer {
	return &Confirmer{AssumeYes: assumeYes}
}

// Confirm shows message and returns the answer. Aborting the form (Ctrl+C)
// counts as "no".
func (c *Confirmer) Confirm(message string) (bool, error) {
	if c.AssumeYes {
		return true, nil
	}

	confirmed := false
	confirm := huh.NewConfirm().
		Title(message).
		Affirmative("Yes").
		Negative("No").
		Value(&confirmed)

	form := huh.NewForm(huh.NewGroup(confirm))
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, fmt.Errorf("prompt failed: %w", err)
	}
	return confirmed, nil
}

// Text asks for a single line of text.
func Text(title, placeholder string) (string, error) {
	var value string
	input := huh.NewInput().
		Title(title).
		Placeholder(placeholder).
		Value(&value)

	form := huh.NewForm(huh.NewGroup(input))
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", domain.ErrCancelled
		}
		return "", fmt.Errorf("prompt failed: %w", err)
	}
	return value, nil
}
