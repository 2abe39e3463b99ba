package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/runoshun/routinify/internal/domain"
)

// ShowHistoryInput contains the parameters for showing phase history.
type ShowHistoryInput struct {
	Since time.Time // Zero means all records
	Limit int       // Non-positive means no limit
}

// ShowHistoryOutput contains the result of showing phase history.
type ShowHistoryOutput struct {
	Records      []domain.PhaseRecord // Newest first
	WorkSessions int                  // Completed work phases among Records
	FocusSeconds int                  // Total work time among Records
}

// ShowHistory is the use case for listing completed timer phases.
type ShowHistory struct {
	history domain.PhaseHistory
}

// NewShowHistory creates a new ShowHistory use case.
func NewShowHistory(history domain.PhaseHistory) *ShowHistory {
	return &ShowHistory{history: history}
}

// Execute lists completed phases and totals the work among them.
func (uc *ShowHistory) Execute(ctx context.Context, in ShowHistoryInput) (*ShowHistoryOutput, error) {
	if uc.history == nil {
		return nil, domain.ErrHistoryNotAvailable
	}
	records, err := uc.history.List(ctx, in.Since, in.Limit)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}

	out := &ShowHistoryOutput{Records: records}
	for _, r := range records {
		if r.Phase == domain.PhaseWork {
			out.WorkSessions++
			out.FocusSeconds += r.DurationSeconds
		}
	}
	return out, nil
}
