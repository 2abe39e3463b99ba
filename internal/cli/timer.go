package cli

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/runoshun/routinify/internal/app"
	"github.com/runoshun/routinify/internal/domain"
	"github.com/runoshun/routinify/internal/usecase"
	"github.com/spf13/cobra"
)

// newTimerCommand creates the timer command.
func newTimerCommand(c *app.Container) *cobra.Command {
	var phase string

	cmd := &cobra.Command{
		Use:   "timer",
		Short: "Run the Pomodoro timer in the foreground",
		Long: `Run the Pomodoro timer until interrupted with Ctrl+C.

Phases follow each other automatically: work, short break, and a long
break after every fourth work session. The break routine is inserted when
a break starts and removed when work resumes. Completed phases are
recorded in the history.

Examples:
  routinify timer
  routinify timer --phase short`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			session, err := c.Session()
			if err != nil {
				return fmt.Errorf("open tasks: %w", err)
			}
			if _, err := session.ApplyStartupRoutine(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			p := &eventPrinter{w: cmd.OutOrStdout()}
			out, err := c.RunTimerUseCase().Execute(ctx, usecase.RunTimerInput{
				Phase:   phase,
				OnEvent: p.print,
			})
			if err != nil {
				return err
			}

			if err := session.End(); err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Finished %d phase(s); %s %s left\n",
				out.PhasesFinished, out.Last.Phase.Name, domain.FormatTime(out.Last.Remaining))
			return nil
		},
	}

	cmd.Flags().StringVarP(&phase, "phase", "p", "", "Starting phase: work, short or long")

	return cmd
}

// eventPrinter writes timer events as they arrive from the ticker goroutine.
// Fields are ordered to minimize memory padding.
type eventPrinter struct {
	w  io.Writer
	mu sync.Mutex
}

func (p *eventPrinter) print(e domain.TimerEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch e.Kind {
	case domain.TimerStarted:
		_, _ = fmt.Fprintf(p.w, "▶ %s %s (%s)\n", e.Phase.Name, domain.FormatTime(e.Remaining),
			domain.SessionSummary(e.Phase.Name, e.WorkSessionCount, e.Running))
	case domain.TimerStopped:
		_, _ = fmt.Fprintf(p.w, "■ %s stopped at %s\n", e.Phase.Name, domain.FormatTime(e.Remaining))
	case domain.TimerPhaseEnd:
		_, _ = fmt.Fprintf(p.w, "✔ %s finished, %s next\n", e.Ended.Name, e.Phase.Name)
	case domain.TimerTick:
		// One line per minute keeps piped output readable
		if e.Running && e.Remaining > 0 && e.Remaining < e.Duration && e.Remaining%60 == 0 {
			_, _ = fmt.Fprintf(p.w, "  %s left\n", domain.FormatTime(e.Remaining))
		}
	case domain.TimerPhaseEntered:
		// Announced by the Started event that follows
	}
}

// newHistoryCommand creates the history command.
func newHistoryCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Since time.Duration
		Limit int
	}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show completed timer phases",
		Long: `Show completed timer phases, newest first, with the task that was on
top when each phase ended.

Examples:
  routinify history --since 24h
  routinify history --limit 10`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			in := usecase.ShowHistoryInput{Limit: opts.Limit}
			if opts.Since > 0 {
				in.Since = c.Clock.Now().Add(-opts.Since)
			}

			out, err := c.ShowHistoryUseCase().Execute(cmd.Context(), in)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if len(out.Records) == 0 {
				_, _ = fmt.Fprintln(w, "No completed phases")
				return nil
			}

			tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
			_, _ = fmt.Fprintln(tw, "ENDED\tPHASE\tMIN\tTOP TASK")
			for _, r := range out.Records {
				_, _ = fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n",
					r.EndedAt.Local().Format("2006-01-02 15:04"), r.Phase, r.DurationSeconds/60, r.TopTask)
			}
			_ = tw.Flush()

			_, _ = fmt.Fprintf(w, "\n%d work session(s), %d min focused\n", out.WorkSessions, out.FocusSeconds/60)
			return nil
		},
	}

	cmd.Flags().DurationVar(&opts.Since, "since", 0, "Only show phases that ended within this duration (e.g. 24h)")
	cmd.Flags().IntVarP(&opts.Limit, "limit", "n", 0, "Maximum number of phases to show")

	return cmd
}
