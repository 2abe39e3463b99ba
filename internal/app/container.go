// Package app provides the dependency injection container for the application.
package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/runoshun/routinify/internal/domain"
	"github.com/runoshun/routinify/internal/infra/config"
	"github.com/runoshun/routinify/internal/infra/history"
	"github.com/runoshun/routinify/internal/infra/jsonstore"
	"github.com/runoshun/routinify/internal/infra/logging"
	"github.com/runoshun/routinify/internal/infra/notify"
	"github.com/runoshun/routinify/internal/infra/routines"
	"github.com/runoshun/routinify/internal/infra/ticker"
	"github.com/runoshun/routinify/internal/usecase"
)

// Config holds the application paths.
type Config struct {
	ConfigDir   string // Directory holding config.toml and routines.yaml
	DataDir     string // Directory holding tasks, runtime state, history and logs
	StorePath   string // Path to tasks.json
	RuntimePath string // Path to runtime.toml
	HistoryPath string // Path to history.sqlite
}

// newConfig derives every path from the two base directories.
func newConfig(configDir, dataDir string) Config {
	return Config{
		ConfigDir:   configDir,
		DataDir:     dataDir,
		StorePath:   domain.StorePath(dataDir),
		RuntimePath: domain.RuntimePath(dataDir),
		HistoryPath: domain.HistoryPath(dataDir),
	}
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Store         domain.EnvelopeStore
	Runtime       domain.RuntimeStore
	History       domain.PhaseHistory
	Clock         domain.Clock
	ConfigLoader  domain.ConfigLoader
	ConfigManager domain.ConfigManager
	RoutineStore  domain.RoutineStore
	Scheduler     domain.Scheduler
	Notifier      domain.Notifier
	Logger        domain.Logger

	// Pointer fields
	AppConfig *domain.Config
	session   *usecase.Session

	// Configuration
	Config Config

	closers []io.Closer
}

// New creates a new Container reading configuration from configDir and
// keeping data in dataDir, unless [store].dir overrides it.
func New(configDir, dataDir string) (*Container, error) {
	configLoader := config.NewLoader(configDir)
	appConfig, err := configLoader.Load()
	if err != nil {
		// Fall back to defaults and surface the parse error as a warning.
		appConfig = domain.NewDefaultConfig()
		appConfig.Warnings = []string{err.Error()}
	}

	if dir := expandHome(appConfig.Store.Dir); dir != "" {
		dataDir = dir
	}
	if dataDir == "" {
		return nil, errors.New("cannot determine data directory")
	}
	cfg := newConfig(configDir, dataDir)

	logger := logging.New(cfg.DataDir, "global", logging.ParseLevel(appConfig.Log.Level))
	historyStore := history.New(cfg.HistoryPath)

	var notifier domain.Notifier = notify.Silent{}
	if appConfig.Timer.Bell {
		notifier = notify.NewBell(os.Stderr)
	}

	return &Container{
		Store:         jsonstore.New(cfg.StorePath),
		Runtime:       config.NewRuntimeStore(cfg.RuntimePath),
		History:       historyStore,
		Clock:         domain.RealClock{},
		ConfigLoader:  configLoader,
		ConfigManager: config.NewManager(configDir),
		RoutineStore:  routines.NewLoader(domain.RoutinesPath(configDir)),
		Scheduler:     ticker.Scheduler{},
		Notifier:      notifier,
		Logger:        logger,
		AppConfig:     appConfig,
		Config:        cfg,
		closers:       []io.Closer{historyStore, logger},
	}, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
// Optional ports left nil on the returned container stay unused.
func NewWithDeps(cfg Config, store domain.EnvelopeStore, clock domain.Clock, logger domain.Logger) *Container {
	return &Container{
		Store:     store,
		Clock:     clock,
		Logger:    logger,
		Scheduler: ticker.Scheduler{},
		Notifier:  notify.Silent{},
		AppConfig: domain.NewDefaultConfig(),
		Config:    cfg,
	}
}

// SetLogScope tags subsequent log entries with scope when the logger
// supports it.
func (c *Container) SetLogScope(scope string) {
	if l, ok := c.Logger.(interface{ SetScope(string) }); ok {
		l.SetScope(scope)
	}
}

// Session returns the task session, opening and loading it on first use.
func (c *Container) Session() (*usecase.Session, error) {
	if c.session != nil {
		return c.session, nil
	}

	steps := domain.DefaultRoutines()
	if c.RoutineStore != nil {
		user, err := c.RoutineStore.LoadRoutines()
		if err != nil {
			c.Logger.Warn("routine", fmt.Sprintf("ignoring routine file: %v", err))
		} else {
			steps = domain.MergeRoutines(steps, user)
		}
	}

	s, err := usecase.NewSession(usecase.SessionDeps{
		Store:     c.Store,
		Clock:     c.Clock,
		Logger:    c.Logger,
		Runtime:   c.Runtime,
		History:   c.History,
		Scheduler: c.Scheduler,
		Notifier:  c.Notifier,
		Config:    c.AppConfig,
		Routines:  steps,
	})
	if err != nil {
		return nil, err
	}
	if err := s.Load(); err != nil {
		return nil, err
	}
	c.session = s
	return s, nil
}

// Close releases the history database and the log file.
func (c *Container) Close() error {
	var errs []error
	for _, cl := range c.closers {
		if err := cl.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// expandHome replaces a leading "~/" with the user's home directory.
func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}

// UseCase factory methods. Callers open the session first.

// AddTaskUseCase returns a new AddTask use case.
func (c *Container) AddTaskUseCase() *usecase.AddTask {
	return usecase.NewAddTask(c.session)
}

// DeleteTaskUseCase returns a new DeleteTask use case.
func (c *Container) DeleteTaskUseCase() *usecase.DeleteTask {
	return usecase.NewDeleteTask(c.session)
}

// ToggleTaskUseCase returns a new ToggleTask use case.
func (c *Container) ToggleTaskUseCase() *usecase.ToggleTask {
	return usecase.NewToggleTask(c.session)
}

// RenameTaskUseCase returns a new RenameTask use case.
func (c *Container) RenameTaskUseCase() *usecase.RenameTask {
	return usecase.NewRenameTask(c.session)
}

// MoveTaskUseCase returns a new MoveTask use case.
func (c *Container) MoveTaskUseCase() *usecase.MoveTask {
	return usecase.NewMoveTask(c.session)
}

// IndentTaskUseCase returns a new IndentTask use case.
func (c *Container) IndentTaskUseCase() *usecase.IndentTask {
	return usecase.NewIndentTask(c.session)
}

// ListTasksUseCase returns a new ListTasks use case.
func (c *Container) ListTasksUseCase() *usecase.ListTasks {
	return usecase.NewListTasks(c.session)
}

// ShowSummaryUseCase returns a new ShowSummary use case.
func (c *Container) ShowSummaryUseCase() *usecase.ShowSummary {
	return usecase.NewShowSummary(c.session)
}

// SetFocusUseCase returns a new SetFocus use case.
func (c *Container) SetFocusUseCase() *usecase.SetFocus {
	return usecase.NewSetFocus(c.session)
}

// ApplyRoutineUseCase returns a new ApplyRoutine use case.
func (c *Container) ApplyRoutineUseCase() *usecase.ApplyRoutine {
	return usecase.NewApplyRoutine(c.session)
}

// DefineRoutineUseCase returns a new DefineRoutine use case.
func (c *Container) DefineRoutineUseCase() *usecase.DefineRoutine {
	return usecase.NewDefineRoutine(c.RoutineStore)
}

// ExportTasksUseCase returns a new ExportTasks use case.
func (c *Container) ExportTasksUseCase() *usecase.ExportTasks {
	return usecase.NewExportTasks(c.session)
}

// ImportTasksUseCase returns a new ImportTasks use case.
func (c *Container) ImportTasksUseCase() *usecase.ImportTasks {
	return usecase.NewImportTasks(c.session)
}

// RunTimerUseCase returns a new RunTimer use case.
func (c *Container) RunTimerUseCase() *usecase.RunTimer {
	return usecase.NewRunTimer(c.session)
}

// ShowHistoryUseCase returns a new ShowHistory use case.
func (c *Container) ShowHistoryUseCase() *usecase.ShowHistory {
	return usecase.NewShowHistory(c.History)
}

// ShowConfigUseCase returns a new ShowConfig use case.
func (c *Container) ShowConfigUseCase() *usecase.ShowConfig {
	return usecase.NewShowConfig(c.ConfigManager, c.AppConfig, fileExists)
}

// InitConfigUseCase returns a new InitConfig use case.
func (c *Container) InitConfigUseCase() *usecase.InitConfig {
	return usecase.NewInitConfig(c.ConfigManager)
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
