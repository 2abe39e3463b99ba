package domain

import "path/filepath"

// Directory and file names for routinify.
const (
	AppDirName       = "routinify"      // Directory name under the config and data homes
	ConfigFileName   = "config.toml"    // Config file name
	RoutinesFileName = "routines.yaml"  // User routine definitions
	RuntimeFileName  = "runtime.toml"   // Timestamps kept between runs
	StoreFileName    = "tasks.json"     // Persisted envelope
	HistoryFileName  = "history.sqlite" // Completed phase history
	LogFileName      = "routinify.log"  // Log file name
)

// GlobalConfigDir returns the config directory.
// configHome is typically XDG_CONFIG_HOME or ~/.config (resolved by caller).
func GlobalConfigDir(configHome string) string {
	return filepath.Join(configHome, AppDirName)
}

// GlobalConfigPath returns the config file path inside configDir.
func GlobalConfigPath(configDir string) string {
	return filepath.Join(configDir, ConfigFileName)
}

// RoutinesPath returns the routine definitions path inside configDir.
func RoutinesPath(configDir string) string {
	return filepath.Join(configDir, RoutinesFileName)
}

// DataDir returns the data directory.
// dataHome is typically XDG_DATA_HOME or ~/.local/share (resolved by caller).
func DataDir(dataHome string) string {
	return filepath.Join(dataHome, AppDirName)
}

// StorePath returns the path of the envelope file.
func StorePath(dataDir string) string {
	return filepath.Join(dataDir, StoreFileName)
}

// RuntimePath returns the path of the runtime state file.
func RuntimePath(dataDir string) string {
	return filepath.Join(dataDir, RuntimeFileName)
}

// HistoryPath returns the path of the phase history database.
func HistoryPath(dataDir string) string {
	return filepath.Join(dataDir, HistoryFileName)
}

// LogPath returns the path of the log file.
func LogPath(dataDir string) string {
	return filepath.Join(dataDir, "logs", LogFileName)
}
