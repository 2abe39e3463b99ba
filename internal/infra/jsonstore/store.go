// Package jsonstore provides a JSON file-based implementation of EnvelopeStore.
package jsonstore

import (
	"fmt"
	"os"
	"path/filepath"
	"syscall"

	"github.com/runoshun/routinify/internal/domain"
)

// Ensure Store implements domain.EnvelopeStore.
var _ domain.EnvelopeStore = (*Store)(nil)

// Store keeps the session envelope in a single JSON file.
// Concurrent processes are serialized with an advisory lock on a sibling
// ".lock" file, and writes go through a temp file and rename.
type Store struct {
	path     string
	lockPath string
}

// New creates a new Store for the given file path.
// The file does not need to exist; it will be created on first write.
func New(path string) *Store {
	return &Store{
		path:     path,
		lockPath: path + ".lock",
	}
}

// Path returns the file path of the store.
func (s *Store) Path() string {
	return s.path
}

// Read returns the stored envelope text, or "" when the file does not exist.
func (s *Store) Read() (string, error) {
	lock, err := s.acquireLock(syscall.LOCK_SH)
	if err != nil {
		return "", err
	}
	defer s.releaseLock(lock)

	content, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("read store file: %w", err)
	}
	return string(content), nil
}

// Write replaces the stored envelope text.
func (s *Store) Write(data []byte) error {
	lock, err := s.acquireLock(syscall.LOCK_EX)
	if err != nil {
		return err
	}
	defer s.releaseLock(lock)

	// Write to temp file first, then rename for atomicity
	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o600); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath) // Clean up
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}

func (s *Store) acquireLock(lockType int) (*os.File, error) {
	// Ensure lock file directory exists
	dir := filepath.Dir(s.lockPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create lock directory: %w", err)
	}

	lock, err := os.OpenFile(s.lockPath, os.O_CREATE|os.O_RDWR, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open lock file: %w", err)
	}

	if err := syscall.Flock(int(lock.Fd()), lockType); err != nil {
		_ = lock.Close()
		return nil, fmt.Errorf("acquire lock: %w", err)
	}

	return lock, nil
}

func (s *Store) releaseLock(lock *os.File) {
	_ = syscall.Flock(int(lock.Fd()), syscall.LOCK_UN)
	_ = lock.Close()
}
