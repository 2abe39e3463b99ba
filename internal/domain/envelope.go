package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Data format versions.
const (
	CurrentVersion         = 1.1
	OldestSupportedVersion = 1.1
)

// Envelope is the persisted form of the whole session.
// Fields are ordered to minimize memory padding.
type Envelope struct {
	Version      float64      `json:"version"`
	LastSaveTime int64        `json:"lastSaveTime"` // Unix milliseconds
	Focus        string       `json:"focus"`
	Tasks        []TaskRecord `json:"tasks"`
}

// NewEnvelope creates an envelope at the current version.
func NewEnvelope(focus string, tasks []TaskRecord, savedAtMillis int64) *Envelope {
	if tasks == nil {
		tasks = []TaskRecord{}
	}
	return &Envelope{
		Version:      CurrentVersion,
		LastSaveTime: savedAtMillis,
		Focus:        focus,
		Tasks:        tasks,
	}
}

// ParseEnvelope decodes envelope text.
// Blank text and the literals "null" and "undefined" yield (nil, nil), meaning
// there is nothing to load. Undecodable text yields ErrMalformedData.
func ParseEnvelope(text string) (*Envelope, error) {
	switch strings.TrimSpace(text) {
	case "", "null", "undefined":
		return nil, nil
	}
	var env Envelope
	if err := json.Unmarshal([]byte(text), &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedData, err)
	}
	return &env, nil
}

// CheckVersion returns ErrUnsupportedVersion when the envelope is older than
// OldestSupportedVersion or newer than CurrentVersion.
func (e *Envelope) CheckVersion() error {
	if e.Version < OldestSupportedVersion {
		return fmt.Errorf("%w: loaded data too old (%s < %s)", ErrUnsupportedVersion,
			FormatVersion(e.Version), FormatVersion(OldestSupportedVersion))
	}
	if e.Version > CurrentVersion {
		return fmt.Errorf("%w: loaded data too new (%s > %s)", ErrUnsupportedVersion,
			FormatVersion(e.Version), FormatVersion(CurrentVersion))
	}
	return nil
}

// Marshal encodes the envelope as indented JSON.
func (e *Envelope) Marshal() ([]byte, error) {
	return json.MarshalIndent(e, "", "  ")
}

// FormatVersion renders a version number without trailing zeros.
func FormatVersion(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ExportFileName returns the file name used when exporting at version v.
func ExportFileName(v float64) string {
	return "routinify-tasks-v" + FormatVersion(v) + ".json"
}
