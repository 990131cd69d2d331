// Package audit provides an append-only YAML ledger of store operations.
// Every commit and revert leaves one entry; the ledger is advisory and a
// write failure never fails the operation that produced it.
package audit

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// LedgerFileName is the name of the ledger file.
	LedgerFileName = "ledger.yaml"
	// BackupSuffix is the suffix for backup files when corruption is detected.
	BackupSuffix = ".backup"
)

// Operation names for ledger entries.
const (
	OpCommit = "commit"
	OpRevert = "revert"
)

// Entry records a single store operation.
type Entry struct {
	// Timestamp is when the operation ran (RFC3339 in YAML).
	Timestamp time.Time `yaml:"timestamp"`
	// Op is the operation name: commit or revert.
	Op string `yaml:"op"`
	// ArtifactID identifies the artifact the operation touched.
	ArtifactID string `yaml:"artifact_id"`
	// Version is the version number the operation produced (0 on failure).
	Version int `yaml:"version,omitempty"`
	// TargetVersion is the revert target (revert entries only).
	TargetVersion int `yaml:"target_version,omitempty"`
	// Author is who requested the operation.
	Author string `yaml:"author,omitempty"`
	// Outcome is "ok" or the error string.
	Outcome string `yaml:"outcome"`
}

// Ledger is the YAML file containing all entries, oldest first.
type Ledger struct {
	Entries []Entry `yaml:"entries"`
}

// Load reads the ledger from the given state directory. Returns an empty
// ledger if the file doesn't exist. A corrupted file is backed up and a
// fresh ledger returned.
func Load(stateDir string) (*Ledger, error) {
	path := filepath.Join(stateDir, LedgerFileName)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Ledger{Entries: []Entry{}}, nil
		}
		return nil, fmt.Errorf("reading ledger file: %w", err)
	}

	var ledger Ledger
	if err := yaml.Unmarshal(data, &ledger); err != nil {
		if backupErr := backupCorruptedFile(path); backupErr != nil {
			return nil, fmt.Errorf("backing up corrupted ledger: %w", backupErr)
		}
		return &Ledger{Entries: []Entry{}}, nil
	}

	if ledger.Entries == nil {
		ledger.Entries = []Entry{}
	}
	return &ledger, nil
}

// backupCorruptedFile renames a corrupted file with a .backup suffix.
func backupCorruptedFile(path string) error {
	if err := os.Rename(path, path+BackupSuffix); err != nil {
		return fmt.Errorf("renaming corrupted file to backup: %w", err)
	}
	return nil
}

// Save writes the ledger atomically, creating the state directory if needed.
func Save(stateDir string, ledger *Ledger) error {
	if err := os.MkdirAll(stateDir, 0755); err != nil {
		return fmt.Errorf("creating state directory: %w", err)
	}

	data, err := yaml.Marshal(ledger)
	if err != nil {
		return fmt.Errorf("marshaling ledger: %w", err)
	}

	path := filepath.Join(stateDir, LedgerFileName)
	tmpPath := path + ".tmp"

	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("writing temp ledger file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming temp ledger file: %w", err)
	}
	return nil
}
