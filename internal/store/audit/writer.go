package audit

import (
	"fmt"
	"os"
	"time"
)

// Writer appends ledger entries with optional pruning.
type Writer struct {
	// StateDir is the directory containing the ledger file.
	StateDir string
	// MaxEntries is the maximum number of entries to retain (0 = unlimited).
	MaxEntries int
}

// NewWriter creates a new ledger writer.
func NewWriter(stateDir string, maxEntries int) *Writer {
	return &Writer{StateDir: stateDir, MaxEntries: maxEntries}
}

// Record adds a new entry to the ledger. Errors are non-fatal: they are
// written to stderr and never fail the store operation being recorded.
func (w *Writer) Record(entry Entry) {
	if err := w.record(entry); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to write audit ledger: %v\n", err)
	}
}

func (w *Writer) record(entry Entry) error {
	ledger, err := Load(w.StateDir)
	if err != nil {
		return fmt.Errorf("loading ledger: %w", err)
	}

	ledger.Entries = append(ledger.Entries, entry)

	// Prune oldest entries if over limit
	if w.MaxEntries > 0 && len(ledger.Entries) > w.MaxEntries {
		excess := len(ledger.Entries) - w.MaxEntries
		ledger.Entries = ledger.Entries[excess:]
	}

	if err := Save(w.StateDir, ledger); err != nil {
		return fmt.Errorf("saving ledger: %w", err)
	}
	return nil
}

// RecordCommit logs a commit outcome.
func (w *Writer) RecordCommit(artifactID string, version int, author string, outcome string) {
	w.Record(Entry{
		Timestamp:  time.Now(),
		Op:         OpCommit,
		ArtifactID: artifactID,
		Version:    version,
		Author:     author,
		Outcome:    outcome,
	})
}

// RecordRevert logs a revert outcome.
func (w *Writer) RecordRevert(artifactID string, version, target int, author string, outcome string) {
	w.Record(Entry{
		Timestamp:     time.Now(),
		Op:            OpRevert,
		ArtifactID:    artifactID,
		Version:       version,
		TargetVersion: target,
		Author:        author,
		Outcome:       outcome,
	})
}
