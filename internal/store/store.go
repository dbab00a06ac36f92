// Package store persists the signed trial record as a single text line.
package store

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/LerianStudio/lib-commons/commons/log"
	cn "github.com/tektronix/lib-trial-license-go/constant"
	"github.com/tektronix/lib-trial-license-go/model"
)

// Store reads and writes the trial record file inside a directory
type Store struct {
	path   string
	logger log.Logger
}

// New creates a store for {dir}/key.txt, creating dir if needed. A directory
// that cannot be created is logged; the failure surfaces later as a missing
// record.
func New(dir string, logger log.Logger) *Store {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		logger.Warnf("Could not create trial data directory %s: %v", dir, err)
	}

	return &Store{
		path:   filepath.Join(dir, cn.KeyFileName),
		logger: logger,
	}
}

// Path returns the record file location
func (s *Store) Path() string {
	return s.path
}

// Exists reports whether the record file is present
func (s *Store) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Read returns the first line of the record file. ok is false when the file
// cannot be opened or read; an empty file yields ("", true).
func (s *Store) Read() (string, bool) {
	f, err := os.Open(s.path)
	if err != nil {
		s.logger.Debugf("Trial record not readable: %v", err)
		return "", false
	}
	defer f.Close()

	line, err := bufio.NewReader(f).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		s.logger.Debugf("Trial record not readable: %v", err)
		return "", false
	}

	return strings.TrimRight(line, "\r\n"), true
}

// Write replaces the file content with the serialized record. Failures are
// logged and otherwise ignored.
func (s *Store) Write(rec model.TrialRecord) {
	if err := os.WriteFile(s.path, []byte(rec.String()), 0o644); err != nil {
		s.logger.Errorf("Could not persist trial record: %v", err)
	}
}

// Split returns the signature of a record line and the message it signs,
// exactly as written in the file.
func Split(line string) (signature, message string, err error) {
	fields := strings.Split(line, cn.RecordSeparator)
	if len(fields) != cn.RecordFieldCount {
		return "", "", fmt.Errorf("record has %d fields: %w", len(fields), cn.ErrMalformedRecord)
	}

	return fields[0], fields[1] + cn.RecordSeparator + fields[2], nil
}

// Parse splits a record line into its signature and timestamps.
func Parse(line string) (model.TrialRecord, error) {
	signature, message, err := Split(line)
	if err != nil {
		return model.TrialRecord{}, err
	}

	start, last, _ := strings.Cut(message, cn.RecordSeparator)

	trialStart, err := model.ParseTimestamp(start)
	if err != nil {
		return model.TrialRecord{}, fmt.Errorf("trial start: %w", cn.ErrMalformedTimestamp)
	}

	lastSeen, err := model.ParseTimestamp(last)
	if err != nil {
		return model.TrialRecord{}, fmt.Errorf("last seen: %w", cn.ErrMalformedTimestamp)
	}

	return model.TrialRecord{
		Signature:  signature,
		TrialStart: trialStart,
		LastSeen:   lastSeen,
	}, nil
}
