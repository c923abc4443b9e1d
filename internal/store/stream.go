package store

import (
	"database/sql"
	"strings"
)

// hiddenPrefix marks values suppressed from query results by default.
const hiddenPrefix = "."

// Stream is a lazy cursor over single-column query results. Values are
// pulled from the database one row at a time; dot-prefixed values are
// skipped unless the store shows hidden entries. A fully drained stream
// closes itself; abandon one early with Close.
type Stream struct {
	rows       *sql.Rows
	showHidden bool
	err        error
}

func newStream(rows *sql.Rows, showHidden bool) *Stream {
	return &Stream{rows: rows, showHidden: showHidden}
}

// emptyStream returns an already exhausted stream.
func emptyStream() *Stream {
	return &Stream{}
}

// Next returns the next visible value. It reports false once the stream is
// exhausted or has failed; check Err after the loop.
func (s *Stream) Next() (string, bool) {
	if s.rows == nil {
		return "", false
	}

	for s.rows.Next() {
		var value string
		if err := s.rows.Scan(&value); err != nil {
			s.err = err
			s.Close()
			return "", false
		}
		if !s.showHidden && strings.HasPrefix(value, hiddenPrefix) {
			continue
		}
		return value, true
	}

	if err := s.rows.Err(); err != nil {
		s.err = err
	}
	s.Close()
	return "", false
}

// Err returns the first error encountered while streaming.
func (s *Stream) Err() error {
	return s.err
}

// Close releases the underlying cursor. It is safe to call more than once
// and after exhaustion.
func (s *Stream) Close() error {
	if s.rows == nil {
		return nil
	}
	rows := s.rows
	s.rows = nil
	return rows.Close()
}

// Collect drains the stream into a slice and closes it.
func (s *Stream) Collect() ([]string, error) {
	defer s.Close()

	var values []string
	for {
		value, ok := s.Next()
		if !ok {
			break
		}
		values = append(values, value)
	}
	return values, s.Err()
}
