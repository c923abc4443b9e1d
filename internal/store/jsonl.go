package store

import (
	"bufio"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
)

// MaxJSONLLineCapacity is the maximum buffer size for reading JSONL lines (1MB per line).
const MaxJSONLLineCapacity = 1024 * 1024

// FileTags pairs a file path with its sorted tag names. It is the record
// type of the JSONL export format.
type FileTags struct {
	Path string   `json:"path"`
	Tags []string `json:"tags"`
}

// ExportJSONL writes every file and its tags as one JSON object per line,
// ordered by path. Hidden entries are always included: an export is a full
// copy of the store. It returns the number of files written.
func (s *Store) ExportJSONL(w io.Writer) (int, error) {
	rows, err := s.db.Query(`
		SELECT f.path, t.name
		FROM files f
		LEFT JOIN file_tags ft ON ft.file_id = f.id
		LEFT JOIN tags t ON t.id = ft.tag_id
		ORDER BY f.path, t.name`)
	if err != nil {
		return 0, fmt.Errorf("querying associations: %w", err)
	}
	defer rows.Close()

	enc := json.NewEncoder(w)
	count := 0
	var current FileTags

	flush := func() error {
		if current.Path == "" {
			return nil
		}
		count++
		return enc.Encode(current)
	}

	for rows.Next() {
		var path string
		var name sql.NullString
		if err := rows.Scan(&path, &name); err != nil {
			return count, fmt.Errorf("scanning association: %w", err)
		}
		if path != current.Path {
			if err := flush(); err != nil {
				return count, fmt.Errorf("writing export: %w", err)
			}
			current = FileTags{Path: path}
		}
		if name.Valid {
			current.Tags = append(current.Tags, name.String)
		}
	}
	if err := rows.Err(); err != nil {
		return count, fmt.Errorf("reading associations: %w", err)
	}

	if err := flush(); err != nil {
		return count, fmt.Errorf("writing export: %w", err)
	}
	return count, nil
}

// ImportJSONL replays an export produced by ExportJSONL, tagging each file
// with each listed tag. Existing associations are untouched, so importing
// into a non-empty store merges. Files with no tags create no rows; orphans
// do not round-trip. It returns the number of records processed.
func (s *Store) ImportJSONL(r io.Reader) (int, error) {
	scanner := bufio.NewScanner(r)

	// Increase buffer size for long lines
	buf := make([]byte, MaxJSONLLineCapacity)
	scanner.Buffer(buf, MaxJSONLLineCapacity)

	count := 0
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue // Skip empty lines
		}

		var record FileTags
		if err := json.Unmarshal(line, &record); err != nil {
			return count, fmt.Errorf("parsing line %d: %w", lineNum, err)
		}
		for _, tag := range record.Tags {
			if err := s.Tag(record.Path, tag); err != nil {
				return count, fmt.Errorf("line %d: %w", lineNum, err)
			}
		}
		count++
	}

	if err := scanner.Err(); err != nil {
		return count, fmt.Errorf("reading import: %w", err)
	}
	return count, nil
}
