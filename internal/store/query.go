package store

import (
	"database/sql"
	"fmt"
	"strings"
)

const (
	filesTaggedSQL = `
		SELECT DISTINCT f.path
		FROM files f
		JOIN file_tags ft ON ft.file_id = f.id
		JOIN tags t ON t.id = ft.tag_id
		WHERE t.name = ?
		ORDER BY f.path`

	allFilesSQL = `SELECT path FROM files ORDER BY path`

	tagsOfSQL = `
		SELECT DISTINCT t.name
		FROM tags t
		JOIN file_tags ft ON ft.tag_id = t.id
		JOIN files f ON f.id = ft.file_id
		WHERE f.path = ?
		ORDER BY t.name`

	allTagsSQL = `SELECT name FROM tags ORDER BY name`
)

// FilesTagged streams the paths of files carrying the named tag, in
// ascending path order. An unknown tag yields an empty stream.
func (s *Store) FilesTagged(name string) (*Stream, error) {
	if name == "" {
		return nil, ErrEmptyTag
	}
	return s.queryStream(filesTaggedSQL, name)
}

// FilesTaggedAny streams the paths of files carrying at least one of the
// named tags, deduplicated, in ascending path order. Names are resolved to
// ids first; unknown names are dropped, and if none resolve the stream is
// empty without another round trip to the database.
func (s *Store) FilesTaggedAny(names []string) (*Stream, error) {
	ids := make([]interface{}, 0, len(names))
	for _, name := range names {
		if name == "" {
			return nil, ErrEmptyTag
		}
		id, ok, err := s.lookupTagID(name)
		if err != nil {
			return nil, err
		}
		if ok {
			ids = append(ids, id)
		}
	}

	if len(ids) == 0 {
		return emptyStream(), nil
	}

	query := fmt.Sprintf(`
		SELECT DISTINCT f.path
		FROM files f
		JOIN file_tags ft ON ft.file_id = f.id
		WHERE ft.tag_id IN (%s)
		ORDER BY f.path`, placeholders(len(ids)))
	return s.queryStream(query, ids...)
}

// AllFiles streams every file path in the store in ascending order.
func (s *Store) AllFiles() (*Stream, error) {
	return s.queryStream(allFilesSQL)
}

// TagsOf streams the tag names attached to a file in ascending order. An
// unknown file yields an empty stream.
func (s *Store) TagsOf(path string) (*Stream, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	return s.queryStream(tagsOfSQL, path)
}

// AllTags streams every tag name in the store in ascending order.
func (s *Store) AllTags() (*Stream, error) {
	return s.queryStream(allTagsSQL)
}

// Filter dispatches on the number of tag names: none streams all files,
// one streams files carrying that tag, several streams the union.
func (s *Store) Filter(names []string) (*Stream, error) {
	switch len(names) {
	case 0:
		return s.AllFiles()
	case 1:
		return s.FilesTagged(names[0])
	default:
		return s.FilesTaggedAny(names)
	}
}

// queryStream runs a single-column query and wraps the rows in a Stream.
func (s *Store) queryStream(query string, args ...interface{}) (*Stream, error) {
	prepared, err := s.stmt(query)
	if err != nil {
		return nil, err
	}
	rows, err := prepared.Query(args...)
	if err != nil {
		return nil, fmt.Errorf("querying store: %w", err)
	}
	return newStream(rows, s.showHidden), nil
}

// lookupTagID resolves a tag name to its surrogate id.
func (s *Store) lookupTagID(name string) (int64, bool, error) {
	selectTag, err := s.stmt(selectTagIDSQL)
	if err != nil {
		return 0, false, err
	}
	var id int64
	err = selectTag.QueryRow(name).Scan(&id)
	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("looking up tag %q: %w", name, err)
	}
	return id, true, nil
}

// lookupFileID resolves a file path to its surrogate id.
func (s *Store) lookupFileID(path string) (int64, bool, error) {
	selectFile, err := s.stmt(selectFileIDSQL)
	if err != nil {
		return 0, false, err
	}
	var id int64
	err = selectFile.QueryRow(path).Scan(&id)
	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("looking up file %q: %w", path, err)
	}
	return id, true, nil
}

// placeholders returns n comma-separated SQL placeholders.
func placeholders(n int) string {
	marks := make([]string, n)
	for i := range marks {
		marks[i] = "?"
	}
	return strings.Join(marks, ", ")
}
