package store

import "fmt"

const (
	insertTagSQL    = `INSERT OR IGNORE INTO tags (name) VALUES (?)`
	insertFileSQL   = `INSERT OR IGNORE INTO files (path) VALUES (?)`
	selectTagIDSQL  = `SELECT id FROM tags WHERE name = ?`
	selectFileIDSQL = `SELECT id FROM files WHERE path = ?`
	insertAssocSQL  = `INSERT OR IGNORE INTO file_tags (file_id, tag_id) VALUES (?, ?)`
	deleteAssocSQL  = `DELETE FROM file_tags WHERE file_id = ? AND tag_id = ?`
)

// Tag associates a tag name with a file path, creating the file and tag
// rows on first use. Repeating an existing association is a no-op. The
// whole write is one transaction: on error the store is unchanged.
func (s *Store) Tag(path, name string) error {
	if path == "" {
		return ErrEmptyPath
	}
	if name == "" {
		return ErrEmptyTag
	}

	insertTag, err := s.stmt(insertTagSQL)
	if err != nil {
		return err
	}
	insertFile, err := s.stmt(insertFileSQL)
	if err != nil {
		return err
	}
	selectTag, err := s.stmt(selectTagIDSQL)
	if err != nil {
		return err
	}
	selectFile, err := s.stmt(selectFileIDSQL)
	if err != nil {
		return err
	}
	insertAssoc, err := s.stmt(insertAssocSQL)
	if err != nil {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Stmt(insertTag).Exec(name); err != nil {
		return fmt.Errorf("inserting tag %q: %w", name, err)
	}
	if _, err := tx.Stmt(insertFile).Exec(path); err != nil {
		return fmt.Errorf("inserting file %q: %w", path, err)
	}

	var tagID, fileID int64
	if err := tx.Stmt(selectTag).QueryRow(name).Scan(&tagID); err != nil {
		return fmt.Errorf("resolving tag %q: %w", name, err)
	}
	if err := tx.Stmt(selectFile).QueryRow(path).Scan(&fileID); err != nil {
		return fmt.Errorf("resolving file %q: %w", path, err)
	}

	if _, err := tx.Stmt(insertAssoc).Exec(fileID, tagID); err != nil {
		return fmt.Errorf("inserting association: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing tag write: %w", err)
	}
	return nil
}

// Untag removes the association between a file and a tag, leaving the file
// and tag rows in place. It reports whether an association was removed.
func (s *Store) Untag(path, name string) (bool, error) {
	if path == "" {
		return false, ErrEmptyPath
	}
	if name == "" {
		return false, ErrEmptyTag
	}

	fileID, ok, err := s.lookupFileID(path)
	if err != nil || !ok {
		return false, err
	}
	tagID, ok, err := s.lookupTagID(name)
	if err != nil || !ok {
		return false, err
	}

	deleteAssoc, err := s.stmt(deleteAssocSQL)
	if err != nil {
		return false, err
	}
	res, err := deleteAssoc.Exec(fileID, tagID)
	if err != nil {
		return false, fmt.Errorf("deleting association: %w", err)
	}
	removed, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("deleting association: %w", err)
	}
	return removed > 0, nil
}
