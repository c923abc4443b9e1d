package store

import "fmt"

// PruneResult reports the rows removed by Prune.
type PruneResult struct {
	Files int
	Tags  int
}

// Prune removes file and tag rows that no longer have any association, in
// one transaction. Untag never removes them itself, so orphans accumulate
// until a prune. Surrogate ids of pruned rows are never reused.
func (s *Store) Prune() (PruneResult, error) {
	var result PruneResult

	tx, err := s.db.Begin()
	if err != nil {
		return result, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	files, err := tx.Exec(`DELETE FROM files WHERE id NOT IN (SELECT file_id FROM file_tags)`)
	if err != nil {
		return result, fmt.Errorf("pruning files: %w", err)
	}
	tags, err := tx.Exec(`DELETE FROM tags WHERE id NOT IN (SELECT tag_id FROM file_tags)`)
	if err != nil {
		return result, fmt.Errorf("pruning tags: %w", err)
	}

	prunedFiles, err := files.RowsAffected()
	if err != nil {
		return result, fmt.Errorf("pruning files: %w", err)
	}
	prunedTags, err := tags.RowsAffected()
	if err != nil {
		return result, fmt.Errorf("pruning tags: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return result, fmt.Errorf("committing prune: %w", err)
	}

	result.Files = int(prunedFiles)
	result.Tags = int(prunedTags)
	return result, nil
}

// Stats describes the store's contents.
type Stats struct {
	Path         string
	Files        int
	Tags         int
	Associations int
}

// Stats counts the files, tags, and associations in the store.
func (s *Store) Stats() (Stats, error) {
	stats := Stats{Path: s.path}

	if err := s.db.QueryRow(`SELECT COUNT(*) FROM files`).Scan(&stats.Files); err != nil {
		return Stats{}, fmt.Errorf("counting files: %w", err)
	}
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM tags`).Scan(&stats.Tags); err != nil {
		return Stats{}, fmt.Errorf("counting tags: %w", err)
	}
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM file_tags`).Scan(&stats.Associations); err != nil {
		return Stats{}, fmt.Errorf("counting associations: %w", err)
	}

	return stats, nil
}
