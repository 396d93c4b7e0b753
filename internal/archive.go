package internal

import (
	"database/sql"
	"strings"

	_ "modernc.org/sqlite"
)

// Archive maintains a searchable SQLite index over the persisted
// transcripts. The index is derived data: it can always be rebuilt from
// the history directory.
type Archive struct {
	db *sql.DB
}

const archiveSchema = `
CREATE TABLE IF NOT EXISTS messages (
	thread_id TEXT NOT NULL,
	seq       INTEGER NOT NULL,
	role      TEXT NOT NULL,
	content   TEXT NOT NULL,
	PRIMARY KEY (thread_id, seq)
)`

// OpenArchive opens (creating if needed) the index at path
func OpenArchive(path string) (*Archive, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, &ArchiveError{Op: "open", Err: err}
	}
	if _, err := db.Exec(archiveSchema); err != nil {
		_ = db.Close()
		return nil, &ArchiveError{Op: "open", Err: err}
	}
	return &Archive{db: db}, nil
}

// Close releases the underlying database
func (a *Archive) Close() error {
	return a.db.Close()
}

// IndexThread replaces the index rows for one thread with the given
// message sequence
func (a *Archive) IndexThread(threadID string, messages []Message) error {
	tx, err := a.db.Begin()
	if err != nil {
		return &ArchiveError{Op: "index", Err: err}
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec("DELETE FROM messages WHERE thread_id = ?", threadID); err != nil {
		return &ArchiveError{Op: "index", Err: err}
	}

	stmt, err := tx.Prepare("INSERT INTO messages (thread_id, seq, role, content) VALUES (?, ?, ?, ?)")
	if err != nil {
		return &ArchiveError{Op: "index", Err: err}
	}
	defer func() { _ = stmt.Close() }()

	for i, msg := range messages {
		if _, err := stmt.Exec(threadID, i, string(msg.Role), msg.Content); err != nil {
			return &ArchiveError{Op: "index", Err: err}
		}
	}

	if err := tx.Commit(); err != nil {
		return &ArchiveError{Op: "index", Err: err}
	}
	return nil
}

// Rebuild re-indexes every persisted thread and returns how many threads
// were indexed. Threads that fail to index are logged and skipped.
func (a *Archive) Rebuild(h *History, r *Registry) (int, error) {
	if _, err := a.db.Exec("DELETE FROM messages"); err != nil {
		return 0, &ArchiveError{Op: "index", Err: err}
	}

	indexed := 0
	for _, threadID := range r.List() {
		if err := a.IndexThread(threadID, h.Load(threadID)); err != nil {
			LogWarn("Failed to index thread %s: %v", threadID, err)
			continue
		}
		indexed++
	}
	return indexed, nil
}

// SearchResult is one message matching a search term
type SearchResult struct {
	ThreadID string
	Seq      int
	Role     Role
	Content  string
}

// Search returns every indexed message whose content contains the term,
// ordered by thread then position
func (a *Archive) Search(term string) ([]SearchResult, error) {
	pattern := "%" + escapeLike(term) + "%"
	rows, err := a.db.Query(
		`SELECT thread_id, seq, role, content FROM messages
		 WHERE content LIKE ? ESCAPE '\'
		 ORDER BY thread_id, seq`, pattern)
	if err != nil {
		return nil, &ArchiveError{Op: "search", Err: err}
	}
	defer func() { _ = rows.Close() }()

	var results []SearchResult
	for rows.Next() {
		var res SearchResult
		var role string
		if err := rows.Scan(&res.ThreadID, &res.Seq, &role, &res.Content); err != nil {
			return nil, &ArchiveError{Op: "search", Err: err}
		}
		res.Role = Role(role)
		results = append(results, res)
	}
	if err := rows.Err(); err != nil {
		return nil, &ArchiveError{Op: "search", Err: err}
	}
	return results, nil
}

// Stats returns the number of indexed threads and messages
func (a *Archive) Stats() (threads, messages int, err error) {
	row := a.db.QueryRow("SELECT COUNT(DISTINCT thread_id), COUNT(*) FROM messages")
	if err := row.Scan(&threads, &messages); err != nil {
		return 0, 0, &ArchiveError{Op: "search", Err: err}
	}
	return threads, messages, nil
}

// escapeLike escapes LIKE wildcards in a user-supplied term
func escapeLike(term string) string {
	term = strings.ReplaceAll(term, `\`, `\\`)
	term = strings.ReplaceAll(term, "%", `\%`)
	term = strings.ReplaceAll(term, "_", `\_`)
	return term
}
