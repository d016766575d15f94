// Package storage keeps the site's mutable state in SQLite: privacy-conscious
// visitor records and uploaded CV files.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

var ErrNotFound = errors.New("storage: not found")

const schema = `
CREATE TABLE IF NOT EXISTS visitors (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	hashed_ip TEXT NOT NULL,  -- never the raw address
	user_agent TEXT,
	path TEXT,
	visited_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS visitors_visited_at ON visitors (visited_at);

CREATE TABLE IF NOT EXISTS cv_uploads (
	id TEXT PRIMARY KEY,
	filename TEXT NOT NULL,
	content BLOB NOT NULL,
	size INTEGER NOT NULL,
	uploaded_at INTEGER NOT NULL
);
`

// Visit is one tracked page view.
type Visit struct {
	HashedIP  string    `json:"hashed_ip"`
	UserAgent string    `json:"user_agent"`
	Path      string    `json:"path"`
	Timestamp time.Time `json:"timestamp"`
}

type PathStat struct {
	Path  string `json:"path"`
	Views int64  `json:"views"`
}

// Stats aggregates visits. No individual visitor data is included.
type Stats struct {
	TotalVisitors    int64      `json:"total_visitors"`
	UniqueVisitors   int64      `json:"unique_visitors"`
	VisitorsToday    int64      `json:"visitors_today"`
	VisitorsThisWeek int64      `json:"visitors_this_week"`
	TopPaths         []PathStat `json:"top_paths"`
	CVUploads        int64      `json:"cv_uploads"`
}

// Upload is a stored CV file. Content is only populated by LatestCV.
type Upload struct {
	ID         string    `json:"id"`
	Filename   string    `json:"filename"`
	Size       int64     `json:"size"`
	UploadedAt time.Time `json:"uploaded_at"`
	Content    []byte    `json:"-"`
}

type Store struct {
	db *sql.DB
}

// Open opens (or creates) the database at path and applies the schema.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}
	// Writes from the tracking goroutines share one connection.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("error creating schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) RecordVisit(ctx context.Context, v Visit) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO visitors (hashed_ip, user_agent, path, visited_at)
		VALUES (?, ?, ?, ?)
	`, v.HashedIP, v.UserAgent, v.Path, v.Timestamp.Unix())
	if err != nil {
		return fmt.Errorf("error recording visitor: %w", err)
	}
	return nil
}

// CleanupVisits deletes visits recorded before cutoff and reports how many
// were removed.
func (s *Store) CleanupVisits(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := s.db.ExecContext(ctx, `DELETE FROM visitors WHERE visited_at < ?`, cutoff.Unix())
	if err != nil {
		return 0, fmt.Errorf("error cleaning up visitor data: %w", err)
	}
	return result.RowsAffected()
}

// Stats computes visitor aggregates relative to now.
func (s *Store) Stats(ctx context.Context, now time.Time) (*Stats, error) {
	stats := &Stats{TopPaths: []PathStat{}}

	y, m, d := now.Date()
	startOfDay := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	weekAgo := now.AddDate(0, 0, -7)

	counts := []struct {
		query string
		args  []any
		dest  *int64
	}{
		{"SELECT COUNT(*) FROM visitors", nil, &stats.TotalVisitors},
		{"SELECT COUNT(DISTINCT hashed_ip) FROM visitors", nil, &stats.UniqueVisitors},
		{"SELECT COUNT(*) FROM visitors WHERE visited_at >= ?", []any{startOfDay.Unix()}, &stats.VisitorsToday},
		{"SELECT COUNT(*) FROM visitors WHERE visited_at >= ?", []any{weekAgo.Unix()}, &stats.VisitorsThisWeek},
		{"SELECT COUNT(*) FROM cv_uploads", nil, &stats.CVUploads},
	}
	for _, c := range counts {
		if err := s.db.QueryRowContext(ctx, c.query, c.args...).Scan(c.dest); err != nil {
			return nil, err
		}
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT path, COUNT(*) AS views
		FROM visitors
		GROUP BY path
		ORDER BY views DESC, path ASC
		LIMIT 10
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var p PathStat
		if err := rows.Scan(&p.Path, &p.Views); err != nil {
			return nil, err
		}
		stats.TopPaths = append(stats.TopPaths, p)
	}
	return stats, rows.Err()
}

// SaveCV stores a new CV upload. The newest upload is the one served.
func (s *Store) SaveCV(ctx context.Context, filename string, content []byte, at time.Time) (Upload, error) {
	up := Upload{
		ID:         uuid.NewString(),
		Filename:   filename,
		Size:       int64(len(content)),
		UploadedAt: at.UTC(),
	}
	// Nanoseconds keep uploads in the same second ordered.
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO cv_uploads (id, filename, content, size, uploaded_at)
		VALUES (?, ?, ?, ?, ?)
	`, up.ID, up.Filename, content, up.Size, at.UnixNano())
	if err != nil {
		return Upload{}, fmt.Errorf("error saving CV: %w", err)
	}
	return up, nil
}

// LatestCV returns the most recent upload, or ErrNotFound.
func (s *Store) LatestCV(ctx context.Context) (*Upload, error) {
	var up Upload
	var at int64
	err := s.db.QueryRowContext(ctx, `
		SELECT id, filename, content, size, uploaded_at
		FROM cv_uploads
		ORDER BY uploaded_at DESC
		LIMIT 1
	`).Scan(&up.ID, &up.Filename, &up.Content, &up.Size, &at)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	up.UploadedAt = time.Unix(0, at).UTC()
	return &up, nil
}
