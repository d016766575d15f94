package storage

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "site.db"))
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

func TestStoreVisits(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	now := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)

	visits := []Visit{
		{HashedIP: "aaa", Path: "/", Timestamp: now.Add(-time.Hour)},
		{HashedIP: "aaa", Path: "/cv", Timestamp: now.Add(-2 * time.Hour)},
		{HashedIP: "bbb", Path: "/", Timestamp: now.AddDate(0, 0, -3)},
		{HashedIP: "ccc", Path: "/projects", Timestamp: now.AddDate(0, 0, -20)},
	}
	for _, v := range visits {
		if err := st.RecordVisit(ctx, v); err != nil {
			t.Fatalf("record failed: %v", err)
		}
	}

	stats, err := st.Stats(ctx, now)
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	if stats.TotalVisitors != 4 {
		t.Errorf("expected 4 visitors, got %d", stats.TotalVisitors)
	}
	if stats.UniqueVisitors != 3 {
		t.Errorf("expected 3 unique visitors, got %d", stats.UniqueVisitors)
	}
	if stats.VisitorsToday != 2 {
		t.Errorf("expected 2 visitors today, got %d", stats.VisitorsToday)
	}
	if stats.VisitorsThisWeek != 3 {
		t.Errorf("expected 3 visitors this week, got %d", stats.VisitorsThisWeek)
	}
	if len(stats.TopPaths) == 0 || stats.TopPaths[0].Path != "/" || stats.TopPaths[0].Views != 2 {
		t.Errorf("unexpected top paths %+v", stats.TopPaths)
	}

}

func TestStoreCleanupVisits(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	now := time.Now()

	st.RecordVisit(ctx, Visit{HashedIP: "old", Path: "/", Timestamp: now.AddDate(-2, 0, 0)})
	st.RecordVisit(ctx, Visit{HashedIP: "new", Path: "/", Timestamp: now})

	removed, err := st.CleanupVisits(ctx, now.AddDate(-1, 0, 0))
	if err != nil {
		t.Fatalf("cleanup failed: %v", err)
	}
	if removed != 1 {
		t.Errorf("expected 1 removed, got %d", removed)
	}

	stats, _ := st.Stats(ctx, now)
	if stats.TotalVisitors != 1 {
		t.Errorf("expected 1 remaining, got %d", stats.TotalVisitors)
	}
}

func TestStoreCV(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	if _, err := st.LatestCV(ctx); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	first, err := st.SaveCV(ctx, "CV.pdf", []byte("%PDF-1.4 old"), at)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if first.ID == "" || first.Size != 12 {
		t.Errorf("unexpected upload %+v", first)
	}

	second, err := st.SaveCV(ctx, "CV.pdf", []byte("%PDF-1.4 new"), at.Add(time.Millisecond))
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	latest, err := st.LatestCV(ctx)
	if err != nil {
		t.Fatalf("latest failed: %v", err)
	}
	if latest.ID != second.ID || !bytes.Equal(latest.Content, []byte("%PDF-1.4 new")) {
		t.Errorf("expected newest upload, got %+v", latest)
	}
	if !latest.UploadedAt.Equal(at.Add(time.Millisecond)) {
		t.Errorf("unexpected upload time %v", latest.UploadedAt)
	}

	stats, err := st.Stats(ctx, at)
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	if stats.CVUploads != 2 {
		t.Errorf("expected 2 uploads, got %d", stats.CVUploads)
	}
}
