package history

import (
	"context"
	"testing"
	"time"

	"mediasift/internal/config"
	"mediasift/internal/sift"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default()
	base := t.TempDir()
	cfg.Paths.StateDir = base
	cfg.Paths.LogDir = base
	return &cfg
}

func TestStoreRecordAndRecent(t *testing.T) {
	store, err := Open(testConfig(t))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	first := Run{
		Mode:      "extract",
		Root:      "/media/library",
		StartedAt: time.Now().Add(-2 * time.Minute),
		Summary:   sift.Summary{Scanned: 4, Converted: 2, Skipped: 1, NoMatch: 1},
	}
	recorded, err := store.Record(ctx, first)
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if recorded.ID == "" {
		t.Fatal("expected generated run ID")
	}

	second := Run{
		Mode:      "profiles",
		Root:      "/media/library",
		StartedAt: time.Now(),
		Summary:   sift.Summary{Scanned: 3, Flagged: 1, NoMatch: 2},
	}
	if _, err := store.Record(ctx, second); err != nil {
		t.Fatalf("Record second: %v", err)
	}

	runs, err := store.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if runs[0].Mode != "profiles" {
		t.Fatalf("expected newest run first, got mode %q", runs[0].Mode)
	}
	if runs[1].Summary.Converted != 2 {
		t.Fatalf("expected converted counter to survive roundtrip, got %d", runs[1].Summary.Converted)
	}
	if runs[1].StartedAt.IsZero() {
		t.Fatal("expected parsed start timestamp")
	}
}

func TestStoreRecentLimit(t *testing.T) {
	store, err := Open(testConfig(t))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	for i := 0; i < 5; i++ {
		run := Run{
			Mode:      "extract",
			Root:      "/media/library",
			StartedAt: time.Now().Add(time.Duration(i) * time.Second),
		}
		if _, err := store.Record(ctx, run); err != nil {
			t.Fatalf("Record %d: %v", i, err)
		}
	}

	runs, err := store.Recent(ctx, 3)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("expected limit to cap results at 3, got %d", len(runs))
	}
}

func TestStoreReopenKeepsSchema(t *testing.T) {
	cfg := testConfig(t)

	store, err := Open(cfg)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if _, err := store.Record(context.Background(), Run{Mode: "extract", Root: "/a", StartedAt: time.Now()}); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	reopened, err := Open(cfg)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()

	runs, err := reopened.Recent(context.Background(), 10)
	if err != nil {
		t.Fatalf("Recent after reopen: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run after reopen, got %d", len(runs))
	}
}
