package snapshots

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"tankwatch/internal/domain"
)

func samplePayload() domain.Payload {
	return domain.Payload{
		GeneratedAt: time.Date(2025, 3, 12, 12, 0, 0, 0, time.UTC),
		DataSources: map[string]string{"standings": "https://example.test/standings"},
		RefreshStatus: domain.RefreshStatus{
			Source:      domain.SourceLive,
			Provider:    "nbacdn",
			GeneratedAt: time.Date(2025, 3, 12, 12, 0, 0, 0, time.UTC),
		},
		Rows: []domain.Row{
			{
				Rank:           1,
				TeamID:         "was",
				TeamName:       "Washington Wizards",
				Wins:           9,
				Losses:         49,
				WinPct:         0.155,
				TotalRemaining: 3,
			},
		},
	}
}

func TestWriteThenLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "last_good.json")
	store := NewStore(path)

	if err := store.Write(samplePayload()); err != nil {
		t.Fatalf("Write: %v", err)
	}
	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.RefreshStatus.Provider != "nbacdn" {
		t.Fatalf("Provider = %q", loaded.RefreshStatus.Provider)
	}
	if len(loaded.Rows) != 1 || loaded.Rows[0].TeamID != "was" {
		t.Fatalf("Rows = %+v", loaded.Rows)
	}
	if !loaded.GeneratedAt.Equal(samplePayload().GeneratedAt) {
		t.Fatalf("GeneratedAt = %v", loaded.GeneratedAt)
	}
}

func TestLoadMissingSnapshot(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "missing.json"))
	if _, err := store.Load(); err == nil {
		t.Fatal("expected error for missing snapshot")
	}
}

func TestWriteFileAtomicSkipsIdenticalContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")
	data := []byte(`{"a":1}`)
	if err := WriteFileAtomic(path, data); err != nil {
		t.Fatalf("first write: %v", err)
	}
	before, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	time.Sleep(10 * time.Millisecond)
	if err := WriteFileAtomic(path, data); err != nil {
		t.Fatalf("second write: %v", err)
	}
	after, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if !after.ModTime().Equal(before.ModTime()) {
		t.Fatal("identical content should not rewrite the file")
	}
}

func TestWriteFileAtomicLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.json")
	if err := WriteFileAtomic(path, []byte(`{"a":1}`)); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := WriteFileAtomic(path, []byte(`{"a":2}`)); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("readdir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("directory has %d entries, want only the target file", len(entries))
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(got) != `{"a":2}` {
		t.Fatalf("content = %s", got)
	}
}
