package logbook

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestTailReturnsRecentLinesAndTotal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.log")
	book, err := New(path)
	if err != nil {
		t.Fatalf("new logbook: %v", err)
	}
	defer book.Close()

	for i := 0; i < 5; i++ {
		book.Info("entry-%d", i)
	}
	lines, total := book.Tail(3)
	if total != 5 {
		t.Fatalf("total lines = %d, want 5", total)
	}
	if len(lines) != 3 {
		t.Fatalf("len(lines) = %d, want 3", len(lines))
	}
	for idx, want := range []string{"entry-2", "entry-3", "entry-4"} {
		if !strings.Contains(lines[idx], want) {
			t.Fatalf("line %d = %q, missing %s", idx, lines[idx], want)
		}
	}
}

func TestEntriesReachTheFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.log")
	book, err := New(path)
	if err != nil {
		t.Fatalf("new logbook: %v", err)
	}
	book.Warn("fallback dataset in use")
	if err := book.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read journal: %v", err)
	}
	if !strings.Contains(string(data), "WARN") || !strings.Contains(string(data), "fallback dataset in use") {
		t.Fatalf("journal file missing entry: %q", string(data))
	}
}

func TestRingStaysBounded(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.log")
	book, err := New(path)
	if err != nil {
		t.Fatalf("new logbook: %v", err)
	}
	defer book.Close()

	for i := 0; i < ringSize+50; i++ {
		book.Info("entry-%d", i)
	}
	lines, total := book.Tail(ringSize * 2)
	if total != ringSize+50 {
		t.Fatalf("total = %d, want %d", total, ringSize+50)
	}
	if len(lines) != ringSize {
		t.Fatalf("ring length = %d, want %d", len(lines), ringSize)
	}
	if !strings.Contains(lines[len(lines)-1], "entry-249") {
		t.Fatalf("ring must keep the newest entries, last = %q", lines[len(lines)-1])
	}
}

func TestNilLogbookIsSafe(t *testing.T) {
	var book *Logbook
	book.Info("ignored")
	if lines, total := book.Tail(5); lines != nil || total != 0 {
		t.Fatalf("nil logbook must be inert")
	}
}
