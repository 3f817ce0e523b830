package leads

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shubhsinghsk/AYLB/internal/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "contacts.csv"))
}

func TestEnsureInitialized_CreatesHeader(t *testing.T) {
	store := newTestStore(t)

	if err := store.EnsureInitialized(); err != nil {
		t.Fatalf("EnsureInitialized failed: %v", err)
	}

	rows, err := store.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected header row only, got %d rows", len(rows))
	}

	want := "timestamp,name,company,email,phone,city,service,message"
	if got := strings.Join(rows[0], ","); got != want {
		t.Errorf("header = %q, want %q", got, want)
	}
}

func TestEnsureInitialized_Idempotent(t *testing.T) {
	store := newTestStore(t)

	if err := store.EnsureInitialized(); err != nil {
		t.Fatalf("first EnsureInitialized failed: %v", err)
	}
	if err := store.Append(domain.Lead{Timestamp: "2024-01-01T00:00:00Z", Name: "Asha", Email: "a@x.com", Phone: "9999999999"}); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	// A second initialization must leave the header and prior rows untouched.
	if err := store.EnsureInitialized(); err != nil {
		t.Fatalf("second EnsureInitialized failed: %v", err)
	}

	rows, err := store.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected header + 1 row, got %d rows", len(rows))
	}
	if rows[1][1] != "Asha" {
		t.Errorf("prior row lost after re-initialization: %v", rows[1])
	}
}

func TestAppend_RoundTrip(t *testing.T) {
	store := newTestStore(t)
	if err := store.EnsureInitialized(); err != nil {
		t.Fatalf("EnsureInitialized failed: %v", err)
	}

	leadsIn := []domain.Lead{
		{Timestamp: "2024-01-01T00:00:00Z", Name: "Asha", Email: "a@x.com", Phone: "9999999999"},
		{Timestamp: "2024-01-02T00:00:00Z", Name: "Ravi", Company: "Acme, Ltd", Email: "r@x.com", Phone: "8888888888", City: "Pune", Service: "FTL", Message: "line one\nline two"},
		{Timestamp: "2024-01-03T00:00:00Z", Name: `Quote "Me"`, Email: "q@x.com", Phone: "7777777777"},
	}
	for _, l := range leadsIn {
		if err := store.Append(l); err != nil {
			t.Fatalf("Append failed: %v", err)
		}
	}

	rows, err := store.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if len(rows) != len(leadsIn)+1 {
		t.Fatalf("expected %d rows, got %d", len(leadsIn)+1, len(rows))
	}

	// Commas, quotes and newlines must survive the round trip.
	got := rows[2]
	if got[2] != "Acme, Ltd" {
		t.Errorf("company = %q, want %q", got[2], "Acme, Ltd")
	}
	if got[7] != "line one\nline two" {
		t.Errorf("message = %q, want multi-line value", got[7])
	}
	if rows[3][1] != `Quote "Me"` {
		t.Errorf("name = %q, want quoted value", rows[3][1])
	}

	// Fixed column order: timestamp, name, company, email, phone, city, service, message.
	first := rows[1]
	want := []string{"2024-01-01T00:00:00Z", "Asha", "", "a@x.com", "9999999999", "", "", ""}
	for i := range want {
		if first[i] != want[i] {
			t.Errorf("column %d = %q, want %q", i, first[i], want[i])
		}
	}
}

func TestAppend_MissingFileFails(t *testing.T) {
	store := newTestStore(t)

	// No EnsureInitialized: the append must surface an error rather than
	// silently losing the lead.
	err := store.Append(domain.Lead{Timestamp: "2024-01-01T00:00:00Z", Name: "Asha", Email: "a@x.com", Phone: "9999999999"})
	if err == nil {
		t.Fatal("expected error appending to a missing file")
	}
	if _, statErr := os.Stat(store.Path()); !os.IsNotExist(statErr) {
		t.Errorf("append must not create the file, stat err = %v", statErr)
	}
}
