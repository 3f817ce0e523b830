// Package leads implements the append-only lead log.
//
// The log is a flat CSV file with a fixed header row. The store owns the
// file exclusively: it creates it with the header on first start and appends
// exactly one encoded row per accepted submission. Rows are never rewritten
// or reordered.
package leads

import (
	"encoding/csv"
	"os"
	"sync"

	"github.com/shubhsinghsk/AYLB/internal/domain"
)

// Store appends lead records to a single CSV file on local disk.
//
// Appends are serialized by an internal mutex and written as one buffered
// flush per record, so concurrent submissions cannot interleave partial
// lines.
type Store struct {
	path string
	mu   sync.Mutex
}

// NewStore creates a store bound to the given file path. Call
// EnsureInitialized before the first Append.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the file path the store writes to.
func (s *Store) Path() string {
	return s.path
}

// EnsureInitialized creates the backing file with the header row if and only
// if it does not already exist. It is idempotent and safe to call at every
// process start; an existing file is never touched.
func (s *Store) EnsureInitialized() error {
	const op = "leads.init"

	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if os.IsExist(err) {
			// Header was written by a previous start.
			return nil
		}
		return domain.Internal(err, op, "Failed to create lead log")
	}

	w := csv.NewWriter(f)
	if err := w.Write(domain.LeadColumns); err != nil {
		f.Close()
		return domain.Internal(err, op, "Failed to write lead log header")
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return domain.Internal(err, op, "Failed to write lead log header")
	}

	if err := f.Close(); err != nil {
		return domain.Internal(err, op, "Failed to create lead log")
	}
	return nil
}

// Append writes one record in domain.LeadColumns order to the end of the
// file. Fields containing the delimiter, quotes or line breaks are quoted by
// the CSV encoder, so the file round-trips through any RFC 4180 parser.
func (s *Store) Append(lead domain.Lead) error {
	const op = "leads.append"

	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return domain.Internal(err, op, "Failed to record enquiry")
	}

	w := csv.NewWriter(f)
	if err := w.Write(lead.Record()); err != nil {
		f.Close()
		return domain.Internal(err, op, "Failed to record enquiry")
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return domain.Internal(err, op, "Failed to record enquiry")
	}

	if err := f.Close(); err != nil {
		return domain.Internal(err, op, "Failed to record enquiry")
	}
	return nil
}

// ReadAll parses the whole log, header included. Intended for tests and
// operator tooling, not the request path.
func (s *Store) ReadAll() ([][]string, error) {
	const op = "leads.read"

	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.Open(s.path)
	if err != nil {
		return nil, domain.Internal(err, op, "Failed to read lead log")
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, domain.Internal(err, op, "Failed to parse lead log")
	}
	return rows, nil
}
