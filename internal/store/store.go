package store

import (
	"encoding/csv"
	"fmt"
	"os"
	"time"

	"github.com/gofrs/flock"

	"github.com/Eyono/Password-manager-final/internal/password"
	"github.com/Eyono/Password-manager-final/internal/record"
)

// Store owns one CSV-backed credential file.
//
// The file is the single source of truth: every operation re-reads it from
// the start, so edits made by other invocations (or by hand) are honored.
// No record state is cached between calls.
type Store struct {
	path          string
	defaultLength int
	now           func() time.Time
	generate      func(length int) (string, error)
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the wall-clock source used to stamp new records.
// Used by tests and the conformance harness for deterministic timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithGenerator overrides the password generator used when Add is called
// without a password. Used by tests and the conformance harness.
func WithGenerator(generate func(length int) (string, error)) Option {
	return func(s *Store) {
		s.generate = generate
	}
}

// WithPasswordLength sets the length of generated passwords.
func WithPasswordLength(length int) Option {
	return func(s *Store) {
		s.defaultLength = length
	}
}

// Open creates or opens the credential store at the given path.
// If the file does not exist it is created containing only the header row.
//
// This function is idempotent - opening an already-initialized store leaves
// the file untouched.
func Open(path string, opts ...Option) (*Store, error) {
	s := &Store{
		path:          path,
		defaultLength: password.DefaultLength,
		now:           time.Now,
		generate:      password.Generate,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.defaultLength < 1 {
		return nil, fmt.Errorf("default password length must be at least 1, got %d", s.defaultLength)
	}

	if err := s.init(); err != nil {
		return nil, err
	}
	return s, nil
}

// Path returns the location of the backing file.
func (s *Store) Path() string {
	return s.path
}

// init creates the backing file with its header row if it is absent.
// The credential file is created owner-readable only.
func (s *Store) init() error {
	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		if os.IsExist(err) {
			return nil
		}
		return NewStorageError("create store file", err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(record.Fields); err != nil {
		f.Close()
		return NewStorageError("write store header", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return NewStorageError("write store header", err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return NewStorageError("sync store file", err)
	}
	if err := f.Close(); err != nil {
		return NewStorageError("close store file", err)
	}
	return nil
}

// lockExclusive takes the advisory write lock guarding mutations.
// The returned release func must be called on every exit path.
//
// Locking serializes concurrent invocations that would otherwise interleave
// their read-modify-write cycles and silently lose one side's update.
// Behavior under single-process use is unchanged.
func (s *Store) lockExclusive() (func(), error) {
	fl := flock.New(s.path + ".lock")
	if err := fl.Lock(); err != nil {
		return nil, NewStorageError("acquire store lock", err)
	}
	return func() { _ = fl.Unlock() }, nil
}

// lockShared takes the advisory read lock used by listings.
func (s *Store) lockShared() (func(), error) {
	fl := flock.New(s.path + ".lock")
	if err := fl.RLock(); err != nil {
		return nil, NewStorageError("acquire store lock", err)
	}
	return func() { _ = fl.Unlock() }, nil
}
