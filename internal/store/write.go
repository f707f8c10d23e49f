package store

import (
	"encoding/csv"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/Eyono/Password-manager-final/internal/record"
)

// Add validates, deduplicates, stamps, and appends one new record.
//
// If password is empty a fresh one is generated; the returned record carries
// the resolved value so callers can display it. The new row is appended to
// the end of the file - prior rows are not rewritten.
//
// Order of checks matches the failure-isolation policy: validation before
// generation before persistence. No state changes on any error.
func (s *Store) Add(service, username, password string) (record.Record, error) {
	var zero record.Record

	if !record.ValidServiceName(service) {
		return zero, NewInvalidServiceNameError(service)
	}

	if password == "" {
		p, err := s.generate(s.defaultLength)
		if err != nil {
			return zero, fmt.Errorf("generate password: %w", err)
		}
		password = p
	}

	release, err := s.lockExclusive()
	if err != nil {
		return zero, err
	}
	defer release()

	existing, err := s.readAll()
	if err != nil {
		return zero, err
	}

	key := record.NewKey(service, username)
	for _, r := range existing {
		if r.Key() == key {
			return zero, NewDuplicateEntryError(service, username)
		}
	}

	rec := record.Record{
		Service:   service,
		Username:  username,
		Password:  password,
		CreatedAt: s.now().Truncate(time.Second),
	}

	if err := s.appendRow(rec); err != nil {
		return zero, err
	}
	return rec, nil
}

// Delete removes the record matching (service, username) and rewrites the
// file without it. All other records keep their relative order and field
// values.
func (s *Store) Delete(service, username string) error {
	release, err := s.lockExclusive()
	if err != nil {
		return err
	}
	defer release()

	existing, err := s.readAll()
	if err != nil {
		return err
	}

	key := record.NewKey(service, username)
	remaining := make([]record.Record, 0, len(existing))
	for _, r := range existing {
		if r.Key() != key {
			remaining = append(remaining, r)
		}
	}
	if len(remaining) == len(existing) {
		return NewEntryNotFoundError(service, username)
	}

	return s.rewrite(remaining)
}

// appendRow writes one row to the end of the file.
func (s *Store) appendRow(rec record.Record) error {
	f, err := os.OpenFile(s.path, os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return NewStorageError("open store file for append", err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(encodeRow(rec)); err != nil {
		f.Close()
		return NewStorageError("append store row", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return NewStorageError("append store row", err)
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

// rewrite regenerates the whole file (header plus rows) through a uniquely
// named temp file in the same directory, then atomically renames it over the
// original. An interrupted rewrite leaves the previous file intact.
func (s *Store) rewrite(records []record.Record) error {
	tmp := fmt.Sprintf("%s.%s.tmp", s.path, uuid.NewString())

	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return NewStorageError("create temp store file", err)
	}

	fail := func(msg string, err error) error {
		f.Close()
		os.Remove(tmp)
		return NewStorageError(msg, err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(record.Fields); err != nil {
		return fail("write store header", err)
	}
	for _, rec := range records {
		if err := w.Write(encodeRow(rec)); err != nil {
			return fail("write store row", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fail("write store rows", err)
	}
	if err := f.Sync(); err != nil {
		return fail("sync temp store file", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return NewStorageError("close temp store file", err)
	}

	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return NewStorageError("replace store file", err)
	}
	return nil
}
