package store

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/Eyono/Password-manager-final/internal/record"
)

// List returns the records currently on disk, in file order (= insertion
// order). If service is non-empty, only records whose service field equals
// it exactly are returned.
//
// Returns an empty slice (not nil) when the store has no data rows or no
// rows match the filter.
func (s *Store) List(service string) ([]record.Record, error) {
	release, err := s.lockShared()
	if err != nil {
		return nil, err
	}
	defer release()

	records, err := s.readAll()
	if err != nil {
		return nil, err
	}
	if service == "" {
		return records, nil
	}

	filtered := []record.Record{}
	for _, r := range records {
		if r.Service == service {
			filtered = append(filtered, r)
		}
	}
	return filtered, nil
}

// readAll loads the full record set from disk.
//
// Callers that mutate must hold the exclusive lock across readAll and the
// subsequent write; List takes the shared lock itself. readAll never locks,
// so it can run under either.
func (s *Store) readAll() ([]record.Record, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, NewStorageError("open store file", err)
	}
	defer f.Close()

	r := csv.NewReader(f)

	header, err := r.Read()
	if err != nil {
		return nil, NewStorageError("read store header", err)
	}
	if err := checkHeader(header); err != nil {
		return nil, err
	}

	// Header fixed the field count at 4; shorter or longer rows surface as
	// csv.ErrFieldCount below.
	records := []record.Record{}
	for line := 2; ; line++ {
		row, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, NewStorageError("read store row", err)
		}
		rec, err := decodeRow(row, line)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	return records, nil
}

// checkHeader verifies the fixed four-column header.
func checkHeader(header []string) error {
	if len(header) != len(record.Fields) {
		return NewStorageError(fmt.Sprintf("malformed store header: got %d columns, want %d", len(header), len(record.Fields)), nil)
	}
	for i, name := range record.Fields {
		if header[i] != name {
			return NewStorageError(fmt.Sprintf("malformed store header: column %d is %q, want %q", i+1, header[i], name), nil)
		}
	}
	return nil
}

// decodeRow maps one CSV row onto a Record using the fixed column order.
func decodeRow(row []string, line int) (record.Record, error) {
	created, err := time.ParseInLocation(record.TimeLayout, row[3], time.Local)
	if err != nil {
		return record.Record{}, NewStorageError(fmt.Sprintf("malformed created_at on line %d: %q", line, row[3]), nil)
	}
	return record.Record{
		Service:   row[0],
		Username:  row[1],
		Password:  row[2],
		CreatedAt: created,
	}, nil
}

// encodeRow renders a record as one CSV row in persisted column order.
func encodeRow(rec record.Record) []string {
	return []string{rec.Service, rec.Username, rec.Password, rec.FormatCreatedAt()}
}
