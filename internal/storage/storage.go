package storage

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/taliafield/simple-volunteer-log/internal/model"
)

// logFileName is the single backing file inside the data directory.
const logFileName = "volunteer_log.json"

// Store is a file-backed store for the volunteer log. Every operation
// performs a full load, a mutation, and a full save; the file is the sole
// source of truth. Single-process, single-user: no locking is done around
// the backing file.
type Store struct {
	dir string
}

// DefaultDir returns the default data directory (~/.svl).
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".svl"), nil
}

// New returns a Store rooted at dir, creating the directory (and any
// missing parents) if needed.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("storage error creating data directory %s: %w", dir, err)
	}
	return &Store{dir: dir}, nil
}

// path returns the full path of the backing file.
func (s *Store) path() string {
	return filepath.Join(s.dir, logFileName)
}

// List returns all entries in insertion order. A missing, unreadable or
// malformed backing file yields an empty collection; List never fails.
func (s *Store) List() []model.Entry {
	return s.load()
}

// Add appends a new entry built from the given fields, assigns it a fresh
// ID, persists the collection and returns it.
func (s *Store) Add(place, date string, hours float64, notes string) ([]model.Entry, error) {
	entries := s.load()
	entries = append(entries, model.Entry{
		ID:    NewID(),
		Place: place,
		Date:  date,
		Hours: hours,
		Notes: notes,
	})
	if err := s.save(entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Delete removes every entry with the given ID and persists the result.
// Deleting an unknown ID is a no-op, not an error.
func (s *Store) Delete(id string) ([]model.Entry, error) {
	entries := s.load()
	kept := entries[:0]
	for _, e := range entries {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	if err := s.save(kept); err != nil {
		return nil, err
	}
	return kept, nil
}

// Update replaces the place, date, hours and notes of the entry with the
// given ID, keeping its position. An unknown ID is a no-op; the file is
// rewritten either way.
func (s *Store) Update(id, place, date string, hours float64, notes string) ([]model.Entry, error) {
	entries := s.load()
	for i := range entries {
		if entries[i].ID == id {
			entries[i].Place = place
			entries[i].Date = date
			entries[i].Hours = hours
			entries[i].Notes = notes
			break
		}
	}
	if err := s.save(entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// load reads the backing file. Decode failures are absorbed: the corrupt
// file is backed up so the next save does not destroy it, and an empty
// collection is returned.
func (s *Store) load() []model.Entry {
	path := s.path()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return []model.Entry{}
	}
	if err != nil {
		slog.Warn("volunteer log unreadable, starting empty", "path", path, "err", err)
		return []model.Entry{}
	}

	var entries []model.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		backupPath := path + ".corrupt"
		_ = os.Rename(path, backupPath)
		slog.Warn("corrupt volunteer log, starting empty", "path", path, "backup", backupPath, "err", err)
		return []model.Entry{}
	}
	if entries == nil {
		entries = []model.Entry{}
	}
	return entries
}

// save atomically rewrites the backing file: write to a temp file, then
// rename over the old one.
func (s *Store) save(entries []model.Entry) error {
	path := s.path()
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("storage error marshalling JSON: %w", err)
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o600); err != nil {
		return fmt.Errorf("storage error writing temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("storage error renaming temp file: %w", err)
	}
	return nil
}
