// Package file implements the storage adapter over a single combined
// JSON document on disk, plus timestamped whole-file backups.
package file

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/cliniccare/clinic-api/internal/storage"
	"github.com/cliniccare/clinic-api/pkg/logger"
)

const (
	dataFileName = "clinic_data.json"
	backupDir    = "backups"
)

// Store keeps every collection in one JSON object keyed by collection
// name. Each Write rewrites the whole document through a temp-file
// rename, so a failed write leaves the previous document intact.
type Store struct {
	dataDir string
	log     *logger.Logger
}

func New(dataDir string, log *logger.Logger) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &Store{dataDir: dataDir, log: log}, nil
}

// DataPath returns the location of the live document, for display.
func (s *Store) DataPath() string {
	return filepath.Join(s.dataDir, dataFileName)
}

func (s *Store) backupPath() string {
	return filepath.Join(s.dataDir, backupDir)
}

func (s *Store) loadDocument() (map[string]json.RawMessage, error) {
	raw, err := os.ReadFile(s.DataPath())
	if os.IsNotExist(err) {
		return map[string]json.RawMessage{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read data file: %w", err)
	}
	doc := map[string]json.RawMessage{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode data file: %w", err)
	}
	return doc, nil
}

func (s *Store) saveDocument(doc map[string]json.RawMessage) error {
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode data file: %w", err)
	}
	tmp, err := os.CreateTemp(s.dataDir, dataFileName+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, s.DataPath()); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace data file: %w", err)
	}
	return nil
}

func (s *Store) Read(key string, out any) error {
	doc, err := s.loadDocument()
	if err != nil {
		return err
	}
	raw, ok := doc[key]
	if !ok {
		return storage.ErrKeyNotFound
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}

func (s *Store) Write(key string, v any) error {
	doc, err := s.loadDocument()
	if err != nil {
		// The live document is unreadable; starting over from an empty
		// document matches the fail-open read policy, but it must not
		// happen silently.
		s.log.Error(err, "data file unreadable, rewriting from empty document")
		doc = map[string]json.RawMessage{}
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	doc[key] = raw
	return s.saveDocument(doc)
}

func (s *Store) Close() error { return nil }

// CreateBackup copies the live document to a timestamp-suffixed file
// and verifies the copy parses as JSON; a truncated or otherwise
// unreadable copy is removed and reported as an error.
func (s *Store) CreateBackup() (string, error) {
	src := s.DataPath()
	if _, err := os.Stat(src); os.IsNotExist(err) {
		return "", fmt.Errorf("no data file to backup")
	}
	if err := os.MkdirAll(s.backupPath(), 0o755); err != nil {
		return "", fmt.Errorf("create backup dir: %w", err)
	}

	name := fmt.Sprintf("backup_%s.json", time.Now().Format("20060102_150405"))
	dst := filepath.Join(s.backupPath(), name)

	raw, err := os.ReadFile(src)
	if err != nil {
		return "", fmt.Errorf("read data file: %w", err)
	}
	if err := os.WriteFile(dst, raw, 0o644); err != nil {
		return "", fmt.Errorf("write backup: %w", err)
	}

	if err := validateJSONFile(dst); err != nil {
		os.Remove(dst)
		return "", fmt.Errorf("backup verification failed: %w", err)
	}

	s.log.Info("backup created", "path", dst)
	return dst, nil
}

// ListBackups returns backup file names, most recent first.
func (s *Store) ListBackups() ([]string, error) {
	entries, err := os.ReadDir(s.backupPath())
	if os.IsNotExist(err) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read backup dir: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".json") {
			names = append(names, e.Name())
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(names)))
	return names, nil
}

// RestoreBackup replaces the live document with the named backup and
// returns the restored contents. The backup is validated before the
// live file is touched.
func (s *Store) RestoreBackup(name string) (string, error) {
	// Reject path traversal in user-supplied names.
	if name != filepath.Base(name) {
		return "", fmt.Errorf("invalid backup name %q", name)
	}
	path := filepath.Join(s.backupPath(), name)

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return "", fmt.Errorf("backup file not found")
	}
	if err != nil {
		return "", fmt.Errorf("read backup: %w", err)
	}
	doc := map[string]json.RawMessage{}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return "", fmt.Errorf("backup is not a valid data document: %w", err)
	}
	if err := s.saveDocument(doc); err != nil {
		return "", err
	}

	s.log.Info("backup restored", "name", name)
	return string(raw), nil
}

func validateJSONFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var doc map[string]json.RawMessage
	return json.Unmarshal(raw, &doc)
}
