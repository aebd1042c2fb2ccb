// Package store persists the bot's small JSON documents: the bump cycle
// record and the yearly gacha totals. Each record kind is one whole file;
// writes replace the document and reads that fail for any reason yield the
// zero record, since "no prior state" is a normal first-run condition.
package store

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/nenelobo/NeneloBot_Go/internal/logger"
)

const (
	cycleFileName       = "next_bump.json"
	totalsFileNameShape = "bump_gacha_totals_%d.json"
)

// Store reads and writes JSON documents under a single data directory.
type Store struct {
	dir string
}

// New creates a store rooted at dir, creating the directory if needed.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Store{dir: dir}, nil
}

// readDocument unmarshals path into target. Returns false on any failure;
// errors are logged and never propagated.
func (s *Store) readDocument(ctx context.Context, name string, target any) bool {
	log := logger.FromContext(ctx)

	path := filepath.Join(s.dir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn(LogMsgReadFailed, "path", path, "error", err)
		}
		return false
	}
	if err := json.Unmarshal(data, target); err != nil {
		log.Warn(LogMsgMalformedDocument, "path", path, "error", err)
		return false
	}
	return true
}

// writeDocument replaces path with the marshaled data. Failures are logged;
// the in-memory state stays authoritative for this process lifetime.
func (s *Store) writeDocument(ctx context.Context, name string, data any) {
	log := logger.FromContext(ctx)

	path := filepath.Join(s.dir, name)
	bytes, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		log.Error(LogMsgWriteFailed, "path", path, "error", err)
		return
	}
	if err := os.WriteFile(path, bytes, 0o644); err != nil {
		log.Error(LogMsgWriteFailed, "path", path, "error", err)
		return
	}
	log.Debug(LogMsgDocumentSaved, "path", path)
}
