package store

import (
	"context"
	"fmt"
	"time"
)

// CycleRecord is the persisted next-deadline state for the bump countdown.
// Notified stays false until the completion notification has fired for
// NextBump at least once; only a new cycle with a new NextBump resets it.
type CycleRecord struct {
	NextBump time.Time `json:"nextBumpTime"`
	Notified bool      `json:"notified"`
	GuildID  string    `json:"guildId"`
}

// LoadCycle returns the persisted cycle record, or false when no usable
// record exists (first run, missing file, malformed document).
func (s *Store) LoadCycle(ctx context.Context) (CycleRecord, bool) {
	var rec CycleRecord
	if !s.readDocument(ctx, cycleFileName, &rec) {
		return CycleRecord{}, false
	}
	if rec.NextBump.IsZero() {
		return CycleRecord{}, false
	}
	return rec, true
}

// SaveCycle replaces the persisted cycle record.
func (s *Store) SaveCycle(ctx context.Context, rec CycleRecord) {
	s.writeDocument(ctx, cycleFileName, rec)
}

// MarkNotified sets the notified flag on the persisted record, keeping the
// rest of the document intact.
func (s *Store) MarkNotified(ctx context.Context) {
	rec, ok := s.LoadCycle(ctx)
	if !ok {
		return
	}
	rec.Notified = true
	s.SaveCycle(ctx, rec)
}

func totalsFileName(year int) string {
	return fmt.Sprintf(totalsFileNameShape, year)
}
