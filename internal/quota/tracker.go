package quota

import (
	"askbot/internal/storage"
)

// DateLayout is the calendar-date format stored in last_reset. Any stored
// value not literally equal to today's date counts as a new day.
const DateLayout = "2006-01-02"

// Tracker decides whether a user may send another message today. It is not
// safe for concurrent use on its own; the request handler serializes access.
type Tracker struct {
	limit int
	users storage.QuotaDoc
}

func New(limit int, users storage.QuotaDoc) *Tracker {
	if users == nil {
		users = make(storage.QuotaDoc)
	}
	return &Tracker{limit: limit, users: users}
}

func (t *Tracker) Limit() int { return t.limit }

// SyncAndCheck reports whether userID may send a message on today's date and
// how many sends remain before the limit. It mutates on read: the record is
// created on first access, and the daily counter is reset when the stored
// date differs from today. Repeated same-day calls change nothing further.
func (t *Tracker) SyncAndCheck(userID, today string) (allowed bool, remaining int) {
	rec, ok := t.users[userID]
	if !ok {
		rec = &storage.UserRecord{LastReset: today}
		t.users[userID] = rec
	}

	if rec.LastReset != today {
		rec.LastReset = today
		rec.MessageCount = 0
	}

	remaining = t.limit - rec.MessageCount
	return rec.MessageCount < t.limit, remaining
}

// RecordSend counts one allowed send against userID's daily and lifetime
// totals. The record must already exist from a prior SyncAndCheck; the daily
// bound is not re-checked here, so callers must check before recording.
func (t *Tracker) RecordSend(userID string) {
	rec, ok := t.users[userID]
	if !ok {
		return
	}
	rec.MessageCount++
	rec.TotalMessages++
}

// Record returns a copy of the stored record for userID without syncing the
// day rollover.
func (t *Tracker) Record(userID string) (storage.UserRecord, bool) {
	rec, ok := t.users[userID]
	if !ok {
		return storage.UserRecord{}, false
	}
	return *rec, true
}

// Doc exposes the underlying document for persistence.
func (t *Tracker) Doc() storage.QuotaDoc { return t.users }
