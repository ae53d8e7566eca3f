package history

import (
	"askbot/internal/storage"
)

const (
	// StorageCap bounds how many entries are retained per user. Oldest
	// entries are evicted first.
	StorageCap = 50

	// DisplayCap bounds how many entries a single query may return. This is
	// a response-size cap, deliberately distinct from the storage cap.
	DisplayCap = 10
)

// Log keeps a bounded, insertion-ordered interaction log per user. It is not
// safe for concurrent use on its own; the request handler serializes access.
type Log struct {
	entries storage.HistoryDoc
}

func New(entries storage.HistoryDoc) *Log {
	if entries == nil {
		entries = make(storage.HistoryDoc)
	}
	return &Log{entries: entries}
}

// Append adds entry to the end of userID's log, evicting the oldest entries
// once the storage cap is exceeded.
func (l *Log) Append(userID string, entry storage.HistoryEntry) {
	list := append(l.entries[userID], entry)
	if len(list) > StorageCap {
		list = list[len(list)-StorageCap:]
	}
	l.entries[userID] = list
}

// Recent returns up to clamp(count, 1, DisplayCap) of userID's latest
// entries, most recent first. Users with no history get an empty result.
func (l *Log) Recent(userID string, count int) []storage.HistoryEntry {
	if count < 1 {
		count = 1
	}
	if count > DisplayCap {
		count = DisplayCap
	}

	list := l.entries[userID]
	if len(list) == 0 {
		return nil
	}
	if count > len(list) {
		count = len(list)
	}

	out := make([]storage.HistoryEntry, 0, count)
	for i := len(list) - 1; i >= len(list)-count; i-- {
		out = append(out, list[i])
	}
	return out
}

// Doc exposes the underlying document for persistence.
func (l *Log) Doc() storage.HistoryDoc { return l.entries }
