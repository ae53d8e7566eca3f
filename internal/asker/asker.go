package asker

import (
	"fmt"
	"log"
	"sync"
	"time"

	"askbot/internal/history"
	"askbot/internal/quota"
	"askbot/internal/storage"
)

// Asker is the request handler core. It owns the quota tracker and history
// log loaded from storage, and serializes every operation behind a single
// mutex so one request's check can never interleave with another request's
// record for the same user.
type Asker struct {
	mu      sync.Mutex
	store   *storage.Store
	quota   *quota.Tracker
	history *history.Log
}

// AskResult is the outcome of one /ask request. Remaining is the count left
// after this send, or the count at the time of denial.
type AskResult struct {
	Allowed   bool
	Remaining int
	Response  string
}

// LimitStatus reports a user's current standing against the daily limit.
type LimitStatus struct {
	Allowed    bool
	Remaining  int
	Used       int
	DailyLimit int
}

func New(dailyLimit int, store *storage.Store) *Asker {
	users, entries := store.Load()
	return &Asker{
		store:   store,
		quota:   quota.New(dailyLimit, users),
		history: history.New(entries),
	}
}

func (a *Asker) DailyLimit() int { return a.quota.Limit() }

// Ask runs the full check, record, append, save sequence for one question.
func (a *Asker) Ask(userID, username, question string) AskResult {
	a.mu.Lock()
	defer a.mu.Unlock()

	now := time.Now()
	allowed, remaining := a.quota.SyncAndCheck(userID, now.Format(quota.DateLayout))
	if !allowed {
		return AskResult{Allowed: false, Remaining: remaining}
	}

	a.quota.RecordSend(userID)
	remaining--

	response := buildResponse(question, remaining)
	a.history.Append(userID, storage.HistoryEntry{
		Timestamp: now,
		Username:  username,
		Question:  question,
		Response:  response,
	})
	a.save()

	return AskResult{Allowed: true, Remaining: remaining, Response: response}
}

// Stats returns the stored quota record for userID without syncing the day
// rollover, so a record untouched since yesterday still shows yesterday's
// counters.
func (a *Asker) Stats(userID string) (storage.UserRecord, bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.quota.Record(userID)
}

// History returns up to count recent entries for userID, most recent first.
func (a *Asker) History(userID string, count int) []storage.HistoryEntry {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.history.Recent(userID, count)
}

// LimitStatus syncs the day rollover for userID and reports usage. The
// rollover is not flushed to disk here; the next ask's save picks it up.
func (a *Asker) LimitStatus(userID string) LimitStatus {
	a.mu.Lock()
	defer a.mu.Unlock()

	allowed, remaining := a.quota.SyncAndCheck(userID, time.Now().Format(quota.DateLayout))
	return LimitStatus{
		Allowed:    allowed,
		Remaining:  remaining,
		Used:       a.quota.Limit() - remaining,
		DailyLimit: a.quota.Limit(),
	}
}

// Flush writes both documents to disk. Called on shutdown.
func (a *Asker) Flush() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.store.Save(a.quota.Doc(), a.history.Doc())
}

// save persists both stores after a mutation. A failed save is logged and
// swallowed: in-memory state is kept and the response still goes out.
func (a *Asker) save() {
	if err := a.store.Save(a.quota.Doc(), a.history.Doc()); err != nil {
		log.Printf("[ERR] Failed to save data: %v", err)
	}
}

func buildResponse(question string, remaining int) string {
	return fmt.Sprintf(
		"Thank you for your question: '%s'\n\n"+
			"This is a templated response. Wire this bot to an AI provider for real answers.\n\n"+
			"You have %d %s remaining today.",
		question, remaining, plural("message", remaining))
}

func plural(word string, n int) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
