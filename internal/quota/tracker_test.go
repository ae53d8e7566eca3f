package quota

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"askbot/internal/storage"
)

func TestSyncAndCheckCreatesRecord(t *testing.T) {
	tr := New(10, nil)

	allowed, remaining := tr.SyncAndCheck("u1", "2026-09-01")
	assert.True(t, allowed)
	assert.Equal(t, 10, remaining)

	rec, ok := tr.Record("u1")
	assert.True(t, ok)
	assert.Equal(t, "2026-09-01", rec.LastReset)
	assert.Zero(t, rec.MessageCount)
	assert.Zero(t, rec.TotalMessages)
}

func TestLimitExhaustion(t *testing.T) {
	const today = "2026-09-01"
	tr := New(3, nil)

	for i := 0; i < 3; i++ {
		allowed, remaining := tr.SyncAndCheck("u1", today)
		assert.True(t, allowed)
		assert.Equal(t, 3-i, remaining)
		tr.RecordSend("u1")
	}

	allowed, remaining := tr.SyncAndCheck("u1", today)
	assert.False(t, allowed)
	assert.Equal(t, 0, remaining)
}

func TestDayRolloverResetsDailyCountOnly(t *testing.T) {
	users := storage.QuotaDoc{
		"u1": {LastReset: "2026-08-15", MessageCount: 7, TotalMessages: 40},
	}
	tr := New(10, users)

	allowed, remaining := tr.SyncAndCheck("u1", "2026-09-01")
	assert.True(t, allowed)
	assert.Equal(t, 10, remaining)

	rec, _ := tr.Record("u1")
	assert.Equal(t, "2026-09-01", rec.LastReset)
	assert.Zero(t, rec.MessageCount)
	assert.Equal(t, 40, rec.TotalMessages)
}

func TestAnyForeignDateTriggersReset(t *testing.T) {
	// A stored date that is not literally today, even a future one, counts
	// as a new day.
	users := storage.QuotaDoc{
		"u1": {LastReset: "2099-12-31", MessageCount: 5, TotalMessages: 5},
	}
	tr := New(10, users)

	allowed, remaining := tr.SyncAndCheck("u1", "2026-09-01")
	assert.True(t, allowed)
	assert.Equal(t, 10, remaining)
}

func TestRepeatedSameDayChecksAreStable(t *testing.T) {
	tr := New(5, nil)

	tr.SyncAndCheck("u1", "2026-09-01")
	tr.RecordSend("u1")

	for i := 0; i < 3; i++ {
		allowed, remaining := tr.SyncAndCheck("u1", "2026-09-01")
		assert.True(t, allowed)
		assert.Equal(t, 4, remaining)
	}
}

func TestRecordSendUnknownUserIsNoop(t *testing.T) {
	tr := New(5, nil)
	tr.RecordSend("ghost")

	_, ok := tr.Record("ghost")
	assert.False(t, ok)
}

func TestZeroLimitDeniesEverything(t *testing.T) {
	tr := New(0, nil)

	allowed, remaining := tr.SyncAndCheck("u1", "2026-09-01")
	assert.False(t, allowed)
	assert.Equal(t, 0, remaining)
}

func TestDeniedAttemptDoesNotCount(t *testing.T) {
	const today = "2026-09-01"
	tr := New(2, nil)

	for i := 0; i < 3; i++ {
		if allowed, _ := tr.SyncAndCheck("u1", today); allowed {
			tr.RecordSend("u1")
		}
	}

	rec, _ := tr.Record("u1")
	assert.Equal(t, 2, rec.MessageCount)
	assert.Equal(t, 2, rec.TotalMessages)
}
