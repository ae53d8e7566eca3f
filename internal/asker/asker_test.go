package asker

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"askbot/internal/storage"
)

func newTestAsker(t *testing.T, limit int) (*Asker, string) {
	t.Helper()
	dir := t.TempDir()
	store, err := storage.New(dir)
	require.NoError(t, err)
	return New(limit, store), dir
}

func TestAskTwoPerDayScenario(t *testing.T) {
	a, _ := newTestAsker(t, 2)

	r1 := a.Ask("u1", "alice", "first?")
	assert.True(t, r1.Allowed)
	assert.Equal(t, 1, r1.Remaining)
	assert.Contains(t, r1.Response, "first?")
	assert.Contains(t, r1.Response, "1 message remaining")

	r2 := a.Ask("u1", "alice", "second?")
	assert.True(t, r2.Allowed)
	assert.Equal(t, 0, r2.Remaining)
	assert.Contains(t, r2.Response, "0 messages remaining")

	r3 := a.Ask("u1", "alice", "third?")
	assert.False(t, r3.Allowed)
	assert.Equal(t, 0, r3.Remaining)
	assert.Empty(t, r3.Response)

	rec, found := a.Stats("u1")
	require.True(t, found)
	assert.Equal(t, 2, rec.MessageCount)
	assert.Equal(t, 2, rec.TotalMessages)
}

func TestDeniedAskLeavesNoHistory(t *testing.T) {
	a, _ := newTestAsker(t, 1)

	a.Ask("u1", "alice", "allowed")
	a.Ask("u1", "alice", "denied")

	entries := a.History("u1", 10)
	require.Len(t, entries, 1)
	assert.Equal(t, "allowed", entries[0].Question)
}

func TestHistoryMostRecentFirst(t *testing.T) {
	a, _ := newTestAsker(t, 10)

	for i := 1; i <= 5; i++ {
		a.Ask("u2", "bob", fmt.Sprintf("Q%d", i))
	}

	got := a.History("u2", 3)
	require.Len(t, got, 3)
	assert.Equal(t, "Q5", got[0].Question)
	assert.Equal(t, "Q4", got[1].Question)
	assert.Equal(t, "Q3", got[2].Question)
	assert.Equal(t, "bob", got[0].Username)
}

func TestStatsUnknownUser(t *testing.T) {
	a, _ := newTestAsker(t, 10)

	_, found := a.Stats("ghost")
	assert.False(t, found)
}

func TestLimitStatus(t *testing.T) {
	a, _ := newTestAsker(t, 5)

	st := a.LimitStatus("u1")
	assert.True(t, st.Allowed)
	assert.Equal(t, 5, st.Remaining)
	assert.Zero(t, st.Used)
	assert.Equal(t, 5, st.DailyLimit)

	a.Ask("u1", "alice", "Q")

	st = a.LimitStatus("u1")
	assert.True(t, st.Allowed)
	assert.Equal(t, 4, st.Remaining)
	assert.Equal(t, 1, st.Used)
}

func TestStateSurvivesRestart(t *testing.T) {
	a, dir := newTestAsker(t, 5)

	a.Ask("u1", "alice", "Q1")
	a.Ask("u1", "alice", "Q2")

	store, err := storage.New(dir)
	require.NoError(t, err)
	reborn := New(5, store)

	rec, found := reborn.Stats("u1")
	require.True(t, found)
	assert.Equal(t, 2, rec.MessageCount)
	assert.Equal(t, 2, rec.TotalMessages)

	entries := reborn.History("u1", 10)
	require.Len(t, entries, 2)
	assert.Equal(t, "Q2", entries[0].Question)
}

func TestSaveFailureKeepsInMemoryState(t *testing.T) {
	base := t.TempDir()
	dataDir := filepath.Join(base, "data")
	store, err := storage.New(dataDir)
	require.NoError(t, err)
	a := New(3, store)

	// Replace the data directory with a plain file so every save fails.
	require.NoError(t, os.RemoveAll(dataDir))
	require.NoError(t, os.WriteFile(dataDir, []byte("x"), 0644))

	r := a.Ask("u1", "alice", "Q")
	assert.True(t, r.Allowed)
	assert.NotEmpty(t, r.Response)

	rec, found := a.Stats("u1")
	require.True(t, found)
	assert.Equal(t, 1, rec.MessageCount)
}
