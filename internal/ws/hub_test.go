package ws

import (
	"testing"
	"time"

	"election-service/internal/ports/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(t *testing.T, client *Client, n int) []Event {
	t.Helper()
	events := make([]Event, 0, n)
	for i := 0; i < n; i++ {
		select {
		case event := <-client.Send:
			events = append(events, event)
		case <-time.After(time.Second):
			t.Fatalf("timed out waiting for event %d of %d", i+1, n)
		}
	}
	return events
}

func TestHubFansOutCommitEvents(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	first := &Client{Send: make(chan Event, 8)}
	second := &Client{Send: make(chan Event, 8)}
	hub.Register <- first
	hub.Register <- second

	commit := &models.BallotCommit{
		Entries: []models.VoteLogEntry{
			{StudentID: "STU-1001", CandidateID: "cand-a", Position: "Head Girl"},
			{StudentID: "STU-1001", CandidateID: "cand-c", Position: "Head Boy"},
		},
		UpdatedTotals: map[string]int64{"cand-a": 3, "cand-c": 7},
	}
	hub.PublishVoteCommitted(commit)

	for _, client := range []*Client{first, second} {
		events := collect(t, client, 3)

		require.Equal(t, EventNewVoteLog, events[0].Event)
		assert.Len(t, events[0].Entries, 2)

		totals := map[string]int64{}
		for _, event := range events[1:] {
			require.Equal(t, EventVoteUpdate, event.Event)
			totals[event.CandidateID] = event.Votes
		}
		assert.Equal(t, commit.UpdatedTotals, totals)
	}
}

func TestHubDropsSlowObserver(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	slow := &Client{Send: make(chan Event)} // no buffer, never read
	live := &Client{Send: make(chan Event, 8)}
	hub.Register <- slow
	hub.Register <- live

	hub.PublishVoteCommitted(&models.BallotCommit{
		UpdatedTotals: map[string]int64{"cand-a": 1},
	})

	events := collect(t, live, 2)
	assert.Equal(t, EventNewVoteLog, events[0].Event)
	assert.Equal(t, EventVoteUpdate, events[1].Event)

	// The stalled client's channel is closed when it is evicted.
	select {
	case _, open := <-slow.Send:
		assert.False(t, open)
	case <-time.After(time.Second):
		t.Fatal("slow observer was not evicted")
	}
}
