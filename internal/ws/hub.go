package ws

import "election-service/internal/ports/models"

// Event names consumed by dashboard clients.
const (
	EventNewVoteLog = "newVoteLog"
	EventVoteUpdate = "voteUpdate"
)

// Event is one push message to observers. Observers treat voteUpdate
// totals as the source of truth and newVoteLog entries as supplementary
// history, so duplicate delivery is harmless.
type Event struct {
	Event       string                `json:"event"`
	Entries     []models.VoteLogEntry `json:"entries,omitempty"`
	CandidateID string                `json:"candidateId,omitempty"`
	Votes       int64                 `json:"votes,omitempty"`
}

// Hub fans post-commit events out to every connected observer.
type Hub struct {
	Clients    map[*Client]bool
	Register   chan *Client
	Unregister chan *Client
	Broadcast  chan Event
}

func NewHub() *Hub {
	return &Hub{
		Clients:    make(map[*Client]bool),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		Broadcast:  make(chan Event, 64),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.Register:
			h.Clients[client] = true

		case client := <-h.Unregister:
			if _, ok := h.Clients[client]; ok {
				delete(h.Clients, client)
				close(client.Send)
			}

		case event := <-h.Broadcast:
			for client := range h.Clients {
				select {
				case client.Send <- event:
				default:
					// Slow observer: drop it rather than block the hub.
					delete(h.Clients, client)
					close(client.Send)
				}
			}
		}
	}
}

// PublishVoteCommitted queues the events for one committed ballot: a
// single newVoteLog with the resolved entries, then one voteUpdate per
// touched candidate. Fire-and-forget; called only after the commit is
// durable.
func (h *Hub) PublishVoteCommitted(commit *models.BallotCommit) {
	h.Broadcast <- Event{
		Event:   EventNewVoteLog,
		Entries: commit.Entries,
	}
	for candidateID, votes := range commit.UpdatedTotals {
		h.Broadcast <- Event{
			Event:       EventVoteUpdate,
			CandidateID: candidateID,
			Votes:       votes,
		}
	}
}
