package events

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

const (
	TypeTransactionCreated = "transaction.created"
	TypeTransactionDeleted = "transaction.deleted"
	TypeSavingGoalReached  = "saving_plan.goal_reached"
	TypeLimitReached       = "spending_limit.reached"
	TypeReceiptScanned     = "receipt.scanned"
)

// Event is the JSON message published for a domain change. Payload carries the
// affected record; consumers look up anything else by ID.
type Event struct {
	ID         uuid.UUID   `json:"id"`
	Type       string      `json:"type"`
	UserID     uuid.UUID   `json:"user_id"`
	OccurredAt time.Time   `json:"occurred_at"`
	Payload    interface{} `json:"payload,omitempty"`
}

func New(eventType string, userID uuid.UUID, payload interface{}) Event {
	return Event{
		ID:         uuid.New(),
		Type:       eventType,
		UserID:     userID,
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	}
}

func (e Event) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}
