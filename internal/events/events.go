package events

import (
	"encoding/json"
	"time"
)

const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

type ResourcePayload struct {
	Resource string          `json:"resource"`
	ID       int64           `json:"id"`
	Record   json.RawMessage `json:"record,omitempty"`
}

// ResourceEvent announces a write to a blog resource. Type is
// "<resource>.<action>", e.g. "post.deleted", and doubles as the routing key.
type ResourceEvent struct {
	Type      string          `json:"type"`
	Timestamp time.Time       `json:"timestamp"`
	Payload   ResourcePayload `json:"payload"`
}

func NewResourceEvent(resource, action string, id int64, record json.RawMessage) ResourceEvent {
	return ResourceEvent{
		Type:      resource + "." + action,
		Timestamp: time.Now().UTC(),
		Payload: ResourcePayload{
			Resource: resource,
			ID:       id,
			Record:   record,
		},
	}
}
