package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"
)

func TestNewResourceEvent(t *testing.T) {
	before := time.Now().UTC()
	e := NewResourceEvent("tag", ActionDeleted, 7, json.RawMessage(`{"id":7}`))

	if e.Type != "tag.deleted" {
		t.Errorf("Type = %q", e.Type)
	}
	if e.Payload.Resource != "tag" || e.Payload.ID != 7 {
		t.Errorf("Payload = %+v", e.Payload)
	}
	if e.Timestamp.Before(before) {
		t.Errorf("Timestamp %v before %v", e.Timestamp, before)
	}

	body, err := json.Marshal(e)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded ResourceEvent
	if err := json.Unmarshal(body, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if string(decoded.Payload.Record) != `{"id":7}` {
		t.Errorf("Record = %s", decoded.Payload.Record)
	}
}

func TestNoopPublisher(t *testing.T) {
	if err := (NoopPublisher{}).Publish(context.Background(), ResourceEvent{}); err != nil {
		t.Errorf("Publish: %v", err)
	}
}
