package events

import "context"

type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, ResourceEvent) error {
	return nil
}

var _ Publisher = (*NoopPublisher)(nil)
