package blog

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strconv"

	"github.com/jeremyjsx/blogapi/internal/events"
	"github.com/jeremyjsx/blogapi/internal/storage"
)

// Deps are the optional collaborators shared by the services. Nil fields fall
// back to no-op implementations.
type Deps struct {
	Publisher events.Publisher
	Archive   storage.Storage
	Logger    *slog.Logger
}

// lifecycle announces writes and archives deleted records. Both are best
// effort: failures are logged and never fail the request.
type lifecycle struct {
	resource  string
	plural    string
	publisher events.Publisher
	archive   storage.Storage
	logger    *slog.Logger
}

func newLifecycle(resource, plural string, deps Deps) lifecycle {
	l := lifecycle{
		resource:  resource,
		plural:    plural,
		publisher: deps.Publisher,
		archive:   deps.Archive,
		logger:    deps.Logger,
	}
	if l.publisher == nil {
		l.publisher = events.NoopPublisher{}
	}
	if l.archive == nil {
		l.archive = storage.NoopStorage{}
	}
	if l.logger == nil {
		l.logger = slog.Default()
	}
	l.logger = l.logger.With("resource", resource)
	return l
}

func (l lifecycle) publish(ctx context.Context, action string, id int64, rec *Record) {
	body, err := json.Marshal(rec)
	if err != nil {
		l.logger.Error("marshal event record", "id", id, "error", err)
		return
	}
	e := events.NewResourceEvent(l.resource, action, id, body)
	if err := l.publisher.Publish(ctx, e); err != nil {
		l.logger.Warn("publish event failed", "type", e.Type, "id", id, "error", err)
	}
}

func (l lifecycle) archiveDeleted(ctx context.Context, id int64, rec *Record) {
	body, err := json.Marshal(rec)
	if err != nil {
		l.logger.Error("marshal archive record", "id", id, "error", err)
		return
	}
	key := ArchiveKey(l.plural, id)
	if err := l.archive.Upload(ctx, key, bytes.NewReader(body), "application/json"); err != nil {
		l.logger.Warn("archive deleted record failed", "key", key, "error", err)
	}
}

// ArchiveKey is the object key a deleted record is archived under.
func ArchiveKey(plural string, id int64) string {
	return "archive/" + plural + "/" + strconv.FormatInt(id, 10) + ".json"
}
