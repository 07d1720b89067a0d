package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/jeremyjsx/blogapi/internal/blog"
	"github.com/jeremyjsx/blogapi/internal/pagination"
)

const maxBodyBytes = 1 << 20

// Resource is what a ResourceHandler needs from a service: T is the model,
// C and U are the create and update request bodies.
type Resource[T, C, U any] interface {
	Get(ctx context.Context, id int64) (*T, error)
	Count(ctx context.Context) (int64, error)
	List(ctx context.Context, limit, offset int) ([]*T, error)
	Create(ctx context.Context, in C) (*T, error)
	Update(ctx context.Context, id int64, in U) (*T, error)
	Delete(ctx context.Context, id int64) (*T, error)
	Serialize(v *T, includeRelations bool) *blog.Record
}

type Options struct {
	PageSize int
	// BaseURL roots pagination links. When nil the scheme and host of the
	// request are used.
	BaseURL *url.URL
	Logger  *slog.Logger
}

// ResourceHandler serves list, show, create, update and delete for one
// resource type.
type ResourceHandler[T, C, U any] struct {
	singular string
	plural   string
	svc      Resource[T, C, U]
	pageSize int
	baseURL  *url.URL
	logger   *slog.Logger
}

func NewResourceHandler[T, C, U any](singular, plural string, svc Resource[T, C, U], opts Options) *ResourceHandler[T, C, U] {
	if opts.PageSize <= 0 {
		opts.PageSize = 10
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &ResourceHandler[T, C, U]{
		singular: singular,
		plural:   plural,
		svc:      svc,
		pageSize: opts.PageSize,
		baseURL:  opts.BaseURL,
		logger:   opts.Logger.With("resource", plural),
	}
}

// Register mounts the handler's routes under /<plural>.
func (h *ResourceHandler[T, C, U]) Register(r chi.Router) {
	r.Route("/"+h.plural, func(r chi.Router) {
		r.Get("/", h.List())
		r.Post("/", h.Create())
		r.Get("/{id}", h.Show())
		r.Put("/{id}", h.Update())
		r.Patch("/{id}", h.Update())
		r.Delete("/{id}", h.Delete())
	})
}

type listLinks struct {
	First string  `json:"first"`
	Last  string  `json:"last"`
	Next  *string `json:"next"`
	Prev  *string `json:"prev"`
}

type listMeta struct {
	Limit int    `json:"limit"`
	Total int64  `json:"total"`
	Count int    `json:"count"`
	Self  string `json:"self"`
}

type listResponse struct {
	Data  map[string][]*blog.Record `json:"data"`
	Links listLinks                 `json:"links"`
	Meta  listMeta                  `json:"meta"`
}

func (h *ResourceHandler[T, C, U]) List() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, status := 0, http.StatusOK
		defer func() { pagination.RecordRequest(h.plural, status, page) }()

		page, err := pagination.ParsePage(r)
		if err != nil {
			status = respondError(w, r, h.logger, err)
			return
		}

		total, err := h.svc.Count(r.Context())
		if err != nil {
			status = respondError(w, r, h.logger, err)
			return
		}
		pagination.RecordTotal(h.plural, total)

		st, err := pagination.Paginate(total, h.pageSize, page)
		if err != nil {
			status = respondError(w, r, h.logger, err)
			return
		}

		items, err := h.svc.List(r.Context(), st.PageSize, st.Offset())
		if err != nil {
			status = respondError(w, r, h.logger, err)
			return
		}

		records := make([]*blog.Record, 0, len(items))
		for _, item := range items {
			records = append(records, h.svc.Serialize(item, false))
		}

		links := pagination.BuildLinks(h.urlGenerator(r), r.URL.Path, st, r.URL.Query())
		writeJSON(w, http.StatusOK, listResponse{
			Data: map[string][]*blog.Record{h.plural: records},
			Links: listLinks{
				First: links.First,
				Last:  links.Last,
				Next:  links.Next,
				Prev:  links.Prev,
			},
			Meta: listMeta{
				Limit: st.PageSize,
				Total: st.TotalItems,
				Count: len(records),
				Self:  links.Self,
			},
		})
	}
}

func (h *ResourceHandler[T, C, U]) Show() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := h.pathID(w, r)
		if !ok {
			return
		}
		v, err := h.svc.Get(r.Context(), id)
		if err != nil {
			respondError(w, r, h.logger, err)
			return
		}
		h.writeRecord(w, http.StatusOK, v)
	}
}

func (h *ResourceHandler[T, C, U]) Create() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in C
		if err := decodeBody(w, r, &in, false); err != nil {
			writeError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid JSON body", nil)
			return
		}
		v, err := h.svc.Create(r.Context(), in)
		if err != nil {
			respondError(w, r, h.logger, err)
			return
		}
		h.writeRecord(w, http.StatusCreated, v)
	}
}

func (h *ResourceHandler[T, C, U]) Update() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := h.pathID(w, r)
		if !ok {
			return
		}
		var in U
		if err := decodeBody(w, r, &in, true); err != nil {
			writeError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid JSON body", nil)
			return
		}
		v, err := h.svc.Update(r.Context(), id, in)
		if err != nil {
			respondError(w, r, h.logger, err)
			return
		}
		h.writeRecord(w, http.StatusOK, v)
	}
}

// Delete responds with the record as it was before deletion.
func (h *ResourceHandler[T, C, U]) Delete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := h.pathID(w, r)
		if !ok {
			return
		}
		v, err := h.svc.Delete(r.Context(), id)
		if err != nil {
			respondError(w, r, h.logger, err)
			return
		}
		h.writeRecord(w, http.StatusOK, v)
	}
}

func (h *ResourceHandler[T, C, U]) writeRecord(w http.ResponseWriter, status int, v *T) {
	writeJSON(w, status, map[string]any{
		"data": map[string]*blog.Record{h.singular: h.svc.Serialize(v, true)},
	})
}

func (h *ResourceHandler[T, C, U]) pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid "+h.singular+" id", map[string]string{"id": raw})
		return 0, false
	}
	return id, true
}

func (h *ResourceHandler[T, C, U]) urlGenerator(r *http.Request) pagination.URLGenerator {
	base := h.baseURL
	if base == nil {
		base = pagination.RequestBase(r)
	}
	return pagination.AbsoluteURLGenerator{Base: base}
}

// decodeBody reads a JSON object into dst. An empty body is accepted only
// when allowEmpty is set.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any, allowEmpty bool) error {
	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(dst)
	if errors.Is(err, io.EOF) && allowEmpty {
		return nil
	}
	return err
}
