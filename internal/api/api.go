package api

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"smarthome/internal/db"
	k "smarthome/internal/kafka"

	"github.com/go-chi/chi/v5"
)

const (
	WelcomeMessage      = "Welcome to gree Smart Home..."
	InternalErrorPage   = "<h1>Server Error (500)</h1>"
	contentTypeHTML     = "text/html; charset=utf-8"
	defaultNotFoundCode = http.StatusNotFound
)

//go:generate mockery --name repository --inpackage --with-expecter --filename mock_repository_test.go
type repository interface {
	GetUser(ctx context.Context, key string) (db.Result[db.User], error)
	GetUserToken(ctx context.Context, key string) (db.Result[db.UserToken], error)
	GetDevice(ctx context.Context, key string) (db.Result[db.Device], error)
	GetSensor(ctx context.Context, key string) (db.Result[db.Sensor], error)
	GetSensorType(ctx context.Context, key string) (db.Result[db.SensorType], error)
	GetDatapoint(ctx context.Context, key string) (db.Result[db.Datapoint], error)
	Ping(ctx context.Context) error
}

type renderer interface {
	Render(w io.Writer, name string, data any) error
}

type recorder interface {
	Record(ctx context.Context, event k.LookupEvent)
}

type API struct {
	DB             repository
	renderer       renderer
	events         recorder
	notFoundStatus int
	now            func() time.Time
}

type Config struct {
	DB       repository
	Renderer renderer
	// Events receives one event per lookup. Optional.
	Events recorder
	// NotFoundStatus is the status sent with the not-found message. Zero means 404.
	NotFoundStatus int
}

func New(cfg Config) *API {
	status := cfg.NotFoundStatus
	if status == 0 {
		status = defaultNotFoundCode
	}
	return &API{
		DB:             cfg.DB,
		renderer:       cfg.Renderer,
		events:         cfg.Events,
		notFoundStatus: status,
		now:            time.Now,
	}
}

func (a *API) Index(w http.ResponseWriter, r *http.Request) {
	writeHTML(w, http.StatusOK, []byte(WelcomeMessage))
}

func (a *API) Health(w http.ResponseWriter, r *http.Request) {
	if err := a.DB.Ping(r.Context()); err != nil {
		slog.ErrorContext(r.Context(), "Health check failed", "error", err)
		http.Error(w, "database unavailable", http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

func (a *API) GetUser(w http.ResponseWriter, r *http.Request) {
	lookup(a, EntityUser, a.DB.GetUser)(w, r)
}

func (a *API) GetUserToken(w http.ResponseWriter, r *http.Request) {
	lookup(a, EntityUserToken, a.DB.GetUserToken)(w, r)
}

func (a *API) GetDevice(w http.ResponseWriter, r *http.Request) {
	lookup(a, EntityDevice, a.DB.GetDevice)(w, r)
}

func (a *API) GetSensor(w http.ResponseWriter, r *http.Request) {
	lookup(a, EntitySensor, a.DB.GetSensor)(w, r)
}

func (a *API) GetSensorType(w http.ResponseWriter, r *http.Request) {
	lookup(a, EntitySensorType, a.DB.GetSensorType)(w, r)
}

func (a *API) GetDatapoint(w http.ResponseWriter, r *http.Request) {
	lookup(a, EntityDatapoint, a.DB.GetDatapoint)(w, r)
}

// lookup serves one keyed read. Only the not-found outcome is handled here;
// duplicate keys, malformed keys and store failures all become a bare 500.
func lookup[T any](a *API, e Entity, get func(context.Context, string) (db.Result[T], error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		key := lookupKey(r, e.Param)

		result, err := get(ctx, key)
		if err != nil {
			slog.ErrorContext(ctx, "Lookup failed", "entity", e.Name, "key", key, "error", err)
			a.record(ctx, e, key, k.OutcomeError)
			writeHTML(w, http.StatusInternalServerError, []byte(InternalErrorPage))
			return
		}
		if !result.Found {
			a.record(ctx, e, key, k.OutcomeNotFound)
			writeHTML(w, a.notFoundStatus, []byte(e.NotFoundMessage()))
			return
		}

		var buf bytes.Buffer
		if err := a.renderer.Render(&buf, e.Template, result.Record); err != nil {
			slog.ErrorContext(ctx, "Render failed", "entity", e.Name, "key", key, "error", err)
			a.record(ctx, e, key, k.OutcomeError)
			writeHTML(w, http.StatusInternalServerError, []byte(InternalErrorPage))
			return
		}
		a.record(ctx, e, key, k.OutcomeFound)
		writeHTML(w, http.StatusOK, buf.Bytes())
	}
}

// lookupKey returns the decoded key. chi matches on the escaped path when the
// request has one, which leaves escapes such as %2F in the parameter.
func lookupKey(r *http.Request, param string) string {
	key := chi.URLParam(r, param)
	if r.URL.RawPath == "" {
		return key
	}
	if decoded, err := url.PathUnescape(key); err == nil {
		return decoded
	}
	return key
}

func (a *API) record(ctx context.Context, e Entity, key, outcome string) {
	if a.events == nil {
		return
	}
	a.events.Record(ctx, k.LookupEvent{
		Timestamp: a.now().UnixMilli(),
		Entity:    e.Name,
		Key:       key,
		Outcome:   outcome,
	})
}

func writeHTML(w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", contentTypeHTML)
	w.WriteHeader(status)
	w.Write(body)
}
