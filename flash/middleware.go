package flash

import (
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/notifykit/notify"
)

// MiddlewareOption configures the flash middleware.
type MiddlewareOption func(*middlewareConfig)

type middlewareConfig struct {
	env string
	log *slog.Logger
}

// WithEnvironment sets the application environment on every request context,
// which gates debug-type messages.
func WithEnvironment(env string) MiddlewareOption {
	return func(c *middlewareConfig) {
		c.env = env
	}
}

// WithLogger sets the logger for best-effort failure reporting.
func WithLogger(log *slog.Logger) MiddlewareOption {
	return func(c *middlewareConfig) {
		if log != nil {
			c.log = log
		}
	}
}

// Middleware installs a fresh notification queue on each request and runs the
// redirect migration at response-finalization time. It composes with any
// net/http router.
//
// The migration decision is taken inside WriteHeader, immediately before the
// status line is transmitted: that is the first moment the final status class
// is known, and the last moment a Set-Cookie header can still be added.
func Middleware(store Store, opts ...MiddlewareOption) func(http.Handler) http.Handler {
	cfg := middlewareConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := notify.WithQueue(r.Context(), notify.NewQueue())
			ctx = WithTakeGuard(ctx)
			if cfg.env != "" {
				ctx = notify.WithEnvironment(ctx, cfg.env)
			}
			r = r.WithContext(ctx)

			fw := &flashWriter{
				ResponseWriter: w,
				r:              r,
				store:          store,
				log:            cfg.log,
			}
			next.ServeHTTP(fw, r)
		})
	}
}

// flashWriter intercepts the first WriteHeader call to run the flash
// migration before headers flush.
type flashWriter struct {
	http.ResponseWriter
	r           *http.Request
	store       Store
	log         *slog.Logger
	wroteHeader bool
}

func (f *flashWriter) WriteHeader(status int) {
	if !f.wroteHeader {
		f.wroteHeader = true
		Migrate(f.ResponseWriter, f.r, status, f.store, f.log)
	}
	f.ResponseWriter.WriteHeader(status)
}

func (f *flashWriter) Write(b []byte) (int, error) {
	if !f.wroteHeader {
		f.WriteHeader(http.StatusOK)
	}
	return f.ResponseWriter.Write(b)
}

func (f *flashWriter) Flush() {
	if fl, ok := f.ResponseWriter.(http.Flusher); ok {
		fl.Flush()
	}
}

// Unwrap supports http.ResponseController.
func (f *flashWriter) Unwrap() http.ResponseWriter {
	return f.ResponseWriter
}
