// Command demo runs a minimal post/redirect/get application wired with
// notifykit: an HTML form queues a notification, redirects, and the follow-up
// page renders it from the flash cookie.
package main

import (
	"encoding/json"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/dmitrymomot/notifykit"
	"github.com/dmitrymomot/notifykit/dispatch"
	"github.com/dmitrymomot/notifykit/engine"
	"github.com/dmitrymomot/notifykit/flash"
	"github.com/dmitrymomot/notifykit/notify"
)

type appConfig struct {
	Addr          string `env:"ADDR" envDefault:":8080"`
	Env           string `env:"APP_ENV" envDefault:"development"`
	CookieSecrets string `env:"NOTIFY_COOKIE_SECRETS" envDefault:"insecure-demo-secret-0123456789abcdef"`
	EnginesFile   string `env:"NOTIFY_ENGINES_FILE" envDefault:""`
}

func main() {
	_ = godotenv.Load()

	var cfg appConfig
	if err := env.Parse(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log := newLogger(cfg.Env)

	store, err := flash.NewCookieStore(strings.Split(cfg.CookieSecrets, ","))
	if err != nil {
		log.Error("flash store", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Programmatic registrations; an external YAML file overrides on merge.
	engines := engine.Config{"html": true, "json": true}
	if cfg.EnginesFile != "" {
		external, err := engine.LoadConfig(cfg.EnginesFile)
		if err != nil {
			log.Error("engine config", slog.String("error", err.Error()))
			os.Exit(1)
		}
		engines = engines.Merge(external)
	}

	registry := notifykit.NewRegistry()
	if err := registry.Build(engines); err != nil {
		log.Error("engine registry", slog.String("error", err.Error()))
		os.Exit(1)
	}

	d := notifykit.NewDispatcher(registry,
		dispatch.WithStore(store),
		dispatch.WithLogger(log),
		dispatch.WithHook(func(rctx engine.Context, msgs []notify.Message) {
			log.DebugContext(rctx, "rendering notifications",
				slog.Int("count", len(msgs)),
				slog.String("path", rctx.Request().URL.Path),
			)
		}),
	)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(notifykit.Middleware(store,
		flash.WithEnvironment(cfg.Env),
		flash.WithLogger(log),
	))

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		fragment, _ := d.Render(w, req, "html").(template.HTML)
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_ = page.Execute(w, fragment)
	})

	r.Post("/submit", func(w http.ResponseWriter, req *http.Request) {
		name := req.FormValue("name")
		if name == "" {
			notifykit.Error(req.Context(), "Name must not be empty.")
		} else {
			notifykit.Success(req.Context(), "Hello, "+name+"!")
			notifykit.Debug(req.Context(), "form handled by /submit")
		}
		http.Redirect(w, req, "/", http.StatusSeeOther)
	})

	r.Get("/api/state", func(w http.ResponseWriter, req *http.Request) {
		payload := d.Render(w, req, "json", map[string]any{"ok": true})
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(payload)
	})

	log.Info("demo listening", slog.String("addr", cfg.Addr), slog.String("env", cfg.Env))
	if err := http.ListenAndServe(cfg.Addr, r); err != nil {
		log.Error("server", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// newLogger mirrors the usual environment split: readable text at debug
// level in development, JSON at info level everywhere else.
func newLogger(environment string) *slog.Logger {
	if environment == notify.EnvDevelopment || environment == "dev" {
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
}

var page = template.Must(template.New("page").Parse(`<!doctype html>
<html>
<head><title>notifykit demo</title></head>
<body>
  {{.}}
  <form method="post" action="/submit">
    <input name="name" placeholder="Your name">
    <button type="submit">Greet</button>
  </form>
</body>
</html>
`))
