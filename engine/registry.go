package engine

import (
	"fmt"
	"slices"
	"strings"
)

// Factory creates a fresh engine instance for one registration.
type Factory func() Engine

// Registry resolves engine names to instances. It is built exactly once at
// application startup and is read-only afterwards, so concurrent requests may
// use it without synchronization.
type Registry struct {
	factories map[string]Factory
	engines   map[string]Engine
	bundle    *Bundle
}

// NewRegistry creates a registry pre-loaded with the built-in engine
// factories: html, json, humane, alertify and datastar. Host applications may
// add their own with Register before Build.
func NewRegistry() *Registry {
	r := &Registry{factories: make(map[string]Factory)}
	r.Register("html", func() Engine { return NewHTML() })
	r.Register("json", func() Engine { return NewJSON() })
	r.Register("humane", func() Engine { return NewHumane() })
	r.Register("alertify", func() Engine { return NewAlertify() })
	r.Register("datastar", func() Engine { return NewDataStar() })
	return r
}

// Register adds a factory under a case-insensitive name. It must be called
// before Build; later calls are ignored because the registry is immutable
// once built.
func (r *Registry) Register(name string, f Factory) {
	if r.engines != nil || name == "" || f == nil {
		return
	}
	r.factories[strings.ToLower(name)] = f
}

// Build instantiates one engine per configured name and aggregates the asset
// bundle. An empty config registers the default html engine. A name with no
// factory is a fatal startup error: the process must not run with a dangling
// registration.
func (r *Registry) Build(cfg Config) error {
	if r.engines != nil {
		return ErrAlreadyBuilt
	}

	if len(cfg) == 0 {
		cfg = Config{"html": true}
	}

	// Sorted for a deterministic asset bundle regardless of map order.
	names := make([]string, 0, len(cfg))
	for name := range cfg {
		names = append(names, strings.ToLower(name))
	}
	slices.Sort(names)

	engines := make(map[string]Engine, len(names))
	bundle := &Bundle{}
	seen := make(map[string]struct{})

	for _, name := range names {
		value := cfg[normalizedKey(cfg, name)]
		if !enabled(value) {
			continue
		}

		factory, ok := r.factories[name]
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownEngine, name)
		}

		eng := factory()
		if options, ok := value.(map[string]any); ok {
			if err := eng.Setup(options); err != nil {
				return fmt.Errorf("%w: engine %q: %w", ErrSetupFailed, name, err)
			}
		}
		engines[name] = eng

		if provider, ok := eng.(AssetProvider); ok {
			assets := provider.Assets()
			for _, s := range assets.Scripts {
				if _, dup := seen[s]; !dup {
					seen[s] = struct{}{}
					bundle.scripts = append(bundle.scripts, s)
				}
			}
			for _, s := range assets.Styles {
				if _, dup := seen[s]; !dup {
					seen[s] = struct{}{}
					bundle.styles = append(bundle.styles, s)
				}
			}
		}
	}

	r.engines = engines
	r.bundle = bundle
	return nil
}

// MustBuild is Build that panics on error, for wiring in main.
func (r *Registry) MustBuild(cfg Config) {
	if err := r.Build(cfg); err != nil {
		panic(fmt.Sprintf("notifykit: engine registry: %v", err))
	}
}

// Get resolves an engine by case-insensitive name.
func (r *Registry) Get(name string) (Engine, bool) {
	eng, ok := r.engines[strings.ToLower(name)]
	return eng, ok
}

// Names returns the sorted names of built engines.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.engines))
	for name := range r.engines {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Bundle returns the combined asset bundle. The same value is returned for
// the lifetime of the process.
func (r *Registry) Bundle() *Bundle {
	if r.bundle == nil {
		return &Bundle{}
	}
	return r.bundle
}

// enabled reports whether a registration value switches the engine on:
// nil and false mean off, everything else (true sentinel or a config map)
// means on.
func enabled(value any) bool {
	if value == nil {
		return false
	}
	if b, ok := value.(bool); ok {
		return b
	}
	return true
}

// normalizedKey finds the original config key matching the lowercased name.
func normalizedKey(cfg Config, lower string) string {
	for key := range cfg {
		if strings.ToLower(key) == lower {
			return key
		}
	}
	return lower
}

// Bundle is the de-duplicated union of all built engines' asset
// declarations, in sorted-engine order. Both collections are read-only:
// callers receive copies.
type Bundle struct {
	scripts []string
	styles  []string
}

// Scripts returns the ordered script references.
func (b *Bundle) Scripts() []string {
	return slices.Clone(b.scripts)
}

// Styles returns the ordered style references.
func (b *Bundle) Styles() []string {
	return slices.Clone(b.styles)
}

// Empty reports whether no engine declared any asset.
func (b *Bundle) Empty() bool {
	return len(b.scripts) == 0 && len(b.styles) == 0
}
