// Package engine defines the pluggable rendering contract and the built-in
// notification engines.
//
// An Engine turns the merged message list into one output format. Five
// engines ship with notifykit:
//
//   - html: embeddable markup fragment with per-type CSS classes
//   - json: injects [type, payload] pairs into a caller-supplied JSON value
//   - humane: humane.js toast script fragment
//   - alertify: alertify.js log script fragment
//   - datastar: SSE element patches for DataStar frontends
//
// # Registry
//
// Engines are resolved by name through a Registry built exactly once at
// startup:
//
//	registry := engine.NewRegistry()
//	registry.Register("custom", func() engine.Engine { return newCustom() })
//	if err := registry.Build(engine.Config{
//		"html": true,
//		"humane": map[string]any{"theme": "bigbox"},
//	}); err != nil {
//		log.Fatal(err)
//	}
//
// An unresolvable name fails Build: the process must not start with a
// dangling registration. An empty config registers the html engine. After
// Build the registry is immutable and safe for concurrent readers.
//
// Registrations may also come from a YAML file under the "notifications" key
// via LoadConfig; externally-loaded entries override programmatic ones on
// merge.
//
// # Assets
//
// Engines implementing AssetProvider contribute script/style references to
// the registry's de-duplicated Bundle, consumed by the application's asset
// pipeline.
package engine
