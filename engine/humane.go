package engine

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/dmitrymomot/notifykit/notify"
)

// Humane renders messages as humane.js toast calls. Each message becomes a
// humane.log invocation classed by its type so the active theme can style
// severities differently.
type Humane struct {
	theme   string
	timeout int
	baseURL string
}

// NewHumane creates a humane.js engine with the libnotify theme.
func NewHumane() *Humane {
	return &Humane{
		theme:   "libnotify",
		timeout: 2500,
		baseURL: "/static/humane",
	}
}

// Setup accepts "theme" and "base_url" string options and a "timeout"
// duration in milliseconds.
func (e *Humane) Setup(config map[string]any) error {
	theme, err := stringOption(config, "theme", e.theme)
	if err != nil {
		return err
	}
	baseURL, err := stringOption(config, "base_url", e.baseURL)
	if err != nil {
		return err
	}
	timeout, err := intOption(config, "timeout", e.timeout)
	if err != nil {
		return err
	}
	e.theme = theme
	e.baseURL = baseURL
	e.timeout = timeout
	return nil
}

// Assets declares the humane.js script and the configured theme stylesheet.
func (e *Humane) Assets() Assets {
	return Assets{
		Scripts: []string{e.baseURL + "/humane.min.js"},
		Styles:  []string{e.baseURL + "/themes/" + e.theme + ".css"},
	}
}

// Render returns a script fragment firing one toast per message. Asset tags
// are included inline unless the no-assets rule is set.
func (e *Humane) Render(_ Context, messages []notify.Message, rules Rules, _ ...any) any {
	if len(messages) == 0 {
		return template.HTML("")
	}

	var b strings.Builder
	if !rules.Has(RuleNoAssets) {
		assets := e.Assets()
		for _, s := range assets.Styles {
			fmt.Fprintf(&b, "<link rel=\"stylesheet\" href=%q>", s)
		}
		for _, s := range assets.Scripts {
			fmt.Fprintf(&b, "<script src=%q></script>", s)
		}
	}

	b.WriteString("<script>")
	for _, m := range messages {
		fmt.Fprintf(&b, "humane.log(\"%s\", {addnCls: \"humane-%s-%s\", timeout: %d});",
			template.JSEscapeString(m.Text()),
			e.theme,
			template.JSEscapeString(m.Type),
			e.timeout,
		)
	}
	b.WriteString("</script>")
	return template.HTML(b.String())
}
