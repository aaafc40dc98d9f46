package engine

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/dmitrymomot/notifykit/notify"
)

// Alertify renders messages as alertify.js log calls. Message types map onto
// alertify's built-in success/error log styles; everything else uses the
// standard style.
type Alertify struct {
	theme   string
	delay   int
	baseURL string
}

// NewAlertify creates an alertify.js engine with the default theme.
func NewAlertify() *Alertify {
	return &Alertify{
		theme:   "default",
		delay:   5000,
		baseURL: "/static/alertify",
	}
}

// Setup accepts "theme" and "base_url" string options and a "delay" duration
// in milliseconds.
func (e *Alertify) Setup(config map[string]any) error {
	theme, err := stringOption(config, "theme", e.theme)
	if err != nil {
		return err
	}
	baseURL, err := stringOption(config, "base_url", e.baseURL)
	if err != nil {
		return err
	}
	delay, err := intOption(config, "delay", e.delay)
	if err != nil {
		return err
	}
	e.theme = theme
	e.baseURL = baseURL
	e.delay = delay
	return nil
}

// Assets declares the alertify script plus core and theme stylesheets.
func (e *Alertify) Assets() Assets {
	return Assets{
		Scripts: []string{e.baseURL + "/alertify.min.js"},
		Styles: []string{
			e.baseURL + "/alertify.core.css",
			e.baseURL + "/alertify." + e.theme + ".css",
		},
	}
}

// Render returns a script fragment firing one log call per message. Asset
// tags are included inline unless the no-assets rule is set.
func (e *Alertify) Render(_ Context, messages []notify.Message, rules Rules, _ ...any) any {
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
		fmt.Fprintf(&b, "alertify.log(\"%s\", \"%s\", %d);",
			template.JSEscapeString(m.Text()),
			logStyle(m.Type),
			e.delay,
		)
	}
	b.WriteString("</script>")
	return template.HTML(b.String())
}

// logStyle maps message types to alertify's built-in log styles.
func logStyle(typ string) string {
	switch typ {
	case notify.TypeSuccess:
		return "success"
	case notify.TypeError, notify.TypeWarning:
		return "error"
	default:
		return ""
	}
}
