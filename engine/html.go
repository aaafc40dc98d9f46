package engine

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/dmitrymomot/notifykit/notify"
)

// HTML renders messages as an embeddable markup fragment: an unordered list
// with per-type CSS classes, left for the application's stylesheet to theme.
type HTML struct {
	containerClass string
	itemClass      string
}

// NewHTML creates an HTML engine with default class names.
func NewHTML() *HTML {
	return &HTML{
		containerClass: "notifications",
		itemClass:      "notification",
	}
}

// Setup accepts "container" and "class" string options overriding the CSS
// class names.
func (e *HTML) Setup(config map[string]any) error {
	container, err := stringOption(config, "container", e.containerClass)
	if err != nil {
		return err
	}
	item, err := stringOption(config, "class", e.itemClass)
	if err != nil {
		return err
	}
	e.containerClass = container
	e.itemClass = item
	return nil
}

// Render returns a template.HTML fragment, or an empty fragment for an empty
// list. Message text is HTML-escaped; extra params are ignored.
func (e *HTML) Render(_ Context, messages []notify.Message, _ Rules, _ ...any) any {
	if len(messages) == 0 {
		return template.HTML("")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "<ul class=%q>", e.containerClass)
	for _, m := range messages {
		fmt.Fprintf(&b, "<li class=\"%s %s-%s\">%s</li>",
			e.itemClass,
			e.itemClass,
			template.HTMLEscapeString(m.Type),
			template.HTMLEscapeString(m.Text()),
		)
	}
	b.WriteString("</ul>")
	return template.HTML(b.String())
}

// stringOption reads an optional string value from a config map.
func stringOption(config map[string]any, key, fallback string) (string, error) {
	v, ok := config[key]
	if !ok {
		return fallback, nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: %q must be a string, got %T", ErrInvalidOption, key, v)
	}
	return s, nil
}

// intOption reads an optional integer value from a config map, accepting the
// int and float64 shapes produced by YAML and JSON decoders.
func intOption(config map[string]any, key string, fallback int) (int, error) {
	v, ok := config[key]
	if !ok {
		return fallback, nil
	}
	switch n := v.(type) {
	case int:
		return n, nil
	case float64:
		return int(n), nil
	default:
		return 0, fmt.Errorf("%w: %q must be a number, got %T", ErrInvalidOption, key, v)
	}
}
