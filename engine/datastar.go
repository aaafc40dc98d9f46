package engine

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/starfederation/datastar-go/datastar"

	"github.com/dmitrymomot/notifykit/notify"
)

// DataStar pushes messages to DataStar-driven frontends as SSE element
// patches. Output goes straight through the response writer, so Render
// returns nil.
type DataStar struct {
	selector string
	mode     datastar.ElementPatchMode
}

// NewDataStar creates a DataStar engine appending into #notifications.
func NewDataStar() *DataStar {
	return &DataStar{
		selector: "#notifications",
		mode:     datastar.ElementPatchModeAppend,
	}
}

// Setup accepts "selector" and "mode" string options; mode is one of the
// DataStar element patch modes (append, prepend, inner, outer, ...).
func (e *DataStar) Setup(config map[string]any) error {
	selector, err := stringOption(config, "selector", e.selector)
	if err != nil {
		return err
	}
	mode, err := stringOption(config, "mode", string(e.mode))
	if err != nil {
		return err
	}
	e.selector = selector
	e.mode = datastar.ElementPatchMode(mode)
	return nil
}

// Render patches one toast element per message into the configured target.
// Patch failures mean the client went away; they are not surfaced because
// notification delivery is best-effort.
func (e *DataStar) Render(rctx Context, messages []notify.Message, _ Rules, _ ...any) any {
	if len(messages) == 0 {
		return nil
	}

	var b strings.Builder
	for _, m := range messages {
		fmt.Fprintf(&b, "<div class=\"toast toast-%s\">%s</div>",
			template.HTMLEscapeString(m.Type),
			template.HTMLEscapeString(m.Text()),
		)
	}

	sse := datastar.NewSSE(rctx.ResponseWriter(), rctx.Request())
	_ = sse.PatchElements(b.String(),
		datastar.WithSelector(e.selector),
		datastar.WithMode(e.mode),
	)
	return nil
}
