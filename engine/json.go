package engine

import "github.com/dmitrymomot/notifykit/notify"

// JSON merges queued notifications into a JSON-like value supplied by the
// caller, for API responses that piggyback notifications on their payload.
type JSON struct {
	field string
}

// NewJSON creates a JSON engine writing under the default "notifications"
// field.
func NewJSON() *JSON {
	return &JSON{field: "notifications"}
}

// Setup accepts a "field" string option naming the injection field.
func (e *JSON) Setup(config map[string]any) error {
	field, err := stringOption(config, "field", e.field)
	if err != nil {
		return err
	}
	e.field = field
	return nil
}

// Render merges messages into the first param, treated as the target value:
//
//   - nil target: a new object {field: pairs} is returned;
//   - array: an object {field: pairs} is appended as the last element;
//   - object: pairs are appended to the field's array, which is created (or
//     reset, if the existing value is not an array) as needed;
//   - anything else: the target is returned unaltered and the notifications
//     are dropped, a documented limitation of merging into scalars.
//
// With no messages the target is returned unchanged whatever its shape.
//
// Each message contributes a [type, lastPayload] pair: only the type and the
// final payload value survive into JSON, intermediate options are dropped.
func (e *JSON) Render(_ Context, messages []notify.Message, _ Rules, params ...any) any {
	var target any
	if len(params) > 0 {
		target = params[0]
	}

	if len(messages) == 0 {
		return target
	}

	pairs := make([]any, 0, len(messages))
	for _, m := range messages {
		pairs = append(pairs, []any{m.Type, m.Last()})
	}

	switch t := target.(type) {
	case nil:
		return map[string]any{e.field: pairs}
	case []any:
		return append(t, map[string]any{e.field: pairs})
	case map[string]any:
		if existing, ok := t[e.field].([]any); ok {
			t[e.field] = append(existing, pairs...)
		} else {
			t[e.field] = pairs
		}
		return t
	default:
		return target
	}
}
