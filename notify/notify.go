package notify

import "context"

// Notify queues a typed message for the current request. The first argument
// after the type may be an engine-specific options map; the remaining
// arguments are the message payload.
//
// Notify never blocks and never fails. Calls are silently dropped when:
//   - the type contains a character outside [A-Za-z0-9_-] (such a type must
//     never reach the persisted flash channel),
//   - the type is "debug" and the environment is not development-like,
//   - the context carries no queue (the call happened outside a request).
//
// Notifications are an auxiliary channel; a dropped message is never an error.
func Notify(ctx context.Context, typ string, args ...any) {
	if !ValidType(typ) {
		return
	}
	if typ == TypeDebug && !IsDevelopment(ctx) {
		return
	}
	q, ok := QueueFromContext(ctx)
	if !ok {
		return
	}
	q.Push(NewMessage(typ, args...))
}

// Info queues an informational message.
func Info(ctx context.Context, text string) { Notify(ctx, TypeInfo, text) }

// Success queues a success message.
func Success(ctx context.Context, text string) { Notify(ctx, TypeSuccess, text) }

// Warning queues a warning message.
func Warning(ctx context.Context, text string) { Notify(ctx, TypeWarning, text) }

// Error queues an error message.
func Error(ctx context.Context, text string) { Notify(ctx, TypeError, text) }

// Debug queues a debug message. Dropped outside development.
func Debug(ctx context.Context, text string) { Notify(ctx, TypeDebug, text) }
