package notify

import "context"

type queueContextKey struct{}

// WithQueue adds a request-scoped queue to the context.
func WithQueue(ctx context.Context, q *Queue) context.Context {
	return context.WithValue(ctx, queueContextKey{}, q)
}

// QueueFromContext retrieves the request-scoped queue from the context.
func QueueFromContext(ctx context.Context) (*Queue, bool) {
	q, ok := ctx.Value(queueContextKey{}).(*Queue)
	return q, ok
}

type envContextKey struct{}

// Environment names recognized by the debug-message policy.
const (
	EnvDevelopment = "development"
	EnvStaging     = "staging"
	EnvProduction  = "production"
)

// WithEnvironment adds the application environment to the context.
func WithEnvironment(ctx context.Context, env string) context.Context {
	return context.WithValue(ctx, envContextKey{}, env)
}

// EnvironmentFromContext retrieves the environment from the context.
func EnvironmentFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	env, _ := ctx.Value(envContextKey{}).(string)
	return env
}

// IsDevelopment checks if the environment from context is development-like.
// Debug messages are only queued in development.
func IsDevelopment(ctx context.Context) bool {
	env := EnvironmentFromContext(ctx)
	return env == EnvDevelopment || env == "dev"
}
