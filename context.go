package tracef

import "context"

type tracerContextKey struct{}

// ContextWithTracer returns a child context carrying the supplied Tracer.
func ContextWithTracer(ctx context.Context, tracer Tracer) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	if tracer == nil {
		return ctx
	}
	return context.WithValue(ctx, tracerContextKey{}, tracer)
}

// TracerFromContext extracts a Tracer from context if present or returns a
// noop.
func TracerFromContext(ctx context.Context) Tracer {
	if ctx == nil {
		return noopTracer{}
	}
	if tracer, ok := ctx.Value(tracerContextKey{}).(Tracer); ok && tracer != nil {
		return tracer
	}
	return noopTracer{}
}

// Ctx extracts a Tracer from context if present or returns a noop.
func Ctx(ctx context.Context) Tracer {
	return TracerFromContext(ctx)
}
