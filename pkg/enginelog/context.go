package enginelog

import "context"

type contextKey string

const runFieldsKey contextKey = "run_fields"

// RunFields are the structured fields automatically attached to every log
// record emitted while exploring one problem instance.
type RunFields struct {
	RunID     string // opaque id for this process invocation
	Problem   string // the instance name passed to oracle.Select
	Iteration *int   // current exploration-loop iteration, nil before the loop starts
	Component string // e.g. "explorer", "compact", "oracle"
}

// WithRunFields enriches ctx with fields, merging over whatever was already
// set. Later non-zero values win; zero values leave the existing field
// untouched.
func WithRunFields(ctx context.Context, fields RunFields) context.Context {
	existing := FromContext(ctx)
	return context.WithValue(ctx, runFieldsKey, mergeFields(existing, fields))
}

// FromContext retrieves the run fields set on ctx, or the zero value if none.
func FromContext(ctx context.Context) RunFields {
	if f, ok := ctx.Value(runFieldsKey).(RunFields); ok {
		return f
	}
	return RunFields{}
}

func mergeFields(existing, next RunFields) RunFields {
	result := existing
	if next.RunID != "" {
		result.RunID = next.RunID
	}
	if next.Problem != "" {
		result.Problem = next.Problem
	}
	if next.Iteration != nil {
		result.Iteration = next.Iteration
	}
	if next.Component != "" {
		result.Component = next.Component
	}
	return result
}

// Ptr is a convenience for inlining *int fields, e.g.
// enginelog.WithRunFields(ctx, enginelog.RunFields{Iteration: enginelog.Ptr(3)}).
func Ptr[T any](v T) *T {
	return &v
}
