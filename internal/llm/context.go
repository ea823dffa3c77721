package llm

import "context"

type contextKey string

const callerKey contextKey = "llm_caller"

type callerInfo struct {
	learnerID string
	purpose   string
}

// WithCaller attaches the requesting learner and a purpose label to the
// context for event logging.
func WithCaller(ctx context.Context, learnerID, purpose string) context.Context {
	return context.WithValue(ctx, callerKey, callerInfo{learnerID: learnerID, purpose: purpose})
}

// CallerFrom extracts the learner id and purpose label from the context.
func CallerFrom(ctx context.Context) (learnerID, purpose string) {
	if v, ok := ctx.Value(callerKey).(callerInfo); ok {
		return v.learnerID, v.purpose
	}
	return "", "unknown"
}
