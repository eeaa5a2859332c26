package httpx

import "context"

type ctxKey string

// CtxKeyUserID carries the authenticated caller's id once a guard has
// resolved the request. Rate limiting keys off it when present.
const CtxKeyUserID ctxKey = "user_id"

func userIDFromCtx(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyUserID).(string); ok {
		return v
	}
	return ""
}
