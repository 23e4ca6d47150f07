package httpx

type ctxKey string

// CtxKeyUserID carries the authenticated account id once the principal has
// been resolved. Used by rate limiting to key buckets per user.
const CtxKeyUserID ctxKey = "user_id"
