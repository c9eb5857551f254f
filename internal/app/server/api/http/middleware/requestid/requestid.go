package requestid

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"
)

// Header carries the request id; an inbound value is kept, otherwise a
// fresh one is generated.
const Header = "X-Request-ID"

type contextKey string

const requestIDKey contextKey = "requestID"

func Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		id := ctx.Header(Header)
		if id == "" {
			id = uuid.NewString()
		}
		ctx.SetHeader(Header, id)
		next(huma.WithContext(ctx, context.WithValue(ctx.Context(), requestIDKey, id)))
	}
}

func FromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
