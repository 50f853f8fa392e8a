package backend

import "context"

type requestIDKey struct{}

// WithRequestID asocia al contexto el ID de la petición entrante; las llamadas al backend
// lo envían como X-Request-ID. Un id vacío deja el contexto igual.
func WithRequestID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromContext devuelve el ID asociado con WithRequestID, o "".
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
