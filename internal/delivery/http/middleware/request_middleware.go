package middleware

import (
	"log/slog"

	deliverycontext "isdn/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// RequestMiddleware tags every request with an ID and a request-scoped
// logger, both propagated through the request context so use cases log with
// the same correlation ID as the HTTP layer.
type RequestMiddleware struct {
	logger *slog.Logger
}

// NewRequestMiddleware creates a new request middleware
func NewRequestMiddleware(logger *slog.Logger) *RequestMiddleware {
	return &RequestMiddleware{logger: logger}
}

// Handle assigns the request ID and injects the scoped logger.
func (m *RequestMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := c.Request().Header.Get(deliverycontext.HeaderXRequestID)
		if requestID == "" {
			requestID = deliverycontext.GetRequestID(c)
		}
		deliverycontext.SetRequestID(c, requestID)
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

		scoped := m.logger.With(slog.String("requestID", requestID))

		ctx := c.Request().Context()
		ctx = deliverycontext.WithRequestID(ctx, requestID)
		ctx = deliverycontext.WithLogger(ctx, scoped)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
