package controller

import (
	"fmt"
	"net/http"
	"time"

	"sportshub-recruit-api/pkg/requestid"

	"github.com/google/uuid"
	"github.com/labstack/echo"
	"go.uber.org/zap"
)

// requestID reuses an incoming X-Request-ID or creates one, and puts it on the
// request context so outbound clients forward it.
func requestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			id := req.Header.Get(requestid.Header)
			if id == "" {
				id = uuid.NewString()
			}

			c.Response().Header().Set(requestid.Header, id)
			c.SetRequest(req.WithContext(requestid.With(req.Context(), id)))

			return next(c)
		}
	}
}

func accessLog(log *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			log.Info("request",
				zap.String("request_id", requestid.From(req.Context())),
				zap.String("method", req.Method),
				zap.String("path", req.URL.Path),
				zap.Int("status", c.Response().Status),
				zap.Duration("duration", time.Since(start)))

			return nil
		}
	}
}

func recoverer(log *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					log.Error("panic while handling request",
						zap.String("path", c.Request().URL.Path),
						zap.String("panic", fmt.Sprint(r)),
						zap.Stack("stack"))
					err = c.JSON(http.StatusInternalServerError, errorResponse{"Internal error"})
				}
			}()

			return next(c)
		}
	}
}
