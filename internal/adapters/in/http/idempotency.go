package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"fooddelivery/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

const (
	IdempotencyKeyHeader      = "Idempotency-Key"
	IdempotencyReplayedHeader = "Idempotent-Replayed"

	idempotencyLockTTL = 30 * time.Second
)

// storedResponse is the cached outcome of a request.
type storedResponse struct {
	Status      int    `json:"status"`
	ContentType string `json:"contentType"`
	Body        []byte `json:"body"`
}

// Idempotency replays the stored response of a POST that carries an
// Idempotency-Key already seen within ttl. While the first request with a key is
// running, others with the same key get 409. Responses with status 5xx are not
// stored. Requests pass through untouched when Redis is unavailable.
func Idempotency(client redis.UniversalClient, ttl time.Duration, logger *slog.Logger) echo.MiddlewareFunc {
	logger = logger.With("component", "idempotency")

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			key := req.Header.Get(IdempotencyKeyHeader)
			if req.Method != http.MethodPost || key == "" {
				return next(c)
			}

			ctx := req.Context()
			cacheKey := "idempotency:" + req.Method + ":" + req.URL.Path + ":" + key
			lockKey := cacheKey + ":lock"

			cached, err := client.Get(ctx, cacheKey).Bytes()
			switch {
			case err == nil:
				var stored storedResponse
				if err = json.Unmarshal(cached, &stored); err == nil {
					c.Response().Header().Set(IdempotencyReplayedHeader, "true")
					return c.Blob(stored.Status, stored.ContentType, stored.Body)
				}
				logger.WarnContext(ctx, "dropping unreadable cached response", "key", key, "error", err)
			case !errors.Is(err, redis.Nil):
				logger.WarnContext(ctx, "idempotency cache unavailable", "error", err)
				return next(c)
			}

			acquired, err := client.SetNX(ctx, lockKey, "1", idempotencyLockTTL).Result()
			if err != nil {
				logger.WarnContext(ctx, "idempotency cache unavailable", "error", err)
				return next(c)
			}
			if !acquired {
				return c.JSON(http.StatusConflict, servers.Error{
					Code:    http.StatusConflict,
					Message: "A request with this Idempotency-Key is in progress",
				})
			}
			defer client.Del(ctx, lockKey)

			recorder := &responseRecorder{ResponseWriter: c.Response().Writer}
			c.Response().Writer = recorder

			if err = next(c); err != nil {
				return err
			}

			status := c.Response().Status
			if status >= http.StatusInternalServerError {
				return nil
			}

			payload, err := json.Marshal(storedResponse{
				Status:      status,
				ContentType: c.Response().Header().Get(echo.HeaderContentType),
				Body:        recorder.body.Bytes(),
			})
			if err != nil {
				return nil
			}
			if err = client.Set(ctx, cacheKey, payload, ttl).Err(); err != nil {
				logger.WarnContext(ctx, "failed to store idempotent response", "key", key, "error", err)
			}
			return nil
		}
	}
}

// responseRecorder copies the body written to the client.
type responseRecorder struct {
	http.ResponseWriter
	body bytes.Buffer
}

func (r *responseRecorder) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}
