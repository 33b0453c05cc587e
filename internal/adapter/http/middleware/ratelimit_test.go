package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	redisStore "github.com/Player1Taco/Liquid-Flow/internal/adapter/storage/redis"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestRateLimiter(t *testing.T) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	defer client.Close()

	store := redisStore.NewRateLimitStore(client)

	r := gin.New()
	r.POST("/intents",
		RateLimiter(store, "intents", RateLimitRule{Limit: 2, Window: time.Minute}, zerolog.Nop()),
		func(c *gin.Context) { c.Status(http.StatusOK) },
	)

	do := func() *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/intents", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("allows up to the limit", func(t *testing.T) {
		w := do()
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "1", w.Header().Get("X-RateLimit-Remaining"))

		w = do()
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
	})

	t.Run("blocks over the limit", func(t *testing.T) {
		w := do()
		assert.Equal(t, http.StatusTooManyRequests, w.Code)
		assert.Contains(t, w.Body.String(), "RATE_001")
		assert.NotEmpty(t, w.Header().Get("Retry-After"))
	})

	t.Run("window reset restores the budget", func(t *testing.T) {
		mr.FastForward(2 * time.Minute)
		w := do()
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("redis outage degrades open", func(t *testing.T) {
		mr.Close()
		w := do()
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
