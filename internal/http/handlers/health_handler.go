// README: Liveness and dependency status handlers.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type HealthHandler struct {
	db    *pgxpool.Pool
	redis *redis.Client
}

func NewHealthHandler(db *pgxpool.Pool, rdb *redis.Client) *HealthHandler {
	return &HealthHandler{db: db, redis: rdb}
}

// Root handles GET /.
func (h *HealthHandler) Root(c *gin.Context) {
	writeJSON(c, http.StatusOK, gin.H{"message": "AI Travel Assistant Backend running"})
}

// Status handles GET /test and reports per-dependency health without
// failing the request when a dependency is down.
func (h *HealthHandler) Status(c *gin.Context) {
	ctx := c.Request.Context()

	dbStatus := "ok"
	if h.db == nil {
		dbStatus = "unavailable"
	} else if err := h.db.Ping(ctx); err != nil {
		dbStatus = "unavailable"
	}

	redisStatus := "ok"
	if h.redis == nil {
		redisStatus = "unavailable"
	} else if err := h.redis.Ping(ctx).Err(); err != nil {
		redisStatus = "unavailable"
	}

	writeJSON(c, http.StatusOK, gin.H{
		"backend":  "running",
		"database": dbStatus,
		"redis":    redisStatus,
	})
}
