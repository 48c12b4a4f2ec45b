package controllers

import (
	"context"
	"net/http"
	"time"

	"hotelops/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// Pinger kiểm tra kết nối tới kho dữ liệu
type Pinger interface {
	PingContext(ctx context.Context) error
}

type HealthController struct {
	DB    Pinger
	Redis *redis.Client
}

func NewHealthController(db Pinger, redisCli *redis.Client) HealthController {
	return HealthController{DB: db, Redis: redisCli}
}

func (h HealthController) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}

func (h HealthController) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	checks := gin.H{"database": "ok", "redis": "disabled"}
	healthy := true
	if h.DB != nil {
		if err := h.DB.PingContext(ctx); err != nil {
			checks["database"] = err.Error()
			healthy = false
		}
	}
	if h.Redis != nil {
		checks["redis"] = "ok"
		if err := h.Redis.Ping(ctx).Err(); err != nil {
			checks["redis"] = err.Error()
			healthy = false
		}
	}

	if !healthy {
		c.JSON(http.StatusServiceUnavailable, response.Response{Code: 0, Mess: "Không khỏe", Data: checks})
		return
	}
	response.Success(c, checks)
}
