package config

import (
	"time"

	"hotelops/jobs"
	"hotelops/middleware"
	"hotelops/services"
	"hotelops/services/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/robfig/cron/v3"
)

// InitApp tạo router với các middleware chung, melody cho /ws và cron theo giờ khách sạn
func InitApp(cfg *Config, log *logger.ZapLogger) (*gin.Engine, *melody.Melody, *cron.Cron, error) {
	if cfg.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	configCors := cors.DefaultConfig()
	configCors.AddAllowHeaders("Authorization", "X-Session-ID")
	configCors.AddExposeHeaders("X-Session-ID")
	configCors.AllowCredentials = true
	configCors.AllowAllOrigins = false
	configCors.AllowOriginFunc = func(origin string) bool {
		return true
	}
	router.Use(cors.New(configCors))

	if err := router.SetTrustedProxies(nil); err != nil {
		return nil, nil, nil, err
	}

	router.Use(
		middleware.SessionMiddleware(),
		middleware.RequestLogger(log.Zap()),
		middleware.ErrorHandler(),
	)

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, nil, nil, err
	}

	m := melody.New()
	c := cron.New(cron.WithLocation(loc))
	return router, m, c, nil
}

func InitCronJobs(c *cron.Cron, app *services.Container) error {
	return jobs.InitCronJobs(c, app)
}
