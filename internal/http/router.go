package httpapi

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/bkhatib/fft-service/internal/config"
	"github.com/bkhatib/fft-service/internal/http/handlers"
	"github.com/bkhatib/fft-service/internal/http/middleware"

	_ "github.com/bkhatib/fft-service/docs"
)

func Router(cfg config.Config, classifier handlers.Categorizer, logger zerolog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))

	corsCfg := cors.Config{
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.APIKeyHeader, middleware.RequestIDHeader},
		MaxAge:       12 * time.Hour,
	}
	origins := strings.TrimSpace(cfg.CORSAllowed)
	if origins == "" || origins == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				corsCfg.AllowOrigins = append(corsCfg.AllowOrigins, o)
			}
		}
	}
	r.Use(cors.New(corsCfg))

	h := &handlers.Handler{
		Classifier: classifier,
		Validator:  handlers.NewRequestValidator(),
		Logger:     logger,
	}

	r.GET("/health", h.Health)
	r.POST("/categorize", middleware.APIKey(cfg.APIKey), h.Categorize)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
