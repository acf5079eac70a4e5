package server

import (
	"net/http"
	"time"

	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/yigit/eamcet-predictor/internal/app/models/dto"
	"github.com/yigit/eamcet-predictor/internal/config"
	"github.com/yigit/eamcet-predictor/internal/middleware"
	"github.com/yigit/eamcet-predictor/internal/pkg/helpers"
)

// NewHandler wraps the router with CORS and, when enabled, per-IP rate limiting
func NewHandler(router http.Handler, cfg *config.Config, lgr zerolog.Logger) http.Handler {
	handler := router

	if cfg.RateLimit.Enabled {
		window := helpers.ParseDuration(cfg.RateLimit.Window, time.Minute)
		handler = httprate.Limit(
			cfg.RateLimit.Requests,
			window,
			httprate.WithKeyFuncs(httprate.KeyByIP),
			httprate.WithLimitHandler(rateLimited),
		)(handler)
		lgr.Info().Int("requests", cfg.RateLimit.Requests).Dur("window", window).Msg("Rate limiting enabled")
	}

	return cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedMethods: cfg.CORS.AllowedMethods,
		AllowedHeaders: []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader},
		MaxAge:         300,
	})(handler)
}

func rateLimited(w http.ResponseWriter, _ *http.Request) {
	body, _ := json.Marshal(dto.ErrorResponse{
		Error:   "Too Many Requests",
		Details: "Rate limit exceeded, please retry later",
		Code:    dto.ErrorCodeRateLimited,
	})
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusTooManyRequests)
	_, _ = w.Write(body)
}
