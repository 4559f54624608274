package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// SetupCORS restricts cross-origin access to the storefront domain. The
// storefront's preflight handling expects a 200, not the default 204.
func (mw *Middleware) SetupCORS() *cors.Cors {
	return cors.New(cors.Options{
		AllowedOrigins:       mw.cfg.Cors.AllowOrigins,
		AllowedMethods:       mw.cfg.Cors.AllowMethods,
		AllowedHeaders:       mw.cfg.Cors.AllowHeaders,
		ExposedHeaders:       mw.cfg.Cors.ExposedHeaders,
		AllowCredentials:     mw.cfg.Cors.AllowCredentials,
		OptionsSuccessStatus: http.StatusOK,
	})
}
