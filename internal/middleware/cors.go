package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// Cors lets browser dashboards poll the status endpoints.
func Cors() Middleware {
	options := cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
		},
	}
	return cors.New(options).Handler
}
