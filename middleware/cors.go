package middleware

import (
	"net/http"

	gorillaHandlers "github.com/gorilla/handlers"
)

// CORS envuelve el handler con los orígenes permitidos
func CORS(origins []string) func(http.Handler) http.Handler {
	headersOk := gorillaHandlers.AllowedHeaders([]string{"X-Requested-With", "Authorization", "Content-Type", RequestIDHeader})
	originsOk := gorillaHandlers.AllowedOrigins(origins)
	methodsOk := gorillaHandlers.AllowedMethods([]string{"GET", "HEAD", "POST", "OPTIONS"})
	exposedOk := gorillaHandlers.ExposedHeaders([]string{RequestIDHeader})
	return gorillaHandlers.CORS(originsOk, headersOk, methodsOk, exposedOk)
}
