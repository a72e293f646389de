package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader es el header con el id de la request
const RequestIDHeader = "X-Request-ID"

// requestIDKey es la clave en el contexto de gin
const requestIDKey = "request_id"

// RequestID asigna un id a cada request. Si el cliente ya manda uno se
// respeta.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// GetRequestID devuelve el id asignado por RequestID
func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
