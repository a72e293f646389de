package middleware

import (
	"net/http"
	"time"

	"github.com/alexedwards/scs/v2"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// formIDKey es la clave de sesión con el id del formulario de reserva
const formIDKey = "booking_form_id"

// NewSessionManager crea el manejador de sesiones en memoria
func NewSessionManager(lifetime time.Duration, secure bool) *scs.SessionManager {
	sm := scs.New()
	sm.Lifetime = lifetime
	sm.Cookie.Name = "listing_session"
	sm.Cookie.HttpOnly = true
	sm.Cookie.SameSite = http.SameSiteLaxMode
	sm.Cookie.Secure = secure
	return sm
}

// FormID devuelve el id de formulario de la sesión, creando uno si no hay.
// Requiere que el handler esté envuelto con sm.LoadAndSave.
func FormID(sm *scs.SessionManager, c *gin.Context) string {
	ctx := c.Request.Context()
	if id := sm.GetString(ctx, formIDKey); id != "" {
		return id
	}
	id := uuid.NewString()
	sm.Put(ctx, formIDKey, id)
	return id
}
