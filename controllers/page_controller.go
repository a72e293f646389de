package controllers

import (
	"errors"
	"net/http"

	"github.com/alexedwards/scs/v2"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"listing-app/domain"
	"listing-app/dto"
	"listing-app/middleware"
	"listing-app/services"
)

// PageController maneja las vistas HTML
type PageController struct {
	catalog    services.CatalogService
	properties services.PropertyService
	bookings   services.BookingService
	sessions   *scs.SessionManager
	logger     *zap.SugaredLogger
}

// NewPageController crea una nueva instancia del controlador
func NewPageController(catalog services.CatalogService, properties services.PropertyService, bookings services.BookingService, sessions *scs.SessionManager, logger *zap.SugaredLogger) *PageController {
	return &PageController{
		catalog:    catalog,
		properties: properties,
		bookings:   bookings,
		sessions:   sessions,
		logger:     logger,
	}
}

// Catalog maneja GET /
func (ctrl *PageController) Catalog(c *gin.Context) {
	properties, err := ctrl.catalog.ListProperties(c.Request.Context())
	if err != nil {
		ctrl.logger.Errorw("Error loading properties", "error", err, "request_id", middleware.GetRequestID(c))
		c.HTML(http.StatusBadGateway, "catalog", gin.H{
			"Title": "Properties",
			"View":  domain.Failed[[]domain.Property](domain.MsgLoadPropertiesFail),
		})
		return
	}

	c.HTML(http.StatusOK, "catalog", gin.H{
		"Title": "Properties",
		"View":  domain.Loaded(properties),
	})
}

// Detail maneja GET /properties/:id
// Muestra la propiedad, sus reviews y el formulario de reserva de la sesión
func (ctrl *PageController) Detail(c *gin.Context) {
	id := domain.PropertyID(c.Param("id"))

	// 1. Propiedad y reviews en paralelo; sin resultados parciales
	detail, err := ctrl.properties.GetPropertyDetail(c.Request.Context(), id)
	if err != nil {
		status, message := ctrl.detailError(c, id, err)
		c.HTML(status, "detail", gin.H{
			"Title": "Property",
			"View":  domain.Failed[domain.PropertyDetail](message),
		})
		return
	}

	// 2. Formulario de la sesión con el total recalculado
	form := ctrl.bookings.FormSnapshot(middleware.FormID(ctrl.sessions, c), detail.Property)

	data := gin.H{
		"Title": detail.Property.Name,
		"View":  domain.Loaded(*detail),
		"Form":  &form,
	}

	// 3. Resumen y política solo si las fechas ya son válidas
	if form.Total > 0 {
		if summary, policy, err := ctrl.bookings.Summary(detail.Property, form.CheckIn, form.CheckOut); err == nil {
			data["Summary"] = &summary
			data["Policy"] = &policy
		}
	}

	c.HTML(http.StatusOK, "detail", data)
}

// Booking maneja POST /properties/:id/booking
// action=update recalcula, action=submit envía. Siempre redirige al detalle
// para que el resultado quede en el formulario (Post/Redirect/Get).
func (ctrl *PageController) Booking(c *gin.Context) {
	id := domain.PropertyID(c.Param("id"))

	var req dto.BookingFormRequest
	if err := c.ShouldBind(&req); err != nil {
		c.HTML(http.StatusBadRequest, "error_page", gin.H{
			"Title":   "Booking",
			"Message": domain.MsgInvalidDates,
		})
		return
	}

	property, err := ctrl.properties.GetProperty(c.Request.Context(), id)
	if err != nil {
		status, message := ctrl.detailError(c, id, err)
		c.HTML(status, "error_page", gin.H{"Title": "Booking", "Message": message})
		return
	}

	formID := middleware.FormID(ctrl.sessions, c)
	input := services.FormInput{CheckIn: req.CheckIn, CheckOut: req.CheckOut, Guests: req.Guests}

	if req.IsSubmit() {
		_, err = ctrl.bookings.SubmitForm(c.Request.Context(), formID, *property, input)
	} else {
		_, err = ctrl.bookings.EditForm(formID, *property, input)
	}
	// Los errores quedan en el estado del formulario y se ven después del redirect
	if services.IsSubmissionInFlight(err) {
		ctrl.logger.Debugf("Booking: submission already in flight for property ID=%s", id)
	}

	c.Redirect(http.StatusSeeOther, "/properties/"+id.String())
}

// Summary maneja GET /properties/:id/summary?checkIn=..&checkOut=..
func (ctrl *PageController) Summary(c *gin.Context) {
	id := domain.PropertyID(c.Param("id"))

	property, err := ctrl.properties.GetProperty(c.Request.Context(), id)
	if err != nil {
		status, message := ctrl.detailError(c, id, err)
		c.HTML(status, "error_page", gin.H{"Title": "Order summary", "Message": message})
		return
	}

	data := gin.H{
		"Title":   "Order summary",
		"BackURL": "/properties/" + id.String(),
	}

	summary, policy, err := ctrl.bookings.Summary(*property, c.Query("checkIn"), c.Query("checkOut"))
	if err != nil {
		data["Error"] = validationMessage(err, domain.MsgInvalidDates)
		c.HTML(http.StatusBadRequest, "summary", data)
		return
	}

	data["Summary"] = &summary
	data["Policy"] = &policy
	c.HTML(http.StatusOK, "summary", data)
}

// detailError traduce un error de lectura al status y mensaje de la vista
func (ctrl *PageController) detailError(c *gin.Context, id domain.PropertyID, err error) (int, string) {
	if errors.Is(err, domain.ErrPropertyNotFound) {
		return http.StatusNotFound, domain.MsgPropertyNotFound
	}
	ctrl.logger.Errorw("Error loading property details",
		"property_id", id,
		"error", err,
		"request_id", middleware.GetRequestID(c),
	)
	return http.StatusBadGateway, domain.MsgLoadDetailFail
}

// validationMessage devuelve el mensaje de un ValidationError o el fallback
func validationMessage(err error, fallback string) string {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return verr.Message
	}
	return fallback
}
