package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"listing-app/domain"
	"listing-app/dto"
	"listing-app/middleware"
	"listing-app/services"
)

// APIController maneja los endpoints JSON bajo /api
type APIController struct {
	catalog    services.CatalogService
	properties services.PropertyService
	bookings   services.BookingService
	logger     *zap.SugaredLogger
}

// NewAPIController crea una nueva instancia del controlador
func NewAPIController(catalog services.CatalogService, properties services.PropertyService, bookings services.BookingService, logger *zap.SugaredLogger) *APIController {
	return &APIController{
		catalog:    catalog,
		properties: properties,
		bookings:   bookings,
		logger:     logger,
	}
}

// ListProperties maneja GET /api/properties
func (ctrl *APIController) ListProperties(c *gin.Context) {
	properties, err := ctrl.catalog.ListProperties(c.Request.Context())
	if err != nil {
		ctrl.logger.Errorw("Error loading properties", "error", err, "request_id", middleware.GetRequestID(c))
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{
			Error:   "api_error",
			Message: domain.MsgLoadPropertiesFail,
		})
		return
	}

	c.JSON(http.StatusOK, dto.PropertiesResponse{
		Properties: properties,
		Total:      len(properties),
	})
}

// GetProperty maneja GET /api/properties/:id
func (ctrl *APIController) GetProperty(c *gin.Context) {
	id := domain.PropertyID(c.Param("id"))

	detail, err := ctrl.properties.GetPropertyDetail(c.Request.Context(), id)
	if err != nil {
		ctrl.propertyError(c, id, err)
		return
	}

	c.JSON(http.StatusOK, dto.PropertyDetailResponse{
		Property: detail.Property,
		Reviews:  detail.Reviews,
	})
}

// Quote maneja POST /api/bookings/quote
// Con propertyId usa el precio de la propiedad e incluye resumen y política
func (ctrl *APIController) Quote(c *gin.Context) {
	var req dto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	property := domain.Property{Price: req.Price}
	if req.PropertyID != "" {
		p, err := ctrl.properties.GetProperty(c.Request.Context(), req.PropertyID)
		if err != nil {
			ctrl.propertyError(c, req.PropertyID, err)
			return
		}
		property = *p
	}
	if property.Price <= 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: "propertyId or a positive price is required",
		})
		return
	}

	q, err := ctrl.bookings.Quote(property, req.CheckInDate, req.CheckOutDate)
	if err == nil && !q.Valid() {
		err = &domain.ValidationError{Message: domain.MsgInvalidDates}
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: validationMessage(err, domain.MsgInvalidDates),
		})
		return
	}

	resp := dto.QuoteResponse{
		CheckInDate:  q.CheckIn.Format(domain.DateLayout),
		CheckOutDate: q.CheckOut.Format(domain.DateLayout),
		Rate:         q.Rate,
		Nights:       q.Nights,
		TotalPrice:   q.Total,
	}
	if req.PropertyID != "" {
		if summary, policy, err := ctrl.bookings.Summary(property, req.CheckInDate, req.CheckOutDate); err == nil {
			resp.Summary = &summary
			resp.Cancellation = dto.NewCancellationPolicyResponse(policy)
		}
	}

	c.JSON(http.StatusOK, resp)
}

// CreateBooking maneja POST /api/bookings
func (ctrl *APIController) CreateBooking(c *gin.Context) {
	// 1. Leer el JSON del body
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	// 2. La tarifa sale de la propiedad, nunca del cliente
	property, err := ctrl.properties.GetProperty(c.Request.Context(), req.PropertyID)
	if err != nil {
		ctrl.propertyError(c, req.PropertyID, err)
		return
	}

	// 3. Validar y enviar
	booking, err := ctrl.bookings.CreateBooking(c.Request.Context(), *property, req.ToBooking())
	if err != nil {
		if domain.IsValidationError(err) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error:   "validation_error",
				Message: err.Error(),
			})
			return
		}
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{
			Error:   "booking_error",
			Message: domain.MsgBookingFailed,
		})
		return
	}

	c.JSON(http.StatusCreated, dto.SuccessResponse{
		Message: domain.MsgBookingSucceeded,
		Data:    booking,
	})
}

// HealthCheck maneja GET /health
func (ctrl *APIController) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok"})
}

func (ctrl *APIController) propertyError(c *gin.Context, id domain.PropertyID, err error) {
	if errors.Is(err, domain.ErrPropertyNotFound) {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error:   "property_not_found",
			Message: domain.MsgPropertyNotFound,
		})
		return
	}
	ctrl.logger.Errorw("Error loading property details",
		"property_id", id,
		"error", err,
		"request_id", middleware.GetRequestID(c),
	)
	c.JSON(http.StatusBadGateway, dto.ErrorResponse{
		Error:   "api_error",
		Message: domain.MsgLoadDetailFail,
	})
}
