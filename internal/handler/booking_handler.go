package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/wedlane/venue-service/internal/dto"
	"github.com/wedlane/venue-service/internal/middleware"
	"github.com/wedlane/venue-service/internal/service"
)

type BookingHandler struct {
	svc service.BookingService
}

func NewBookingHandler(svc service.BookingService) *BookingHandler {
	return &BookingHandler{svc: svc}
}

func (h *BookingHandler) RegisterRoutes(e *echo.Echo) {
	bookings := e.Group("/api/bookings", middleware.Identity)
	bookings.POST("", h.CreateBooking)
	bookings.GET("", h.ListBookings)
	bookings.GET("/:id", h.GetBooking)
	bookings.POST("/:id/cancel", h.CancelBooking)
}

func (h *BookingHandler) CreateBooking(c echo.Context) error {
	var req dto.CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.VenueID == "" || req.Date == "" || req.GuestCount == 0 ||
		req.ContactName == "" || req.ContactEmail == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing required booking information")
	}

	date, endDate, err := req.ParseDates()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	// Retried requests may also carry the key as a header.
	idempotencyKey := req.IdempotencyKey
	if v := c.Request().Header.Get("Idempotency-Key"); v != "" {
		idempotencyKey = v
	}

	booking, err := h.svc.CreateBooking(c.Request().Context(), service.BookingInput{
		VenueID:         req.VenueID,
		UserID:          middleware.UserID(c),
		Date:            date,
		EndDate:         endDate,
		TimeSlot:        req.TimeSlot,
		GuestCount:      req.GuestCount,
		Price:           req.Price,
		ContactName:     req.ContactName,
		ContactEmail:    req.ContactEmail,
		ContactPhone:    req.ContactPhone,
		SpecialRequests: req.SpecialRequests,
		IdempotencyKey:  idempotencyKey,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation),
			errors.Is(err, service.ErrInvalidRange),
			errors.Is(err, service.ErrGuestCountRange):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrVenueNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(http.StatusCreated, dto.CreateBookingResponse{
		Message: "Venue booking created successfully",
		Booking: dto.ToBookingResponse(booking),
	})
}

func (h *BookingHandler) ListBookings(c echo.Context) error {
	bookings, err := h.svc.ListBookings(c.Request().Context(), middleware.UserID(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.BookingResponse, len(bookings))
	for i, b := range bookings {
		resp[i] = dto.ToBookingResponse(&b)
	}

	return c.JSON(http.StatusOK, resp)
}

func (h *BookingHandler) GetBooking(c echo.Context) error {
	booking, err := h.svc.GetBooking(c.Request().Context(), c.Param("id"), middleware.UserID(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "booking not found")
	}

	return c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *BookingHandler) CancelBooking(c echo.Context) error {
	booking, err := h.svc.CancelBooking(c.Request().Context(), c.Param("id"), middleware.UserID(c))
	if err != nil {
		if errors.Is(err, service.ErrBookingNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "booking not found or not owned by this user")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, dto.CancelBookingResponse{
		Message:   "Booking cancelled successfully",
		BookingID: booking.ID,
		Status:    booking.Status,
	})
}
