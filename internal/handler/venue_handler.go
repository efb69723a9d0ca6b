package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/wedlane/venue-service/internal/dto"
	"github.com/wedlane/venue-service/internal/models"
	"github.com/wedlane/venue-service/internal/pricing"
	"github.com/wedlane/venue-service/internal/repository"
	"github.com/wedlane/venue-service/internal/service"
)

type VenueHandler struct {
	svc service.VenueService
}

func NewVenueHandler(svc service.VenueService) *VenueHandler {
	return &VenueHandler{svc: svc}
}

func (h *VenueHandler) RegisterRoutes(e *echo.Echo) {
	venues := e.Group("/api/venues")
	venues.GET("", h.ListVenues)
	venues.GET("/:id", h.GetVenue)
	venues.GET("/:id/availability", h.GetAvailability)
	venues.GET("/:id/pricing-rules", h.GetPricingRules)
	venues.POST("/:id/quote", h.Quote)

	e.POST("/api/venue-visits", h.RequestVisit)
}

func (h *VenueHandler) ListVenues(c echo.Context) error {
	filter := repository.VenueFilter{
		Location: c.QueryParam("location"),
		Tag:      c.QueryParam("tag"),
	}
	if g := c.QueryParam("guests"); g != "" {
		guests, err := strconv.Atoi(g)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid guests parameter")
		}
		filter.MinGuests = guests
	}

	venues, err := h.svc.ListVenues(c.Request().Context(), filter)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, venues)
}

func (h *VenueHandler) GetVenue(c echo.Context) error {
	venue, err := h.svc.GetVenue(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrVenueNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "venue not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, venue)
}

func (h *VenueHandler) GetAvailability(c echo.Context) error {
	availability, err := h.svc.GetAvailability(c.Request().Context(), c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, availability)
}

func (h *VenueHandler) GetPricingRules(c echo.Context) error {
	rules, err := h.svc.GetPricingRules(c.Request().Context(), c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, rules)
}

func (h *VenueHandler) Quote(c echo.Context) error {
	var req dto.QuoteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Date == "" || req.GuestCount < 1 {
		return echo.NewHTTPError(http.StatusBadRequest, "date and guest_count are required")
	}

	start, end, err := req.ParseDates()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	breakdown, err := h.svc.Quote(c.Request().Context(), c.Param("id"), start, end, req.GuestCount)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrVenueNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "venue not found")
		case errors.Is(err, pricing.ErrInvalidRange), errors.Is(err, pricing.ErrUnsupportedRule):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(http.StatusOK, breakdown)
}

func (h *VenueHandler) RequestVisit(c echo.Context) error {
	var req dto.VisitRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	id, err := h.svc.RequestVisit(c.Request().Context(), &models.VenueVisit{
		VenueID:       req.VenueID,
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		PreferredDate: req.PreferredDate,
		PreferredTime: req.PreferredTime,
		Notes:         req.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrVenueNotFound):
			return echo.NewHTTPError(http.StatusNotFound, "venue not found")
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(http.StatusCreated, dto.VisitResponse{ID: id, Status: "pending"})
}
