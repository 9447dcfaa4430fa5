package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"travel-api/internal/dto"
	"travel-api/internal/models"
	"travel-api/internal/service"
)

type BookingHandler struct {
	svc service.BookingService
}

func NewBookingHandler(svc service.BookingService) *BookingHandler {
	return &BookingHandler{svc: svc}
}

func (h *BookingHandler) RegisterRoutes(e *echo.Echo) {
	bookings := e.Group("/api/v1/bookings")
	bookings.POST("", h.CreateBooking)
	bookings.GET("", h.ListBookings)
	bookings.GET("/:id", h.GetBooking)
	bookings.PATCH("/:id/status", h.UpdateStatus)
	bookings.DELETE("/:id", h.CancelBooking)

	e.GET("/api/v1/listings/:id/bookings", h.ListForListing)
}

func (h *BookingHandler) CreateBooking(c echo.Context) error {
	guest, err := actorID(c)
	if err != nil {
		return err
	}

	var req dto.CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	checkIn, err := time.Parse(dto.DateLayout, req.CheckInDate)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "check_in_date must be formatted as YYYY-MM-DD")
	}
	checkOut, err := time.Parse(dto.DateLayout, req.CheckOutDate)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "check_out_date must be formatted as YYYY-MM-DD")
	}

	booking, err := h.svc.CreateBooking(c.Request().Context(), guest, req.ListingID, checkIn, checkOut, req.NumberOfGuests)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *BookingHandler) GetBooking(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	booking, err := h.svc.GetBooking(c.Request().Context(), actor, id)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *BookingHandler) ListBookings(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}
	status, err := statusFilter(c)
	if err != nil {
		return err
	}

	bookings, err := h.svc.ListBookings(c.Request().Context(), actor, status)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, toBookingResponses(bookings))
}

func (h *BookingHandler) ListForListing(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}
	listingID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}
	status, err := statusFilter(c)
	if err != nil {
		return err
	}

	bookings, err := h.svc.ListForListing(c.Request().Context(), actor, listingID, status)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, toBookingResponses(bookings))
}

func (h *BookingHandler) UpdateStatus(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateBookingStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	booking, err := h.svc.UpdateStatus(c.Request().Context(), actor, id, models.BookingStatus(req.Status))
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

// CancelBooking maps DELETE onto cancellation; booking rows are kept for the
// listing's history.
func (h *BookingHandler) CancelBooking(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	booking, err := h.svc.CancelBooking(c.Request().Context(), actor, id)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func toBookingResponses(bookings []models.Booking) []dto.BookingResponse {
	resp := make([]dto.BookingResponse, len(bookings))
	for i := range bookings {
		resp[i] = dto.ToBookingResponse(&bookings[i])
	}
	return resp
}
