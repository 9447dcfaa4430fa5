package handler

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"travel-api/internal/models"
	"travel-api/internal/service"
)

// HeaderUserID carries the acting user's id. Authentication proper is
// delegated to the edge; this service only resolves ownership from it.
const HeaderUserID = "X-User-ID"

func actorID(c echo.Context) (uuid.UUID, error) {
	raw := c.Request().Header.Get(HeaderUserID)
	if raw == "" {
		return uuid.Nil, echo.NewHTTPError(http.StatusUnauthorized, "X-User-ID header is required")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, "X-User-ID must be a valid UUID")
	}
	return id, nil
}

func uuidParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return id, nil
}

func statusFilter(c echo.Context) (*models.BookingStatus, error) {
	raw := c.QueryParam("status")
	if raw == "" {
		return nil, nil
	}
	status := models.BookingStatus(raw)
	if !status.Valid() {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid status filter")
	}
	return &status, nil
}

// toHTTPError maps service errors onto HTTP status codes.
func toHTTPError(err error) *echo.HTTPError {
	var ve *service.ValidationError
	if errors.As(err, &ve) {
		return echo.NewHTTPError(http.StatusBadRequest, ve.Error())
	}

	switch {
	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrListingNotFound),
		errors.Is(err, service.ErrBookingNotFound),
		errors.Is(err, service.ErrReviewNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrNotHost),
		errors.Is(err, service.ErrNotParticipant),
		errors.Is(err, service.ErrNotAuthor),
		errors.Is(err, service.ErrNotStayed):
		return echo.NewHTTPError(http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrDatesUnavailable),
		errors.Is(err, service.ErrAlreadyReviewed),
		errors.Is(err, service.ErrInvalidTransition),
		errors.Is(err, service.ErrUsernameTaken):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrOwnListing),
		errors.Is(err, service.ErrListingUnavailable):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
