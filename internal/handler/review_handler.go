package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"travel-api/internal/dto"
	"travel-api/internal/models"
	"travel-api/internal/service"
)

type ReviewHandler struct {
	svc service.ReviewService
}

func NewReviewHandler(svc service.ReviewService) *ReviewHandler {
	return &ReviewHandler{svc: svc}
}

func (h *ReviewHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/api/v1/listings/:id/reviews", h.ListByListing)
	e.POST("/api/v1/listings/:id/reviews", h.CreateReview)

	reviews := e.Group("/api/v1/reviews")
	reviews.GET("/:id", h.GetReview)
	reviews.PUT("/:id", h.UpdateReview)
	reviews.DELETE("/:id", h.DeleteReview)
}

func (h *ReviewHandler) CreateReview(c echo.Context) error {
	guest, err := actorID(c)
	if err != nil {
		return err
	}
	listingID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.CreateReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	review := &models.Review{
		Rating:    req.Rating,
		Comment:   req.Comment,
		BookingID: req.BookingID,
	}

	if err := h.svc.CreateReview(c.Request().Context(), guest, listingID, review); err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusCreated, dto.ToReviewResponse(review))
}

func (h *ReviewHandler) GetReview(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	review, err := h.svc.GetReview(c.Request().Context(), id)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, dto.ToReviewResponse(review))
}

func (h *ReviewHandler) ListByListing(c echo.Context) error {
	listingID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	reviews, err := h.svc.ListByListing(c.Request().Context(), listingID)
	if err != nil {
		return toHTTPError(err)
	}

	resp := make([]dto.ReviewResponse, len(reviews))
	for i := range reviews {
		resp[i] = dto.ToReviewResponse(&reviews[i])
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *ReviewHandler) UpdateReview(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.UpdateReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	review, err := h.svc.UpdateReview(c.Request().Context(), actor, id, req.Rating, req.Comment)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, dto.ToReviewResponse(review))
}

func (h *ReviewHandler) DeleteReview(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.svc.DeleteReview(c.Request().Context(), actor, id); err != nil {
		return toHTTPError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
