package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"travel-api/internal/dto"
	"travel-api/internal/models"
	"travel-api/internal/repository"
	"travel-api/internal/service"
)

type ListingHandler struct {
	svc service.ListingService
}

func NewListingHandler(svc service.ListingService) *ListingHandler {
	return &ListingHandler{svc: svc}
}

func (h *ListingHandler) RegisterRoutes(e *echo.Echo) {
	listings := e.Group("/api/v1/listings")
	listings.GET("", h.SearchListings)
	listings.POST("", h.CreateListing)
	listings.GET("/:id", h.GetListing)
	listings.PUT("/:id", h.UpdateListing)
	listings.DELETE("/:id", h.DeleteListing)
}

func listingFromRequest(req *dto.ListingRequest) *models.Listing {
	listing := &models.Listing{
		Title:         req.Title,
		Description:   req.Description,
		Location:      req.Location,
		PricePerNight: req.PricePerNight,
		PropertyType:  models.PropertyType(req.PropertyType),
		MaxGuests:     req.MaxGuests,
		Bedrooms:      req.Bedrooms,
		Bathrooms:     req.Bathrooms,
		Amenities:     req.Amenities,
		Available:     true,
	}
	if req.Available != nil {
		listing.Available = *req.Available
	}
	return listing
}

func (h *ListingHandler) CreateListing(c echo.Context) error {
	host, err := actorID(c)
	if err != nil {
		return err
	}

	var req dto.ListingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	listing := listingFromRequest(&req)
	if err := h.svc.CreateListing(c.Request().Context(), host, listing); err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusCreated, dto.ToListingResponse(listing, nil, 0))
}

func (h *ListingHandler) GetListing(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	detail, err := h.svc.GetListing(c.Request().Context(), id)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, dto.ToListingResponse(detail.Listing, detail.AverageRating, detail.TotalReviews))
}

func (h *ListingHandler) SearchListings(c echo.Context) error {
	filter := repository.ListingFilter{
		Location:     c.QueryParam("location"),
		PropertyType: models.PropertyType(c.QueryParam("property_type")),
	}
	if raw := c.QueryParam("available"); raw != "" {
		available, err := strconv.ParseBool(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid available filter")
		}
		filter.Available = &available
	}
	filter.Page, _ = strconv.Atoi(c.QueryParam("page"))
	filter.PageSize, _ = strconv.Atoi(c.QueryParam("page_size"))

	details, total, err := h.svc.SearchListings(c.Request().Context(), filter)
	if err != nil {
		return toHTTPError(err)
	}

	items := make([]dto.ListingResponse, len(details))
	for i, d := range details {
		items[i] = dto.ToListingResponse(d.Listing, d.AverageRating, d.TotalReviews)
	}

	page, size := filter.Limits()

	return c.JSON(http.StatusOK, dto.ListingPageResponse{
		Items:    items,
		Total:    total,
		Page:     page,
		PageSize: size,
	})
}

func (h *ListingHandler) UpdateListing(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req dto.ListingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	detail, err := h.svc.UpdateListing(c.Request().Context(), actor, id, listingFromRequest(&req))
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, dto.ToListingResponse(detail.Listing, detail.AverageRating, detail.TotalReviews))
}

func (h *ListingHandler) DeleteListing(c echo.Context) error {
	actor, err := actorID(c)
	if err != nil {
		return err
	}
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.svc.DeleteListing(c.Request().Context(), actor, id); err != nil {
		return toHTTPError(err)
	}
	return c.NoContent(http.StatusNoContent)
}
