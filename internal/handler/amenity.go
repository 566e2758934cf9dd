package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/royalvilla/villa-catalog-api/internal/dto"
	"github.com/royalvilla/villa-catalog-api/internal/repository"
	"github.com/royalvilla/villa-catalog-api/internal/response"
)

// AmenityHandler bundles the stores for the villa-amenity endpoints.
// The villa store is consulted on create and update: the referenced
// villa must exist, otherwise the request answers 409.
type AmenityHandler struct {
	Amenities AmenityStore
	Villas    VillaStore
}

func NewAmenityHandler(amenities AmenityStore, villas VillaStore) *AmenityHandler {
	if amenities == nil || villas == nil {
		panic("nil store passed to NewAmenityHandler")
	}
	return &AmenityHandler{Amenities: amenities, Villas: villas}
}

// List handles GET /api/villa-amenities. Each record carries the name
// of its owning villa joined in by the repository.
func (h *AmenityHandler) List(c echo.Context) error {
	ctx, cancel := reqContext(c)
	defer cancel()

	amenities, err := h.Amenities.List(ctx)
	if err != nil {
		r := response.Error(http.StatusInternalServerError, "An error occurred while retrieving villa amenities: ", err.Error())
		return c.JSON(r.StatusCode, r)
	}
	if len(amenities) == 0 {
		r := response.NotFound()
		return c.JSON(r.StatusCode, r)
	}

	r := response.Ok(dto.NewVillaAmenityDTOs(amenities), "Villa amenities retrieved successfully")
	return c.JSON(r.StatusCode, r)
}

// GetByID handles GET /api/villa-amenities/:id.
func (h *AmenityHandler) GetByID(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		r := response.BadRequest("Villa amenities ID must be greater than 0")
		return c.JSON(r.StatusCode, r)
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	amenity, err := h.Amenities.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAmenityNotFound) {
			r := response.NotFound(fmt.Sprintf("Villa amenities with ID %d was not found", id))
			return c.JSON(r.StatusCode, r)
		}
		r := response.Error(http.StatusInternalServerError, fmt.Sprintf("An error occurred while retrieving villa amenities with ID %d: ", id), err.Error())
		return c.JSON(r.StatusCode, r)
	}

	r := response.Ok(dto.NewVillaAmenityDTO(amenity), "Records retrieved successfully")
	return c.JSON(r.StatusCode, r)
}

// Create handles POST /api/villa-amenities. The referenced villa must
// exist; a dangling villa id answers 409.
func (h *AmenityHandler) Create(c echo.Context) error {
	var body dto.VillaAmenityCreateDTO
	if err := c.Bind(&body); err != nil || body.Name == "" {
		r := response.BadRequest("Villa amenities data is required")
		return c.JSON(r.StatusCode, r)
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	if ok, r := h.villaExists(c, body.VillaID); !ok {
		return r
	}

	amenity := dto.NewVillaAmenity(&body)
	if err := h.Amenities.Create(ctx, amenity); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			r := response.Conflict(fmt.Sprintf("A villa with the ID '%d' does not exist", body.VillaID))
			return c.JSON(r.StatusCode, r)
		}
		r := response.Error(http.StatusInternalServerError, "An error occurred while creating the villa amenities: ", err.Error())
		return c.JSON(r.StatusCode, r)
	}
	// Populate the joined villa name for the response.
	if full, err := h.Amenities.GetByID(ctx, amenity.ID); err == nil {
		amenity = full
	}

	r := response.CreatedAt(dto.NewVillaAmenityDTO(amenity), "Villa amenities created successfully")
	return c.JSON(r.StatusCode, r)
}

// Update handles PUT /api/villa-amenities/:id.
func (h *AmenityHandler) Update(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		r := response.BadRequest("Villa amenities ID must be greater than 0")
		return c.JSON(r.StatusCode, r)
	}
	var body dto.VillaAmenityUpdateDTO
	if err := c.Bind(&body); err != nil || body.Name == "" {
		r := response.BadRequest("Villa amenities data is required")
		return c.JSON(r.StatusCode, r)
	}
	if id != body.ID {
		r := response.BadRequest("Villa amenities ID in URL does not match Villa amenities ID in request body")
		return c.JSON(r.StatusCode, r)
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	existing, err := h.Amenities.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAmenityNotFound) {
			r := response.NotFound(fmt.Sprintf("Villa amenities with ID %d was not found", id))
			return c.JSON(r.StatusCode, r)
		}
		r := response.Error(http.StatusInternalServerError, "An error occurred while updating the villa amenities: ", err.Error())
		return c.JSON(r.StatusCode, r)
	}

	if ok, r := h.villaExists(c, body.VillaID); !ok {
		return r
	}

	dto.ApplyVillaAmenityUpdate(&body, existing)
	if err := h.Amenities.Update(ctx, existing); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			r := response.Conflict(fmt.Sprintf("A villa with the ID '%d' does not exist", body.VillaID))
			return c.JSON(r.StatusCode, r)
		}
		r := response.Error(http.StatusInternalServerError, "An error occurred while updating the villa amenities: ", err.Error())
		return c.JSON(r.StatusCode, r)
	}
	if full, err := h.Amenities.GetByID(ctx, id); err == nil {
		existing = full
	}

	r := response.Ok(dto.NewVillaAmenityDTO(existing), "Villa amenities updated successfully")
	return c.JSON(r.StatusCode, r)
}

// Delete handles DELETE /api/villa-amenities/:id.
func (h *AmenityHandler) Delete(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		r := response.BadRequest("Villa amenities ID must be greater than 0")
		return c.JSON(r.StatusCode, r)
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	if _, err := h.Amenities.GetByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrAmenityNotFound) {
			r := response.NotFound(fmt.Sprintf("Villa amenities with ID %d was not found", id))
			return c.JSON(r.StatusCode, r)
		}
		r := response.Error(http.StatusInternalServerError, "An error occurred while deleting the villa amenities: ", err.Error())
		return c.JSON(r.StatusCode, r)
	}

	if err := h.Amenities.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrAmenityNotFound) {
			r := response.NotFound(fmt.Sprintf("Villa amenities with ID %d was not found", id))
			return c.JSON(r.StatusCode, r)
		}
		r := response.Error(http.StatusInternalServerError, "An error occurred while deleting the villa amenities: ", err.Error())
		return c.JSON(r.StatusCode, r)
	}

	r := response.NoContent("Villa amenities deleted successfully")
	return c.JSON(r.StatusCode, r)
}

// villaExists verifies the referenced villa. On a missing villa it
// writes the 409 response and returns it so callers can bail out; on a
// lookup fault it writes the 500. The bool is true when the villa is
// present and nothing was written.
func (h *AmenityHandler) villaExists(c echo.Context, villaID uint64) (bool, error) {
	ctx, cancel := reqContext(c)
	defer cancel()

	if _, err := h.Villas.GetByID(ctx, villaID); err != nil {
		if errors.Is(err, repository.ErrVillaNotFound) {
			r := response.Conflict(fmt.Sprintf("A villa with the ID '%d' does not exist", villaID))
			return false, c.JSON(r.StatusCode, r)
		}
		r := response.Error(http.StatusInternalServerError, "An error occurred while validating the villa reference: ", err.Error())
		return false, c.JSON(r.StatusCode, r)
	}
	return true, nil
}
