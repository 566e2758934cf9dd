package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/royalvilla/villa-catalog-api/internal/dto"
	"github.com/royalvilla/villa-catalog-api/internal/queue"
	"github.com/royalvilla/villa-catalog-api/internal/repository"
	"github.com/royalvilla/villa-catalog-api/internal/response"
)

// VillaHandler bundles the stores for the villa endpoints. The amenity
// store is consulted on delete: a villa that still has amenities cannot
// be removed (restrict, not cascade). publishCreated is the villa.created
// event hook; it defaults to the RabbitMQ publisher and is replaced in
// tests.
type VillaHandler struct {
	Villas    VillaStore
	Amenities AmenityStore

	publishCreated func(ctx context.Context, ev queue.VillaCreatedEvent) error
}

func NewVillaHandler(villas VillaStore, amenities AmenityStore) *VillaHandler {
	if villas == nil || amenities == nil {
		panic("nil store passed to NewVillaHandler")
	}
	return &VillaHandler{
		Villas:         villas,
		Amenities:      amenities,
		publishCreated: queue.PublishVillaCreated,
	}
}

// List handles GET /api/villa. The empty catalog answers 404 with a
// bare envelope, matching the contract of the list endpoints.
func (h *VillaHandler) List(c echo.Context) error {
	ctx, cancel := reqContext(c)
	defer cancel()

	villas, err := h.Villas.List(ctx)
	if err != nil {
		r := response.Error(http.StatusInternalServerError, "An error occurred while retrieving villas: ", err.Error())
		return c.JSON(r.StatusCode, r)
	}
	if len(villas) == 0 {
		r := response.NotFound()
		return c.JSON(r.StatusCode, r)
	}

	r := response.Ok(dto.NewVillaDTOs(villas), "Villas retrieved successfully")
	return c.JSON(r.StatusCode, r)
}

// GetByID handles GET /api/villa/:id.
func (h *VillaHandler) GetByID(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		r := response.BadRequest("Villa ID must be greater than 0")
		return c.JSON(r.StatusCode, r)
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	villa, err := h.Villas.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrVillaNotFound) {
			r := response.NotFound(fmt.Sprintf("Villa with ID %d was not found", id))
			return c.JSON(r.StatusCode, r)
		}
		r := response.Error(http.StatusInternalServerError, fmt.Sprintf("An error occurred while retrieving villa with ID %d: ", id), err.Error())
		return c.JSON(r.StatusCode, r)
	}

	r := response.Ok(dto.NewVillaDTO(villa), "Records retrieved successfully")
	return c.JSON(r.StatusCode, r)
}

// Create handles POST /api/villa. Duplicate names (case-insensitive)
// answer 409; the check-then-write window is backstopped by the unique
// index, which the repository reports as ErrConflict.
func (h *VillaHandler) Create(c echo.Context) error {
	var body dto.VillaCreateDTO
	if err := c.Bind(&body); err != nil || body.Name == "" {
		r := response.BadRequest("Villa data is required")
		return c.JSON(r.StatusCode, r)
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	dup, err := h.Villas.NameExists(ctx, body.Name, 0)
	if err != nil {
		r := response.Error(http.StatusInternalServerError, "An error occurred while creating the villa: ", err.Error())
		return c.JSON(r.StatusCode, r)
	}
	if dup {
		r := response.Conflict(fmt.Sprintf("A villa with the name '%s' already exists", body.Name))
		return c.JSON(r.StatusCode, r)
	}

	villa := dto.NewVilla(&body)
	if err := h.Villas.Create(ctx, villa); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			r := response.Conflict(fmt.Sprintf("A villa with the name '%s' already exists", body.Name))
			return c.JSON(r.StatusCode, r)
		}
		r := response.Error(http.StatusInternalServerError, "An error occurred while creating the villa: ", err.Error())
		return c.JSON(r.StatusCode, r)
	}

	// Fire-and-forget: a broker outage must not fail the request.
	go func() {
		_ = h.publishCreated(context.Background(), queue.NewVillaCreatedEvent(villa))
	}()

	r := response.CreatedAt(dto.NewVillaDTO(villa), "Villa created successfully")
	return c.JSON(r.StatusCode, r)
}

// Update handles PUT /api/villa/:id. The id in the path must match the
// id in the body; only mapped fields are overwritten and the update
// timestamp is refreshed.
func (h *VillaHandler) Update(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		r := response.BadRequest("Villa ID must be greater than 0")
		return c.JSON(r.StatusCode, r)
	}
	var body dto.VillaUpdateDTO
	if err := c.Bind(&body); err != nil || body.Name == "" {
		r := response.BadRequest("Villa data is required")
		return c.JSON(r.StatusCode, r)
	}
	if id != body.ID {
		r := response.BadRequest("Villa ID in URL does not match Villa ID in request body")
		return c.JSON(r.StatusCode, r)
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	existing, err := h.Villas.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrVillaNotFound) {
			r := response.NotFound(fmt.Sprintf("Villa with ID %d was not found", id))
			return c.JSON(r.StatusCode, r)
		}
		r := response.Error(http.StatusInternalServerError, "An error occurred while updating the villa: ", err.Error())
		return c.JSON(r.StatusCode, r)
	}

	dup, err := h.Villas.NameExists(ctx, body.Name, id)
	if err != nil {
		r := response.Error(http.StatusInternalServerError, "An error occurred while updating the villa: ", err.Error())
		return c.JSON(r.StatusCode, r)
	}
	if dup {
		r := response.Conflict(fmt.Sprintf("A villa with the name '%s' already exists", body.Name))
		return c.JSON(r.StatusCode, r)
	}

	dto.ApplyVillaUpdate(&body, existing)
	if err := h.Villas.Update(ctx, existing); err != nil {
		if errors.Is(err, repository.ErrVillaNotFound) {
			r := response.NotFound(fmt.Sprintf("Villa with ID %d was not found", id))
			return c.JSON(r.StatusCode, r)
		}
		if errors.Is(err, repository.ErrConflict) {
			r := response.Conflict(fmt.Sprintf("A villa with the name '%s' already exists", body.Name))
			return c.JSON(r.StatusCode, r)
		}
		r := response.Error(http.StatusInternalServerError, "An error occurred while updating the villa: ", err.Error())
		return c.JSON(r.StatusCode, r)
	}

	r := response.Ok(dto.NewVillaDTO(existing), "Villa updated successfully")
	return c.JSON(r.StatusCode, r)
}

// Delete handles DELETE /api/villa/:id. Deletion is refused with 409
// while amenities still reference the villa (restrict, not cascade).
func (h *VillaHandler) Delete(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		r := response.BadRequest("Villa ID must be greater than 0")
		return c.JSON(r.StatusCode, r)
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	if _, err := h.Villas.GetByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrVillaNotFound) {
			r := response.NotFound(fmt.Sprintf("Villa with ID %d was not found", id))
			return c.JSON(r.StatusCode, r)
		}
		r := response.Error(http.StatusInternalServerError, "An error occurred while deleting the villa: ", err.Error())
		return c.JSON(r.StatusCode, r)
	}

	n, err := h.Amenities.CountByVilla(ctx, id)
	if err != nil {
		r := response.Error(http.StatusInternalServerError, "An error occurred while deleting the villa: ", err.Error())
		return c.JSON(r.StatusCode, r)
	}
	if n > 0 {
		r := response.Conflict(fmt.Sprintf("Villa with ID %d still has %d amenities and cannot be deleted", id, n))
		return c.JSON(r.StatusCode, r)
	}

	if err := h.Villas.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrVillaNotFound) {
			r := response.NotFound(fmt.Sprintf("Villa with ID %d was not found", id))
			return c.JSON(r.StatusCode, r)
		}
		r := response.Error(http.StatusInternalServerError, "An error occurred while deleting the villa: ", err.Error())
		return c.JSON(r.StatusCode, r)
	}

	r := response.NoContent("Villa deleted successfully")
	return c.JSON(r.StatusCode, r)
}
