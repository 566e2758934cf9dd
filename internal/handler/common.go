// Package handler contains the HTTP handlers for the villa catalog.
// Every endpoint answers with exactly one response envelope and follows
// the same validation order: structural checks (400), existence checks
// (404), uniqueness/referential checks (409), then the mutation. Any
// unanticipated fault is caught at this boundary and surfaced as a 500
// with a fixed prefix plus the error message.
package handler

import (
	"context"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/royalvilla/villa-catalog-api/internal/model"
)

// dbTimeout bounds every persistence call made from a handler.
const dbTimeout = 5 * time.Second

// VillaStore is the persistence surface the villa handler needs. It is
// satisfied by *repository.VillaRepo and mocked in tests.
type VillaStore interface {
	Create(ctx context.Context, v *model.Villa) error
	GetByID(ctx context.Context, id uint64) (*model.Villa, error)
	List(ctx context.Context) ([]*model.Villa, error)
	Update(ctx context.Context, v *model.Villa) error
	Delete(ctx context.Context, id uint64) error
	NameExists(ctx context.Context, name string, excludeID uint64) (bool, error)
}

// AmenityStore is the persistence surface the amenity handler needs. It
// is satisfied by *repository.AmenityRepo and mocked in tests.
type AmenityStore interface {
	Create(ctx context.Context, a *model.VillaAmenity) error
	GetByID(ctx context.Context, id uint64) (*model.VillaAmenity, error)
	List(ctx context.Context) ([]*model.VillaAmenity, error)
	Update(ctx context.Context, a *model.VillaAmenity) error
	Delete(ctx context.Context, id uint64) error
	CountByVilla(ctx context.Context, villaID uint64) (int, error)
}

// reqContext derives a bounded context from the incoming request.
func reqContext(c echo.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request().Context(), dbTimeout)
}

// pathID parses the :id path parameter. The boolean is false when the
// parameter is not a positive integer; callers answer 400 in that case,
// matching the id-must-be-greater-than-zero rule.
func pathID(c echo.Context) (uint64, bool) {
	n, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || n <= 0 {
		return 0, false
	}
	return uint64(n), true
}
