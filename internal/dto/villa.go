// Package dto defines the wire projections of the persisted entities and
// the mapping functions between them. Mapping is explicit and field by
// field so that the set of user-editable fields is visible in one place
// and internal-only columns never reach a response body.
package dto

import (
	"time"

	"github.com/royalvilla/villa-catalog-api/internal/model"
)

// VillaDTO is the read projection of a villa returned by every villa
// endpoint.
type VillaDTO struct {
	ID          uint64    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Occupancy   uint32    `json:"occupancy"`
	Rate        float64   `json:"rate"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// VillaCreateDTO carries the fields a client may set when creating a villa.
type VillaCreateDTO struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Occupancy   uint32  `json:"occupancy"`
	Rate        float64 `json:"rate"`
}

// VillaUpdateDTO carries the fields a client may overwrite on an existing
// villa. The ID must match the id in the request path.
type VillaUpdateDTO struct {
	ID          uint64  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Occupancy   uint32  `json:"occupancy"`
	Rate        float64 `json:"rate"`
}

// NewVillaDTO maps a villa entity onto its read projection.
func NewVillaDTO(v *model.Villa) VillaDTO {
	return VillaDTO{
		ID:          v.ID,
		Name:        v.Name,
		Description: v.Description,
		Occupancy:   v.Occupancy,
		Rate:        v.Rate,
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}
}

// NewVillaDTOs maps a slice of villa entities onto read projections.
func NewVillaDTOs(vs []*model.Villa) []VillaDTO {
	out := make([]VillaDTO, 0, len(vs))
	for _, v := range vs {
		out = append(out, NewVillaDTO(v))
	}
	return out
}

// NewVilla builds a villa entity from a create payload. The creation
// timestamp is set by the caller at persist time.
func NewVilla(d *VillaCreateDTO) *model.Villa {
	return &model.Villa{
		Name:        d.Name,
		Description: d.Description,
		Occupancy:   d.Occupancy,
		Rate:        d.Rate,
	}
}

// ApplyVillaUpdate overwrites the user-editable fields of an existing
// villa with the values from an update payload and refreshes the update
// timestamp. Identity and creation timestamp are left untouched.
func ApplyVillaUpdate(d *VillaUpdateDTO, v *model.Villa) {
	v.Name = d.Name
	v.Description = d.Description
	v.Occupancy = d.Occupancy
	v.Rate = d.Rate
	v.UpdatedAt = time.Now().UTC()
}
