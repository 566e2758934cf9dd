package dto

import (
	"time"

	"github.com/royalvilla/villa-catalog-api/internal/model"
)

// VillaAmenityDTO is the read projection of an amenity. VillaName is
// joined from the owning villa on read paths so clients do not need a
// second lookup.
type VillaAmenityDTO struct {
	ID          uint64    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	VillaID     uint64    `json:"villaId"`
	VillaName   string    `json:"villaName,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// VillaAmenityCreateDTO carries the fields a client may set when creating
// an amenity. The referenced villa must exist.
type VillaAmenityCreateDTO struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	VillaID     uint64 `json:"villaId"`
}

// VillaAmenityUpdateDTO carries the fields a client may overwrite on an
// existing amenity. The ID must match the id in the request path.
type VillaAmenityUpdateDTO struct {
	ID          uint64 `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	VillaID     uint64 `json:"villaId"`
}

// NewVillaAmenityDTO maps an amenity entity onto its read projection.
func NewVillaAmenityDTO(a *model.VillaAmenity) VillaAmenityDTO {
	return VillaAmenityDTO{
		ID:          a.ID,
		Name:        a.Name,
		Description: a.Description,
		VillaID:     a.VillaID,
		VillaName:   a.VillaName,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

// NewVillaAmenityDTOs maps a slice of amenity entities onto projections.
func NewVillaAmenityDTOs(as []*model.VillaAmenity) []VillaAmenityDTO {
	out := make([]VillaAmenityDTO, 0, len(as))
	for _, a := range as {
		out = append(out, NewVillaAmenityDTO(a))
	}
	return out
}

// NewVillaAmenity builds an amenity entity from a create payload.
func NewVillaAmenity(d *VillaAmenityCreateDTO) *model.VillaAmenity {
	return &model.VillaAmenity{
		Name:        d.Name,
		Description: d.Description,
		VillaID:     d.VillaID,
	}
}

// ApplyVillaAmenityUpdate overwrites the user-editable fields of an
// existing amenity and refreshes the update timestamp.
func ApplyVillaAmenityUpdate(d *VillaAmenityUpdateDTO, a *model.VillaAmenity) {
	a.Name = d.Name
	a.Description = d.Description
	a.VillaID = d.VillaID
	a.UpdatedAt = time.Now().UTC()
}
