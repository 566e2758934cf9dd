package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/royalvilla/villa-catalog-api/internal/model"
	"github.com/royalvilla/villa-catalog-api/internal/repository"
)

func sampleAmenity() *model.VillaAmenity {
	return &model.VillaAmenity{
		ID:        1,
		VillaID:   1,
		Name:      "Pool",
		VillaName: "Sunset",
	}
}

// villaPresent returns a villa store whose GetByID always resolves.
func villaPresent() *mockVillaStore {
	return &mockVillaStore{
		getByIDFunc: func(ctx context.Context, id uint64) (*model.Villa, error) {
			return &model.Villa{ID: id, Name: "Sunset"}, nil
		},
	}
}

// villaAbsent returns a villa store whose GetByID never resolves.
func villaAbsent() *mockVillaStore {
	return &mockVillaStore{
		getByIDFunc: func(ctx context.Context, id uint64) (*model.Villa, error) {
			return nil, repository.ErrVillaNotFound
		},
	}
}

func TestAmenityCreateMissingVillaIs409(t *testing.T) {
	h := NewAmenityHandler(&mockAmenityStore{}, villaAbsent())

	rec, env := doRequest(t, http.MethodPost, "/api/villa-amenities",
		`{"name":"Pool","villaId":99}`, "", h.Create)
	checkEnvelope(t, rec, env, http.StatusConflict, false)
}

func TestAmenityCreateSuccess(t *testing.T) {
	h := NewAmenityHandler(&mockAmenityStore{
		createFunc: func(ctx context.Context, a *model.VillaAmenity) error {
			a.ID = 1
			return nil
		},
		getByIDFunc: func(ctx context.Context, id uint64) (*model.VillaAmenity, error) {
			return sampleAmenity(), nil
		},
	}, villaPresent())

	rec, env := doRequest(t, http.MethodPost, "/api/villa-amenities",
		`{"name":"Pool","villaId":1}`, "", h.Create)
	checkEnvelope(t, rec, env, http.StatusCreated, true)
}

func TestAmenityCreateMissingBody(t *testing.T) {
	h := NewAmenityHandler(&mockAmenityStore{}, &mockVillaStore{})

	rec, env := doRequest(t, http.MethodPost, "/api/villa-amenities", "", "", h.Create)
	checkEnvelope(t, rec, env, http.StatusBadRequest, false)
}

func TestAmenityGetByIDAbsentIs404(t *testing.T) {
	h := NewAmenityHandler(&mockAmenityStore{
		getByIDFunc: func(ctx context.Context, id uint64) (*model.VillaAmenity, error) {
			return nil, repository.ErrAmenityNotFound
		},
	}, &mockVillaStore{})

	rec, env := doRequest(t, http.MethodGet, "/api/villa-amenities/9", "", "9", h.GetByID)
	checkEnvelope(t, rec, env, http.StatusNotFound, false)
}

func TestAmenityGetByIDInvalidIs400(t *testing.T) {
	h := NewAmenityHandler(&mockAmenityStore{}, &mockVillaStore{})

	rec, env := doRequest(t, http.MethodGet, "/api/villa-amenities/0", "", "0", h.GetByID)
	checkEnvelope(t, rec, env, http.StatusBadRequest, false)
}

func TestAmenityListEmptyReturns404(t *testing.T) {
	h := NewAmenityHandler(&mockAmenityStore{
		listFunc: func(ctx context.Context) ([]*model.VillaAmenity, error) { return nil, nil },
	}, &mockVillaStore{})

	rec, env := doRequest(t, http.MethodGet, "/api/villa-amenities", "", "", h.List)
	checkEnvelope(t, rec, env, http.StatusNotFound, false)
}

func TestAmenityUpdateIDMismatchIs400(t *testing.T) {
	h := NewAmenityHandler(&mockAmenityStore{}, &mockVillaStore{})

	rec, env := doRequest(t, http.MethodPut, "/api/villa-amenities/2",
		`{"id":3,"name":"Pool","villaId":1}`, "2", h.Update)
	checkEnvelope(t, rec, env, http.StatusBadRequest, false)
}

func TestAmenityUpdateMovedToMissingVillaIs409(t *testing.T) {
	h := NewAmenityHandler(&mockAmenityStore{
		getByIDFunc: func(ctx context.Context, id uint64) (*model.VillaAmenity, error) {
			return sampleAmenity(), nil
		},
	}, villaAbsent())

	rec, env := doRequest(t, http.MethodPut, "/api/villa-amenities/1",
		`{"id":1,"name":"Pool","villaId":42}`, "1", h.Update)
	checkEnvelope(t, rec, env, http.StatusConflict, false)
}

func TestAmenityUpdateSuccess(t *testing.T) {
	var updated *model.VillaAmenity
	h := NewAmenityHandler(&mockAmenityStore{
		getByIDFunc: func(ctx context.Context, id uint64) (*model.VillaAmenity, error) {
			return sampleAmenity(), nil
		},
		updateFunc: func(ctx context.Context, a *model.VillaAmenity) error {
			updated = a
			return nil
		},
	}, villaPresent())

	rec, env := doRequest(t, http.MethodPut, "/api/villa-amenities/1",
		`{"id":1,"name":"Heated Pool","villaId":1}`, "1", h.Update)
	checkEnvelope(t, rec, env, http.StatusOK, true)
	if updated == nil || updated.Name != "Heated Pool" {
		t.Errorf("update did not map the new name, got %+v", updated)
	}
}

func TestAmenityDelete(t *testing.T) {
	tests := []struct {
		name       string
		store      *mockAmenityStore
		wantStatus int
	}{
		{
			name: "absent answers 404",
			store: &mockAmenityStore{
				getByIDFunc: func(ctx context.Context, id uint64) (*model.VillaAmenity, error) {
					return nil, repository.ErrAmenityNotFound
				},
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name: "present answers 200 with empty payload",
			store: &mockAmenityStore{
				getByIDFunc: func(ctx context.Context, id uint64) (*model.VillaAmenity, error) {
					return sampleAmenity(), nil
				},
				deleteFunc: func(ctx context.Context, id uint64) error { return nil },
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewAmenityHandler(tt.store, &mockVillaStore{})
			rec, env := doRequest(t, http.MethodDelete, "/api/villa-amenities/1", "", "1", h.Delete)
			checkEnvelope(t, rec, env, tt.wantStatus, tt.wantStatus == http.StatusOK)
			if tt.wantStatus == http.StatusOK && env.Data != nil {
				t.Error("delete payload must be empty")
			}
		})
	}
}
