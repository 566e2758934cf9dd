package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/royalvilla/villa-catalog-api/internal/model"
	"github.com/royalvilla/villa-catalog-api/internal/response"
)

// mockVillaStore implements VillaStore with overridable function fields.
type mockVillaStore struct {
	createFunc     func(ctx context.Context, v *model.Villa) error
	getByIDFunc    func(ctx context.Context, id uint64) (*model.Villa, error)
	listFunc       func(ctx context.Context) ([]*model.Villa, error)
	updateFunc     func(ctx context.Context, v *model.Villa) error
	deleteFunc     func(ctx context.Context, id uint64) error
	nameExistsFunc func(ctx context.Context, name string, excludeID uint64) (bool, error)
}

func (m *mockVillaStore) Create(ctx context.Context, v *model.Villa) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, v)
	}
	return errors.New("not implemented")
}

func (m *mockVillaStore) GetByID(ctx context.Context, id uint64) (*model.Villa, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, errors.New("not implemented")
}

func (m *mockVillaStore) List(ctx context.Context) ([]*model.Villa, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, errors.New("not implemented")
}

func (m *mockVillaStore) Update(ctx context.Context, v *model.Villa) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, v)
	}
	return errors.New("not implemented")
}

func (m *mockVillaStore) Delete(ctx context.Context, id uint64) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return errors.New("not implemented")
}

func (m *mockVillaStore) NameExists(ctx context.Context, name string, excludeID uint64) (bool, error) {
	if m.nameExistsFunc != nil {
		return m.nameExistsFunc(ctx, name, excludeID)
	}
	return false, errors.New("not implemented")
}

// mockAmenityStore implements AmenityStore with overridable function fields.
type mockAmenityStore struct {
	createFunc       func(ctx context.Context, a *model.VillaAmenity) error
	getByIDFunc      func(ctx context.Context, id uint64) (*model.VillaAmenity, error)
	listFunc         func(ctx context.Context) ([]*model.VillaAmenity, error)
	updateFunc       func(ctx context.Context, a *model.VillaAmenity) error
	deleteFunc       func(ctx context.Context, id uint64) error
	countByVillaFunc func(ctx context.Context, villaID uint64) (int, error)
}

func (m *mockAmenityStore) Create(ctx context.Context, a *model.VillaAmenity) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, a)
	}
	return errors.New("not implemented")
}

func (m *mockAmenityStore) GetByID(ctx context.Context, id uint64) (*model.VillaAmenity, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, errors.New("not implemented")
}

func (m *mockAmenityStore) List(ctx context.Context) ([]*model.VillaAmenity, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, errors.New("not implemented")
}

func (m *mockAmenityStore) Update(ctx context.Context, a *model.VillaAmenity) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, a)
	}
	return errors.New("not implemented")
}

func (m *mockAmenityStore) Delete(ctx context.Context, id uint64) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return errors.New("not implemented")
}

func (m *mockAmenityStore) CountByVilla(ctx context.Context, villaID uint64) (int, error) {
	if m.countByVillaFunc != nil {
		return m.countByVillaFunc(ctx, villaID)
	}
	return 0, errors.New("not implemented")
}

// doRequest runs a handler against a synthetic request and decodes the
// envelope from the recorded body.
func doRequest(t *testing.T, method, target, body string, pathParam string, fn echo.HandlerFunc) (*httptest.ResponseRecorder, response.ApiResponse) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if pathParam != "" {
		c.SetParamNames("id")
		c.SetParamValues(pathParam)
	}

	if err := fn(c); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	var env response.ApiResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v (body %s)", err, rec.Body.String())
	}
	return rec, env
}

// checkEnvelope asserts the recorded HTTP status matches the envelope's
// own status code and the expected value.
func checkEnvelope(t *testing.T, rec *httptest.ResponseRecorder, env response.ApiResponse, wantStatus int, wantSuccess bool) {
	t.Helper()
	if rec.Code != wantStatus {
		t.Errorf("HTTP status = %d, want %d (body %s)", rec.Code, wantStatus, rec.Body.String())
	}
	if env.StatusCode != wantStatus {
		t.Errorf("envelope statusCode = %d, want %d", env.StatusCode, wantStatus)
	}
	if env.Success != wantSuccess {
		t.Errorf("envelope success = %v, want %v", env.Success, wantSuccess)
	}
}
