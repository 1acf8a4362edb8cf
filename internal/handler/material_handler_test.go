package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"solarops/internal/domain"
	"solarops/internal/handler"
	"solarops/internal/service"
	"solarops/mocks"
)

type apiResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Meta *struct {
		Total  int `json:"total"`
		Offset int `json:"offset"`
		Limit  int `json:"limit"`
	} `json:"meta"`
}

func materialRouter() (*gin.Engine, *mocks.MockMaterialRepo, *mocks.MockStockRepo) {
	materialRepo := new(mocks.MockMaterialRepo)
	stockRepo := new(mocks.MockStockRepo)
	h := handler.NewMaterialHandler(service.NewMaterialService(materialRepo, stockRepo))

	r := gin.New()
	r.POST("/materials", h.Create)
	r.GET("/materials", h.List)
	r.GET("/materials/:id", h.GetByID)
	return r, materialRepo, stockRepo
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) apiResponse {
	t.Helper()
	var resp apiResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestMaterialHandler_Create_Success(t *testing.T) {
	r, materialRepo, stockRepo := materialRouter()

	materialRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	stockRepo.On("CreateForMaterial", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	body := `{"name": "Panou 450W", "sku": "PAN-450", "category": "panel", "unit": "buc"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/materials", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	resp := decodeResponse(t, w)
	assert.True(t, resp.Success)
	assert.Nil(t, resp.Error)
}

func TestMaterialHandler_Create_MissingRequiredField(t *testing.T) {
	r, materialRepo, _ := materialRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/materials", bytes.NewBufferString(`{"name": "Panou"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	resp := decodeResponse(t, w)
	assert.False(t, resp.Success)
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
	materialRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestMaterialHandler_Create_InvalidCategoryMapsTo400(t *testing.T) {
	r, _, _ := materialRouter()

	body := `{"name": "Panou", "sku": "PAN-450", "category": "gadget", "unit": "buc"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/materials", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_CATEGORY", decodeResponse(t, w).Error.Code)
}

func TestMaterialHandler_Create_DuplicateSKUMapsTo409(t *testing.T) {
	r, materialRepo, _ := materialRouter()

	materialRepo.On("Create", mock.Anything, mock.Anything).Return(domain.ErrDuplicateSKU)

	body := `{"name": "Panou", "sku": "PAN-450", "category": "panel", "unit": "buc"}`
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodPost, "/materials", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "DUPLICATE_SKU", decodeResponse(t, w).Error.Code)
}

func TestMaterialHandler_GetByID_NotFoundMapsTo404(t *testing.T) {
	r, materialRepo, _ := materialRouter()

	materialRepo.On("GetByID", mock.Anything, mock.Anything).Return(nil, domain.ErrNotFound)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/materials/7f9c24e5-3f1a-4a0b-9f68-1f2a3b4c5d6e", http.NoBody)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "NOT_FOUND", decodeResponse(t, w).Error.Code)
}

func TestMaterialHandler_GetByID_BadUUID(t *testing.T) {
	r, _, _ := materialRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/materials/not-a-uuid", http.NoBody)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_ID", decodeResponse(t, w).Error.Code)
}

func TestMaterialHandler_List_PaginationMeta(t *testing.T) {
	r, materialRepo, _ := materialRouter()

	materialRepo.On("List", mock.Anything, mock.Anything).
		Return([]domain.MaterialWithStock{{}, {}}, 42, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/materials?offset=20&limit=2", http.NoBody)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	resp := decodeResponse(t, w)
	require.NotNil(t, resp.Meta)
	assert.Equal(t, 42, resp.Meta.Total)
	assert.Equal(t, 20, resp.Meta.Offset)
	assert.Equal(t, 2, resp.Meta.Limit)
}
