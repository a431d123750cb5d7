package patient_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	patientHandler "github.com/cliniccare/clinic-api/internal/handler/patient"
	"github.com/cliniccare/clinic-api/internal/repository/clinicstore"
	"github.com/cliniccare/clinic-api/internal/service/inventory"
	patientService "github.com/cliniccare/clinic-api/internal/service/patient"
	treatmentService "github.com/cliniccare/clinic-api/internal/service/treatment"
	"github.com/cliniccare/clinic-api/internal/storage"
	"github.com/cliniccare/clinic-api/pkg/logger"
	"github.com/cliniccare/clinic-api/pkg/metrics"
)

type envelope struct {
	Status  string         `json:"status"`
	Message string         `json:"message"`
	Data    map[string]any `json:"data"`
}

type listEnvelope struct {
	Status string           `json:"status"`
	Data   []map[string]any `json:"data"`
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := storage.NewMemStore()
	log := logger.NewLogger(&logger.Config{Level: logger.ErrorLevel, TimeFormat: time.RFC3339, Output: io.Discard})
	m := metrics.New("test")

	patients := clinicstore.NewPatientRepository(store, log, m)
	records := clinicstore.NewTreatmentRecordRepository(store, log, m)
	drugs := clinicstore.NewDrugRepository(store, log, m)
	purchases := clinicstore.NewPurchaseRepository(store, log, m)

	inv := inventory.NewService(drugs, purchases, log, m)
	treatments := treatmentService.NewService(records, inv, log)
	svc := patientService.NewService(patients, records, log)

	engine := gin.New()
	patientHandler.NewHandler(svc, treatments).RegisterRoutes(engine.Group("/api/v1"))
	return engine
}

func doJSON(t *testing.T, engine *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestPatientEndpoints(t *testing.T) {
	engine := newTestRouter(t)

	// Create
	w := doJSON(t, engine, "POST", "/api/v1/patients", map[string]any{
		"hn":         "HN-00001",
		"first_name": "สมชาย",
		"last_name":  "ใจดี",
		"phone":      "081-111-2222",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "success", created.Status)
	id, _ := created.Data["id"].(string)
	require.NotEmpty(t, id)

	// Get
	w = doJSON(t, engine, "GET", "/api/v1/patients/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var got envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "HN-00001", got.Data["hn"])

	// Search
	w = doJSON(t, engine, "GET", "/api/v1/patients?q=สมชาย", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list listEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Len(t, list.Data, 1)

	// Update
	w = doJSON(t, engine, "PUT", "/api/v1/patients/"+id, map[string]any{"phone": "089-000-1111"})
	require.Equal(t, http.StatusOK, w.Code)
	var updated envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, "089-000-1111", updated.Data["phone"])

	// Records listing is empty, not null
	w = doJSON(t, engine, "GET", fmt.Sprintf("/api/v1/patients/%s/records", id), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"data":[]`)

	// Delete, then the patient is gone
	w = doJSON(t, engine, "DELETE", "/api/v1/patients/"+id, nil)
	require.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, engine, "GET", "/api/v1/patients/"+id, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreatePatientValidation(t *testing.T) {
	engine := newTestRouter(t)

	// first_name is required
	w := doJSON(t, engine, "POST", "/api/v1/patients", map[string]any{"hn": "HN-00001"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetMissingPatient(t *testing.T) {
	engine := newTestRouter(t)

	w := doJSON(t, engine, "GET", "/api/v1/patients/no-such-id", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)
}
