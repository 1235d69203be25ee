package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"serverbook/internal/inventory"
)

func testRouter(t *testing.T) *echo.Echo {
	t.Helper()
	store, err := inventory.OpenAt(filepath.Join(t.TempDir(), "serverbook.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return New(store).Router()
}

func do(t *testing.T, e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &m))
	return m
}

func TestCreateProvider(t *testing.T) {
	e := testRouter(t)

	rec := do(t, e, http.MethodPost, "/providers", `{"name":"Hetzner","consoleUrl":"https://console.hetzner.cloud"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	body := decode(t, rec)
	assert.Equal(t, "Hetzner", body["name"])
	assert.Equal(t, float64(1), body["id"])
}

func TestCreateProvider_MissingNameConflicts(t *testing.T) {
	e := testRouter(t)
	rec := do(t, e, http.MethodPost, "/providers", `{"notes":"no name"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestGetProvider_NotFound(t *testing.T) {
	e := testRouter(t)
	rec := do(t, e, http.MethodGet, "/providers/99", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetProvider_BadID(t *testing.T) {
	e := testRouter(t)
	rec := do(t, e, http.MethodGet, "/providers/abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPatchProvider_PartialUpdate(t *testing.T) {
	e := testRouter(t)

	rec := do(t, e, http.MethodPost, "/providers", `{"name":"Hetzner","notes":"primary"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = do(t, e, http.MethodPatch, "/providers/1", `{"notes":"secondary"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decode(t, rec)
	assert.Equal(t, "Hetzner", body["name"], "name must survive a notes-only patch")
	assert.Equal(t, "secondary", body["notes"])
}

func TestCreatePerson_BadEmail(t *testing.T) {
	e := testRouter(t)
	rec := do(t, e, http.MethodPost, "/people", `{"name":"Alice","email":"nope"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateServer_UnknownStatusRejected(t *testing.T) {
	e := testRouter(t)
	rec := do(t, e, http.MethodPost, "/servers", `{"name":"web-1","hostname":"web1.local","status":"BROKEN"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateServer_DanglingProviderConflicts(t *testing.T) {
	e := testRouter(t)
	rec := do(t, e, http.MethodPost, "/servers", `{"name":"web-1","hostname":"web1.local","providerId":42}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	// Nothing was created.
	rec = do(t, e, http.MethodGet, "/servers", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestServerLifecycle(t *testing.T) {
	e := testRouter(t)

	require.Equal(t, http.StatusCreated, do(t, e, http.MethodPost, "/providers", `{"name":"Hetzner"}`).Code)
	require.Equal(t, http.StatusCreated, do(t, e, http.MethodPost, "/people", `{"name":"Alice"}`).Code)

	rec := do(t, e, http.MethodPost, "/servers",
		`{"name":"web-1","hostname":"web1.local","providerId":1,"ownerId":1,"status":"ACTIVE","purpose":"PROD"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	body := decode(t, rec)
	require.NotNil(t, body["provider"], "create must return the resolved provider")
	require.NotNil(t, body["owner"], "create must return the resolved owner")

	rec = do(t, e, http.MethodPost, "/cost-snapshots", `{"serverId":1,"month":"2024-01","costMonth":12.5}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = do(t, e, http.MethodGet, "/servers/1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body = decode(t, rec)
	snaps, ok := body["costSnapshots"].([]any)
	require.True(t, ok)
	assert.Len(t, snaps, 1)

	require.Equal(t, http.StatusNoContent, do(t, e, http.MethodDelete, "/servers/1", "").Code)
	assert.Equal(t, http.StatusNotFound, do(t, e, http.MethodGet, "/servers/1", "").Code)
	assert.Equal(t, http.StatusNotFound, do(t, e, http.MethodDelete, "/servers/1", "").Code)
	// Cascade removed the snapshot.
	assert.Equal(t, http.StatusNotFound, do(t, e, http.MethodGet, "/cost-snapshots/1", "").Code)
}

func TestListSnapshots_ServerFilter(t *testing.T) {
	e := testRouter(t)

	require.Equal(t, http.StatusCreated, do(t, e, http.MethodPost, "/servers", `{"name":"a","hostname":"a.local"}`).Code)
	require.Equal(t, http.StatusCreated, do(t, e, http.MethodPost, "/servers", `{"name":"b","hostname":"b.local"}`).Code)
	require.Equal(t, http.StatusCreated, do(t, e, http.MethodPost, "/cost-snapshots", `{"serverId":1,"month":"2024-01","costMonth":10}`).Code)
	require.Equal(t, http.StatusCreated, do(t, e, http.MethodPost, "/cost-snapshots", `{"serverId":2,"month":"2024-01","costMonth":20}`).Code)

	rec := do(t, e, http.MethodGet, "/cost-snapshots?serverId=2", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var snaps []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snaps))
	require.Len(t, snaps, 1)
	assert.Equal(t, float64(20), snaps[0]["costMonth"])

	// Filtering on a server that does not exist is an empty result, not 404.
	rec = do(t, e, http.MethodGet, "/cost-snapshots?serverId=777", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMalformedBody(t *testing.T) {
	e := testRouter(t)
	rec := do(t, e, http.MethodPost, "/providers", `{"name":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
