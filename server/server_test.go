package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frostdepth/climate"
	"frostdepth/modberg"
	"frostdepth/model"
)

const validBody = `{
	"units": "imperial",
	"conductivity": 0.8,
	"dry_density": 100,
	"water_content": 0.15,
	"mean_annual_temp": 5,
	"air_freezing_index": 2500,
	"n_factor": 0.8,
	"freeze_duration": 160
}`

func newTestServer(t *testing.T, climateHandler http.HandlerFunc) *Server {
	var cc *climate.Client
	if climateHandler != nil {
		backend := httptest.NewServer(climateHandler)
		t.Cleanup(backend.Close)
		cc = climate.NewClient(backend.URL, time.Second)
	}
	cfg := Config{Addr: ":0"}
	return NewServer(cfg, websocket.Upgrader{}, cc, modberg.LoadDefaults(""))
}

func TestHandleFrostDepth(t *testing.T) {
	s := newTestServer(t, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/frost-depth", strings.NewReader(validBody))
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var res modberg.Result
	require.NoError(t, json.NewDecoder(w.Body).Decode(&res))
	assert.Equal(t, 0.93, res.Lambda)
	assert.InDelta(t, 5.545, res.Depth, 1e-3)
	assert.False(t, res.Degenerate)
}

func TestHandleFrostDepthInvalidInput(t *testing.T) {
	s := newTestServer(t, nil)
	body := strings.Replace(validBody, `"conductivity": 0.8`, `"conductivity": -1`, 1)
	req := httptest.NewRequest(http.MethodPost, "/api/frost-depth", strings.NewReader(body))
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	var reply model.ErrorReply
	require.NoError(t, json.NewDecoder(w.Body).Decode(&reply))
	assert.Equal(t, model.KindInvalidInput, reply.Kind)
	assert.Equal(t, "conductivity", reply.Field)
}

func TestHandleFrostDepthDomainError(t *testing.T) {
	s := newTestServer(t, nil)
	body := `{
		"conductivity": 0.8,
		"dry_density": 100,
		"water_content": 0.15,
		"mean_annual_temp": -200,
		"air_freezing_index": 1600,
		"n_factor": 1,
		"freeze_duration": 10
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/frost-depth", strings.NewReader(body))
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	var reply model.ErrorReply
	require.NoError(t, json.NewDecoder(w.Body).Decode(&reply))
	assert.Equal(t, model.KindDomainError, reply.Kind)
	assert.Equal(t, "lambda", reply.Quantity)
}

func TestHandleClimate(t *testing.T) {
	s := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/mmm/temperature") {
			w.Write([]byte(`{"GFDL-CM3":{"rcp85":{"2040":{"tas":-1.5}}}}`))
			return
		}
		w.Write([]byte(`{"GFDL-CM3":{"2040-2069":{"di":2500}}}`))
	})
	req := httptest.NewRequest(http.MethodGet,
		"/api/climate?lat=65&lon=-147&model=GFDL-CM3&scenario=rcp85&era=2040-2069", nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var data model.ClimateData
	require.NoError(t, json.NewDecoder(w.Body).Decode(&data))
	assert.InDelta(t, 29.3, data.MeanAnnualTemp, 1e-9)
	assert.Equal(t, 2500.0, data.DesignFreezingIndex)
}

func TestHandleClimateBadQuery(t *testing.T) {
	s := newTestServer(t, nil)
	req := httptest.NewRequest(http.MethodGet, "/api/climate?lat=north", nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
