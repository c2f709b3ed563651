package climate

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, time.Second)
}

func TestMeanAnnualTemp(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/mmm/temperature/all/65/-147", r.URL.Path)
		w.Write([]byte(`{"GFDL-CM3":{"rcp85":{
			"2040":{"tas":-2.0},
			"2050":{"tas":-1.0},
			"2100":{"tas":5.0}}}}`))
	})

	// 2100 falls outside the range; mean of −2 and −1 °C is −1.5 °C.
	got, err := c.MeanAnnualTemp(65, -147, "GFDL-CM3", "rcp85", 2040, 2069)
	require.NoError(t, err)
	assert.InDelta(t, 29.3, got, 1e-9)
}

func TestMeanAnnualTempUnknownModel(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"GFDL-CM3":{"rcp85":{"2040":{"tas":-2.0}}}}`))
	})
	_, err := c.MeanAnnualTemp(65, -147, "NCAR-CCSM4", "rcp85", 2040, 2069)
	assert.Error(t, err)
}

func TestDesignFreezingIndex(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/design_index/freezing/all/point/65/-147", r.URL.Path)
		w.Write([]byte(`{"GFDL-CM3":{"2040-2069":{"di":2500}}}`))
	})
	got, err := c.DesignFreezingIndex(65, -147, "GFDL-CM3", "2040-2069")
	require.NoError(t, err)
	assert.Equal(t, 2500.0, got)
}

func TestGetJSONBadStatus(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadGateway)
	})
	_, err := c.DesignFreezingIndex(65, -147, "GFDL-CM3", "2040-2069")
	assert.Error(t, err)
}
