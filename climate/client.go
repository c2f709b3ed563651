// Package climate fetches projected climate inputs for the frost depth
// model from the SNAP Data API (earthmaps.io).
package climate

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"
)

// DefaultBaseURL is the public SNAP Data API endpoint.
const DefaultBaseURL = "https://earthmaps.io"

// Client queries the SNAP Data API. The base URL is injectable for tests.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

// The temperature endpoint nests model → scenario → year → summary stat,
// with values in °C.
type temperatureResponse map[string]map[string]map[string]map[string]float64

// MeanAnnualTemp returns the projected mean annual temperature in °F for a
// location, averaged over the inclusive year range for the given climate
// model and RCP scenario.
func (c *Client) MeanAnnualTemp(lat, lon float64, model, scenario string, yearStart, yearEnd int) (float64, error) {
	url := fmt.Sprintf("%s/mmm/temperature/all/%g/%g", c.BaseURL, lat, lon)
	var resp temperatureResponse
	if err := c.getJSON(url, &resp); err != nil {
		return 0, err
	}
	years, ok := resp[model][scenario]
	if !ok {
		return 0, fmt.Errorf("no temperature data for %s/%s", model, scenario)
	}
	var sum float64
	var n int
	for year, stats := range years {
		y, err := strconv.Atoi(year)
		if err != nil || y < yearStart || y > yearEnd {
			continue
		}
		for _, v := range stats {
			sum += v
			n++
		}
	}
	if n == 0 {
		return 0, fmt.Errorf("no temperature data for %s/%s in %d-%d", model, scenario, yearStart, yearEnd)
	}
	meanC := sum / float64(n)
	return meanC*1.8 + 32, nil
}

type designIndexResponse map[string]map[string]struct {
	DI float64 `json:"di"`
}

// DesignFreezingIndex returns the design air freezing index in °F·days for
// a location, climate model and summary era.
func (c *Client) DesignFreezingIndex(lat, lon float64, model, era string) (float64, error) {
	url := fmt.Sprintf("%s/design_index/freezing/all/point/%g/%g", c.BaseURL, lat, lon)
	var resp designIndexResponse
	if err := c.getJSON(url, &resp); err != nil {
		return 0, err
	}
	entry, ok := resp[model][era]
	if !ok {
		return 0, fmt.Errorf("no design freezing index for %s/%s", model, era)
	}
	return entry.DI, nil
}

func (c *Client) getJSON(url string, out interface{}) error {
	res, err := c.HTTPClient.Get(url)
	if err != nil {
		return fmt.Errorf("GET %s: %w", url, err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s: unexpected status %s", url, res.Status)
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("GET %s: decoding response: %w", url, err)
	}
	log.Debug("fetched ", url)
	return nil
}
