// Package model holds the wire types shared by the websocket hub and the
// REST handlers.
package model

// Msg is the websocket envelope between browser and server. Content carries
// a JSON-encoded payload whose shape depends on Type.
type Msg struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

// Request message types and their reply counterparts.
const (
	MsgCompute  = "compute"  // content: modberg.Inputs → MsgResult / MsgError
	MsgClimate  = "climate"  // content: ClimateRequest → MsgClimateData / MsgError
	MsgDefaults = "defaults" // no content → MsgDefaultsData
)

const (
	MsgResult       = "result"
	MsgClimateData  = "climate_data"
	MsgDefaultsData = "defaults_data"
	MsgError        = "error"
)

// ClimateRequest selects a location and projection for the SNAP Data API
// lookups that prefill the climate inputs of the form.
type ClimateRequest struct {
	Lat       float64 `json:"lat"`
	Lon       float64 `json:"lon"`
	Model     string  `json:"model"`
	Scenario  string  `json:"scenario"`
	Era       string  `json:"era"`
	YearStart int     `json:"year_start"`
	YearEnd   int     `json:"year_end"`
}

// ClimateData carries the two fetched climate inputs. The temperature is
// absolute °F; callers rebase it to freezing before handing it to the
// engine.
type ClimateData struct {
	MeanAnnualTemp      float64 `json:"mean_annual_temp"`
	DesignFreezingIndex float64 `json:"design_freezing_index"`
}

// ErrorReply names the error kind and the offending field or derived
// quantity so the browser can highlight it.
type ErrorReply struct {
	Kind     string `json:"kind"`
	Field    string `json:"field,omitempty"`
	Quantity string `json:"quantity,omitempty"`
	Message  string `json:"message"`
}

// Error kinds on the wire.
const (
	KindInvalidInput = "invalid_input"
	KindDomainError  = "domain_error"
	KindBadRequest   = "bad_request"
	KindUpstream     = "upstream_error"
)
