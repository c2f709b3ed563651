// Package server is the presentation shell around the modberg engine: a
// websocket hub for the interactive form plus a small REST surface. It
// holds no computation state; every request is a single pass through the
// engine or the climate client.
package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"frostdepth/climate"
	"frostdepth/modberg"
	"frostdepth/model"
)

type Server struct {
	addr     string
	upgrader websocket.Upgrader
	climate  *climate.Client
	defaults modberg.Defaults
	router   *mux.Router
}

func NewServer(cfg Config, upgrader websocket.Upgrader, cc *climate.Client, defaults modberg.Defaults) *Server {
	s := &Server{
		addr:     cfg.Addr,
		upgrader: upgrader,
		climate:  cc,
		defaults: defaults,
	}
	r := mux.NewRouter()
	r.HandleFunc("/ws", s.serveWs)
	r.HandleFunc("/api/frost-depth", s.handleFrostDepth).Methods(http.MethodPost)
	r.HandleFunc("/api/climate", s.handleClimate).Methods(http.MethodGet)
	s.router = r
	return s
}

// serveWs upgrades the connection and runs a hub for its lifetime.
func (s *Server) serveWs(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error("upgrade: ", err)
		return
	}
	defer conn.Close()

	hub := NewHub(conn, s.climate, s.defaults)
	go hub.handleRequest()
	go hub.handleResponse()
	for {
		var msg model.Msg
		if err := conn.ReadJSON(&msg); err != nil {
			log.Info("websocket closed: ", err)
			close(hub.msg)
			return
		}
		hub.msg <- msg
	}
}

func (s *Server) handleFrostDepth(w http.ResponseWriter, r *http.Request) {
	var in modberg.Inputs
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		writeJSON(w, http.StatusBadRequest, model.ErrorReply{
			Kind:    model.KindBadRequest,
			Message: err.Error(),
		})
		return
	}
	res, err := modberg.Compute(in)
	if err != nil {
		reply := errorReply(err)
		status := http.StatusBadRequest
		if reply.Kind == model.KindDomainError {
			status = http.StatusUnprocessableEntity
		}
		writeJSON(w, status, reply)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleClimate(w http.ResponseWriter, r *http.Request) {
	req, err := parseClimateQuery(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, model.ErrorReply{
			Kind:    model.KindBadRequest,
			Message: err.Error(),
		})
		return
	}
	data, err := fetchClimate(s.climate, req)
	if err != nil {
		writeJSON(w, http.StatusBadGateway, model.ErrorReply{
			Kind:    model.KindUpstream,
			Message: err.Error(),
		})
		return
	}
	writeJSON(w, http.StatusOK, data)
}

func parseClimateQuery(r *http.Request) (model.ClimateRequest, error) {
	q := r.URL.Query()
	req := model.ClimateRequest{
		Model:     q.Get("model"),
		Scenario:  q.Get("scenario"),
		Era:       q.Get("era"),
		YearStart: 2040,
		YearEnd:   2069,
	}
	var err error
	if req.Lat, err = strconv.ParseFloat(q.Get("lat"), 64); err != nil {
		return req, errors.New("lat: not a number")
	}
	if req.Lon, err = strconv.ParseFloat(q.Get("lon"), 64); err != nil {
		return req, errors.New("lon: not a number")
	}
	if v := q.Get("year_start"); v != "" {
		if req.YearStart, err = strconv.Atoi(v); err != nil {
			return req, errors.New("year_start: not a number")
		}
	}
	if v := q.Get("year_end"); v != "" {
		if req.YearEnd, err = strconv.Atoi(v); err != nil {
			return req, errors.New("year_end: not a number")
		}
	}
	return req, nil
}

// fetchClimate resolves the two SNAP lookups a form prefill needs.
func fetchClimate(cc *climate.Client, req model.ClimateRequest) (model.ClimateData, error) {
	var data model.ClimateData
	var err error
	data.MeanAnnualTemp, err = cc.MeanAnnualTemp(req.Lat, req.Lon, req.Model, req.Scenario, req.YearStart, req.YearEnd)
	if err != nil {
		return data, err
	}
	data.DesignFreezingIndex, err = cc.DesignFreezingIndex(req.Lat, req.Lon, req.Model, req.Era)
	return data, err
}

// errorReply maps engine errors onto the wire shape.
func errorReply(err error) model.ErrorReply {
	var invErr *modberg.InvalidInputError
	var domErr *modberg.DomainError
	switch {
	case errors.As(err, &invErr):
		return model.ErrorReply{Kind: model.KindInvalidInput, Field: invErr.Field, Message: err.Error()}
	case errors.As(err, &domErr):
		return model.ErrorReply{Kind: model.KindDomainError, Quantity: domErr.Quantity, Message: err.Error()}
	}
	return model.ErrorReply{Kind: model.KindBadRequest, Message: err.Error()}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("encode response: ", err)
	}
}

func (s *Server) Serve() error {
	log.Info("listening on ", s.addr)
	return http.ListenAndServe(s.addr, s.router)
}
