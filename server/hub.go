package server

import (
	"encoding/json"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"frostdepth/climate"
	"frostdepth/modberg"
	"frostdepth/model"
)

// Hub serves one websocket connection: requests are read into msg by the
// connection reader, handleRequest turns each into a reply, and
// handleResponse writes the replies back. Closing msg drains and stops
// both goroutines.
type Hub struct {
	conn     *websocket.Conn
	climate  *climate.Client
	defaults modberg.Defaults

	msg     chan model.Msg
	replies chan model.Msg
}

func NewHub(conn *websocket.Conn, cc *climate.Client, defaults modberg.Defaults) *Hub {
	return &Hub{
		conn:     conn,
		climate:  cc,
		defaults: defaults,
		msg:      make(chan model.Msg, 10),
		replies:  make(chan model.Msg, 10),
	}
}

func (h *Hub) handleRequest() {
	defer close(h.replies)
	for msg := range h.msg {
		switch msg.Type {
		case model.MsgCompute:
			h.replies <- h.compute(msg.Content)
		case model.MsgClimate:
			h.replies <- h.fetchClimate(msg.Content)
		case model.MsgDefaults:
			h.replies <- h.sendDefaults()
		default:
			log.Warn("no such message type: ", msg.Type)
		}
	}
}

func (h *Hub) handleResponse() {
	for reply := range h.replies {
		if err := h.conn.WriteJSON(&reply); err != nil {
			log.Error("write: ", err)
		}
	}
}

func (h *Hub) compute(content string) model.Msg {
	var in modberg.Inputs
	if err := json.Unmarshal([]byte(content), &in); err != nil {
		return errorMsg(model.ErrorReply{Kind: model.KindBadRequest, Message: err.Error()})
	}
	res, err := modberg.Compute(in)
	if err != nil {
		return errorMsg(errorReply(err))
	}
	return reply(model.MsgResult, res)
}

func (h *Hub) fetchClimate(content string) model.Msg {
	var req model.ClimateRequest
	if err := json.Unmarshal([]byte(content), &req); err != nil {
		return errorMsg(model.ErrorReply{Kind: model.KindBadRequest, Message: err.Error()})
	}
	data, err := fetchClimate(h.climate, req)
	if err != nil {
		return errorMsg(model.ErrorReply{Kind: model.KindUpstream, Message: err.Error()})
	}
	return reply(model.MsgClimateData, data)
}

func (h *Hub) sendDefaults() model.Msg {
	return reply(model.MsgDefaultsData, h.defaults)
}

func errorMsg(e model.ErrorReply) model.Msg {
	return reply(model.MsgError, e)
}

func reply(msgType string, v interface{}) model.Msg {
	data, err := json.Marshal(v)
	if err != nil {
		log.Error("marshal reply: ", err)
	}
	return model.Msg{Type: msgType, Content: string(data)}
}
