package main

import (
	"net/http"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"frostdepth/climate"
	"frostdepth/modberg"
	"frostdepth/server"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

func main() {
	upgrader.CheckOrigin = func(r *http.Request) bool {
		return true
	}
	cfg := server.LoadConfig("conf/config.ini")
	defaults := modberg.LoadDefaults("conf/config.ini")
	cc := climate.NewClient(cfg.ClimateBaseURL, cfg.ClimateTimeout)
	s := server.NewServer(cfg, upgrader, cc, defaults)
	if err := s.Serve(); err != nil {
		log.Fatal("ListenAndServe: ", err)
	}
}
