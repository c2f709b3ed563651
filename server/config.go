package server

import (
	"time"

	log "github.com/sirupsen/logrus"
	"gopkg.in/ini.v1"

	"frostdepth/climate"
)

type Config struct {
	Addr           string
	ClimateBaseURL string
	ClimateTimeout time.Duration
}

// LoadConfig reads the [server] and [climate] sections of the configuration
// file, falling back to built-in defaults when the file or a key is absent.
func LoadConfig(path string) Config {
	cfg := Config{
		Addr:           ":9000",
		ClimateBaseURL: climate.DefaultBaseURL,
		ClimateTimeout: 10 * time.Second,
	}
	file, err := ini.Load(path)
	if err != nil {
		log.Warn("server config not loaded, using built-ins: ", err)
		return cfg
	}
	cfg.Addr = file.Section("server").Key("addr").MustString(cfg.Addr)
	cfg.ClimateBaseURL = file.Section("climate").Key("base_url").MustString(cfg.ClimateBaseURL)
	timeout := file.Section("climate").Key("timeout_seconds").MustInt(10)
	cfg.ClimateTimeout = time.Duration(timeout) * time.Second
	return cfg
}
