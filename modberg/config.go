package modberg

import (
	log "github.com/sirupsen/logrus"
	"gopkg.in/ini.v1"
)

// Defaults are the form prefills the presentation shell offers for fields
// the user has not set. They never bypass validation.
type Defaults struct {
	Units          string  `json:"units"`
	NFactor        float64 `json:"n_factor"`
	FreezeDuration float64 `json:"freeze_duration"`
}

// LoadDefaults reads the [modberg] section of the configuration file,
// falling back to the built-in defaults when the file or a key is absent.
func LoadDefaults(path string) Defaults {
	d := Defaults{
		Units:          "imperial",
		NFactor:        0.75,
		FreezeDuration: 160,
	}
	file, err := ini.Load(path)
	if err != nil {
		log.Warn("modberg defaults not loaded, using built-ins: ", err)
		return d
	}
	sec := file.Section("modberg")
	d.Units = sec.Key("units").MustString(d.Units)
	d.NFactor = sec.Key("n_factor").MustFloat64(d.NFactor)
	d.FreezeDuration = sec.Key("freeze_duration").MustFloat64(d.FreezeDuration)
	return d
}
