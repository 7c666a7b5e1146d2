package config

import (
	"time"

	"github.com/spf13/viper"
)

// Dataset describes where the served collection is loaded from
type Dataset struct {
	Driver    string        `json:"driver" yaml:"driver"`         // file, sqlite3, postgres, mysql, redis, mongo
	Source    string        `json:"-" yaml:"source"`              // path, DSN, redis address/URL or mongo URI
	Query     string        `json:"query" yaml:"query"`           // SQL query, redis key or mongo collection
	KeyColumn string        `json:"key_column" yaml:"key_column"` // SQL and mongo; set for a mapping
	Refresh   time.Duration `json:"refresh" yaml:"refresh"`       // 0 loads once
}

func setDatasetDefaults(v *viper.Viper) {
	v.SetDefault("dataset.driver", "file")
	v.SetDefault("dataset.source", "")
	v.SetDefault("dataset.query", "")
	v.SetDefault("dataset.key_column", "")
	v.SetDefault("dataset.refresh", time.Duration(0))
}

func getDatasetConfig(v *viper.Viper) *Dataset {
	return &Dataset{
		Driver:    v.GetString("dataset.driver"),
		Source:    v.GetString("dataset.source"),
		Query:     v.GetString("dataset.query"),
		KeyColumn: v.GetString("dataset.key_column"),
		Refresh:   v.GetDuration("dataset.refresh"),
	}
}
