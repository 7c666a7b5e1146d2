package config

import (
	"github.com/spf13/viper"
)

// Paging pagination config struct
type Paging struct {
	EncodeCursor bool   `json:"encode_cursor" yaml:"encode_cursor"`
	Secret       string `json:"-" yaml:"secret"`
	DefaultFirst int    `json:"default_first" yaml:"default_first"` // 0 returns the whole collection
	MaxFirst     int    `json:"max_first" yaml:"max_first"`         // 0 disables the cap
}

func setPagingDefaults(v *viper.Viper) {
	v.SetDefault("paging.encode_cursor", false)
	v.SetDefault("paging.secret", "")
	v.SetDefault("paging.default_first", 0)
	v.SetDefault("paging.max_first", 0)
}

// getPagingConfig get paging config
func getPagingConfig(v *viper.Viper) *Paging {
	return &Paging{
		EncodeCursor: v.GetBool("paging.encode_cursor"),
		Secret:       v.GetString("paging.secret"),
		DefaultFirst: v.GetInt("paging.default_first"),
		MaxFirst:     v.GetInt("paging.max_first"),
	}
}
