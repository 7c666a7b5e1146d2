package config

import (
	"github.com/spf13/viper"
)

// Logger logger config struct
type Logger struct {
	Level         int    `json:"level" yaml:"level"` // logrus level, 4 = info
	Format        string `json:"format" yaml:"format"`
	Output        string `json:"output" yaml:"output"`
	OutputFile    string `json:"output_file" yaml:"output_file"`
	Sentry        *Sentry
	Elasticsearch *Elasticsearch
}

// Elasticsearch log shipping config struct
type Elasticsearch struct {
	Addresses   []string `json:"addresses" yaml:"addresses"`
	Username    string   `json:"username" yaml:"username"`
	Password    string   `json:"-" yaml:"password"`
	Index       string   `json:"index" yaml:"index"`
	RotateDaily bool     `json:"rotate_daily" yaml:"rotate_daily"`
	DateSuffix  string   `json:"date_suffix" yaml:"date_suffix"`
}

// Sentry config struct
type Sentry struct {
	Endpoint    string `json:"endpoint" yaml:"endpoint"`
	Environment string `json:"environment" yaml:"environment"`
	Release     string `json:"release" yaml:"release"`
}

func setLoggerDefaults(v *viper.Viper) {
	v.SetDefault("logger.level", 4)
	v.SetDefault("logger.format", "text")
	v.SetDefault("logger.output", "stderr")
	v.SetDefault("logger.output_file", "")
	v.SetDefault("logger.sentry.endpoint", "")
	v.SetDefault("logger.sentry.environment", "")
	v.SetDefault("logger.sentry.release", "")
	v.SetDefault("logger.elasticsearch.addresses", []string{})
	v.SetDefault("logger.elasticsearch.index", "relaypage-log")
	v.SetDefault("logger.elasticsearch.rotate_daily", true)
	v.SetDefault("logger.elasticsearch.date_suffix", "2006.01.02")
}

func getLoggerConfig(v *viper.Viper) *Logger {
	return &Logger{
		Level:      v.GetInt("logger.level"),
		Format:     v.GetString("logger.format"),
		Output:     v.GetString("logger.output"),
		OutputFile: v.GetString("logger.output_file"),
		Sentry: &Sentry{
			Endpoint:    v.GetString("logger.sentry.endpoint"),
			Environment: v.GetString("logger.sentry.environment"),
			Release:     v.GetString("logger.sentry.release"),
		},
		Elasticsearch: &Elasticsearch{
			Addresses:   v.GetStringSlice("logger.elasticsearch.addresses"),
			Username:    v.GetString("logger.elasticsearch.username"),
			Password:    v.GetString("logger.elasticsearch.password"),
			Index:       v.GetString("logger.elasticsearch.index"),
			RotateDaily: v.GetBool("logger.elasticsearch.rotate_daily"),
			DateSuffix:  v.GetString("logger.elasticsearch.date_suffix"),
		},
	}
}
