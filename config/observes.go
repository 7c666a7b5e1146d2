package config

import (
	"time"

	"github.com/spf13/viper"
)

// Tracer config struct for OpenTelemetry
type Tracer struct {
	Endpoint     string        `json:"endpoint" yaml:"endpoint"` // OTLP gRPC endpoint, empty disables export
	ServiceName  string        `json:"service_name" yaml:"service_name"`
	SamplingRate float64       `json:"sampling_rate" yaml:"sampling_rate"` // 0.0 to 1.0
	BatchTimeout time.Duration `json:"batch_timeout" yaml:"batch_timeout"`
}

func setTracerDefaults(v *viper.Viper) {
	v.SetDefault("tracer.endpoint", "")
	v.SetDefault("tracer.service_name", "")
	v.SetDefault("tracer.sampling_rate", 1.0)
	v.SetDefault("tracer.batch_timeout", 5*time.Second)
}

func getTracerConfig(v *viper.Viper) *Tracer {
	name := v.GetString("tracer.service_name")
	if name == "" {
		name = v.GetString("app_name")
	}
	return &Tracer{
		Endpoint:     v.GetString("tracer.endpoint"),
		ServiceName:  name,
		SamplingRate: v.GetFloat64("tracer.sampling_rate"),
		BatchTimeout: v.GetDuration("tracer.batch_timeout"),
	}
}
