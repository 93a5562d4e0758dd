package config

import (
	"pharmacy-client/internal/pkg/constvars"
	"time"
)

type (
	DriverConfig struct {
		Storage Storage
		Redis   Redis
		Logger  Logger
		Minio   Minio
	}
	Storage struct {
		Driver   string
		FilePath string
	}
	Redis struct {
		Host      string
		Port      string
		Password  string
		KeyPrefix string
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
	Minio struct {
		Host               string
		Port               string
		Username           string
		Password           string
		UseSSL             bool
		PrescriptionBucket string
	}
)

// Enabled reports whether an archive endpoint was configured.
func (m Minio) Enabled() bool {
	return m.Host != ""
}

type (
	InternalConfig struct {
		App App
		API API
	}
	App struct {
		Env                   string
		Variant               string
		Version               string
		HTTPTimeoutInSeconds  int
		ShutdownTimeoutInSecs int
	}
	// API.BaseUrl is empty when API_BASE_URL is unset; startup continues and
	// the bootstrap logs the problem.
	API struct {
		BaseUrl string
	}
)

func (a App) IsDevelopment() bool {
	return a.Env == constvars.EnvironmentDevelopment
}

func (a App) IsMobile() bool {
	return a.Variant == constvars.VariantMobile
}

func (a App) HTTPTimeout() time.Duration {
	return time.Duration(a.HTTPTimeoutInSeconds) * time.Second
}
