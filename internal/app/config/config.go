package config

import (
	"pharmacy-client/internal/pkg/constvars"
	"pharmacy-client/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Storage: Storage{
			Driver:   utils.GetEnvString("STORAGE_DRIVER", constvars.StorageDriverFile),
			FilePath: utils.GetEnvString("STORAGE_FILE_PATH", ".pharmacy/session.json"),
		},
		Redis: Redis{
			Host:      utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:      utils.GetEnvString("REDIS_PORT", "6379"),
			Password:  utils.GetEnvString("REDIS_PASSWORD", ""),
			KeyPrefix: utils.GetEnvString("REDIS_KEY_PREFIX", "pharmacy:session:"),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "info"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "pharmacy-client.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "pharmacy-client_error.log"),
		},
		Minio: Minio{
			Host:               utils.GetEnvString("MINIO_HOST", ""),
			Port:               utils.GetEnvString("MINIO_PORT", "9000"),
			Username:           utils.GetEnvString("MINIO_USERNAME", ""),
			Password:           utils.GetEnvString("MINIO_PASSWORD", ""),
			UseSSL:             utils.GetEnvBool("MINIO_USE_SSL", false),
			PrescriptionBucket: utils.GetEnvString("MINIO_PRESCRIPTION_BUCKET", "prescriptions"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	baseUrl, _ := utils.LookupEnvString("API_BASE_URL")
	return &InternalConfig{
		App: App{
			Env:                   utils.GetEnvString("APP_ENV", constvars.EnvironmentDevelopment),
			Variant:               utils.GetEnvString("APP_VARIANT", constvars.VariantWeb),
			Version:               utils.GetEnvString("APP_VERSION", "v1.0"),
			HTTPTimeoutInSeconds:  utils.GetEnvInt("APP_HTTP_TIMEOUT_IN_SECONDS", 30),
			ShutdownTimeoutInSecs: utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT_IN_SECONDS", 5),
		},
		API: API{
			BaseUrl: baseUrl,
		},
	}
}
