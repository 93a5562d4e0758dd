package main

import (
	"context"
	"pharmacy-client/internal/app/config"
	"pharmacy-client/internal/app/contracts"
	"pharmacy-client/internal/app/drivers/database"
	minioDriver "pharmacy-client/internal/app/drivers/storage"
	"pharmacy-client/internal/app/services/auth"
	"pharmacy-client/internal/app/services/inventory"
	"pharmacy-client/internal/app/services/otp"
	"pharmacy-client/internal/app/services/patients"
	"pharmacy-client/internal/app/services/prescriptions"
	"pharmacy-client/internal/app/services/shared/httpclient"
	"pharmacy-client/internal/app/services/shared/keyvalue"
	"pharmacy-client/internal/app/services/shared/storage"
	"pharmacy-client/internal/app/services/users"
	"pharmacy-client/internal/pkg/constvars"

	"go.uber.org/zap"
)

func bootstrapingTheApp(
	driverConfig *config.DriverConfig,
	internalConfig *config.InternalConfig,
	log *zap.Logger,
	biometric contracts.BiometricAuthenticator,
	onLoginRequired func(ctx context.Context),
) (*config.Bootstrap, error) {
	if internalConfig.API.BaseUrl == "" {
		log.Error("API_BASE_URL is not set, backend calls will fail until it is configured")
	}

	bootstrap := &config.Bootstrap{
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	// Key/value store
	store, err := newKeyValueStore(bootstrap)
	if err != nil {
		return nil, err
	}
	bootstrap.Store = store

	// HTTP client
	client := httpclient.NewClient(httpclient.Options{
		BaseUrl:     internalConfig.API.BaseUrl,
		Timeout:     internalConfig.App.HTTPTimeout(),
		Development: internalConfig.App.IsDevelopment(),
		Store:       store,
	}, log)

	// Domain services
	bootstrap.Otp = otp.NewOtpService(client, log)
	bootstrap.Users = users.NewUserService(client, log)
	bootstrap.Patients = patients.NewPatientService(client, log)

	// Session
	bootstrap.Session = auth.NewSessionManager(store, bootstrap.Users, bootstrap.Otp, bootstrap.Patients, auth.Options{
		Variant:         internalConfig.App.Variant,
		Biometric:       biometric,
		OnLoginRequired: onLoginRequired,
	}, log)
	client.SetNavigator(bootstrap.Session)

	bootstrap.Inventory = inventory.NewInventoryService(client, bootstrap.Session, log)

	// Prescriptions, with the optional archive
	var archive contracts.PrescriptionArchive
	if driverConfig.Minio.Enabled() {
		minioClient, err := minioDriver.NewMinio(driverConfig, log)
		if err != nil {
			log.Warn("Prescription archive disabled", zap.Error(err))
		} else {
			bootstrap.Minio = minioClient
			archive = storage.NewMinioPrescriptionArchive(minioClient, driverConfig.Minio.PrescriptionBucket, log)
		}
	}
	bootstrap.Prescriptions = prescriptions.NewPrescriptionService(client, archive, log)

	return bootstrap, nil
}

func newKeyValueStore(bootstrap *config.Bootstrap) (contracts.KeyValueStore, error) {
	driverConfig := bootstrap.DriverConfig
	switch driverConfig.Storage.Driver {
	case constvars.StorageDriverRedis:
		redisClient, err := database.NewRedisClient(driverConfig, bootstrap.Logger)
		if err != nil {
			return nil, err
		}
		bootstrap.Redis = redisClient
		return keyvalue.NewRedisStore(redisClient, driverConfig.Redis.KeyPrefix), nil
	case constvars.StorageDriverMemory:
		return keyvalue.NewMemoryStore(), nil
	default:
		return keyvalue.NewFileStore(driverConfig.Storage.FilePath)
	}
}
