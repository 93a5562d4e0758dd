package config

import (
	"context"
	"log"
	"pharmacy-client/internal/app/contracts"

	"github.com/minio/minio-go/v7"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Bootstrap struct {
	Redis          *redis.Client
	Minio          *minio.Client
	Logger         *zap.Logger
	Store          contracts.KeyValueStore
	Session        contracts.SessionManager
	Inventory      contracts.InventoryService
	Otp            contracts.OtpService
	Users          contracts.UserService
	Patients       contracts.PatientService
	Prescriptions  contracts.PrescriptionService
	InternalConfig *InternalConfig
	DriverConfig   *DriverConfig
}

func (b *Bootstrap) Shutdown(ctx context.Context) error {
	if b.Redis != nil {
		err := b.Redis.Close()
		if err != nil {
			return err
		}
		log.Println("Successfully closing Redis")
	}

	if b.Logger != nil {
		// Sync on stdout/stderr returns EINVAL on some platforms; ignore it.
		_ = b.Logger.Sync()
	}

	return nil
}
