package contracts

import (
	"context"
	"pharmacy-client/internal/pkg/dto/requests"
	"pharmacy-client/internal/pkg/dto/responses"
)

type PatientService interface {
	GetPatientsByStatus(ctx context.Context, status string) responses.Envelope[[]responses.PatientDetails]
	GetPatientDetails(ctx context.Context, patientID string) responses.Envelope[*responses.PatientDetails]
	GetPatientByMobile(ctx context.Context, mobileNumber string) responses.Envelope[*responses.PatientDetails]
	SavePatientDetails(ctx context.Context, request *requests.SavePatientDetails) responses.Envelope[*responses.PatientDetails]
	UpdatePatientStatus(ctx context.Context, request *requests.UpdatePatientStatus) responses.Envelope[any]
	VerifyKyc(ctx context.Context, request *requests.VerifyKyc) responses.Envelope[*responses.KycResult]
}
