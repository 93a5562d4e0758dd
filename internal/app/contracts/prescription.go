package contracts

import (
	"context"
	"pharmacy-client/internal/pkg/dto/requests"
	"pharmacy-client/internal/pkg/dto/responses"
)

type PrescriptionService interface {
	UploadPrescription(ctx context.Context, request *requests.UploadPrescription) responses.Envelope[*responses.PrescriptionUpload]
	GenerateInvoice(ctx context.Context, request *requests.GenerateInvoice) responses.Envelope[*responses.Invoice]
	UploadAndGenerateInvoice(ctx context.Context, request *requests.UploadAndGenerateInvoice) responses.Envelope[*responses.PrescriptionInvoice]
	GetPrescriptionsByPatient(ctx context.Context, patientID string) responses.Envelope[[]responses.Prescription]
}
