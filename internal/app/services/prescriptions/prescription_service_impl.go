package prescriptions

import (
	"context"
	"net/url"
	"pharmacy-client/internal/app/contracts"
	"pharmacy-client/internal/app/services/shared/httpclient"
	"pharmacy-client/internal/pkg/constvars"
	"pharmacy-client/internal/pkg/dto/requests"
	"pharmacy-client/internal/pkg/dto/responses"
	"pharmacy-client/internal/pkg/exceptions"
	"pharmacy-client/internal/pkg/utils"

	"go.uber.org/zap"
)

type prescriptionService struct {
	Client  *httpclient.Client
	Archive contracts.PrescriptionArchive
	Log     *zap.Logger
}

// NewPrescriptionService builds the service. archive may be nil when no object
// storage is configured.
func NewPrescriptionService(client *httpclient.Client, archive contracts.PrescriptionArchive, logger *zap.Logger) contracts.PrescriptionService {
	return &prescriptionService{
		Client:  client,
		Archive: archive,
		Log:     logger,
	}
}

func (s *prescriptionService) UploadPrescription(ctx context.Context, request *requests.UploadPrescription) responses.Envelope[*responses.PrescriptionUpload] {
	ctx, requestID := utils.EnsureRequestID(ctx)
	s.Log.Info("prescriptionService.UploadPrescription called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, request.PatientID),
		zap.Int("size", len(request.Content)),
	)

	resp, err := s.Client.PostMultipart(ctx, &httpclient.Request{Path: constvars.EndpointPrescriptionUpload}, &httpclient.MultipartBody{
		Fields: map[string]string{constvars.MultipartFieldPatientID: request.PatientID},
		Files: []httpclient.MultipartFile{{
			FieldName:   constvars.MultipartFieldFile,
			FileName:    request.FileName,
			ContentType: request.ContentType,
			Content:     request.Content,
		}},
	})
	if err != nil {
		s.Log.Error("prescriptionService.UploadPrescription error uploading file",
			append(utils.APIErrorFields(err), zap.String(constvars.LoggingRequestIDKey, requestID))...,
		)
		return utils.BuildErrorEnvelope[*responses.PrescriptionUpload](nil, err, constvars.ErrClientUploadFailed)
	}

	if message, failed := utils.DecodeApplicationFailure(resp.Body); failed {
		return utils.BuildErrorEnvelope[*responses.PrescriptionUpload](nil,
			exceptions.ErrOperationFailed("UploadPrescription", utils.FirstNonEmpty(message, constvars.ErrClientUploadFailed)),
			constvars.ErrClientUploadFailed)
	}

	upload, shape, err := utils.DecodeObject[responses.PrescriptionUpload](resp.Body, constvars.ResourcePrescription)
	if err != nil {
		s.Log.Error("prescriptionService.UploadPrescription error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPayloadShapeKey, string(shape)),
			zap.Error(err),
		)
		return utils.BuildErrorEnvelope[*responses.PrescriptionUpload](nil, err, constvars.ErrClientUploadFailed)
	}
	if upload.PrescriptionID == "" {
		err := exceptions.ErrUnexpectedPayloadShape(constvars.ResourcePrescription)
		s.Log.Error("prescriptionService.UploadPrescription response has no prescription id",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return utils.BuildErrorEnvelope[*responses.PrescriptionUpload](nil, err, constvars.ErrClientUploadFailed)
	}

	s.archive(ctx, request, upload)

	s.Log.Info("prescriptionService.UploadPrescription succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPrescriptionIDKey, upload.PrescriptionID.String()),
	)
	return utils.BuildSuccessEnvelope(upload, utils.FirstNonEmpty(upload.Message, constvars.SuccessPrescriptionUpload))
}

// archive copies the uploaded file to object storage. Failures are logged and
// never change the upload result.
func (s *prescriptionService) archive(ctx context.Context, request *requests.UploadPrescription, upload *responses.PrescriptionUpload) {
	if s.Archive == nil {
		return
	}
	objectName, err := s.Archive.Archive(ctx, request.PatientID, request.FileName, request.ContentType, request.Content)
	if err != nil {
		s.Log.Warn("prescriptionService.archive could not archive prescription",
			zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
			zap.String(constvars.LoggingPrescriptionIDKey, upload.PrescriptionID.String()),
			zap.Error(err),
		)
		return
	}
	upload.ArchiveObject = objectName
}

func (s *prescriptionService) GenerateInvoice(ctx context.Context, request *requests.GenerateInvoice) responses.Envelope[*responses.Invoice] {
	ctx, requestID := utils.EnsureRequestID(ctx)
	s.Log.Info("prescriptionService.GenerateInvoice called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPrescriptionIDKey, request.PrescriptionID),
		zap.String(constvars.LoggingPatientIDKey, request.PatientID),
	)

	resp, err := s.Client.Post(ctx, &httpclient.Request{
		Path: constvars.EndpointPrescriptionInvoice,
		Body: request,
	})
	if err != nil {
		s.Log.Error("prescriptionService.GenerateInvoice error generating invoice",
			append(utils.APIErrorFields(err), zap.String(constvars.LoggingRequestIDKey, requestID))...,
		)
		return utils.BuildErrorEnvelope[*responses.Invoice](nil, err, constvars.ErrClientInvoiceFailed)
	}

	if message, failed := utils.DecodeApplicationFailure(resp.Body); failed {
		return utils.BuildErrorEnvelope[*responses.Invoice](nil,
			exceptions.ErrOperationFailed("GenerateInvoice", utils.FirstNonEmpty(message, constvars.ErrClientInvoiceFailed)),
			constvars.ErrClientInvoiceFailed)
	}

	invoice, shape, err := utils.DecodeObject[responses.Invoice](resp.Body, constvars.ResourceInvoice)
	if err != nil {
		s.Log.Error("prescriptionService.GenerateInvoice error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPayloadShapeKey, string(shape)),
			zap.Error(err),
		)
		return utils.BuildErrorEnvelope[*responses.Invoice](nil, err, constvars.ErrClientInvoiceFailed)
	}
	if invoice.PrescriptionID == "" {
		invoice.PrescriptionID = responses.FlexibleID(request.PrescriptionID)
	}
	if invoice.PatientID == "" {
		invoice.PatientID = responses.FlexibleID(request.PatientID)
	}

	s.Log.Info("prescriptionService.GenerateInvoice succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingInvoiceIDKey, invoice.InvoiceID.String()),
		zap.Float64("total_amount", invoice.TotalAmount),
	)
	return utils.BuildSuccessEnvelope(invoice, utils.FirstNonEmpty(invoice.Message, constvars.SuccessInvoiceGenerated))
}

// UploadAndGenerateInvoice only asks for an invoice once the upload succeeded.
// An invoice failure leaves the uploaded prescription in place.
func (s *prescriptionService) UploadAndGenerateInvoice(ctx context.Context, request *requests.UploadAndGenerateInvoice) responses.Envelope[*responses.PrescriptionInvoice] {
	ctx, requestID := utils.EnsureRequestID(ctx)
	s.Log.Info("prescriptionService.UploadAndGenerateInvoice called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, request.Upload.PatientID),
	)

	upload := s.UploadPrescription(ctx, &request.Upload)
	if !upload.Success {
		return responses.Envelope[*responses.PrescriptionInvoice]{
			Success: false,
			Error:   utils.FirstNonEmpty(upload.Error, constvars.ErrClientUploadFailed),
		}
	}

	invoice := s.GenerateInvoice(ctx, &requests.GenerateInvoice{
		PrescriptionID: upload.Data.PrescriptionID.String(),
		PatientID:      request.Upload.PatientID,
		Items:          request.Items,
	})
	if !invoice.Success {
		s.Log.Warn("prescriptionService.UploadAndGenerateInvoice invoice failed after upload",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPrescriptionIDKey, upload.Data.PrescriptionID.String()),
		)
		return responses.Envelope[*responses.PrescriptionInvoice]{
			Success: false,
			Error:   utils.FirstNonEmpty(invoice.Error, constvars.ErrClientInvoiceFailed),
		}
	}

	s.Log.Info("prescriptionService.UploadAndGenerateInvoice succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPrescriptionIDKey, upload.Data.PrescriptionID.String()),
		zap.String(constvars.LoggingInvoiceIDKey, invoice.Data.InvoiceID.String()),
	)
	return utils.BuildSuccessEnvelope(&responses.PrescriptionInvoice{
		Prescription: *upload.Data,
		Invoice:      *invoice.Data,
	}, invoice.Message)
}

func (s *prescriptionService) GetPrescriptionsByPatient(ctx context.Context, patientID string) responses.Envelope[[]responses.Prescription] {
	ctx, requestID := utils.EnsureRequestID(ctx)
	s.Log.Info("prescriptionService.GetPrescriptionsByPatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	resp, err := s.Client.Get(ctx, &httpclient.Request{
		Path:  constvars.EndpointPrescriptionsByPatID,
		Query: url.Values{constvars.QueryParamPatientID: []string{patientID}},
	})
	if err != nil {
		s.Log.Error("prescriptionService.GetPrescriptionsByPatient error fetching prescriptions",
			append(utils.APIErrorFields(err), zap.String(constvars.LoggingRequestIDKey, requestID))...,
		)
		return utils.BuildErrorEnvelope([]responses.Prescription{}, err, constvars.ErrClientFetchPrescriptions)
	}

	prescriptions, shape, err := utils.DecodeList[responses.Prescription](resp.Body, constvars.ResourcePrescription)
	if err != nil {
		s.Log.Error("prescriptionService.GetPrescriptionsByPatient error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPayloadShapeKey, string(shape)),
			zap.Error(err),
		)
		return utils.BuildErrorEnvelope([]responses.Prescription{}, err, constvars.ErrClientFetchPrescriptions)
	}

	s.Log.Info("prescriptionService.GetPrescriptionsByPatient succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(prescriptions)),
	)
	return utils.BuildSuccessEnvelope(prescriptions, utils.DecodeMessage(resp.Body))
}
