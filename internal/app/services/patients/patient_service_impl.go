package patients

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
	"strings"

	"go.uber.org/zap"
)

type patientService struct {
	Client *httpclient.Client
	Log    *zap.Logger
}

func NewPatientService(client *httpclient.Client, logger *zap.Logger) contracts.PatientService {
	return &patientService{
		Client: client,
		Log:    logger,
	}
}

// IsProfileComplete reports whether the patient has filed the identity
// document number collected after the first login.
func IsProfileComplete(details *responses.PatientDetails) bool {
	if details == nil || details.AadhaarNumber == nil {
		return false
	}
	return strings.TrimSpace(*details.AadhaarNumber) != ""
}

func (s *patientService) GetPatientsByStatus(ctx context.Context, status string) responses.Envelope[[]responses.PatientDetails] {
	ctx, requestID := utils.EnsureRequestID(ctx)
	s.Log.Info("patientService.GetPatientsByStatus called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.QueryParamStatus, status),
	)

	resp, err := s.Client.Get(ctx, &httpclient.Request{
		Path:  constvars.EndpointPatientsByStatus,
		Query: url.Values{constvars.QueryParamStatus: []string{status}},
	})
	if err != nil {
		s.Log.Error("patientService.GetPatientsByStatus error fetching patients",
			append(utils.APIErrorFields(err), zap.String(constvars.LoggingRequestIDKey, requestID))...,
		)
		return utils.BuildErrorEnvelope([]responses.PatientDetails{}, err, constvars.ErrClientFetchPatientsFailed)
	}

	patients, shape, err := utils.DecodeList[responses.PatientDetails](resp.Body, constvars.ResourcePatient)
	if err != nil {
		s.Log.Error("patientService.GetPatientsByStatus error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPayloadShapeKey, string(shape)),
			zap.Error(err),
		)
		return utils.BuildErrorEnvelope([]responses.PatientDetails{}, err, constvars.ErrClientFetchPatientsFailed)
	}

	s.Log.Info("patientService.GetPatientsByStatus succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPayloadShapeKey, string(shape)),
		zap.Int(constvars.LoggingCountKey, len(patients)),
	)
	return utils.BuildSuccessEnvelope(patients, utils.FirstNonEmpty(utils.DecodeMessage(resp.Body), constvars.SuccessPatientsFetched))
}

func (s *patientService) GetPatientDetails(ctx context.Context, patientID string) responses.Envelope[*responses.PatientDetails] {
	return s.findPatient(ctx, "GetPatientDetails", constvars.EndpointPatientByID, constvars.QueryParamPatientID, patientID)
}

func (s *patientService) GetPatientByMobile(ctx context.Context, mobileNumber string) responses.Envelope[*responses.PatientDetails] {
	return s.findPatient(ctx, "GetPatientByMobile", constvars.EndpointPatientByMobile, constvars.QueryParamMobileNumber, mobileNumber)
}

func (s *patientService) findPatient(ctx context.Context, operation, path, param, value string) responses.Envelope[*responses.PatientDetails] {
	ctx, requestID := utils.EnsureRequestID(ctx)
	s.Log.Info("patientService."+operation+" called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	resp, err := s.Client.Get(ctx, &httpclient.Request{
		Path:  path,
		Query: url.Values{param: []string{value}},
	})
	if err != nil {
		s.Log.Error("patientService."+operation+" error fetching patient",
			append(utils.APIErrorFields(err), zap.String(constvars.LoggingRequestIDKey, requestID))...,
		)
		return utils.BuildErrorEnvelope[*responses.PatientDetails](nil, err, constvars.ErrClientFetchPatientFailed)
	}

	patient, shape, err := utils.DecodeObject[responses.PatientDetails](resp.Body, constvars.ResourcePatient)
	if err != nil {
		s.Log.Error("patientService."+operation+" error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPayloadShapeKey, string(shape)),
			zap.Error(err),
		)
		return utils.BuildErrorEnvelope[*responses.PatientDetails](nil, err, constvars.ErrClientFetchPatientFailed)
	}

	s.Log.Info("patientService."+operation+" succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("id", patient.ID),
	)
	return utils.BuildSuccessEnvelope(patient, "")
}

func (s *patientService) SavePatientDetails(ctx context.Context, request *requests.SavePatientDetails) responses.Envelope[*responses.PatientDetails] {
	ctx, requestID := utils.EnsureRequestID(ctx)
	s.Log.Info("patientService.SavePatientDetails called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, request.PatientID),
	)

	resp, err := s.Client.Post(ctx, &httpclient.Request{
		Path: constvars.EndpointPatientSaveDetails,
		Body: request,
	})
	if err != nil {
		s.Log.Error("patientService.SavePatientDetails error saving details",
			append(utils.APIErrorFields(err), zap.String(constvars.LoggingRequestIDKey, requestID))...,
		)
		return utils.BuildErrorEnvelope[*responses.PatientDetails](nil, err, constvars.ErrClientSavePatientFailed)
	}

	if message, failed := utils.DecodeApplicationFailure(resp.Body); failed {
		return utils.BuildErrorEnvelope[*responses.PatientDetails](nil,
			exceptions.ErrOperationFailed("SavePatientDetails", utils.FirstNonEmpty(message, constvars.ErrClientSavePatientFailed)),
			constvars.ErrClientSavePatientFailed)
	}

	patient, shape, err := utils.DecodeObject[responses.PatientDetails](resp.Body, constvars.ResourcePatient)
	if err != nil {
		s.Log.Error("patientService.SavePatientDetails error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPayloadShapeKey, string(shape)),
			zap.Error(err),
		)
		return utils.BuildErrorEnvelope[*responses.PatientDetails](nil, err, constvars.ErrClientSavePatientFailed)
	}
	if patient.FullName == "" {
		patient = patientFromRequest(request)
	}

	s.Log.Info("patientService.SavePatientDetails succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patient.PatientID.String()),
	)
	return utils.BuildSuccessEnvelope(patient, utils.FirstNonEmpty(utils.DecodeMessage(resp.Body), constvars.SuccessPatientSaved))
}

func (s *patientService) UpdatePatientStatus(ctx context.Context, request *requests.UpdatePatientStatus) responses.Envelope[any] {
	ctx, requestID := utils.EnsureRequestID(ctx)
	s.Log.Info("patientService.UpdatePatientStatus called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, request.PatientID),
		zap.String(constvars.QueryParamStatus, request.Status),
	)

	resp, err := s.Client.Post(ctx, &httpclient.Request{
		Path: constvars.EndpointPatientUpdateStatus,
		Body: request,
	})
	if err != nil {
		s.Log.Error("patientService.UpdatePatientStatus error updating status",
			append(utils.APIErrorFields(err), zap.String(constvars.LoggingRequestIDKey, requestID))...,
		)
		return utils.BuildErrorEnvelope[any](nil, err, constvars.ErrClientUpdateStatusFailed)
	}

	if message, failed := utils.DecodeApplicationFailure(resp.Body); failed {
		return utils.BuildErrorEnvelope[any](nil,
			exceptions.ErrOperationFailed("UpdatePatientStatus", utils.FirstNonEmpty(message, constvars.ErrClientUpdateStatusFailed)),
			constvars.ErrClientUpdateStatusFailed)
	}

	s.Log.Info("patientService.UpdatePatientStatus succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return utils.BuildSuccessEnvelope[any](nil, utils.FirstNonEmpty(utils.DecodeMessage(resp.Body), constvars.SuccessPatientStatus))
}

func (s *patientService) VerifyKyc(ctx context.Context, request *requests.VerifyKyc) responses.Envelope[*responses.KycResult] {
	ctx, requestID := utils.EnsureRequestID(ctx)
	s.Log.Info("patientService.VerifyKyc called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, request.PatientID),
	)

	resp, err := s.Client.Post(ctx, &httpclient.Request{
		Path: constvars.EndpointPatientVerifyKyc,
		Body: request,
	})
	if err != nil {
		s.Log.Error("patientService.VerifyKyc error verifying KYC",
			append(utils.APIErrorFields(err), zap.String(constvars.LoggingRequestIDKey, requestID))...,
		)
		return utils.BuildErrorEnvelope[*responses.KycResult](nil, err, constvars.ErrClientVerifyKycFailed)
	}

	if message, failed := utils.DecodeApplicationFailure(resp.Body); failed {
		return utils.BuildErrorEnvelope[*responses.KycResult](nil,
			exceptions.ErrOperationFailed("VerifyKyc", utils.FirstNonEmpty(message, constvars.ErrClientVerifyKycFailed)),
			constvars.ErrClientVerifyKycFailed)
	}

	result, shape, err := utils.DecodeObject[responses.KycResult](resp.Body, constvars.ResourcePatient)
	if err != nil {
		s.Log.Error("patientService.VerifyKyc error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPayloadShapeKey, string(shape)),
			zap.Error(err),
		)
		return utils.BuildErrorEnvelope[*responses.KycResult](nil, err, constvars.ErrClientVerifyKycFailed)
	}
	if result.PatientID == "" {
		result.PatientID = responses.FlexibleID(request.PatientID)
	}

	s.Log.Info("patientService.VerifyKyc succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("income_level", result.IncomeLevel),
		zap.Float64("discount_percentage", result.DiscountPercentage),
	)
	return utils.BuildSuccessEnvelope(result, utils.FirstNonEmpty(result.Message, constvars.SuccessKycVerified))
}

func patientFromRequest(request *requests.SavePatientDetails) *responses.PatientDetails {
	patient := &responses.PatientDetails{
		ID:           request.ID,
		PatientID:    responses.FlexibleID(request.PatientID),
		FullName:     request.FullName,
		MobileNumber: request.MobileNumber,
	}
	optional := func(value string) *string {
		if value == "" {
			return nil
		}
		return &value
	}
	patient.Email = optional(request.Email)
	patient.Gender = optional(request.Gender)
	patient.DateOfBirth = optional(request.DateOfBirth)
	patient.Address = optional(request.Address)
	patient.AadhaarNumber = optional(request.AadhaarNumber)
	return patient
}
