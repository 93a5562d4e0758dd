package otp

import (
	"context"
	"pharmacy-client/internal/app/contracts"
	"pharmacy-client/internal/app/services/shared/httpclient"
	"pharmacy-client/internal/pkg/constvars"
	"pharmacy-client/internal/pkg/dto/requests"
	"pharmacy-client/internal/pkg/dto/responses"
	"pharmacy-client/internal/pkg/exceptions"
	"pharmacy-client/internal/pkg/utils"

	"go.uber.org/zap"
)

type otpService struct {
	Client *httpclient.Client
	Log    *zap.Logger
}

func NewOtpService(client *httpclient.Client, logger *zap.Logger) contracts.OtpService {
	return &otpService{
		Client: client,
		Log:    logger,
	}
}

func (s *otpService) SendOtp(ctx context.Context, request *requests.SendOtp) responses.Envelope[*responses.OtpSendResult] {
	ctx, requestID := utils.EnsureRequestID(ctx)
	s.Log.Info("otpService.SendOtp called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMobileNumberKey, utils.MaskMobileNumber(request.MobileNumber)),
	)

	resp, err := s.Client.Post(ctx, &httpclient.Request{
		Path: constvars.EndpointOtpSend,
		Body: request,
	})
	if err != nil {
		s.Log.Error("otpService.SendOtp error sending OTP",
			append(utils.APIErrorFields(err), zap.String(constvars.LoggingRequestIDKey, requestID))...,
		)
		return utils.BuildErrorEnvelope[*responses.OtpSendResult](nil, err, constvars.ErrClientSendOtpFailed)
	}

	if message, failed := utils.DecodeApplicationFailure(resp.Body); failed {
		return utils.BuildErrorEnvelope[*responses.OtpSendResult](nil,
			exceptions.ErrOperationFailed("SendOtp", utils.FirstNonEmpty(message, constvars.ErrClientSendOtpFailed)),
			constvars.ErrClientSendOtpFailed)
	}

	message := utils.FirstNonEmpty(utils.DecodeMessage(resp.Body), constvars.SuccessOtpSent)

	s.Log.Info("otpService.SendOtp succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return utils.BuildSuccessEnvelope(&responses.OtpSendResult{Message: message}, message)
}

// VerifyOtp treats a missing isValid the same as false.
func (s *otpService) VerifyOtp(ctx context.Context, request *requests.VerifyOtp) responses.Envelope[*responses.OtpVerifyResult] {
	ctx, requestID := utils.EnsureRequestID(ctx)
	s.Log.Info("otpService.VerifyOtp called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMobileNumberKey, utils.MaskMobileNumber(request.MobileNumber)),
	)

	invalid := &responses.OtpVerifyResult{IsValid: false}

	resp, err := s.Client.Post(ctx, &httpclient.Request{
		Path: constvars.EndpointOtpVerify,
		Body: request,
	})
	if err != nil {
		s.Log.Error("otpService.VerifyOtp error verifying OTP",
			append(utils.APIErrorFields(err), zap.String(constvars.LoggingRequestIDKey, requestID))...,
		)
		return utils.BuildErrorEnvelope(invalid, err, constvars.ErrClientVerifyOtpFailed)
	}

	result, shape, err := utils.DecodeObject[responses.OtpVerifyResult](resp.Body, constvars.ResourceOtp)
	if err != nil {
		s.Log.Error("otpService.VerifyOtp error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPayloadShapeKey, string(shape)),
			zap.Error(err),
		)
		return utils.BuildErrorEnvelope(invalid, err, constvars.ErrClientVerifyOtpFailed)
	}

	if !result.IsValid {
		s.Log.Info("otpService.VerifyOtp rejected code",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return responses.Envelope[*responses.OtpVerifyResult]{
			Success: false,
			Data:    invalid,
			Error:   constvars.ErrClientInvalidOtp,
		}
	}

	s.Log.Info("otpService.VerifyOtp succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, result.PatientID.String()),
	)
	return utils.BuildSuccessEnvelope(result, result.Message)
}
