package contracts

import (
	"context"
	"pharmacy-client/internal/pkg/dto/requests"
	"pharmacy-client/internal/pkg/dto/responses"
)

type OtpService interface {
	SendOtp(ctx context.Context, request *requests.SendOtp) responses.Envelope[*responses.OtpSendResult]
	VerifyOtp(ctx context.Context, request *requests.VerifyOtp) responses.Envelope[*responses.OtpVerifyResult]
}
