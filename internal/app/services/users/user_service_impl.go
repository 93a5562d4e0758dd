package users

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

type userService struct {
	Client *httpclient.Client
	Log    *zap.Logger
}

func NewUserService(client *httpclient.Client, logger *zap.Logger) contracts.UserService {
	return &userService{
		Client: client,
		Log:    logger,
	}
}

func (s *userService) CreateUser(ctx context.Context, request *requests.CreateUser) responses.Envelope[*responses.User] {
	ctx, requestID := utils.EnsureRequestID(ctx)
	s.Log.Info("userService.CreateUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUsernameKey, request.Username),
		zap.String(constvars.LoggingRoleKey, request.Role),
	)

	resp, err := s.Client.Post(ctx, &httpclient.Request{
		Path: constvars.EndpointUserCreate,
		Body: request,
	})
	if err != nil {
		s.Log.Error("userService.CreateUser error creating user",
			append(utils.APIErrorFields(err), zap.String(constvars.LoggingRequestIDKey, requestID))...,
		)
		return utils.BuildErrorEnvelope[*responses.User](nil, err, constvars.ErrClientCreateUserFailed)
	}

	if message, failed := utils.DecodeApplicationFailure(resp.Body); failed {
		s.Log.Info("userService.CreateUser rejected by backend",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String("message", message),
		)
		return utils.BuildErrorEnvelope[*responses.User](nil,
			exceptions.ErrOperationFailed("CreateUser", utils.FirstNonEmpty(message, constvars.ErrClientCreateUserFailed)),
			constvars.ErrClientCreateUserFailed)
	}

	user, shape, err := utils.DecodeObject[responses.User](resp.Body, constvars.ResourceUser)
	if err != nil {
		s.Log.Error("userService.CreateUser error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPayloadShapeKey, string(shape)),
			zap.Error(err),
		)
		return utils.BuildErrorEnvelope[*responses.User](nil, err, constvars.ErrClientCreateUserFailed)
	}
	if user.Username == "" {
		user.Username = request.Username
		user.Email = request.Email
		user.MobileNumber = request.MobileNumber
		user.Role = request.Role
	}

	s.Log.Info("userService.CreateUser succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUsernameKey, user.Username),
	)
	return utils.BuildSuccessEnvelope(user, utils.FirstNonEmpty(utils.DecodeMessage(resp.Body), constvars.SuccessUserCreated))
}

// AdminLogin only yields a token; the caller synthesizes the user record.
func (s *userService) AdminLogin(ctx context.Context, request *requests.AdminLogin) responses.Envelope[*responses.LoginResult] {
	ctx, requestID := utils.EnsureRequestID(ctx)
	s.Log.Info("userService.AdminLogin called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUsernameKey, request.Username),
	)

	resp, err := s.Client.Post(ctx, &httpclient.Request{
		Path: constvars.EndpointUserLogin,
		Body: request,
	})
	if err != nil {
		s.Log.Error("userService.AdminLogin error logging in",
			append(utils.APIErrorFields(err), zap.String(constvars.LoggingRequestIDKey, requestID))...,
		)
		return utils.BuildErrorEnvelope[*responses.LoginResult](nil, err, constvars.ErrClientLoginFailed)
	}

	result, shape, err := utils.DecodeObject[responses.LoginResult](resp.Body, constvars.ResourceUser)
	if err != nil {
		s.Log.Error("userService.AdminLogin error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPayloadShapeKey, string(shape)),
			zap.Error(err),
		)
		return utils.BuildErrorEnvelope[*responses.LoginResult](nil, err, constvars.ErrClientLoginFailed)
	}
	if result.Token == "" {
		message, _ := utils.DecodeApplicationFailure(resp.Body)
		s.Log.Info("userService.AdminLogin no token in response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return utils.BuildErrorEnvelope[*responses.LoginResult](nil,
			exceptions.ErrOperationFailed("AdminLogin", utils.FirstNonEmpty(message, constvars.ErrClientLoginFailed)),
			constvars.ErrClientLoginFailed)
	}

	s.Log.Info("userService.AdminLogin succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUsernameKey, request.Username),
	)
	return utils.BuildSuccessEnvelope(result, utils.FirstNonEmpty(result.Message, constvars.SuccessLogin))
}

func (s *userService) Logout(ctx context.Context) responses.Envelope[any] {
	ctx, requestID := utils.EnsureRequestID(ctx)
	s.Log.Info("userService.Logout called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	resp, err := s.Client.Post(ctx, &httpclient.Request{Path: constvars.EndpointUserLogout})
	if err != nil {
		s.Log.Error("userService.Logout error logging out",
			append(utils.APIErrorFields(err), zap.String(constvars.LoggingRequestIDKey, requestID))...,
		)
		return utils.BuildErrorEnvelope[any](nil, err, constvars.ErrClientLogoutFailed)
	}

	s.Log.Info("userService.Logout succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return utils.BuildSuccessEnvelope[any](nil, utils.FirstNonEmpty(utils.DecodeMessage(resp.Body), constvars.SuccessLogout))
}

func (s *userService) GetUsers(ctx context.Context) responses.Envelope[[]responses.User] {
	ctx, requestID := utils.EnsureRequestID(ctx)
	s.Log.Info("userService.GetUsers called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	resp, err := s.Client.Get(ctx, &httpclient.Request{Path: constvars.EndpointUserList})
	if err != nil {
		s.Log.Error("userService.GetUsers error fetching users",
			append(utils.APIErrorFields(err), zap.String(constvars.LoggingRequestIDKey, requestID))...,
		)
		return utils.BuildErrorEnvelope([]responses.User{}, err, constvars.ErrClientFetchUsersFailed)
	}

	users, shape, err := utils.DecodeList[responses.User](resp.Body, constvars.ResourceUser)
	if err != nil {
		s.Log.Error("userService.GetUsers error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPayloadShapeKey, string(shape)),
			zap.Error(err),
		)
		return utils.BuildErrorEnvelope([]responses.User{}, err, constvars.ErrClientFetchUsersFailed)
	}

	s.Log.Info("userService.GetUsers succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingCountKey, len(users)),
	)
	return utils.BuildSuccessEnvelope(users, utils.DecodeMessage(resp.Body))
}
