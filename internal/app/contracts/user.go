package contracts

import (
	"context"
	"pharmacy-client/internal/app/models"
	"pharmacy-client/internal/pkg/dto/requests"
	"pharmacy-client/internal/pkg/dto/responses"
)

type UserService interface {
	CreateUser(ctx context.Context, request *requests.CreateUser) responses.Envelope[*responses.User]
	AdminLogin(ctx context.Context, request *requests.AdminLogin) responses.Envelope[*responses.LoginResult]
	Logout(ctx context.Context) responses.Envelope[any]
	GetUsers(ctx context.Context) responses.Envelope[[]responses.User]
}

// CurrentUserProvider is the read only view of the session other services may
// depend on.
type CurrentUserProvider interface {
	CurrentUser() *models.User
}
