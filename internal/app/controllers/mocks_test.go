package controllers

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/yigit/clubhub/internal/app/auth"
	"github.com/yigit/clubhub/internal/app/models"
	"github.com/yigit/clubhub/internal/app/models/dto"
	"github.com/yigit/clubhub/internal/app/services"
)

type mockAuthService struct{ mock.Mock }

var _ services.AuthService = (*mockAuthService)(nil)

func (m *mockAuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*dto.AuthResponse)
	return resp, args.Error(1)
}

func (m *mockAuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*dto.AuthResponse)
	return resp, args.Error(1)
}

func (m *mockAuthService) Me(ctx context.Context, userID models.UserID) (*models.User, error) {
	args := m.Called(ctx, userID)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

type mockAdminRequestService struct{ mock.Mock }

var _ services.AdminRequestService = (*mockAdminRequestService)(nil)

func (m *mockAdminRequestService) ListPending(ctx context.Context, actor auth.Actor) ([]*models.AdminRequest, error) {
	args := m.Called(ctx, actor)
	reqs, _ := args.Get(0).([]*models.AdminRequest)
	return reqs, args.Error(1)
}

func (m *mockAdminRequestService) ListAll(ctx context.Context, actor auth.Actor) ([]*models.AdminRequest, error) {
	args := m.Called(ctx, actor)
	reqs, _ := args.Get(0).([]*models.AdminRequest)
	return reqs, args.Error(1)
}

func (m *mockAdminRequestService) Approve(ctx context.Context, actor auth.Actor, id models.AdminRequestID) (*models.AdminRequest, error) {
	args := m.Called(ctx, actor, id)
	req, _ := args.Get(0).(*models.AdminRequest)
	return req, args.Error(1)
}

func (m *mockAdminRequestService) Reject(ctx context.Context, actor auth.Actor, id models.AdminRequestID) (*models.AdminRequest, error) {
	args := m.Called(ctx, actor, id)
	req, _ := args.Get(0).(*models.AdminRequest)
	return req, args.Error(1)
}

type mockUserService struct{ mock.Mock }

var _ services.UserService = (*mockUserService)(nil)

func (m *mockUserService) List(ctx context.Context, actor auth.Actor) ([]*models.User, error) {
	args := m.Called(ctx, actor)
	users, _ := args.Get(0).([]*models.User)
	return users, args.Error(1)
}

func (m *mockUserService) Promote(ctx context.Context, actor auth.Actor, userID models.UserID) (*models.User, error) {
	args := m.Called(ctx, actor, userID)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *mockUserService) Demote(ctx context.Context, actor auth.Actor, userID models.UserID) (*models.User, error) {
	args := m.Called(ctx, actor, userID)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *mockUserService) Delete(ctx context.Context, actor auth.Actor, userID models.UserID) error {
	return m.Called(ctx, actor, userID).Error(0)
}

type mockClubService struct{ mock.Mock }

var _ services.ClubService = (*mockClubService)(nil)

func (m *mockClubService) List(ctx context.Context) ([]*models.Club, error) {
	args := m.Called(ctx)
	clubs, _ := args.Get(0).([]*models.Club)
	return clubs, args.Error(1)
}

func (m *mockClubService) Get(ctx context.Context, id models.ClubID) (*models.Club, error) {
	args := m.Called(ctx, id)
	club, _ := args.Get(0).(*models.Club)
	return club, args.Error(1)
}

func (m *mockClubService) GetMine(ctx context.Context, actor auth.Actor) (*models.Club, error) {
	args := m.Called(ctx, actor)
	club, _ := args.Get(0).(*models.Club)
	return club, args.Error(1)
}

func (m *mockClubService) Create(ctx context.Context, actor auth.Actor, req *dto.CreateClubRequest) (*models.Club, error) {
	args := m.Called(ctx, actor, req)
	club, _ := args.Get(0).(*models.Club)
	return club, args.Error(1)
}

func (m *mockClubService) Update(ctx context.Context, actor auth.Actor, id models.ClubID, req *dto.UpdateClubRequest) (*models.Club, error) {
	args := m.Called(ctx, actor, id, req)
	club, _ := args.Get(0).(*models.Club)
	return club, args.Error(1)
}

func (m *mockClubService) Delete(ctx context.Context, actor auth.Actor, id models.ClubID) error {
	return m.Called(ctx, actor, id).Error(0)
}

func (m *mockClubService) Join(ctx context.Context, actor auth.Actor, id models.ClubID) (*models.Club, error) {
	args := m.Called(ctx, actor, id)
	club, _ := args.Get(0).(*models.Club)
	return club, args.Error(1)
}

func (m *mockClubService) AddPhoto(ctx context.Context, actor auth.Actor, id models.ClubID, url string) (*models.Club, error) {
	args := m.Called(ctx, actor, id, url)
	club, _ := args.Get(0).(*models.Club)
	return club, args.Error(1)
}

func (m *mockClubService) RemovePhoto(ctx context.Context, actor auth.Actor, id models.ClubID, url string) (*models.Club, error) {
	args := m.Called(ctx, actor, id, url)
	club, _ := args.Get(0).(*models.Club)
	return club, args.Error(1)
}

type mockEventService struct{ mock.Mock }

var _ services.EventService = (*mockEventService)(nil)

func (m *mockEventService) List(ctx context.Context) ([]*models.Event, error) {
	args := m.Called(ctx)
	events, _ := args.Get(0).([]*models.Event)
	return events, args.Error(1)
}

func (m *mockEventService) Get(ctx context.Context, id models.EventID) (*models.Event, error) {
	args := m.Called(ctx, id)
	event, _ := args.Get(0).(*models.Event)
	return event, args.Error(1)
}

func (m *mockEventService) ListMine(ctx context.Context, actor auth.Actor) ([]*models.Event, error) {
	args := m.Called(ctx, actor)
	events, _ := args.Get(0).([]*models.Event)
	return events, args.Error(1)
}

func (m *mockEventService) ListRegistrations(ctx context.Context, actor auth.Actor) ([]*models.Registration, error) {
	args := m.Called(ctx, actor)
	regs, _ := args.Get(0).([]*models.Registration)
	return regs, args.Error(1)
}

func (m *mockEventService) Create(ctx context.Context, actor auth.Actor, req *dto.CreateEventRequest) (*models.Event, error) {
	args := m.Called(ctx, actor, req)
	event, _ := args.Get(0).(*models.Event)
	return event, args.Error(1)
}

func (m *mockEventService) Update(ctx context.Context, actor auth.Actor, id models.EventID, req *dto.UpdateEventRequest) (*models.Event, error) {
	args := m.Called(ctx, actor, id, req)
	event, _ := args.Get(0).(*models.Event)
	return event, args.Error(1)
}

func (m *mockEventService) Delete(ctx context.Context, actor auth.Actor, id models.EventID) error {
	return m.Called(ctx, actor, id).Error(0)
}

func (m *mockEventService) Register(ctx context.Context, actor auth.Actor, id models.EventID) (*models.Registration, error) {
	args := m.Called(ctx, actor, id)
	reg, _ := args.Get(0).(*models.Registration)
	return reg, args.Error(1)
}
