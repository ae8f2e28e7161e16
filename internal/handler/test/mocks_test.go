package test

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"stockboard/internal/models"
	"stockboard/internal/repository"
	"stockboard/internal/service"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, req repository.CreateUserRequest) (*models.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, username, password string) (*models.User, string, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, "", args.Error(2)
	}
	return args.Get(0).(*models.User), args.String(1), args.Error(2)
}

func (m *MockAuthService) ValidateToken(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Claims), args.Error(1)
}

type MockPostService struct {
	mock.Mock
}

func (m *MockPostService) CreatePost(ctx context.Context, req repository.CreatePostRequest) (*models.Post, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostService) GetPost(ctx context.Context, stockCode, postID string) (*models.Post, error) {
	args := m.Called(ctx, stockCode, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostService) ListPosts(ctx context.Context, stockCode string, limit int) ([]*models.Post, error) {
	args := m.Called(ctx, stockCode, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Post), args.Error(1)
}

func (m *MockPostService) AddImage(ctx context.Context, stockCode, postID, fileName string, file io.Reader, size int64) (*models.Image, error) {
	args := m.Called(ctx, stockCode, postID, fileName, file, size)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Image), args.Error(1)
}

func (m *MockPostService) ListImages(ctx context.Context, stockCode, postID string) ([]*models.Image, error) {
	args := m.Called(ctx, stockCode, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Image), args.Error(1)
}

type MockChatbotService struct {
	mock.Mock
}

func (m *MockChatbotService) Ask(ctx context.Context, question string) string {
	args := m.Called(ctx, question)
	return args.String(0)
}

type MockTablesService struct {
	mock.Mock
}

func (m *MockTablesService) GetCountTablesDB(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type MockHealthChecker struct {
	mock.Mock
}

func (m *MockHealthChecker) HealthCheck(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
