package repository

import (
	"context"

	"stockboard/internal/database"
	"stockboard/internal/models"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User, password string) error
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	VerifyPassword(ctx context.Context, username, password string) (*models.User, error)
}

type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, stockCode, postID string) (*models.Post, error)
	ListByStockCode(ctx context.Context, stockCode string) ([]*models.Post, error)
}

type TablesRepository interface {
	CountTablesDB(ctx context.Context) (int, error)
}

type Repository struct {
	User   UserRepository
	Post   PostRepository
	Tables TablesRepository
}

func NewRepository(db *database.DB, usersTable, usernameIndex, postsTable string) *Repository {
	return &Repository{
		User:   NewUserRepository(db.Client, usersTable, usernameIndex),
		Post:   NewPostRepository(db.Client, postsTable),
		Tables: NewTablesRepository(db.Client),
	}
}
