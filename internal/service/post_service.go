package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/google/uuid"

	"stockboard/internal/config"
	"stockboard/internal/models"
	"stockboard/internal/repository"
	"stockboard/internal/storage"
	"stockboard/internal/util"
)

const (
	DefaultPostsLimit = 20
	MaxPostsLimit     = 100
)

type PostService interface {
	CreatePost(ctx context.Context, req repository.CreatePostRequest) (*models.Post, error)
	GetPost(ctx context.Context, stockCode, postID string) (*models.Post, error)
	ListPosts(ctx context.Context, stockCode string, limit int) ([]*models.Post, error)
	AddImage(ctx context.Context, stockCode, postID, fileName string, file io.Reader, size int64) (*models.Image, error)
	ListImages(ctx context.Context, stockCode, postID string) ([]*models.Image, error)
}

type postService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
	storage  storage.Storage
	now      func() time.Time
}

// NewPostService wires the post operations. storage may be nil, in which case
// image operations fail with ErrStorageDisabled.
func NewPostService(postRepo repository.PostRepository, userRepo repository.UserRepository, storage storage.Storage) PostService {
	return &postService{
		postRepo: postRepo,
		userRepo: userRepo,
		storage:  storage,
		now:      time.Now,
	}
}

func stockCodeOrDefault(stockCode string) string {
	if stockCode == "" {
		return config.GeneralBoardStock
	}
	return stockCode
}

// CreatePost checks the author exists, copies its nickname into the post and
// writes it with zero views.
func (p *postService) CreatePost(ctx context.Context, req repository.CreatePostRequest) (*models.Post, error) {
	if req.Title == "" || req.Content == "" || req.AuthorID == "" {
		return nil, util.ErrInvalidInput
	}

	author, err := p.userRepo.GetUserByID(ctx, req.AuthorID)
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			return nil, fmt.Errorf("author %s: %w", req.AuthorID, util.ErrInvalidAuthor)
		}
		return nil, fmt.Errorf("error loading author: %w", err)
	}

	post := &models.Post{
		StockCode:  stockCodeOrDefault(req.StockCode),
		PostID:     uuid.New().String(),
		Title:      req.Title,
		Content:    req.Content,
		UserID:     author.UserID,
		AuthorName: author.Nickname,
		Views:      0,
		CreatedAt:  p.now().UTC(),
	}

	if err := p.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

func (p *postService) GetPost(ctx context.Context, stockCode, postID string) (*models.Post, error) {
	return p.postRepo.GetByID(ctx, stockCodeOrDefault(stockCode), postID)
}

// ListPosts returns the newest posts of a board.
func (p *postService) ListPosts(ctx context.Context, stockCode string, limit int) ([]*models.Post, error) {
	switch {
	case limit < 1:
		limit = DefaultPostsLimit
	case limit > MaxPostsLimit:
		limit = MaxPostsLimit
	}

	posts, err := p.postRepo.ListByStockCode(ctx, stockCodeOrDefault(stockCode))
	if err != nil {
		return nil, err
	}

	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
	if len(posts) > limit {
		posts = posts[:limit]
	}

	return posts, nil
}

func (p *postService) AddImage(ctx context.Context, stockCode, postID, fileName string, file io.Reader, size int64) (*models.Image, error) {
	if p.storage == nil {
		return nil, util.ErrStorageDisabled
	}

	if _, err := p.GetPost(ctx, stockCode, postID); err != nil {
		return nil, err
	}

	objectName, imageURL, err := p.storage.UploadImage(ctx, postID, fileName, file, size)
	if err != nil {
		return nil, fmt.Errorf("error uploading image: %w", err)
	}

	return &models.Image{
		ObjectName: objectName,
		URL:        imageURL,
		Size:       size,
		CreatedAt:  p.now().UTC(),
	}, nil
}

func (p *postService) ListImages(ctx context.Context, stockCode, postID string) ([]*models.Image, error) {
	if p.storage == nil {
		return nil, util.ErrStorageDisabled
	}

	if _, err := p.GetPost(ctx, stockCode, postID); err != nil {
		return nil, err
	}

	objects, err := p.storage.ListImages(ctx, postID)
	if err != nil {
		return nil, err
	}

	images := make([]*models.Image, 0, len(objects))
	for _, obj := range objects {
		imageURL, err := p.storage.GetImageURL(ctx, obj.Key)
		if err != nil {
			return nil, err
		}
		images = append(images, &models.Image{
			ObjectName: obj.Key,
			URL:        imageURL,
			Size:       obj.Size,
			CreatedAt:  obj.LastModified,
		})
	}

	return images, nil
}
