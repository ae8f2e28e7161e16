package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"stockboard/internal/models"
	"stockboard/internal/repository"
	"stockboard/internal/storage"
	"stockboard/internal/util"
)

func newTestPostService(posts *MockPostRepository, users *MockUserRepository, store storage.Storage) *postService {
	svc := NewPostService(posts, users, store).(*postService)
	svc.now = func() time.Time { return issuedAt }
	return svc
}

func TestPostService_CreatePost(t *testing.T) {
	ctx := context.Background()
	alice := &models.User{UserID: "user-1", Username: "alice", Nickname: "Alice"}

	t.Run("denormalizes the nickname and defaults the board", func(t *testing.T) {
		posts, users := new(MockPostRepository), new(MockUserRepository)
		svc := newTestPostService(posts, users, nil)
		users.On("GetUserByID", ctx, "user-1").Return(alice, nil)
		posts.On("Create", ctx, mock.AnythingOfType("*models.Post")).Return(nil)

		post, err := svc.CreatePost(ctx, repository.CreatePostRequest{Title: "T", Content: "C", AuthorID: "user-1"})

		require.NoError(t, err)
		assert.NotEmpty(t, post.PostID)
		assert.Equal(t, "ALL", post.StockCode)
		assert.Equal(t, "Alice", post.AuthorName)
		assert.Equal(t, "user-1", post.UserID)
		assert.Equal(t, 0, post.Views)
		assert.Equal(t, issuedAt, post.CreatedAt)
		posts.AssertExpectations(t)
	})

	t.Run("keeps an explicit stock code", func(t *testing.T) {
		posts, users := new(MockPostRepository), new(MockUserRepository)
		svc := newTestPostService(posts, users, nil)
		users.On("GetUserByID", ctx, "user-1").Return(alice, nil)
		posts.On("Create", ctx, mock.MatchedBy(func(p *models.Post) bool { return p.StockCode == "005930" })).Return(nil)

		post, err := svc.CreatePost(ctx, repository.CreatePostRequest{Title: "T", Content: "C", AuthorID: "user-1", StockCode: "005930"})

		require.NoError(t, err)
		assert.Equal(t, "005930", post.StockCode)
	})

	t.Run("unknown author writes nothing", func(t *testing.T) {
		posts, users := new(MockPostRepository), new(MockUserRepository)
		svc := newTestPostService(posts, users, nil)
		users.On("GetUserByID", ctx, "ghost").Return(nil, util.ErrUserNotFound)

		_, err := svc.CreatePost(ctx, repository.CreatePostRequest{Title: "T", Content: "C", AuthorID: "ghost"})

		assert.ErrorIs(t, err, util.ErrInvalidAuthor)
		posts.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("missing fields", func(t *testing.T) {
		posts, users := new(MockPostRepository), new(MockUserRepository)
		svc := newTestPostService(posts, users, nil)

		_, err := svc.CreatePost(ctx, repository.CreatePostRequest{Title: "T", AuthorID: "user-1"})

		assert.ErrorIs(t, err, util.ErrInvalidInput)
		users.AssertNotCalled(t, "GetUserByID", mock.Anything, mock.Anything)
	})

	t.Run("store failure", func(t *testing.T) {
		posts, users := new(MockPostRepository), new(MockUserRepository)
		svc := newTestPostService(posts, users, nil)
		users.On("GetUserByID", ctx, "user-1").Return(alice, nil)
		posts.On("Create", ctx, mock.Anything).Return(errors.New("error creating post: unavailable"))

		_, err := svc.CreatePost(ctx, repository.CreatePostRequest{Title: "T", Content: "C", AuthorID: "user-1"})

		require.Error(t, err)
		assert.NotErrorIs(t, err, util.ErrInvalidAuthor)
	})
}

func TestPostService_ListPosts(t *testing.T) {
	ctx := context.Background()
	posts, users := new(MockPostRepository), new(MockUserRepository)
	svc := newTestPostService(posts, users, nil)

	older := &models.Post{PostID: "old", CreatedAt: issuedAt.Add(-time.Hour)}
	newer := &models.Post{PostID: "new", CreatedAt: issuedAt}
	oldest := &models.Post{PostID: "oldest", CreatedAt: issuedAt.Add(-2 * time.Hour)}
	posts.On("ListByStockCode", ctx, "ALL").Return([]*models.Post{older, newer, oldest}, nil)

	list, err := svc.ListPosts(ctx, "", 2)

	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "new", list[0].PostID)
	assert.Equal(t, "old", list[1].PostID)
}

func TestPostService_ListPostsLimit(t *testing.T) {
	ctx := context.Background()
	board := make([]*models.Post, 0, 150)
	for i := 0; i < 150; i++ {
		board = append(board, &models.Post{
			PostID:    fmt.Sprintf("p%03d", i),
			CreatedAt: issuedAt.Add(time.Duration(i) * time.Minute),
		})
	}

	tests := []struct {
		name     string
		limit    int
		expected int
	}{
		{"unset uses default", 0, DefaultPostsLimit},
		{"negative uses default", -5, DefaultPostsLimit},
		{"within range", 42, 42},
		{"at maximum", MaxPostsLimit, MaxPostsLimit},
		{"above maximum is clamped", 500, MaxPostsLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			posts := new(MockPostRepository)
			svc := newTestPostService(posts, new(MockUserRepository), nil)
			snapshot := append([]*models.Post(nil), board...)
			posts.On("ListByStockCode", ctx, "ALL").Return(snapshot, nil)

			list, err := svc.ListPosts(ctx, "ALL", tt.limit)

			require.NoError(t, err)
			assert.Len(t, list, tt.expected)
			assert.Equal(t, "p149", list[0].PostID)
		})
	}
}

func TestPostService_Images(t *testing.T) {
	ctx := context.Background()

	t.Run("storage disabled", func(t *testing.T) {
		svc := newTestPostService(new(MockPostRepository), new(MockUserRepository), nil)

		_, err := svc.AddImage(ctx, "ALL", "p1", "a.png", bytes.NewReader(nil), 0)
		assert.ErrorIs(t, err, util.ErrStorageDisabled)

		_, err = svc.ListImages(ctx, "ALL", "p1")
		assert.ErrorIs(t, err, util.ErrStorageDisabled)
	})

	t.Run("post must exist", func(t *testing.T) {
		posts, store := new(MockPostRepository), new(MockStorage)
		svc := newTestPostService(posts, new(MockUserRepository), store)
		posts.On("GetByID", ctx, "ALL", "nope").Return(nil, util.ErrPostNotFound)

		_, err := svc.AddImage(ctx, "ALL", "nope", "a.png", bytes.NewReader(nil), 0)

		assert.ErrorIs(t, err, util.ErrPostNotFound)
		store.AssertNotCalled(t, "UploadImage", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("upload", func(t *testing.T) {
		posts, store := new(MockPostRepository), new(MockStorage)
		svc := newTestPostService(posts, new(MockUserRepository), store)
		file := bytes.NewReader([]byte("png"))
		posts.On("GetByID", ctx, "ALL", "p1").Return(&models.Post{PostID: "p1"}, nil)
		store.On("UploadImage", ctx, "p1", "a.png", file, int64(3)).Return("posts/p1/x.png", "http://signed", nil)

		image, err := svc.AddImage(ctx, "ALL", "p1", "a.png", file, 3)

		require.NoError(t, err)
		assert.Equal(t, "posts/p1/x.png", image.ObjectName)
		assert.Equal(t, "http://signed", image.URL)
		assert.Equal(t, int64(3), image.Size)
	})

	t.Run("list", func(t *testing.T) {
		posts, store := new(MockPostRepository), new(MockStorage)
		svc := newTestPostService(posts, new(MockUserRepository), store)
		posts.On("GetByID", ctx, "005930", "p1").Return(&models.Post{PostID: "p1"}, nil)
		store.On("ListImages", ctx, "p1").Return([]storage.ObjectInfo{{Key: "posts/p1/a.png", Size: 5}}, nil)
		store.On("GetImageURL", ctx, "posts/p1/a.png").Return("http://signed/a", nil)

		images, err := svc.ListImages(ctx, "005930", "p1")

		require.NoError(t, err)
		require.Len(t, images, 1)
		assert.Equal(t, "http://signed/a", images[0].URL)
		assert.Equal(t, int64(5), images[0].Size)
	})
}
