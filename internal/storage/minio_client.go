package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"stockboard/internal/config"
)

type Storage interface {
	UploadImage(ctx context.Context, postID, fileName string, file io.Reader, size int64) (string, string, error)
	ListImages(ctx context.Context, postID string) ([]ObjectInfo, error)
	GetImageURL(ctx context.Context, objectName string) (string, error)
}

type ObjectInfo struct {
	Key          string
	Size         int64
	LastModified time.Time
}

// ObjectStore is the part of *minio.Client used by MinIOClient.
type ObjectStore interface {
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	ListObjects(ctx context.Context, bucketName string, opts minio.ListObjectsOptions) <-chan minio.ObjectInfo
	PresignedGetObject(ctx context.Context, bucketName, objectName string, expires time.Duration, reqParams url.Values) (*url.URL, error)
}

type MinIOClient struct {
	client ObjectStore
	bucket string
	expiry time.Duration
	now    func() time.Time
}

// NewMinIOClient connects to the object store and makes sure the bucket exists.
func NewMinIOClient(ctx context.Context, cfg *config.Config) (*MinIOClient, error) {
	client, err := minio.New(cfg.MinIO.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinIO.AccessKey, cfg.MinIO.SecretKey, ""),
		Secure: cfg.MinIO.UseSSL,
		Region: cfg.MinIO.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.MinIO.BucketName)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket %s: %w", cfg.MinIO.BucketName, err)
	}
	if !exists {
		err = client.MakeBucket(ctx, cfg.MinIO.BucketName, minio.MakeBucketOptions{Region: cfg.MinIO.Region})
		if err != nil {
			return nil, fmt.Errorf("failed to create bucket %s: %w", cfg.MinIO.BucketName, err)
		}
		slog.Info("created MinIO bucket", "bucket", cfg.MinIO.BucketName)
	}

	return NewMinIOStorage(client, cfg.MinIO.BucketName, cfg.MinIO.URLExpiry), nil
}

func NewMinIOStorage(client ObjectStore, bucket string, expiry time.Duration) *MinIOClient {
	return &MinIOClient{client: client, bucket: bucket, expiry: expiry, now: time.Now}
}

func postPrefix(postID string) string {
	return "posts/" + postID + "/"
}

// UploadImage stores the file under posts/{postID}/ and returns the object
// name and a presigned download URL.
func (m *MinIOClient) UploadImage(ctx context.Context, postID, fileName string, file io.Reader, size int64) (string, string, error) {
	fileExt := strings.ToLower(filepath.Ext(fileName))
	if fileExt == "" {
		fileExt = ".jpg"
	}

	contentType := mime.TypeByExtension(fileExt)
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	now := m.now().UTC()
	objectName := fmt.Sprintf("%s%d%02d%02d-%s%s",
		postPrefix(postID),
		now.Year(),
		now.Month(),
		now.Day(),
		uuid.New().String(),
		fileExt)

	_, err := m.client.PutObject(ctx, m.bucket, objectName, file, size,
		minio.PutObjectOptions{
			ContentType: contentType,
			UserMetadata: map[string]string{
				"original-filename": fileName,
				"post-id":           postID,
				"uploaded-at":       now.Format(time.RFC3339),
			},
		})
	if err != nil {
		return "", "", fmt.Errorf("failed to upload to MinIO: %w", err)
	}

	imageURL, err := m.GetImageURL(ctx, objectName)
	if err != nil {
		return "", "", err
	}

	return objectName, imageURL, nil
}

func (m *MinIOClient) ListImages(ctx context.Context, postID string) ([]ObjectInfo, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	objects := make([]ObjectInfo, 0)
	for obj := range m.client.ListObjects(ctx, m.bucket, minio.ListObjectsOptions{
		Prefix:    postPrefix(postID),
		Recursive: true,
	}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list images: %w", obj.Err)
		}
		objects = append(objects, ObjectInfo{
			Key:          obj.Key,
			Size:         obj.Size,
			LastModified: obj.LastModified,
		})
	}
	return objects, nil
}

func (m *MinIOClient) GetImageURL(ctx context.Context, objectName string) (string, error) {
	u, err := m.client.PresignedGetObject(ctx, m.bucket, objectName, m.expiry, nil)
	if err != nil {
		return "", fmt.Errorf("failed to presign %s: %w", objectName, err)
	}
	return u.String(), nil
}
