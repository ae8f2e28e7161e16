package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gorilla/mux"

	"stockboard/internal/config"
	"stockboard/internal/models"
	"stockboard/internal/repository"
	"stockboard/internal/util"
)

type CreatePostRequest struct {
	Title     string `json:"title" validate:"required"`
	Content   string `json:"content" validate:"required"`
	AuthorID  string `json:"authorId" validate:"required"`
	StockCode string `json:"stockCode"`
}

type CreatePostResponse struct {
	Message string `json:"message"`
	PostID  string `json:"postId"`
}

type PostsResponse struct {
	StockCode string         `json:"stockCode"`
	Posts     []*models.Post `json:"posts"`
}

type ImageResponse struct {
	ObjectName string `json:"objectName"`
	URL        string `json:"url"`
	Size       int64  `json:"size"`
	SizeHuman  string `json:"sizeHuman"`
	MimeType   string `json:"mimeType,omitempty"`
	CreatedAt  string `json:"createdAt"`
}

type ImagesResponse struct {
	Images []ImageResponse `json:"images"`
}

// multipartOverhead leaves room for boundaries and part headers so a file
// of exactly MaxUploadSize bytes still fits in the request body.
const multipartOverhead = 1 << 20

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// CreatePost trusts the authorId in the body. When the auth guard runs in
// front of this handler the author must also match the token's user.
func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	var req CreatePostRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "title, content and author are required", http.StatusBadRequest)
		return
	}

	if userID, ok := util.UserIDFromContext(r.Context()); ok && userID != req.AuthorID {
		WriteError(w, "author does not match the authenticated user", http.StatusForbidden)
		return
	}

	post, err := h.PostService.CreatePost(r.Context(), repository.CreatePostRequest{
		Title:     req.Title,
		Content:   req.Content,
		AuthorID:  req.AuthorID,
		StockCode: req.StockCode,
	})
	if err != nil {
		h.respondWithError(w, r, err, "failed to create post due to a server error")
		return
	}

	writeSuccess(w, CreatePostResponse{Message: "post created", PostID: post.PostID}, http.StatusCreated)
}

func (h *Handlers) GetPost(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	post, err := h.PostService.GetPost(r.Context(), vars["stockCode"], vars["postId"])
	if err != nil {
		h.respondWithError(w, r, err, "failed to load post")
		return
	}

	writeSuccess(w, post, http.StatusOK)
}

func (h *Handlers) ListPosts(w http.ResponseWriter, r *http.Request) {
	stockCode := r.URL.Query().Get("stockCode")
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	posts, err := h.PostService.ListPosts(r.Context(), stockCode, limit)
	if err != nil {
		h.respondWithError(w, r, err, "failed to load posts")
		return
	}

	if stockCode == "" {
		stockCode = config.GeneralBoardStock
	}
	writeSuccess(w, PostsResponse{StockCode: stockCode, Posts: posts}, http.StatusOK)
}

func (h *Handlers) AddImage(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	r.Body = http.MaxBytesReader(w, r.Body, h.Cfg.MaxUploadSize+multipartOverhead)
	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.writeTooLarge(w)
		} else {
			WriteError(w, "failed to read the uploaded file", http.StatusBadRequest)
		}
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		WriteError(w, "image file is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	if header.Size > h.Cfg.MaxUploadSize {
		h.writeTooLarge(w)
		return
	}

	contentType := header.Header.Get("Content-Type")
	if !allowedImageTypes[contentType] {
		WriteError(w, "unsupported file type, allowed: JPEG, PNG, GIF, WebP", http.StatusBadRequest)
		return
	}

	image, err := h.PostService.AddImage(r.Context(), vars["stockCode"], vars["postId"], header.Filename, file, header.Size)
	if err != nil {
		h.respondWithError(w, r, err, "failed to upload image")
		return
	}

	response := toImageResponse(image)
	response.MimeType = contentType
	writeSuccess(w, response, http.StatusCreated)
}

func (h *Handlers) ListImages(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	images, err := h.PostService.ListImages(r.Context(), vars["stockCode"], vars["postId"])
	if err != nil {
		h.respondWithError(w, r, err, "failed to list images")
		return
	}

	response := ImagesResponse{Images: make([]ImageResponse, 0, len(images))}
	for _, image := range images {
		response.Images = append(response.Images, toImageResponse(image))
	}
	writeSuccess(w, response, http.StatusOK)
}

func (h *Handlers) writeTooLarge(w http.ResponseWriter) {
	WriteError(w, fmt.Sprintf("file is too large (max %s)",
		humanize.IBytes(uint64(h.Cfg.MaxUploadSize))), http.StatusBadRequest)
}

func toImageResponse(image *models.Image) ImageResponse {
	return ImageResponse{
		ObjectName: image.ObjectName,
		URL:        image.URL,
		Size:       image.Size,
		SizeHuman:  humanize.Bytes(uint64(image.Size)),
		CreatedAt:  image.CreatedAt.Format(time.RFC3339),
	}
}
