package service

import (
	"stockboard/internal/config"
	"stockboard/internal/repository"
	"stockboard/internal/storage"
)

type Service struct {
	Auth    AuthService
	Post    PostService
	Chatbot ChatbotService
	Tables  TablesService
}

func NewService(rep *repository.Repository, cfg *config.Config, storage storage.Storage) *Service {
	return &Service{
		Auth:    NewAuthService(rep.User, cfg),
		Post:    NewPostService(rep.Post, rep.User, storage),
		Chatbot: NewChatbotService(),
		Tables:  NewTablesService(rep.Tables),
	}
}
