package service

import (
	"github.com/DvEyZ/rkblog-be/internal/config"
	"github.com/DvEyZ/rkblog-be/internal/logger"
	"github.com/DvEyZ/rkblog-be/internal/store"
)

type Services struct {
	AuthService    AuthService
	AccountService AccountService
	PostService    PostService
}

func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(storages.AccountRepository, cfg, logger),
		AccountService: NewAccountService(storages.AccountRepository, storages.PostRepository, cfg, logger),
		PostService:    NewPostService(storages.PostRepository, storages.AccountRepository, logger),
	}
}
