package app

import (
	"gorm.io/gorm"

	"github.com/larekshop/larek-backend/internal/logger"
	"github.com/larekshop/larek-backend/internal/repos"
)

type Repos struct {
	Category       repos.CategoryRepo
	Product        repos.ProductRepo
	Version        repos.VersionRepo
	User           repos.UserRepo
	UserPermission repos.UserPermissionRepo
	UserToken      repos.UserTokenRepo
	UserEvent      repos.UserEventRepo
	Post           repos.PostRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Category:       repos.NewCategoryRepo(db, log),
		Product:        repos.NewProductRepo(db, log),
		Version:        repos.NewVersionRepo(db, log),
		User:           repos.NewUserRepo(db, log),
		UserPermission: repos.NewUserPermissionRepo(db, log),
		UserToken:      repos.NewUserTokenRepo(db, log),
		UserEvent:      repos.NewUserEventRepo(db, log),
		Post:           repos.NewPostRepo(db, log),
	}
}
