package app

import (
	"context"

	"gorm.io/gorm"

	"github.com/larekshop/larek-backend/internal/cache"
	"github.com/larekshop/larek-backend/internal/logger"
	"github.com/larekshop/larek-backend/internal/mail"
	"github.com/larekshop/larek-backend/internal/services"
	"github.com/larekshop/larek-backend/internal/storage"
	"github.com/larekshop/larek-backend/internal/types"
)

type Services struct {
	Policy  services.PolicyService
	Catalog services.CatalogService
	Account services.AccountService
	Auth    services.AuthService
	Blog    services.BlogService
	Media   services.MediaService
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, reposet Repos, store cache.Store) (Services, error) {
	log.Info("Wiring services...")

	snapshot := cache.NewCatalog(log, store, cfg.CatalogCacheTTL,
		func(ctx context.Context) ([]*types.Category, error) {
			return reposet.Category.GetAll(ctx, nil)
		},
		func(ctx context.Context) ([]*types.Product, error) {
			return reposet.Product.GetAll(ctx, nil)
		},
	)

	mailer := wireMailer(log)

	var bucket storage.BucketService
	bucket, err := storage.NewBucketService(log)
	if err != nil {
		log.Warn("Could not init BucketService, uploads disabled", "error", err)
	}

	policyService := services.NewPolicyService(db, log, reposet.UserPermission)
	catalogService := services.NewCatalogService(db, log, snapshot, policyService, reposet.Product, reposet.Version)
	accountService := services.NewAccountService(db, log, reposet.User, reposet.UserEvent, mailer, cfg.ResetPasswordLength)
	authService := services.NewAuthService(db, log, reposet.User, reposet.UserToken, cfg.JWTSecretKey, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	blogService := services.NewBlogService(db, log, reposet.Post)
	mediaService := services.NewMediaService(db, log, bucket, policyService, reposet.Product, reposet.Post)

	return Services{
		Policy:  policyService,
		Catalog: catalogService,
		Account: accountService,
		Auth:    authService,
		Blog:    blogService,
		Media:   mediaService,
	}, nil
}

func wireMailer(log *logger.Logger) mail.Mailer {
	cfg := mail.SendGridConfigFromEnv(log)
	mailer, err := mail.NewSendGridMailer(log, cfg)
	if err != nil {
		log.Warn("SendGrid not configured, emails go to the log", "error", err)
		return mail.NewLogMailer(log)
	}
	return mailer
}
