// Command provision-admin creates a back-office account in Postgres.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/pilgrim-travel/internal/auth"
	"github.com/spec-kit/pilgrim-travel/internal/config"
	"github.com/spec-kit/pilgrim-travel/internal/domain"
	"github.com/spec-kit/pilgrim-travel/internal/observability"
	"github.com/spec-kit/pilgrim-travel/internal/persistence"
	"github.com/spec-kit/pilgrim-travel/internal/repository"
	"github.com/spec-kit/pilgrim-travel/internal/service"
	apperrors "github.com/spec-kit/pilgrim-travel/pkg/util"
)

func main() {
	email := flag.String("email", "", "account email (required)")
	password := flag.String("password", os.Getenv("ADMIN_PASSWORD"), "account password, defaults to $ADMIN_PASSWORD")
	name := flag.String("name", "", "display name")
	role := flag.String("role", string(domain.AdminRoleAdmin), "admin or editor")
	flag.Parse()

	if *email == "" || *password == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	logger, err := observability.NewLogger(cfg.Logger, cfg.App)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()
	if !pg.Enabled() {
		logger.Fatal("POSTGRES_DSN is required to provision accounts")
	}
	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.Pool, logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	users := repository.NewAdminUserRepository(pg.Pool)
	authService, err := service.NewAuthService(cfg.Auth, service.AuthDependencies{
		Users:    users,
		Sessions: auth.NewSessionManager(repository.NewSessionRepository(pg.Pool), cfg.Auth.SessionTTL(), logger),
		Logger:   logger,
	})
	if err != nil {
		logger.Fatal("failed to init auth service", zap.Error(err))
	}

	user, err := authService.ProvisionAdmin(ctx, service.ProvisionInput{
		Email:       *email,
		Password:    *password,
		DisplayName: *name,
		Role:        domain.AdminRole(*role),
	})
	if err != nil {
		var domainErr *apperrors.DomainError
		if errors.As(err, &domainErr) && len(domainErr.Details) > 0 {
			logger.Fatal("failed to provision admin", zap.String("reason", domainErr.Message), zap.Any("details", domainErr.Details))
		}
		logger.Fatal("failed to provision admin", zap.Error(err))
	}
	fmt.Printf("created %s account %s (%s)\n", user.Role, user.Email, user.ID)
}
