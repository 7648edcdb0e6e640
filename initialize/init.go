package initialize

import (
	"fmt"
	"net/http"

	"death-registry/app/controllers"
	"death-registry/app/db"
	jwtutil "death-registry/app/jwt"
	"death-registry/app/middleware"
	"death-registry/app/models"
	"death-registry/app/repo"
	"death-registry/app/services"
	"death-registry/config"
	"death-registry/global"
	"death-registry/router"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type App struct {
	Cfg    *config.Config
	DB     *gorm.DB
	Router http.Handler
	Auth   *controllers.AuthController
	Deaths *controllers.DeathController
	Users  *services.UserService
	Tokens *services.TokenService
}

// Build wires config, storage, services, controllers and routes into a
// ready-to-serve application.
func Build(configPath string) (*App, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	global.Config = cfg

	gdb, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}
	global.Mdb = gdb

	if err := gdb.AutoMigrate(&models.User{}, &models.Death{}, &models.AuthToken{}, &models.DeathEvent{}); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	var rdb *redis.Client
	if cfg.Redis.Addr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		global.Rdb = rdb
	}

	userRepo := repo.NewUserRepository(gdb)
	deathRepo := repo.NewDeathRepository(gdb)
	tokenRepo := repo.NewTokenRepository(gdb)

	signer := &jwtutil.Signer{Secret: []byte(cfg.JWT.Secret), Issuer: cfg.JWT.Issuer, ExpMin: cfg.JWT.ExpMin}

	userSvc := services.NewUserService(userRepo)
	tokenSvc := services.NewTokenService(tokenRepo, userRepo, signer, rdb)
	deathSvc := services.NewDeathService(deathRepo, userRepo)

	if err := userSvc.EnsureAdmin(cfg.Admin.Name, cfg.Admin.Email, cfg.Admin.Password); err != nil {
		global.Logger.Warn().Err(err).Msg("admin seed failed")
	}
	if err := tokenRepo.DeleteExpired(); err != nil {
		global.Logger.Warn().Err(err).Msg("token cleanup failed")
	}

	authCtrl := controllers.NewAuthController(userSvc, tokenSvc)
	deathCtrl := controllers.NewDeathController(deathSvc)
	mw := &middleware.Auth{Tokens: tokenSvc}

	h := router.New(authCtrl, deathCtrl, mw)
	h = middleware.Logging(h)

	return &App{
		Cfg:    cfg,
		DB:     gdb,
		Router: h,
		Auth:   authCtrl,
		Deaths: deathCtrl,
		Users:  userSvc,
		Tokens: tokenSvc,
	}, nil
}
