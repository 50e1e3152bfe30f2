package main

import (
	"math/rand"
	"os"
	"time"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/handler"
	"app/internal/infra/db"
	infraRepo "app/internal/infra/repository"
	"app/internal/server"
	"app/internal/usecase"
	auth "app/internal/usecase/auth_usecase"

	"github.com/golang-jwt/jwt/v4"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

type realClock struct{}

func (c *realClock) Now() time.Time {
	return time.Now()
}

type jwtIssuer struct {
	secret    []byte
	accessTTL time.Duration
}

func newJWTIssuer(secret string) *jwtIssuer {
	//アクセストークン
	return &jwtIssuer{
		secret:    []byte(secret),
		accessTTL: 15 * time.Minute,
	}
}

func (i *jwtIssuer) Issue(subjectID int64, userType string, role string, now time.Time) (string, time.Time, error) {
	expiresAt := now.Add(i.accessTTL)

	claims := jwt.MapClaims{
		"sub":       subjectID,
		"user_type": userType,
		"iat":       now.Unix(),
		"exp":       expiresAt.Unix(),
	}
	if role != "" {
		claims["role"] = role
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expiresAt, nil
}

func main() {
	//.envは無ければ環境変数だけで動く
	_ = godotenv.Load()

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("config load failed")
	}

	//DB接続
	gormDB, err := db.Connect(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("db connect failed")
	}

	if err := gormDB.AutoMigrate(
		&model.Department{},
		&model.Employee{},
		&model.Partner{},
		&model.Product{},
		&model.Warehouse{},
		&model.Stock{},
		&model.Order{},
		&model.OrderItem{},
		&model.OrderApprover{},
		&model.AuditLog{},
	); err != nil {
		logger.Fatal().Err(err).Msg("migrate failed")
	}

	//Repository（GORM実装）生成
	employeeRepo := infraRepo.NewEmployeeGormRepository(gormDB)
	partnerRepo := infraRepo.NewPartnerGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	//usecaseに渡す部品
	clock := &realClock{}
	verifier := auth.NewBcryptPasswordVerifier()
	issuer := newJWTIssuer(cfg.JWTSecret)
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	//Usecase生成
	assigner := usecase.NewApproverAssigner(rng)
	orderUC := usecase.NewOrderUsecase(txManager, assigner)
	partnerOrderUC := usecase.NewPartnerOrderUsecase(txManager, assigner)
	approvalUC := usecase.NewApprovalUsecase(txManager)
	productUC := usecase.NewProductUsecase(txManager)
	partnerUC := usecase.NewPartnerUsecase(partnerRepo)
	loginUC := auth.NewLoginUsecase(employeeRepo, partnerRepo, verifier, issuer, clock)

	//Handler生成
	handlers := server.Handlers{
		Auth:         handler.NewAuthHandler(loginUC),
		Product:      handler.NewProductHandler(productUC),
		Order:        handler.NewOrderHandler(orderUC, approvalUC),
		PartnerOrder: handler.NewPartnerOrderHandler(partnerOrderUC, orderUC),
		Partner:      handler.NewPartnerHandler(partnerUC),
	}

	//Server起動
	addr := cfg.Port
	if addr[0] != ':' {
		addr = ":" + addr
	}

	logger.Info().Str("addr", addr).Str("env", cfg.GoEnv).Msg("starting server")
	if err := server.Start(addr, cfg, logger, handlers); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
