package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	httpadp "land-registry-backend/internal/adapter/http"
	"land-registry-backend/internal/adapter/middleware"
	"land-registry-backend/internal/adapter/repository/mysql"
	"land-registry-backend/internal/config"
	"land-registry-backend/internal/infrastructure/cache"
	"land-registry-backend/internal/infrastructure/db"
	"land-registry-backend/internal/infrastructure/mailer"
	"land-registry-backend/internal/password"
	"land-registry-backend/internal/token"
	mortgageUC "land-registry-backend/internal/usecase/mortgage"
	partyUC "land-registry-backend/internal/usecase/party"
	registrarUC "land-registry-backend/internal/usecase/registrar"
	surveyUC "land-registry-backend/internal/usecase/survey"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	gdb, err := db.OpenGorm(cfg.MySQLDSN())
	if err != nil {
		log.Fatal(err)
	}
	if err := db.Migrate(gdb); err != nil {
		log.Fatal(err)
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		log.Fatal(err)
	}

	// platform services
	hasher := password.NewHasher(cfg.BcryptCost)
	tokens := token.NewService(cfg.JWTSecret, cfg.JWTIssuer, time.Duration(cfg.JWTTTLHours)*time.Hour)
	smtp := mailer.NewSMTP(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass)

	// repositories
	partyRepo := mysql.NewPartyRepository(gdb)
	ownerRepo := mysql.NewOwnerRepository(gdb)
	registrarRepo := mysql.NewRegistrarRepository(gdb)
	mortgageRepo := mysql.NewMortgageRepository(gdb)
	surveyRepo := mysql.NewSurveyRepository(gdb)
	uow := mysql.NewGormUoW(gdb)

	// usecases
	parties := partyUC.NewUsecase(partyRepo, hasher, tokens)
	mortgages := mortgageUC.NewUsecase(mortgageRepo, uow)
	surveys := surveyUC.NewUsecase(surveyRepo, uow)
	registrar := registrarUC.NewUsecase(parties, ownerRepo, registrarRepo, hasher, tokens, smtp)

	// handlers
	h := httpadp.NewHandler()
	bankH := httpadp.NewBankHandler(parties, mortgages)
	surveyorH := httpadp.NewSurveyorHandler(parties, surveys)
	mortgageH := httpadp.NewMortgageHandler(mortgages)
	surveyH := httpadp.NewSurveyHandler(surveys)
	registrarH := httpadp.NewRegistrarHandler(registrar, registrarUC.SeedInput{
		Username: cfg.RegistrarUsername,
		Password: cfg.RegistrarPassword,
		Address:  cfg.RegistrarAddress,
		Contact:  cfg.RegistrarContact,
		City:     cfg.RegistrarCity,
	})

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(echomw.Logger(), echomw.Recover())

	requireBank := middleware.RequireAuth(tokens, "bank")
	requireSurveyor := middleware.RequireAuth(tokens, "surveyor")
	requireRegistrar := middleware.RequireAuth(tokens, "registrar")
	idemp := middleware.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second)

	e.GET("/health", h.Health)

	bank := e.Group("/api/bank")
	bank.POST("/register", bankH.Register)
	bank.POST("/login", bankH.Login)
	bank.GET("/profile", bankH.Profile, requireBank)
	bank.GET("/mortgages", bankH.Mortgages, requireBank)
	bank.GET("/mortgage/:id", bankH.MortgageDetail)

	surveyor := e.Group("/api/surveyor")
	surveyor.POST("/register", surveyorH.Register)
	surveyor.POST("/login", surveyorH.Login)
	surveyor.GET("/profile", surveyorH.Profile, requireSurveyor)
	surveyor.GET("/surveys", surveyorH.Surveys, requireSurveyor)
	surveyor.GET("/survey/:id", surveyorH.SurveyDetail)

	e.POST("/api/owner/signup", registrarH.SignupOwner)

	reg := e.Group("/api/registrar")
	reg.POST("/seed", registrarH.Seed)
	reg.POST("/login", registrarH.Login)
	reg.GET("/pending-banks", registrarH.PendingBanks, requireRegistrar)
	reg.GET("/pending-surveyors", registrarH.PendingSurveyors, requireRegistrar)
	reg.PUT("/approve-bank/:id", registrarH.ApproveBank, requireRegistrar)
	reg.PUT("/reject-bank/:id", registrarH.RejectBank, requireRegistrar)
	reg.PUT("/approve-surveyor/:id", registrarH.ApproveSurveyor, requireRegistrar)
	reg.PUT("/reject-surveyor/:id", registrarH.RejectSurveyor, requireRegistrar)
	reg.POST("/notify", registrarH.Notify, requireRegistrar)

	mortgage := e.Group("/api/mortgage")
	mortgage.POST("/apply", mortgageH.Apply, idemp)
	mortgage.POST("/:id/payment", mortgageH.RecordPayment, idemp)
	mortgage.PUT("/:id/approve", mortgageH.Approve, requireBank)
	mortgage.PUT("/:id/activate", mortgageH.Activate, requireBank)
	mortgage.GET("/:id/history", mortgageH.History)
	mortgage.GET("/my-mortgages", mortgageH.MyMortgages)
	mortgage.GET("/property/:id", mortgageH.ForProperty)

	survey := e.Group("/api/survey")
	survey.POST("/request", surveyH.Request)
	survey.POST("/:id/assign", surveyH.Assign, requireRegistrar)
	survey.POST("/:id/submit", surveyH.Submit, requireSurveyor)
	survey.PUT("/:id/verify", surveyH.Verify, requireRegistrar)
	survey.GET("/list", surveyH.List)
	survey.GET("/property/:id", surveyH.ForProperty)
	survey.GET("/:id", surveyH.Get)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
