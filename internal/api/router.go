package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bankstack/bankstack/internal/api/handler"
	"github.com/bankstack/bankstack/internal/api/middleware"
	"github.com/bankstack/bankstack/internal/core/ports"
	"github.com/bankstack/bankstack/internal/core/service"
	mongodb "github.com/bankstack/bankstack/internal/infrastructure/db/mongo"
)

// LoginRouterDeps carries the constructed dependencies of the login service.
// The signing key, TTL and connections are established once at startup and
// never mutated afterwards.
type LoginRouterDeps struct {
	DB       *mongo.Database
	Redis    *redis.Client
	Tokens   *service.TokenService
	Audit    ports.LoginAttemptRecorder
	Throttle ports.LoginThrottle
	Log      zerolog.Logger
}

// NewLoginRouter builds the Echo instance for the login service with all
// routes registered. The session gate runs globally; the allow-list below is
// the only way a route escapes it.
func NewLoginRouter(d LoginRouterDeps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("bankstack_login"))

	e.Use(middleware.Session(middleware.SessionConfig{
		Verifier: d.Tokens,
		LoginURL: "/login",
		AllowPaths: []string{
			"/login",
			"/register",
			"/forgot-password",
			"/logout",
			"/health",
			"/health/ready",
			"/metrics",
			"/favicon.ico",
		},
		AllowPrefixes: []string{"/static/", "/swagger/"},
	}))

	// --- Dependencies ---
	users := mongodb.NewUserRepository(d.DB)
	hasher := service.NewBcryptHasher()
	authService := service.NewAuthService(users, hasher, d.Tokens, d.Audit, d.Throttle, d.Log)
	authHandler := handler.NewAuthHandler(authService)

	// --- Auth routes ---
	e.GET("/register", authHandler.RegisterForm)
	e.POST("/register", authHandler.Register)
	e.GET("/login", authHandler.LoginForm)
	e.POST("/login", authHandler.Login)
	e.GET("/logout", authHandler.Logout)
	e.GET("/forgot-password", authHandler.ForgotPasswordForm)
	e.POST("/forgot-password", authHandler.ForgotPassword)
	e.GET("/me", authHandler.Me)

	// --- Operational endpoints ---
	registerOperational(e, d.DB, d.Redis)
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}

// AccountRouterDeps carries the constructed dependencies of the account
// service. Tokens only needs the verification half; the account service
// never issues tokens.
type AccountRouterDeps struct {
	DB       *mongo.Database
	Redis    *redis.Client
	Verifier ports.TokenVerifier
	LoginURL string
	Log      zerolog.Logger
}

// NewAccountRouter builds the Echo instance for the account service. The
// gate redirects unauthenticated requests to the login service.
func NewAccountRouter(d AccountRouterDeps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("bankstack_account"))

	e.Use(middleware.Session(middleware.SessionConfig{
		Verifier: d.Verifier,
		LoginURL: d.LoginURL,
		AllowPaths: []string{
			"/",
			"/health",
			"/health/ready",
			"/metrics",
			"/favicon.ico",
		},
		AllowPrefixes: []string{"/static/"},
	}))

	accounts := mongodb.NewAccountRepository(d.DB)
	accountService := service.NewAccountService(accounts, d.Log)
	accountHandler := handler.NewAccountHandler(accountService)

	e.GET("/", accountHandler.Home)
	e.GET("/ui/account", accountHandler.View)
	e.POST("/ui/account", accountHandler.Open)

	registerOperational(e, d.DB, d.Redis)

	return e
}

func registerOperational(e *echo.Echo, db *mongo.Database, rdb *redis.Client) {
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
}
