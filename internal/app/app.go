package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/aidar/teamboard/internal/config"
	"github.com/aidar/teamboard/internal/handler"
	"github.com/aidar/teamboard/internal/i18n"
	"github.com/aidar/teamboard/internal/middleware"
	"github.com/aidar/teamboard/internal/repository/httpapi"
	"github.com/aidar/teamboard/internal/service"
	"github.com/aidar/teamboard/internal/view"
)

// App представляет приложение со всеми зависимостями
type App struct {
	config  *config.Config
	client  *httpapi.Client
	handler http.Handler
	server  *http.Server
	logger  *slog.Logger
}

// New создает новый экземпляр приложения с логом в stdout
func New(cfg *config.Config) (*App, error) {
	return NewWithLogOutput(cfg, os.Stdout)
}

// NewWithLogOutput создает приложение с логом в указанный writer
func NewWithLogOutput(cfg *config.Config, logOutput io.Writer) (*App, error) {
	// Инициализируем структурированный логгер (JSON формат)
	logger := slog.New(slog.NewJSONHandler(logOutput, &slog.HandlerOptions{
		Level: cfg.Log.SlogLevel(),
	}))

	app := &App{
		config: cfg,
		logger: logger,
	}

	return app, nil
}

// Initialize инициализирует все компоненты приложения
func (a *App) Initialize(ctx context.Context) error {
	// Клиент внешнего API с пользователями, командами и группами
	a.client = httpapi.NewClient(a.config.API.BaseURL, a.config.API.Timeout)

	// Ресурсы локализации загружаются один раз при старте
	translator, err := i18n.Load(a.config.Locale.Default, a.config.Locale.Fallback)
	if err != nil {
		return fmt.Errorf("failed to load locales: %w", err)
	}

	renderer, err := view.NewRenderer()
	if err != nil {
		return fmt.Errorf("failed to parse templates: %w", err)
	}

	// Настраиваем HTTP сервер и роутинг
	a.setupServer(translator, renderer)

	a.logger.InfoContext(ctx, "Application initialized successfully", "api_base_url", a.config.API.BaseURL)
	return nil
}

// setupServer инициализирует HTTP роутер и обработчики
func (a *App) setupServer(translator *i18n.Translator, renderer *view.Renderer) {
	// Инициализируем слой репозиториев (внешний HTTP API)
	userRepo := httpapi.NewUserRepository(a.client)
	teamRepo := httpapi.NewTeamRepository(a.client)
	groupRepo := httpapi.NewGroupRepository(a.client)
	authRepo := httpapi.NewAuthRepository(a.client)

	// Инициализируем слой сервисов
	userService := service.NewUserService(userRepo)
	teamService := service.NewTeamService(teamRepo)
	groupService := service.NewGroupService(groupRepo)
	dashboardService := service.NewDashboardService(userService, teamService, groupService, a.logger)
	authService := service.NewAuthService(
		authRepo,
		a.config.Session.Secret,
		a.config.Session.GetExpiration(),
	)

	// Инициализируем HTTP обработчики
	cookie := middleware.SessionCookie{
		Name:   a.config.Session.CookieName,
		Secure: a.config.Session.Secure,
	}
	pages := handler.NewPages(renderer, translator, a.logger)
	dashboardHandler := handler.NewDashboardHandler(dashboardService, userService, teamService, groupService, pages, a.logger)
	authHandler := handler.NewAuthHandler(authService, cookie, pages, a.logger)
	localeHandler := handler.NewLocaleHandler(translator)

	// Настраиваем роутер
	r := chi.NewRouter()

	// Глобальные middleware (применяются ко всем запросам)
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestLogger(a.logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))
	r.Use(middleware.LocaleMiddleware(translator))
	r.Use(middleware.SessionMiddleware(authService, cookie))

	// Health check для мониторинга
	r.Get("/health", handler.Health)

	// Публичные страницы (без сессии)
	r.Get("/login", authHandler.LoginPage)
	r.Post("/login", authHandler.Login)
	r.Get("/register", authHandler.RegisterPage)
	r.Post("/register", authHandler.Register)
	r.Post("/logout", authHandler.Logout)
	r.Get("/lang/{lng}", localeHandler.Switch)

	// Страницы с данными (требуют сессию, если AUTH_REQUIRED=true)
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireSession(a.config.Session.AuthRequired))

		r.Get("/", dashboardHandler.Index)

		r.Route("/fragments", func(r chi.Router) {
			r.Get("/users", dashboardHandler.UsersFragment)
			r.Get("/teams/{teamID}/users", dashboardHandler.TeamUsersFragment)
			r.Get("/teams/{teamID}/groups", dashboardHandler.TeamGroupsFragment)
			r.Get("/teams/{teamID}/groups/{groupID}/users", dashboardHandler.TeamGroupUsersFragment)
			r.Get("/groups/{groupID}/users", dashboardHandler.GroupUsersFragment)
		})
	})

	a.handler = r

	// Создаем HTTP сервер с настройками таймаутов
	addr := fmt.Sprintf("%s:%s", a.config.Server.Host, a.config.Server.Port)
	a.server = &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	a.logger.Info("HTTP server configured", "addr", addr)
}

// Handler возвращает корневой HTTP обработчик (используется в тестах)
func (a *App) Handler() http.Handler {
	return a.handler
}

// Run запускает HTTP сервер
func (a *App) Run() error {
	a.logger.Info("Starting HTTP server", "addr", a.server.Addr)
	return a.server.ListenAndServe()
}

// Shutdown корректно останавливает приложение
func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info("Shutting down application")

	// Останавливаем HTTP сервер (ждем завершения текущих запросов)
	if err := a.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	a.logger.Info("Application stopped gracefully")
	return nil
}
