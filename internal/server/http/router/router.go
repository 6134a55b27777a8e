package router

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/polkiloo/careerpath/internal/config"
	"github.com/polkiloo/careerpath/internal/server/http/handlers"
	"github.com/polkiloo/careerpath/internal/server/http/middleware"
)

type setupParams struct {
	fx.In

	Facade handlers.PlatformFacade
	Config *config.Config
	Logger *slog.Logger
}

func newEngine(p setupParams) *gin.Engine {
	return Setup(p.Facade, p.Config, p.Logger)
}

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.PlatformFacade, cfg *config.Config, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.HandleMethodNotAllowed = true

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.RequestTimeout(cfg.RequestTimeout))
	engine.Use(middleware.DecompressRequest(cfg.MaxUploadSize))
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	resumeHandler := handlers.NewResumeHandler(facade, cfg.UploadDir, cfg.MaxUploadSize)
	careerHandler := handlers.NewCareerHandler(facade)
	healthHandler := handlers.NewHealthHandler(facade)

	// The bundled frontend talks to /api/auth, direct clients to /auth.
	for _, prefix := range []string{"/auth", "/api/auth"} {
		auth := engine.Group(prefix)
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.GET("/profile", authHandler.Profile)
	}

	api := engine.Group("/api")
	api.GET("", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "AI Career Platform API"})
	})
	api.POST("/resume/upload", middleware.AuthRequired(facade), resumeHandler.Upload)
	api.POST("/resume/match", careerHandler.Match)
	api.POST("/career/check-bias", careerHandler.CheckBias)
	api.POST("/career/predict-interview-questions", careerHandler.InterviewQuestions)

	engine.GET("/health", healthHandler.Live)
	engine.GET("/healthz/db", healthHandler.Database)

	engine.NoMethod(methodNotAllowed(engine))
	engine.NoRoute(notFound(cfg.StaticDir))

	return engine
}

func methodNotAllowed(engine *gin.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Allow", strings.Join(allowedMethods(engine.Routes(), c.Request.URL.Path), ", "))
		middleware.AbortWithMessage(c, http.StatusMethodNotAllowed, fmt.Sprintf("Method %s Not Allowed", c.Request.Method))
	}
}

func allowedMethods(routes gin.RoutesInfo, path string) []string {
	path = strings.TrimSuffix(path, "/")
	var methods []string
	for _, r := range routes {
		if strings.TrimSuffix(r.Path, "/") == path && !slices.Contains(methods, r.Method) {
			methods = append(methods, r.Method)
		}
	}
	slices.Sort(methods)
	return methods
}

// notFound serves the single page app from staticDir for non-API GET requests
// and a JSON 404 for everything else.
func notFound(staticDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if staticDir != "" && isSPARequest(c.Request) {
			name := filepath.Join(staticDir, filepath.FromSlash(filepath.Clean("/"+c.Request.URL.Path)))
			if info, err := os.Stat(name); err == nil && !info.IsDir() {
				c.File(name)
				return
			}
			index := filepath.Join(staticDir, "index.html")
			if _, err := os.Stat(index); err == nil {
				c.File(index)
				return
			}
		}
		middleware.AbortWithMessage(c, http.StatusNotFound,
			fmt.Sprintf("Route %s %s not found", c.Request.Method, c.Request.URL.RequestURI()))
	}
}

func isSPARequest(r *http.Request) bool {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		return false
	}
	p := r.URL.Path
	return p != "/api" && !strings.HasPrefix(p, "/api/") && !strings.HasPrefix(p, "/auth/")
}
