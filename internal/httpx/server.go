package httpx

import (
	"net/http"
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"blog/internal/app"
	"blog/internal/store"
)

type Server struct {
	Cfg    app.Config
	Log    *zap.Logger
	Posts  *store.PostStore
	Users  store.UserStore
	Engine *gin.Engine
}

func NewServer(cfg app.Config, log *zap.Logger, posts *store.PostStore, users store.UserStore) *Server {
	s := &Server{Cfg: cfg, Log: log, Posts: posts, Users: users}

	r := gin.New()
	r.Use(ginzap.Ginzap(log, time.RFC3339, true))
	r.Use(ginzap.RecoveryWithZap(log, true))
	r.Use(RequestID())
	r.Use(s.errorNormalizer())

	r.LoadHTMLGlob(cfg.TemplatesGlob)
	r.Static("/static", cfg.StaticDir)
	r.Static("/media", cfg.MediaDir)

	// Las rutas desconocidas también pasan por el normalizador: JSON bajo
	// /api, página de error fuera.
	r.NoRoute(func(c *gin.Context) {
		c.Error(&StatusError{Code: http.StatusNotFound, Detail: "Not Found"})
	})

	// páginas
	r.GET("/", s.handleHome)
	r.GET("/posts", s.handleHome)
	r.GET("/posts/:id", s.handlePostPage)

	// API
	api := r.Group(apiPrefix)
	{
		api.GET("/posts", s.handleListPosts)
		api.POST("/posts", s.handleCreatePost)
		api.GET("/posts/:id", s.handleGetPost)

		api.POST("/users", s.handleCreateUser)
		api.GET("/users/:id", s.handleGetUser)

		api.GET("/login", s.handleLogin)
		api.GET("/register", s.handleRegister)
	}

	s.Engine = r
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) { s.Engine.ServeHTTP(w, r) }
