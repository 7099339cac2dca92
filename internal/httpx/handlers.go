package httpx

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"blog/internal/store"
)

// ------------------------------------------------------------------
// ------------Page handlers-----------------------------------------

func (s *Server) handleHome(c *gin.Context) {
	c.HTML(http.StatusOK, "home.html", gin.H{
		"title": "Home Page",
		"posts": s.Posts.All(),
	})
}

func (s *Server) handlePostPage(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	p, ok := s.Posts.Get(id)
	if !ok {
		// La variante de página no levanta error: renderiza la vista de
		// error directamente con 404.
		s.errorPage(c, http.StatusNotFound, "Post not found")
		return
	}

	// recorta por runas, no por bytes, para no partir un carácter
	title := p.Title
	if r := []rune(title); len(r) > 50 {
		title = string(r[:50])
	}
	c.HTML(http.StatusOK, "post.html", gin.H{
		"title": title,
		"post":  p,
	})
}

// ------------------------------------------------------------------
// ------------API: posts--------------------------------------------

func (s *Server) handleListPosts(c *gin.Context) {
	c.JSON(http.StatusOK, toPostResponses(s.Posts.All()))
}

func (s *Server) handleGetPost(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	p, ok := s.Posts.Get(id)
	if !ok {
		c.Error(&StatusError{Code: http.StatusNotFound, Detail: "Post not found"})
		return
	}
	c.JSON(http.StatusOK, toPostResponse(p))
}

func (s *Server) handleCreatePost(c *gin.Context) {
	var in PostCreate
	if err := c.ShouldBindJSON(&in); err != nil {
		c.Error(asValidationError(err))
		return
	}

	p := s.Posts.Create(in.Author, in.Title, in.Content)
	c.JSON(http.StatusCreated, toPostResponse(p))
}

// ------------------------------------------------------------------
// ------------API: users--------------------------------------------

func (s *Server) handleCreateUser(c *gin.Context) {
	var in UserCreate
	if err := c.ShouldBindJSON(&in); err != nil {
		c.Error(asValidationError(err))
		return
	}

	u, err := s.Users.Create(c.Request.Context(), store.NewUser{
		Username:  in.Username,
		Email:     in.Email,
		ImageFile: in.ImageFile,
	})
	if err != nil {
		switch {
		case errors.Is(err, store.ErrUsernameTaken):
			c.Error(&StatusError{Code: http.StatusBadRequest, Detail: "Username already exists"})
		case errors.Is(err, store.ErrEmailTaken):
			c.Error(&StatusError{Code: http.StatusBadRequest, Detail: "Email already exists"})
		default:
			c.Error(err)
		}
		return
	}
	c.JSON(http.StatusCreated, toUserResponse(u))
}

func (s *Server) handleGetUser(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	u, err := s.Users.ByID(c.Request.Context(), int64(id))
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			c.Error(&StatusError{Code: http.StatusNotFound, Detail: "User not found"})
			return
		}
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, toUserResponse(u))
}

// ------------------------------------------------------------------
// ------------API: auth stubs---------------------------------------

// Login y register aún no existen; contrato definido: 501, nunca un 200
// vacío.
func (s *Server) handleLogin(c *gin.Context) {
	c.Error(&StatusError{Code: http.StatusNotImplemented, Detail: "Not implemented"})
}

func (s *Server) handleRegister(c *gin.Context) {
	c.Error(&StatusError{Code: http.StatusNotImplemented, Detail: "Not implemented"})
}
