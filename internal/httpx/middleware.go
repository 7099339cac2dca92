package httpx

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-ID"

// errorNormalizer formatea el último error registrado por el handler.
// Es total sobre las dos categorías del contrato (StatusError y
// validación); nada de esas categorías llega crudo al transporte.
func (s *Server) errorNormalizer() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		s.renderError(c, c.Errors.Last().Err)
	}
}

// RequestID propaga el id entrante o genera uno nuevo.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Writer.Header().Set(RequestIDHeader, id)
		c.Next()
	}
}
