package httpx

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

const apiPrefix = "/api"

const (
	fallbackDetail     = "An error occurred. Please check your request and try again."
	invalidInputDetail = "Invalid request. Please check your input and try again."
)

// StatusError es el "fail with status X and message Y" que levantan los
// handlers; lo formatea el normalizador central, nunca el handler.
type StatusError struct {
	Code   int
	Detail string
}

func (e *StatusError) Error() string { return e.Detail }

type fieldError struct {
	Loc  []string `json:"loc"`
	Msg  string   `json:"msg"`
	Type string   `json:"type"`
}

// validationError agrupa los fallos de binding/params; siempre sale como 422.
type validationError struct {
	fields []fieldError
}

func (e *validationError) Error() string { return "request validation failed" }

// asValidationError convierte lo que devuelve ShouldBindJSON (errores del
// validador o JSON malformado) en un validationError con detalle por campo.
func asValidationError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]fieldError, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fieldError{
				Loc:  []string{"body", strings.ToLower(fe.Field())},
				Msg:  msgForTag(fe),
				Type: typeForTag(fe.Tag()),
			})
		}
		return &validationError{fields: fields}
	}
	return &validationError{fields: []fieldError{
		{Loc: []string{"body"}, Msg: "Invalid JSON body", Type: "json_invalid"},
	}}
}

func msgForTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Field required"
	case "email":
		return "value is not a valid email address"
	default:
		return "invalid value"
	}
}

func typeForTag(tag string) string {
	switch tag {
	case "required":
		return "missing"
	case "email":
		return "value_error"
	default:
		return "invalid"
	}
}

// pathID lee un parámetro de ruta entero; si no parsea se trata como
// fallo de validación (422), igual para páginas que para el API.
func pathID(c *gin.Context, name string) (int, error) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil {
		return 0, &validationError{fields: []fieldError{
			{Loc: []string{"path", name}, Msg: "value is not a valid integer", Type: "int_parsing"},
		}}
	}
	return id, nil
}

// renderError es la política única (path, error) -> respuesta: el prefijo
// /api decide JSON o página de error, nunca la ruta registrada.
func (s *Server) renderError(c *gin.Context, err error) {
	isAPI := strings.HasPrefix(c.Request.URL.Path, apiPrefix)

	var ve *validationError
	if errors.As(err, &ve) {
		if isAPI {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": ve.fields})
			return
		}
		s.errorPage(c, http.StatusUnprocessableEntity, invalidInputDetail)
		return
	}

	var se *StatusError
	if errors.As(err, &se) {
		detail := se.Detail
		if detail == "" {
			detail = fallbackDetail
		}
		if isAPI {
			c.JSON(se.Code, gin.H{"detail": detail})
			return
		}
		s.errorPage(c, se.Code, detail)
		return
	}

	// Categoría fuera del contrato de normalización: defecto del handler.
	s.Log.Error("unhandled error", zap.Error(err))
	if isAPI {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": fallbackDetail})
		return
	}
	s.errorPage(c, http.StatusInternalServerError, fallbackDetail)
}

func (s *Server) errorPage(c *gin.Context, status int, message string) {
	c.HTML(status, "error.html", gin.H{
		"status_code": status,
		"title":       status,
		"message":     message,
	})
}
