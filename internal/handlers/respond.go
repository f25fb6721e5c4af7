package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/lavadero-app/lavadero-backend/internal/apperrors"
	"github.com/lavadero-app/lavadero-backend/internal/middleware"
)

// respond writes the success envelope with the given payload merged in.
func respond(c *gin.Context, status int, payload gin.H) {
	body := gin.H{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(status, body)
}

// respondMessage writes a failure envelope with a human-readable message.
func respondMessage(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "message": message})
}

// respondError maps service errors to HTTP statuses with the failure envelope.
func respondError(c *gin.Context, err error) {
	var vErr *apperrors.ValidationError
	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Datos inválidos",
			"errores": vErr.Fields,
		})
	case errors.Is(err, apperrors.ErrNoPriceDefined):
		respondMessage(c, http.StatusBadRequest, "No hay precio definido para el servicio y tipo de vehículo")
	case errors.Is(err, apperrors.ErrValidation):
		respondMessage(c, http.StatusBadRequest, "Datos inválidos")
	case errors.Is(err, apperrors.ErrNotFound):
		respondMessage(c, http.StatusNotFound, "Recurso no encontrado")
	case errors.Is(err, apperrors.ErrDuplicate):
		respondMessage(c, http.StatusConflict, "El recurso ya existe")
	case errors.Is(err, apperrors.ErrUnauthorized):
		respondMessage(c, http.StatusUnauthorized, "Credenciales inválidas")
	case errors.Is(err, apperrors.ErrForbidden):
		respondMessage(c, http.StatusForbidden, "Acceso denegado")
	default:
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Unhandled service error", slog.String("error", err.Error()))
		respondMessage(c, http.StatusInternalServerError, "Error en el servidor")
	}
}

// respondBindingError translates gin binding failures into the same field
// error shape the services produce.
func respondBindingError(c *gin.Context, err error) {
	var vErrs validator.ValidationErrors
	if errors.As(err, &vErrs) {
		fields := make([]apperrors.FieldError, 0, len(vErrs))
		for _, fe := range vErrs {
			fields = append(fields, apperrors.FieldError{
				Field:   strings.ToLower(fe.Field()),
				Message: validationMessage(fe),
			})
		}
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Datos inválidos",
			"errores": fields,
		})
		return
	}
	respondMessage(c, http.StatusBadRequest, "Cuerpo de la solicitud inválido")
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "es obligatorio"
	case "email":
		return "debe ser un correo válido"
	case "min":
		return "debe tener al menos " + fe.Param() + " caracteres"
	case "oneof":
		return "debe ser uno de: " + fe.Param()
	default:
		return "es inválido"
	}
}
