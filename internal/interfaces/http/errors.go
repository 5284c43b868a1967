package http

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/pdv-api/internal/application/dto"
	"github.com/jhoicas/pdv-api/internal/domain"
)

// Códigos de error de la API. Solo clasifican la falla; el status siempre es 500.
const (
	CodeValidation        = "VALIDACAO"
	CodeReferenceNotFound = "REFERENCIA_INEXISTENTE"
	CodeReferenced        = "REGISTRO_REFERENCIADO"
	CodeDuplicate         = "DUPLICADO"
	CodeNotFound          = "NAO_ENCONTRADO"
	CodeInternal          = "INTERNO"
	CodeUnavailable       = "INDISPONIVEL"
)

// messages textos en portugués que devuelve un recurso.
type messages struct {
	list, get, create, update, delete string // errores
	created, updated, deleted         string
}

// errorCode clasifica err para el campo code de la respuesta.
func errorCode(err error) string {
	var verrs validator.ValidationErrors
	switch {
	case errors.As(err, &verrs), errors.Is(err, domain.ErrInvalidInput):
		return CodeValidation
	case errors.Is(err, domain.ErrReferenceNotFound):
		return CodeReferenceNotFound
	case errors.Is(err, domain.ErrReferenced):
		return CodeReferenced
	case errors.Is(err, domain.ErrDuplicate):
		return CodeDuplicate
	case errors.Is(err, domain.ErrNotFound):
		return CodeNotFound
	}
	return CodeInternal
}

// respondError registra err con el request id y responde 500 con msg.
// El detalle de la falla nunca sale en el cuerpo.
func respondError(c *fiber.Ctx, err error, msg string) error {
	code := errorCode(err)
	ev := zerolog.Ctx(c.UserContext()).Error().Err(err).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Str("code", code)
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fe.Field()+":"+fe.Tag())
		}
		ev = ev.Strs("fields", fields)
	}
	ev.Msg(msg)
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: msg, Code: code})
}

// ErrorHandler respuesta para errores que llegan a Fiber (rutas inexistentes, pánicos recuperados, etc.).
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code := CodeInternal
		msg := fe.Message
		switch fe.Code {
		case fiber.StatusNotFound:
			code, msg = CodeNotFound, "Rota não encontrada."
		case fiber.StatusMethodNotAllowed:
			code, msg = CodeNotFound, "Método não permitido."
		case fiber.StatusBadRequest, fiber.StatusUnprocessableEntity, fiber.StatusRequestEntityTooLarge:
			code = CodeValidation
		}
		return c.Status(fe.Code).JSON(dto.ErrorResponse{Error: msg, Code: code})
	}
	zerolog.Ctx(c.UserContext()).Error().Err(err).Str("path", c.Path()).Msg("error no controlado")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Error: "Erro interno.", Code: CodeInternal,
	})
}
