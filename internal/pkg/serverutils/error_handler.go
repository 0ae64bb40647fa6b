package serverutils

import (
	"errors"

	"ai-pdfchat-be/internal/pkg/logger"
	"ai-pdfchat-be/pkg/extractor"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware converts errors bubbling out of handlers into the
// uniform response envelope. Extraction sentinels and input rejections are
// client errors with their message intact; everything else is a 500 with the
// detail kept server-side.
func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var inputErr *InputError
		if errors.As(err, &inputErr) {
			return ctx.Status(fiber.StatusBadRequest).JSON(ErrorResponse(inputErr.Message))
		}

		if errors.Is(err, extractor.ErrEmptyInput) ||
			errors.Is(err, extractor.ErrUnreadableContent) ||
			errors.Is(err, extractor.ErrCorruptInput) {
			return ctx.Status(fiber.StatusBadRequest).JSON(ErrorResponse(err.Error()))
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Message))
		}

		log.Error("http", "unhandled error", map[string]interface{}{
			"method": ctx.Method(),
			"path":   ctx.Path(),
			"error":  err.Error(),
		})
		return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse("Internal server error"))
	}
}
