package controller

import (
	"ai-pdfchat-be/internal/dto"
	"ai-pdfchat-be/internal/pkg/serverutils"
	"ai-pdfchat-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ISessionController interface {
	RegisterRoutes(r fiber.Router)
	Clear(ctx *fiber.Ctx) error
}

type sessionController struct {
	sessionService service.ISessionService
}

func NewSessionController(sessionService service.ISessionService) ISessionController {
	return &sessionController{
		sessionService: sessionService,
	}
}

func (c *sessionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/session/v1")
	h.Post("clear", c.Clear)
}

func (c *sessionController) Clear(ctx *fiber.Ctx) error {
	var req dto.ClearSessionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewInputError("Invalid request body.")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.sessionService.Clear(ctx.Context(), req.SessionId); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Session cleared", nil))
}
