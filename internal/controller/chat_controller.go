package controller

import (
	"ai-pdfchat-be/internal/dto"
	"ai-pdfchat-be/internal/pkg/serverutils"
	"ai-pdfchat-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	Send(ctx *fiber.Ctx) error
	GetConversation(ctx *fiber.Ctx) error
}

type chatController struct {
	chatService service.IChatService
}

func NewChatController(chatService service.IChatService) IChatController {
	return &chatController{
		chatService: chatService,
	}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chat/v1")
	h.Post("", c.Send)
	h.Get(":conversationId", c.GetConversation)
}

func (c *chatController) Send(ctx *fiber.Ctx) error {
	var req dto.SendChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewInputError("Invalid request body.")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.chatService.Send(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success send chat", res))
}

func (c *chatController) GetConversation(ctx *fiber.Ctx) error {
	idParam := ctx.Params("conversationId")
	id, err := uuid.Parse(idParam)
	if err != nil {
		return serverutils.NewInputError("Invalid conversation id.")
	}

	res, err := c.chatService.GetConversation(ctx.Context(), id)
	if err != nil {
		return err
	}
	if res == nil {
		return fiber.NewError(fiber.StatusNotFound, "Conversation not found")
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show conversation", res))
}
