package controller

import (
	"io"
	"strings"

	"ai-pdfchat-be/internal/pkg/serverutils"
	"ai-pdfchat-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const maxUploadBytes = 10 * 1024 * 1024

type IUploadController interface {
	RegisterRoutes(r fiber.Router)
	Upload(ctx *fiber.Ctx) error
}

type uploadController struct {
	ingestionService service.IIngestionService
}

func NewUploadController(ingestionService service.IIngestionService) IUploadController {
	return &uploadController{
		ingestionService: ingestionService,
	}
}

func (c *uploadController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/upload/v1")
	h.Post("", c.Upload)
}

func (c *uploadController) Upload(ctx *fiber.Ctx) error {
	fileHeader, err := ctx.FormFile("pdf")
	if err != nil {
		return serverutils.NewInputError("No file uploaded. Please attach a PDF under the 'pdf' field.")
	}
	if fileHeader.Size > maxUploadBytes {
		return serverutils.NewInputError("File is too large. The maximum size is 10MB.")
	}
	if !isPdf(fileHeader.Header.Get("Content-Type"), fileHeader.Filename) {
		return serverutils.NewInputError("Only PDF files are allowed.")
	}

	// Reuse the caller's session when a valid id is presented; anything else
	// silently mints a fresh session.
	var sessionId *uuid.UUID
	if raw := ctx.FormValue("session_id"); raw != "" {
		if id, err := uuid.Parse(raw); err == nil {
			sessionId = &id
		}
	}

	file, err := fileHeader.Open()
	if err != nil {
		return err
	}
	defer file.Close()

	raw, err := io.ReadAll(file)
	if err != nil {
		return err
	}

	res, err := c.ingestionService.Ingest(ctx.Context(), sessionId, fileHeader.Filename, raw)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success upload document", res))
}

func isPdf(contentType, filename string) bool {
	if strings.EqualFold(contentType, "application/pdf") {
		return true
	}
	return strings.HasSuffix(strings.ToLower(filename), ".pdf")
}
