package handler

import (
	"errors"
	"io"

	"github.com/gofiber/fiber/v2"
	"github.com/soesapp/soes-eventos-backend/internal/models"
	"github.com/soesapp/soes-eventos-backend/internal/service"
	"github.com/soesapp/soes-eventos-backend/pkg/images"
)

type ImageHandler struct {
	imageService *service.ImageService
}

func NewImageHandler(imageService *service.ImageService) *ImageHandler {
	return &ImageHandler{imageService: imageService}
}

// Upload accepts a multipart "image" field and returns the URL to store on
// the event or settings record.
func (h *ImageHandler) Upload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("No image uploaded"))
	}

	if fileHeader.Size > images.MaxSize {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Image exceeds the 500KB limit"))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Failed to read image"))
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Failed to read image"))
	}

	url, err := h.imageService.Ingest(data)
	if err != nil {
		switch {
		case errors.Is(err, images.ErrTooLarge):
			return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Image exceeds the 500KB limit"))
		case errors.Is(err, images.ErrUnsupportedType):
			return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Unsupported image type"))
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Failed to process image"))
		}
	}

	return c.JSON(models.SuccessResponse(fiber.Map{"url": url}, "Image processed successfully"))
}
