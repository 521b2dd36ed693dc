package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/soesapp/soes-eventos-backend/internal/admission"
	"github.com/soesapp/soes-eventos-backend/internal/models"
	"github.com/soesapp/soes-eventos-backend/internal/service"
	"github.com/soesapp/soes-eventos-backend/pkg/utils"
)

type AttendeeHandler struct {
	attendeeService *service.AttendeeService
	validator       *utils.Validator
}

func NewAttendeeHandler(attendeeService *service.AttendeeService, validator *utils.Validator) *AttendeeHandler {
	return &AttendeeHandler{
		attendeeService: attendeeService,
		validator:       validator,
	}
}

// Register is the public self-registration endpoint.
func (h *AttendeeHandler) Register(c *fiber.Ctx) error {
	var req models.RegistrationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	attendee, err := h.attendeeService.Register(c.Context(), c.Params("id"), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailMismatch):
			return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Email addresses do not match"))
		case errors.Is(err, service.ErrEventNotFound):
			return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse("Event not found"))
		case errors.Is(err, service.ErrEventInactive):
			return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse("Event not found"))
		case errors.Is(err, admission.ErrSoldOut):
			return c.Status(fiber.StatusConflict).JSON(models.ErrorResponse("Event is sold out"))
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Failed to register"))
		}
	}

	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(attendee, "Registration confirmed"))
}

func (h *AttendeeHandler) ListByEvent(c *fiber.Ctx) error {
	attendees, err := h.attendeeService.GetAttendees(c.Params("id"), c.Query("search"))
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse("Event not found"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Failed to load attendees"))
	}
	return c.JSON(models.SuccessResponse(attendees, ""))
}

// Export streams the event's attendee list as a CSV download.
func (h *AttendeeHandler) Export(c *fiber.Ctx) error {
	csv, err := h.attendeeService.ExportCSV(c.Params("id"))
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse("Event not found"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Failed to export attendees"))
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+service.ExportFilename+`"`)
	return c.Send(csv)
}

// Create is the admin manual-entry endpoint.
func (h *AttendeeHandler) Create(c *fiber.Ctx) error {
	var req models.AttendeeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	if err := h.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	attendee, err := h.attendeeService.CreateByAdmin(c.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse("Event not found"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Failed to create attendee"))
	}

	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse(attendee, "Attendee created successfully"))
}

func (h *AttendeeHandler) Update(c *fiber.Ctx) error {
	var req models.UpdateAttendeeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid request body"))
	}

	attendee, err := h.attendeeService.UpdateAttendee(c.Params("id"), req)
	if err != nil {
		if errors.Is(err, service.ErrAttendeeNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse("Attendee not found"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Failed to update attendee"))
	}

	return c.JSON(models.SuccessResponse(attendee, "Attendee updated successfully"))
}

func (h *AttendeeHandler) Delete(c *fiber.Ctx) error {
	if err := h.attendeeService.DeleteAttendee(c.Params("id")); err != nil {
		if errors.Is(err, service.ErrAttendeeNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse("Attendee not found"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Failed to delete attendee"))
	}
	return c.JSON(models.SuccessResponse(nil, "Attendee successfully deleted"))
}
