package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mbdocs/mbdocs-api/internal/application/dto"
	"github.com/mbdocs/mbdocs-api/internal/application/usecase"
)

// TemplateHandler HTTP-обработчики шаблонов печатных форм.
type TemplateHandler struct {
	uc    *usecase.TemplateUseCase
	print *usecase.PrintUseCase
}

// NewTemplateHandler строит обработчик.
func NewTemplateHandler(uc *usecase.TemplateUseCase, print *usecase.PrintUseCase) *TemplateHandler {
	return &TemplateHandler{uc: uc, print: print}
}

// List GET /api/templates
func (h *TemplateHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID GET /api/templates/:id
func (h *TemplateHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "шаблон не найден")
	}
	return c.JSON(out)
}

// Create POST /api/templates
func (h *TemplateHandler) Create(c *fiber.Ctx) error {
	var in dto.TemplateRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "не удалось разобрать тело запроса")
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update PUT /api/templates/:id
func (h *TemplateHandler) Update(c *fiber.Ctx) error {
	var in dto.TemplateRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "не удалось разобрать тело запроса")
	}
	out, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "шаблон не найден")
	}
	return c.JSON(out)
}

// Delete DELETE /api/templates/:id
func (h *TemplateHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Preview POST /api/templates/preview — живой предпросмотр шаблона
// на демо-данных, без сохранения.
func (h *TemplateHandler) Preview(c *fiber.Ctx) error {
	var in dto.PreviewRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "не удалось разобрать тело запроса")
	}
	html, err := h.print.Preview(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.PreviewResponse{HTML: html})
}
