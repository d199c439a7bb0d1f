package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/mbdocs/mbdocs-api/internal/application/dto"
	"github.com/mbdocs/mbdocs-api/internal/application/usecase"
)

// WorkspaceHandler HTTP-обработчики состояния рабочей области.
type WorkspaceHandler struct {
	uc *usecase.WorkspaceUseCase
}

// NewWorkspaceHandler строит обработчик.
func NewWorkspaceHandler(uc *usecase.WorkspaceUseCase) *WorkspaceHandler {
	return &WorkspaceHandler{uc: uc}
}

// Tabs GET /api/workspace/tabs
func (h *WorkspaceHandler) Tabs(c *fiber.Ctx) error {
	tabs, err := h.uc.Tabs()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(tabs)
}

// SaveTabs PUT /api/workspace/tabs — снапшот всего списка вкладок.
func (h *WorkspaceHandler) SaveTabs(c *fiber.Ctx) error {
	var in dto.TabsRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "не удалось разобрать тело запроса")
	}
	tabs, err := h.uc.SaveTabs(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(tabs)
}

// ActiveTab GET /api/workspace/active-tab
func (h *WorkspaceHandler) ActiveTab(c *fiber.Ctx) error {
	id, err := h.uc.ActiveTab()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ActiveTabRequest{ID: id})
}

// SetActiveTab PUT /api/workspace/active-tab
func (h *WorkspaceHandler) SetActiveTab(c *fiber.Ctx) error {
	var in dto.ActiveTabRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "не удалось разобрать тело запроса")
	}
	if err := h.uc.SetActiveTab(in.ID); err != nil {
		return respondError(c, err)
	}
	return c.JSON(in)
}
