package http

import (
	"fmt"
	"net/url"
	"path/filepath"

	"github.com/gofiber/fiber/v2"

	"github.com/mbdocs/mbdocs-api/internal/application/dto"
	"github.com/mbdocs/mbdocs-api/internal/application/usecase"
	"github.com/mbdocs/mbdocs-api/internal/domain/entity"
)

// DocumentHandler HTTP-обработчики документов одного вида. Один и тот же
// обработчик монтируется трижды: на счета, акты и УПД.
type DocumentHandler struct {
	docType entity.DocType
	uc      *usecase.DocumentUseCase
	print   *usecase.PrintUseCase
	export  *usecase.ExportUseCase
}

// NewDocumentHandler строит обработчик для вида документа.
func NewDocumentHandler(
	docType entity.DocType,
	uc *usecase.DocumentUseCase,
	print *usecase.PrintUseCase,
	export *usecase.ExportUseCase,
) *DocumentHandler {
	return &DocumentHandler{docType: docType, uc: uc, print: print, export: export}
}

// List GET /api/<вид>
func (h *DocumentHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(h.docType)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID GET /api/<вид>/:id
func (h *DocumentHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(h.docType, c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "документ не найден")
	}
	return c.JSON(out)
}

// Create POST /api/<вид>
func (h *DocumentHandler) Create(c *fiber.Ctx) error {
	var in dto.DocumentRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "не удалось разобрать тело запроса")
	}
	out, err := h.uc.Create(h.docType, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update PUT /api/<вид>/:id
func (h *DocumentHandler) Update(c *fiber.Ctx) error {
	var in dto.DocumentRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "не удалось разобрать тело запроса")
	}
	out, err := h.uc.Update(h.docType, c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return notFound(c, "документ не найден")
	}
	return c.JSON(out)
}

// Delete DELETE /api/<вид>/:id
func (h *DocumentHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(h.docType, c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Print GET /api/<вид>/:id/print?template=<id> — готовая HTML-страница
// печатной формы. Шаблон опционален.
func (h *DocumentHandler) Print(c *fiber.Ctx) error {
	html, err := h.print.Render(h.docType, c.Params("id"), c.Query("template"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.SendString(html)
}

// ExportXLSX GET /api/<вид>/:id/export.xlsx
func (h *DocumentHandler) ExportXLSX(c *fiber.Ctx) error {
	file, err := h.export.ExportXLSX(h.docType, c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return sendFile(c, file)
}

// ExportXML GET /api/<вид>/:id/export.xml
func (h *DocumentHandler) ExportXML(c *fiber.Ctx) error {
	file, err := h.export.ExportXML(h.docType, c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return sendFile(c, file)
}

// ExportPDF GET /api/<вид>/:id/export.pdf
func (h *DocumentHandler) ExportPDF(c *fiber.Ctx) error {
	file, err := h.export.ExportPDF(h.docType, c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return sendFile(c, file)
}

// sendFile отдаёт файл выгрузки как вложение. Имя с кириллицей кодируется
// по RFC 5987, ASCII-запасной вариант строится из расширения.
func sendFile(c *fiber.Ctx, file *usecase.ExportFile) error {
	ascii := "export" + filepath.Ext(file.Name)
	c.Set(fiber.HeaderContentType, file.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(
		`attachment; filename=%q; filename*=UTF-8''%s`,
		ascii, url.PathEscape(file.Name),
	))
	return c.Send(file.Data)
}
