package usecase

import (
	"fmt"

	"github.com/mbdocs/mbdocs-api/internal/application/dto"
	"github.com/mbdocs/mbdocs-api/internal/domain"
	"github.com/mbdocs/mbdocs-api/internal/domain/entity"
	"github.com/mbdocs/mbdocs-api/internal/domain/printing"
	"github.com/mbdocs/mbdocs-api/internal/domain/repository"
)

// PrintUseCase печать документов в HTML. Кейс разрешает шаблон: явный
// идентификатор из запроса, иначе первый пользовательский шаблон вида,
// иначе встроенный макет.
type PrintUseCase struct {
	renderer  *printing.Renderer
	docs      repository.DocumentRepository
	companies repository.CompanyRepository
	products  repository.ProductRepository
	templates repository.TemplateRepository
}

// NewPrintUseCase строит кейс.
func NewPrintUseCase(
	renderer *printing.Renderer,
	docs repository.DocumentRepository,
	companies repository.CompanyRepository,
	products repository.ProductRepository,
	templates repository.TemplateRepository,
) *PrintUseCase {
	return &PrintUseCase{
		renderer:  renderer,
		docs:      docs,
		companies: companies,
		products:  products,
		templates: templates,
	}
}

// Render печатает сохранённый документ. templateID может быть пустым —
// тогда шаблон разрешается по виду документа.
func (uc *PrintUseCase) Render(docType entity.DocType, id, templateID string) (string, error) {
	doc, err := uc.docs.GetByID(docType, id)
	if err != nil {
		return "", err
	}
	if doc == nil {
		return "", domain.ErrNotFound
	}

	tpl, err := uc.resolveTemplate(docType, templateID)
	if err != nil {
		return "", err
	}

	companies, err := uc.companies.List()
	if err != nil {
		return "", err
	}
	products, err := uc.products.List()
	if err != nil {
		return "", err
	}
	return uc.renderer.Render(*tpl, *doc, companies, products)
}

// Preview печатает шаблон из тела запроса на демо-данных. Шаблон не
// сохраняется; идентификатор здесь не нужен.
func (uc *PrintUseCase) Preview(in dto.PreviewRequest) (string, error) {
	tpl := templateFromRequest("preview", in.Template)
	companies, err := uc.companies.List()
	if err != nil {
		return "", err
	}
	return uc.renderer.Preview(tpl, companies)
}

// resolveTemplate ищет шаблон для печати. Явный идентификатор обязан
// существовать и подходить по виду; повреждённого или чужого шаблона
// достаточно для отказа в печати.
func (uc *PrintUseCase) resolveTemplate(docType entity.DocType, templateID string) (*entity.TemplateSettings, error) {
	if templateID != "" {
		tpl, err := uc.templates.GetByID(entity.TemplateID(templateID))
		if err != nil {
			return nil, err
		}
		if tpl == nil {
			return nil, fmt.Errorf("%w: шаблон %q", domain.ErrNotFound, templateID)
		}
		return tpl, nil
	}
	tpl, err := uc.templates.FirstByDocType(docType)
	if err != nil {
		return nil, err
	}
	if tpl == nil {
		fallback := entity.DefaultTemplate(docType)
		return &fallback, nil
	}
	return tpl, nil
}
