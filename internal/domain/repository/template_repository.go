package repository

import "github.com/mbdocs/mbdocs-api/internal/domain/entity"

// TemplateRepository порт персистентности для шаблонов печатных форм.
type TemplateRepository interface {
	List() ([]entity.TemplateSettings, error)
	GetByID(id entity.TemplateID) (*entity.TemplateSettings, error)
	// FirstByDocType возвращает первый шаблон для вида документа
	// или nil, если пользовательских шаблонов нет.
	FirstByDocType(docType entity.DocType) (*entity.TemplateSettings, error)
	Save(tpl *entity.TemplateSettings) error
	Delete(id entity.TemplateID) error
}
