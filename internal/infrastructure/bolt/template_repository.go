package bolt

import (
	"encoding/json"

	"github.com/mbdocs/mbdocs-api/internal/domain/entity"
	"github.com/mbdocs/mbdocs-api/internal/domain/repository"
)

// TemplateRepository шаблоны печатных форм поверх бакета templates.
type TemplateRepository struct {
	store *Store
}

var _ repository.TemplateRepository = (*TemplateRepository)(nil)

// NewTemplateRepository создаёт репозиторий.
func NewTemplateRepository(store *Store) *TemplateRepository {
	return &TemplateRepository{store: store}
}

// List возвращает все шаблоны.
func (r *TemplateRepository) List() ([]entity.TemplateSettings, error) {
	var templates []entity.TemplateSettings
	err := r.store.forEach(bucketTemplates, func(raw []byte) error {
		var t entity.TemplateSettings
		if err := json.Unmarshal(raw, &t); err != nil {
			return err
		}
		templates = append(templates, t)
		return nil
	})
	return templates, err
}

// GetByID возвращает шаблон или nil, если его нет.
func (r *TemplateRepository) GetByID(id entity.TemplateID) (*entity.TemplateSettings, error) {
	var t entity.TemplateSettings
	ok, err := r.store.get(bucketTemplates, string(id), &t)
	if err != nil || !ok {
		return nil, err
	}
	return &t, nil
}

// FirstByDocType первый по порядку ключей шаблон вида документа либо nil.
func (r *TemplateRepository) FirstByDocType(docType entity.DocType) (*entity.TemplateSettings, error) {
	templates, err := r.List()
	if err != nil {
		return nil, err
	}
	for i := range templates {
		if templates[i].DocType == docType {
			return &templates[i], nil
		}
	}
	return nil, nil
}

// Save создаёт или перезаписывает шаблон целиком.
func (r *TemplateRepository) Save(tpl *entity.TemplateSettings) error {
	return r.store.put(bucketTemplates, string(tpl.ID), tpl)
}

// Delete удаляет шаблон; документы его вида продолжают печататься
// встроенным макетом.
func (r *TemplateRepository) Delete(id entity.TemplateID) error {
	return r.store.delete(bucketTemplates, string(id))
}
