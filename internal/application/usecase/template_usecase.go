package usecase

import (
	"github.com/google/uuid"

	"github.com/mbdocs/mbdocs-api/internal/application/dto"
	"github.com/mbdocs/mbdocs-api/internal/domain/entity"
	"github.com/mbdocs/mbdocs-api/internal/domain/repository"
)

// TemplateUseCase CRUD шаблонов печатных форм.
type TemplateUseCase struct {
	repo repository.TemplateRepository
}

// NewTemplateUseCase строит кейс.
func NewTemplateUseCase(repo repository.TemplateRepository) *TemplateUseCase {
	return &TemplateUseCase{repo: repo}
}

// List возвращает все шаблоны.
func (uc *TemplateUseCase) List() ([]entity.TemplateSettings, error) {
	return uc.repo.List()
}

// GetByID возвращает шаблон или nil, если его нет.
func (uc *TemplateUseCase) GetByID(id string) (*entity.TemplateSettings, error) {
	return uc.repo.GetByID(entity.TemplateID(id))
}

// Create создаёт шаблон. Повреждённый шаблон отклоняется сразу, а не при печати.
func (uc *TemplateUseCase) Create(in dto.TemplateRequest) (*entity.TemplateSettings, error) {
	tpl := templateFromRequest(entity.TemplateID(uuid.New().String()), in)
	if err := tpl.Validate(); err != nil {
		return nil, err
	}
	if err := uc.repo.Save(&tpl); err != nil {
		return nil, err
	}
	return &tpl, nil
}

// Update полностью заменяет шаблон.
func (uc *TemplateUseCase) Update(id string, in dto.TemplateRequest) (*entity.TemplateSettings, error) {
	existing, err := uc.repo.GetByID(entity.TemplateID(id))
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}
	tpl := templateFromRequest(existing.ID, in)
	if err := tpl.Validate(); err != nil {
		return nil, err
	}
	if err := uc.repo.Save(&tpl); err != nil {
		return nil, err
	}
	return &tpl, nil
}

// Delete удаляет шаблон. Печать документов этого вида откатывается на первый
// оставшийся шаблон, а затем на встроенный макет.
func (uc *TemplateUseCase) Delete(id string) error {
	return uc.repo.Delete(entity.TemplateID(id))
}

func templateFromRequest(id entity.TemplateID, in dto.TemplateRequest) entity.TemplateSettings {
	return entity.TemplateSettings{
		ID:      id,
		Name:    in.Name,
		DocType: entity.DocType(in.DocType),

		Font:          in.Font,
		FontSize:      in.FontSize,
		TitleFontSize: in.TitleFontSize,
		PageMargin:    in.PageMargin,
		TableHeaderBg: in.TableHeaderBg,

		ShowLogo:        in.ShowLogo,
		LogoURL:         in.LogoURL,
		ShowBankBlock:   in.ShowBankBlock,
		ShowQR:          in.ShowQR,
		ShowSignatures:  in.ShowSignatures,
		ShowStamp:       in.ShowStamp,
		ShowAmountWords: in.ShowAmountWords,
		ShowItemNumbers: in.ShowItemNumbers,

		HeaderText: in.HeaderText,
		FooterText: in.FooterText,
	}
}
