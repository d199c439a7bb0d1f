package usecase

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/mbdocs/mbdocs-api/internal/application/dto"
	"github.com/mbdocs/mbdocs-api/internal/domain"
	"github.com/mbdocs/mbdocs-api/internal/domain/entity"
	"github.com/mbdocs/mbdocs-api/internal/domain/repository"
)

// CompanyUseCase CRUD справочника организаций.
type CompanyUseCase struct {
	repo repository.CompanyRepository
}

// NewCompanyUseCase строит кейс.
func NewCompanyUseCase(repo repository.CompanyRepository) *CompanyUseCase {
	return &CompanyUseCase{repo: repo}
}

// List возвращает все организации.
func (uc *CompanyUseCase) List() ([]entity.Company, error) {
	return uc.repo.List()
}

// GetByID возвращает организацию или nil, если её нет.
func (uc *CompanyUseCase) GetByID(id string) (*entity.Company, error) {
	return uc.repo.GetByID(entity.CompanyID(id))
}

// Create создаёт организацию. Роль обязана быть seller или buyer —
// она разводит справочник на два пула для выбора в документах.
func (uc *CompanyUseCase) Create(in dto.CompanyRequest) (*entity.Company, error) {
	if err := validateCompany(in); err != nil {
		return nil, err
	}
	company := companyFromRequest(entity.CompanyID(uuid.New().String()), in)
	if err := uc.repo.Save(&company); err != nil {
		return nil, err
	}
	return &company, nil
}

// Update полностью заменяет организацию. Документы, ссылающиеся на неё,
// продолжают разрешать реквизиты при каждой печати заново.
func (uc *CompanyUseCase) Update(id string, in dto.CompanyRequest) (*entity.Company, error) {
	existing, err := uc.repo.GetByID(entity.CompanyID(id))
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}
	if err := validateCompany(in); err != nil {
		return nil, err
	}
	company := companyFromRequest(existing.ID, in)
	if err := uc.repo.Save(&company); err != nil {
		return nil, err
	}
	return &company, nil
}

// Delete удаляет организацию. Ссылки из документов становятся висячими;
// печать таких документов даёт страницу-заглушку.
func (uc *CompanyUseCase) Delete(id string) error {
	return uc.repo.Delete(entity.CompanyID(id))
}

func validateCompany(in dto.CompanyRequest) error {
	if in.Name == "" {
		return fmt.Errorf("%w: не заполнено название организации", domain.ErrInvalidInput)
	}
	if in.Role != entity.RoleSeller && in.Role != entity.RoleBuyer {
		return fmt.Errorf("%w: неизвестная роль %q", domain.ErrInvalidInput, in.Role)
	}
	return nil
}

func companyFromRequest(id entity.CompanyID, in dto.CompanyRequest) entity.Company {
	return entity.Company{
		ID:         id,
		Name:       in.Name,
		INN:        in.INN,
		KPP:        in.KPP,
		Bank:       in.Bank,
		BIK:        in.BIK,
		RS:         in.RS,
		KS:         in.KS,
		Address:    in.Address,
		Role:       in.Role,
		Director:   in.Director,
		Accountant: in.Accountant,
	}
}
