package bolt

import (
	"encoding/json"

	"github.com/mbdocs/mbdocs-api/internal/domain/entity"
	"github.com/mbdocs/mbdocs-api/internal/domain/repository"
)

// CompanyRepository справочник организаций поверх бакета companies.
type CompanyRepository struct {
	store *Store
}

var _ repository.CompanyRepository = (*CompanyRepository)(nil)

// NewCompanyRepository создаёт репозиторий.
func NewCompanyRepository(store *Store) *CompanyRepository {
	return &CompanyRepository{store: store}
}

// List возвращает снапшот всего справочника.
func (r *CompanyRepository) List() ([]entity.Company, error) {
	var companies []entity.Company
	err := r.store.forEach(bucketCompanies, func(raw []byte) error {
		var c entity.Company
		if err := json.Unmarshal(raw, &c); err != nil {
			return err
		}
		companies = append(companies, c)
		return nil
	})
	return companies, err
}

// GetByID возвращает организацию или nil, если её нет.
func (r *CompanyRepository) GetByID(id entity.CompanyID) (*entity.Company, error) {
	var c entity.Company
	ok, err := r.store.get(bucketCompanies, string(id), &c)
	if err != nil || !ok {
		return nil, err
	}
	return &c, nil
}

// Save создаёт или перезаписывает организацию целиком.
func (r *CompanyRepository) Save(company *entity.Company) error {
	return r.store.put(bucketCompanies, string(company.ID), company)
}

// Delete удаляет организацию. Ссылки из документов остаются висеть —
// печать и выгрузка обязаны это переживать.
func (r *CompanyRepository) Delete(id entity.CompanyID) error {
	return r.store.delete(bucketCompanies, string(id))
}
