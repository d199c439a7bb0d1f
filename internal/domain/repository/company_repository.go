package repository

import "github.com/mbdocs/mbdocs-api/internal/domain/entity"

// CompanyRepository порт персистентности для справочника организаций.
// Возвращаемые срезы — снапшоты: вызывающий может читать их без блокировок
// и не должен мутировать на месте.
type CompanyRepository interface {
	List() ([]entity.Company, error)
	GetByID(id entity.CompanyID) (*entity.Company, error)
	Save(company *entity.Company) error
	Delete(id entity.CompanyID) error
}
