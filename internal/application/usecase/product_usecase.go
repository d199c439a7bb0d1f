package usecase

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/mbdocs/mbdocs-api/internal/application/dto"
	"github.com/mbdocs/mbdocs-api/internal/domain"
	"github.com/mbdocs/mbdocs-api/internal/domain/entity"
	"github.com/mbdocs/mbdocs-api/internal/domain/repository"
)

// ProductUseCase CRUD каталога товаров и услуг.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase строит кейс.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// List возвращает весь каталог.
func (uc *ProductUseCase) List() ([]entity.Product, error) {
	return uc.repo.List()
}

// GetByID возвращает товар или nil, если его нет.
func (uc *ProductUseCase) GetByID(id string) (*entity.Product, error) {
	return uc.repo.GetByID(entity.ProductID(id))
}

// Create создаёт товар. Пустая единица измерения заменяется на «шт»,
// пустая валюта — на рубли.
func (uc *ProductUseCase) Create(in dto.ProductRequest) (*entity.Product, error) {
	if err := validateProduct(in); err != nil {
		return nil, err
	}
	product := productFromRequest(entity.ProductID(uuid.New().String()), in)
	if err := uc.repo.Save(&product); err != nil {
		return nil, err
	}
	return &product, nil
}

// Update полностью заменяет товар. Строки существующих документов хранят
// снимки цены и ставки, поэтому изменение их не затрагивает.
func (uc *ProductUseCase) Update(id string, in dto.ProductRequest) (*entity.Product, error) {
	existing, err := uc.repo.GetByID(entity.ProductID(id))
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}
	if err := validateProduct(in); err != nil {
		return nil, err
	}
	product := productFromRequest(existing.ID, in)
	if err := uc.repo.Save(&product); err != nil {
		return nil, err
	}
	return &product, nil
}

// Delete удаляет товар. Строки документов с ним печатаются с «—» вместо
// названия, суммы при этом не меняются.
func (uc *ProductUseCase) Delete(id string) error {
	return uc.repo.Delete(entity.ProductID(id))
}

func validateProduct(in dto.ProductRequest) error {
	if in.Name == "" {
		return fmt.Errorf("%w: не заполнено название товара", domain.ErrInvalidInput)
	}
	if in.Price < 0 {
		return fmt.Errorf("%w: отрицательная цена", domain.ErrInvalidInput)
	}
	if in.VAT < 0 || in.VAT > 100 {
		return fmt.Errorf("%w: ставка НДС %d вне диапазона", domain.ErrInvalidInput, in.VAT)
	}
	return nil
}

func productFromRequest(id entity.ProductID, in dto.ProductRequest) entity.Product {
	currency := entity.Currency(in.Currency)
	if currency == "" {
		currency = entity.CurrencyRUB
	}
	unit := in.Unit
	if unit == "" {
		unit = entity.DefaultUnit
	}
	return entity.Product{
		ID:       id,
		Name:     in.Name,
		Price:    int64(in.Price),
		VAT:      int64(in.VAT),
		Barcode:  in.Barcode,
		Currency: currency,
		Unit:     unit,
	}
}
