package bolt

import (
	"encoding/json"

	"github.com/mbdocs/mbdocs-api/internal/domain/entity"
	"github.com/mbdocs/mbdocs-api/internal/domain/repository"
)

// ProductRepository каталог товаров поверх бакета products.
type ProductRepository struct {
	store *Store
}

var _ repository.ProductRepository = (*ProductRepository)(nil)

// NewProductRepository создаёт репозиторий.
func NewProductRepository(store *Store) *ProductRepository {
	return &ProductRepository{store: store}
}

// List возвращает снапшот каталога.
func (r *ProductRepository) List() ([]entity.Product, error) {
	var products []entity.Product
	err := r.store.forEach(bucketProducts, func(raw []byte) error {
		var p entity.Product
		if err := json.Unmarshal(raw, &p); err != nil {
			return err
		}
		products = append(products, p)
		return nil
	})
	return products, err
}

// GetByID возвращает товар или nil, если его нет.
func (r *ProductRepository) GetByID(id entity.ProductID) (*entity.Product, error) {
	var p entity.Product
	ok, err := r.store.get(bucketProducts, string(id), &p)
	if err != nil || !ok {
		return nil, err
	}
	return &p, nil
}

// Save создаёт или перезаписывает товар целиком.
func (r *ProductRepository) Save(product *entity.Product) error {
	return r.store.put(bucketProducts, string(product.ID), product)
}

// Delete удаляет товар. Строки документов хранят снимки цены и НДС,
// поэтому удаление не меняет уже выписанные документы.
func (r *ProductRepository) Delete(id entity.ProductID) error {
	return r.store.delete(bucketProducts, string(id))
}
