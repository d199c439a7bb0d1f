package repository

import "github.com/mbdocs/mbdocs-api/internal/domain/entity"

// ProductRepository порт персистентности для каталога товаров.
// Удаление товара не каскадирует в документы: их строки хранят снимки цены и НДС.
type ProductRepository interface {
	List() ([]entity.Product, error)
	GetByID(id entity.ProductID) (*entity.Product, error)
	Save(product *entity.Product) error
	Delete(id entity.ProductID) error
}
