package repository

import "github.com/mbdocs/mbdocs-api/internal/domain/entity"

// DocumentRepository порт персистентности для документов всех трёх видов.
// Документы хранятся по виду; GetByID(docType, id) ищет только в своей коллекции.
type DocumentRepository interface {
	List(docType entity.DocType) ([]entity.Document, error)
	GetByID(docType entity.DocType, id string) (*entity.Document, error)
	Save(doc *entity.Document) error
	Delete(docType entity.DocType, id string) error
}

// CounterRepository монотонные счётчики номеров по виду документа.
// Next возвращает текущее значение и увеличивает счётчик; значения не
// переиспользуются и не уменьшаются даже после удаления документов.
type CounterRepository interface {
	Next(docType entity.DocType) (int64, error)
}
