package bolt

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"sort"

	bbolt "go.etcd.io/bbolt"

	"github.com/mbdocs/mbdocs-api/internal/domain/entity"
	"github.com/mbdocs/mbdocs-api/internal/domain/repository"
)

// DocumentRepository документы трёх видов поверх бакетов invoices/acts/upds.
// В снапшоте каждая коллекция хранит JSON своего варианта (Invoice/Act/UPD),
// общее представление Document собирается на чтении.
type DocumentRepository struct {
	store *Store
}

var _ repository.DocumentRepository = (*DocumentRepository)(nil)

// NewDocumentRepository создаёт репозиторий.
func NewDocumentRepository(store *Store) *DocumentRepository {
	return &DocumentRepository{store: store}
}

func docBucket(docType entity.DocType) (string, error) {
	switch docType {
	case entity.DocTypeInvoice:
		return bucketInvoices, nil
	case entity.DocTypeAct:
		return bucketActs, nil
	case entity.DocTypeUPD:
		return bucketUPDs, nil
	}
	return "", fmt.Errorf("bolt: неизвестный вид документа %q", docType)
}

func decodeDocument(docType entity.DocType, raw []byte) (entity.Document, error) {
	switch docType {
	case entity.DocTypeAct:
		var act entity.Act
		if err := json.Unmarshal(raw, &act); err != nil {
			return entity.Document{}, err
		}
		return act.AsDocument(), nil
	case entity.DocTypeUPD:
		var upd entity.UPD
		if err := json.Unmarshal(raw, &upd); err != nil {
			return entity.Document{}, err
		}
		return upd.AsDocument(), nil
	default:
		var inv entity.Invoice
		if err := json.Unmarshal(raw, &inv); err != nil {
			return entity.Document{}, err
		}
		return inv.AsDocument(), nil
	}
}

func encodeDocument(doc *entity.Document) (any, error) {
	switch doc.Type {
	case entity.DocTypeInvoice:
		return entity.Invoice{DocHeader: doc.DocHeader}, nil
	case entity.DocTypeAct:
		return entity.Act{
			DocHeader:      doc.DocHeader,
			ContractNumber: doc.ContractNumber,
			ContractDate:   doc.ContractDate,
		}, nil
	case entity.DocTypeUPD:
		return entity.UPD{
			DocHeader:        doc.DocHeader,
			CorrectionNumber: doc.CorrectionNumber,
			Status:           doc.Status,
		}, nil
	}
	return nil, fmt.Errorf("bolt: неизвестный вид документа %q", doc.Type)
}

// List возвращает документы вида, упорядоченные по номеру.
func (r *DocumentRepository) List(docType entity.DocType) ([]entity.Document, error) {
	bucket, err := docBucket(docType)
	if err != nil {
		return nil, err
	}
	var docs []entity.Document
	err = r.store.forEach(bucket, func(raw []byte) error {
		doc, err := decodeDocument(docType, raw)
		if err != nil {
			return err
		}
		docs = append(docs, doc)
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].Number < docs[j].Number })
	return docs, nil
}

// GetByID возвращает документ или nil, если его нет в коллекции вида.
func (r *DocumentRepository) GetByID(docType entity.DocType, id string) (*entity.Document, error) {
	bucket, err := docBucket(docType)
	if err != nil {
		return nil, err
	}
	var raw json.RawMessage
	ok, err := r.store.get(bucket, id, &raw)
	if err != nil || !ok {
		return nil, err
	}
	doc, err := decodeDocument(docType, raw)
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// Save создаёт или перезаписывает документ целиком.
func (r *DocumentRepository) Save(doc *entity.Document) error {
	bucket, err := docBucket(doc.Type)
	if err != nil {
		return err
	}
	value, err := encodeDocument(doc)
	if err != nil {
		return err
	}
	return r.store.put(bucket, doc.ID, value)
}

// Delete удаляет документ. Счётчик номеров при этом не трогается.
func (r *DocumentRepository) Delete(docType entity.DocType, id string) error {
	bucket, err := docBucket(docType)
	if err != nil {
		return err
	}
	return r.store.delete(bucket, id)
}

// CounterRepository монотонные счётчики номеров документов в бакете counters.
// Значение — big-endian uint64 следующего номера; счётчик только растёт.
type CounterRepository struct {
	store *Store
}

var _ repository.CounterRepository = (*CounterRepository)(nil)

// NewCounterRepository создаёт репозиторий.
func NewCounterRepository(store *Store) *CounterRepository {
	return &CounterRepository{store: store}
}

// Next атомарно возвращает очередной номер вида документа и сдвигает счётчик.
func (r *CounterRepository) Next(docType entity.DocType) (int64, error) {
	if !docType.Valid() {
		return 0, fmt.Errorf("bolt: неизвестный вид документа %q", docType)
	}
	var next uint64
	err := r.store.db.Update(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(bucketCounters))
		key := []byte(string(docType))
		next = 1
		if v := b.Get(key); len(v) == 8 {
			next = binary.BigEndian.Uint64(v)
		}
		var buf [8]byte
		binary.BigEndian.PutUint64(buf[:], next+1)
		return b.Put(key, buf[:])
	})
	if err != nil {
		return 0, err
	}
	r.store.notify(bucketCounters)
	return int64(next), nil
}
