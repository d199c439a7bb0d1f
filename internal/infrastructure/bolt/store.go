// Package bolt реализует порты персистентности поверх bbolt: строковые ключи,
// JSON-снапшоты значений, бакет на коллекцию. Запись — last-write-wins, без
// версионирования: единственный процесс-владелец пишет целыми снапшотами.
package bolt

import (
	"encoding/json"
	"fmt"
	"sync"

	bbolt "go.etcd.io/bbolt"

	"github.com/mbdocs/mbdocs-api/internal/domain/entity"
)

// Имена бакетов-коллекций.
const (
	bucketCompanies = "companies"
	bucketProducts  = "products"
	bucketInvoices  = "invoices"
	bucketActs      = "acts"
	bucketUPDs      = "upds"
	bucketTemplates = "templates"
	bucketCounters  = "counters"
	bucketWorkspace = "workspace"
)

var allBuckets = []string{
	bucketCompanies, bucketProducts,
	bucketInvoices, bucketActs, bucketUPDs,
	bucketTemplates, bucketCounters, bucketWorkspace,
}

// Store открытый файл bbolt плюс явный список наблюдателей изменений.
// Наблюдатели вызываются синхронно после каждой мутации с именем коллекции.
type Store struct {
	db *bbolt.DB

	mu        sync.Mutex
	observers []func(collection string)
}

// Options параметры открытия хранилища.
type Options struct {
	Path string
	// Seed при пустой базе заполняет демо-справочники и стандартные шаблоны.
	Seed bool
}

// Open открывает (или создаёт) файл хранилища, гарантирует наличие бакетов,
// выполняет миграцию старых записей и при необходимости — первичное заполнение.
func Open(opts Options) (*Store, error) {
	db, err := bbolt.Open(opts.Path, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("bolt: открытие %s: %w", opts.Path, err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		for _, name := range allBuckets {
			if _, err := tx.CreateBucketIfNotExists([]byte(name)); err != nil {
				return fmt.Errorf("bolt: бакет %s: %w", name, err)
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	if opts.Seed {
		if err := s.seed(); err != nil {
			db.Close()
			return nil, err
		}
	}
	return s, nil
}

// Close закрывает файл хранилища.
func (s *Store) Close() error {
	return s.db.Close()
}

// OnChange регистрирует наблюдателя мутаций. Потокобезопасно; наблюдатели
// вызываются в порядке регистрации.
func (s *Store) OnChange(fn func(collection string)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, fn)
}

func (s *Store) notify(collection string) {
	s.mu.Lock()
	observers := make([]func(string), len(s.observers))
	copy(observers, s.observers)
	s.mu.Unlock()
	for _, fn := range observers {
		fn(collection)
	}
}

// put сериализует значение в JSON и кладёт его по ключу.
func (s *Store) put(bucket, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("bolt: сериализация %s/%s: %w", bucket, key, err)
	}
	err = s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(bucket)).Put([]byte(key), raw)
	})
	if err != nil {
		return err
	}
	s.notify(bucket)
	return nil
}

// get читает значение по ключу. Возвращает false, если ключа нет.
func (s *Store) get(bucket, key string, out any) (bool, error) {
	var raw []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		if v := tx.Bucket([]byte(bucket)).Get([]byte(key)); v != nil {
			raw = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	if raw == nil {
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, fmt.Errorf("bolt: чтение %s/%s: %w", bucket, key, err)
	}
	return true, nil
}

// delete удаляет ключ; отсутствие ключа не ошибка.
func (s *Store) delete(bucket, key string) error {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(bucket)).Delete([]byte(key))
	})
	if err != nil {
		return err
	}
	s.notify(bucket)
	return nil
}

// forEach обходит все значения бакета в порядке ключей.
func (s *Store) forEach(bucket string, fn func(raw []byte) error) error {
	return s.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket([]byte(bucket)).ForEach(func(_, v []byte) error {
			return fn(v)
		})
	})
}

func (s *Store) isEmpty(bucket string) (bool, error) {
	empty := true
	err := s.db.View(func(tx *bbolt.Tx) error {
		k, _ := tx.Bucket([]byte(bucket)).Cursor().First()
		empty = k == nil
		return nil
	})
	return empty, err
}

// migrate доводит старые снапшоты до текущей схемы: товары без единицы
// измерения получают «шт». Отсутствующие строковые поля (director, accountant)
// декодируются в пустые строки сами по себе.
func (s *Store) migrate() error {
	var patched []entity.Product
	err := s.forEach(bucketProducts, func(raw []byte) error {
		var p entity.Product
		if err := json.Unmarshal(raw, &p); err != nil {
			return fmt.Errorf("bolt: миграция товара: %w", err)
		}
		if p.Unit == "" {
			p.Unit = entity.DefaultUnit
			patched = append(patched, p)
		}
		return nil
	})
	if err != nil {
		return err
	}
	for i := range patched {
		if err := s.put(bucketProducts, string(patched[i].ID), &patched[i]); err != nil {
			return err
		}
	}
	return nil
}
