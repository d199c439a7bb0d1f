package bolt_test

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbdocs/mbdocs-api/internal/domain/entity"
	"github.com/mbdocs/mbdocs-api/internal/infrastructure/bolt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func openStore(t *testing.T, seed bool) *bolt.Store {
	t.Helper()
	store, err := bolt.Open(bolt.Options{
		Path: filepath.Join(t.TempDir(), "test.db"),
		Seed: seed,
	})
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func sampleInvoice(id, number string) *entity.Document {
	return &entity.Document{
		Type: entity.DocTypeInvoice,
		DocHeader: entity.DocHeader{
			ID: id, Number: number, Date: "2024-03-15",
			SellerID: "c1", BuyerID: "c2",
			Lines: []entity.DocLine{
				{ID: "l1", ProductID: "p1", Quantity: 2, Price: 500_000, VAT: 20},
			},
			Currency: entity.CurrencyRUB,
		},
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Первичное заполнение
// ──────────────────────────────────────────────────────────────────────────────

func TestOpen_SeedsEmptyDatabase(t *testing.T) {
	store := openStore(t, true)

	companies, err := bolt.NewCompanyRepository(store).List()
	require.NoError(t, err)
	assert.Len(t, companies, 2)

	products, err := bolt.NewProductRepository(store).List()
	require.NoError(t, err)
	assert.Len(t, products, 2)

	templates, err := bolt.NewTemplateRepository(store).List()
	require.NoError(t, err)
	require.Len(t, templates, 3)
	for _, tpl := range templates {
		assert.NoError(t, tpl.Validate())
	}
}

// Повторное заполнение не перезаписывает пользовательские правки.
func TestSeed_DoesNotOverwriteExisting(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.db")

	store, err := bolt.Open(bolt.Options{Path: path, Seed: true})
	require.NoError(t, err)

	repo := bolt.NewCompanyRepository(store)
	company, err := repo.GetByID("c1")
	require.NoError(t, err)
	require.NotNil(t, company)
	company.Name = "Переименованная"
	require.NoError(t, repo.Save(company))
	require.NoError(t, store.Close())

	store, err = bolt.Open(bolt.Options{Path: path, Seed: true})
	require.NoError(t, err)
	defer store.Close()

	company, err = bolt.NewCompanyRepository(store).GetByID("c1")
	require.NoError(t, err)
	require.NotNil(t, company)
	assert.Equal(t, "Переименованная", company.Name)
}

func TestOpen_NoSeed(t *testing.T) {
	store := openStore(t, false)

	companies, err := bolt.NewCompanyRepository(store).List()
	require.NoError(t, err)
	assert.Empty(t, companies)
}

// ──────────────────────────────────────────────────────────────────────────────
// Счётчики номеров
// ──────────────────────────────────────────────────────────────────────────────

func TestCounter_MonotonicPerDocType(t *testing.T) {
	store := openStore(t, false)
	counters := bolt.NewCounterRepository(store)

	for want := int64(1); want <= 3; want++ {
		got, err := counters.Next(entity.DocTypeInvoice)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	// виды считаются независимо
	got, err := counters.Next(entity.DocTypeAct)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got)
}

// Номер удалённого документа не переиспользуется.
func TestCounter_SurvivesDocumentDeletion(t *testing.T) {
	store := openStore(t, false)
	counters := bolt.NewCounterRepository(store)
	docs := bolt.NewDocumentRepository(store)

	for i := 1; i <= 3; i++ {
		n, err := counters.Next(entity.DocTypeInvoice)
		require.NoError(t, err)
		id := fmt.Sprintf("d%d", i)
		require.NoError(t, docs.Save(sampleInvoice(id, fmt.Sprintf("%04d", n))))
	}
	require.NoError(t, docs.Delete(entity.DocTypeInvoice, "d3"))

	n, err := counters.Next(entity.DocTypeInvoice)
	require.NoError(t, err)
	assert.Equal(t, int64(4), n, "после удаления счётчик не откатывается")
}

// Счётчик переживает переоткрытие файла.
func TestCounter_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	store, err := bolt.Open(bolt.Options{Path: path})
	require.NoError(t, err)
	counters := bolt.NewCounterRepository(store)
	_, err = counters.Next(entity.DocTypeUPD)
	require.NoError(t, err)
	_, err = counters.Next(entity.DocTypeUPD)
	require.NoError(t, err)
	require.NoError(t, store.Close())

	store, err = bolt.Open(bolt.Options{Path: path})
	require.NoError(t, err)
	defer store.Close()

	n, err := bolt.NewCounterRepository(store).Next(entity.DocTypeUPD)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}

// ──────────────────────────────────────────────────────────────────────────────
// Документы
// ──────────────────────────────────────────────────────────────────────────────

func TestDocumentRepository_RoundTrip(t *testing.T) {
	store := openStore(t, false)
	docs := bolt.NewDocumentRepository(store)

	upd := &entity.Document{
		Type: entity.DocTypeUPD,
		DocHeader: entity.DocHeader{
			ID: "u1", Number: "0001", Date: "2024-05-01",
			SellerID: "c1", BuyerID: "c2", Currency: entity.CurrencyRUB,
		},
		CorrectionNumber: "Д-7",
		Status:           entity.UPDStatusActOnly,
	}
	require.NoError(t, docs.Save(upd))

	got, err := docs.GetByID(entity.DocTypeUPD, "u1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Д-7", got.CorrectionNumber)
	assert.Equal(t, entity.UPDStatusActOnly, got.Status)

	// документ другого вида по этому идентификатору не находится
	other, err := docs.GetByID(entity.DocTypeInvoice, "u1")
	require.NoError(t, err)
	assert.Nil(t, other)
}

func TestDocumentRepository_ListSortedByNumber(t *testing.T) {
	store := openStore(t, false)
	docs := bolt.NewDocumentRepository(store)

	require.NoError(t, docs.Save(sampleInvoice("b", "0002")))
	require.NoError(t, docs.Save(sampleInvoice("a", "0010")))
	require.NoError(t, docs.Save(sampleInvoice("c", "0001")))

	list, err := docs.List(entity.DocTypeInvoice)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "0001", list[0].Number)
	assert.Equal(t, "0002", list[1].Number)
	assert.Equal(t, "0010", list[2].Number)
}

// Строки документа — снимки: правка каталога их не меняет.
func TestDocumentRepository_SnapshotIndependentOfCatalog(t *testing.T) {
	store := openStore(t, true)
	docs := bolt.NewDocumentRepository(store)
	products := bolt.NewProductRepository(store)

	require.NoError(t, docs.Save(sampleInvoice("d1", "0001")))

	p, err := products.GetByID("p1")
	require.NoError(t, err)
	require.NotNil(t, p)
	p.Price = 999_999
	require.NoError(t, products.Save(p))

	got, err := docs.GetByID(entity.DocTypeInvoice, "d1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(500_000), got.Lines[0].Price, "снимок цены в строке неизменен")
}

// ──────────────────────────────────────────────────────────────────────────────
// Шаблоны и рабочая область
// ──────────────────────────────────────────────────────────────────────────────

func TestTemplateRepository_FirstByDocType(t *testing.T) {
	store := openStore(t, true)
	templates := bolt.NewTemplateRepository(store)

	tpl, err := templates.FirstByDocType(entity.DocTypeAct)
	require.NoError(t, err)
	require.NotNil(t, tpl)
	assert.Equal(t, entity.DocTypeAct, tpl.DocType)

	// после удаления всех шаблонов вида — nil, вызывающий откатится на встроенный
	require.NoError(t, templates.Delete(tpl.ID))
	tpl, err = templates.FirstByDocType(entity.DocTypeAct)
	require.NoError(t, err)
	assert.Nil(t, tpl)
}

func TestWorkspaceRepository_RoundTrip(t *testing.T) {
	store := openStore(t, false)
	workspace := bolt.NewWorkspaceRepository(store)

	tabs, err := workspace.Tabs()
	require.NoError(t, err)
	assert.Empty(t, tabs)

	saved := []entity.TabItem{
		{ID: "t1", Type: "companies", Title: "Организации"},
		{ID: "t2", Type: "invoice-edit", Title: "Счет №0001", EntityID: "d1"},
	}
	require.NoError(t, workspace.SaveTabs(saved))
	require.NoError(t, workspace.SetActiveTab("t2"))

	tabs, err = workspace.Tabs()
	require.NoError(t, err)
	assert.Equal(t, saved, tabs)

	active, err := workspace.ActiveTab()
	require.NoError(t, err)
	assert.Equal(t, "t2", active)
}

// ──────────────────────────────────────────────────────────────────────────────
// Наблюдатели
// ──────────────────────────────────────────────────────────────────────────────

func TestOnChange_NotifiesCollection(t *testing.T) {
	store := openStore(t, false)

	var changed []string
	store.OnChange(func(collection string) {
		changed = append(changed, collection)
	})

	repo := bolt.NewCompanyRepository(store)
	require.NoError(t, repo.Save(&entity.Company{ID: "c9", Name: "Тест", Role: entity.RoleSeller}))
	require.NoError(t, repo.Delete("c9"))

	assert.Equal(t, []string{"companies", "companies"}, changed)
}
