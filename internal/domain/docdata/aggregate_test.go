package docdata_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbdocs/mbdocs-api/internal/domain/docdata"
	"github.com/mbdocs/mbdocs-api/internal/domain/entity"
)

func testCompanies() []entity.Company {
	return []entity.Company{
		{ID: "c1", Name: `ООО "Ромашка"`, Role: entity.RoleSeller},
		{ID: "c2", Name: "ИП Иванов И.И.", Role: entity.RoleBuyer},
	}
}

func testProducts() []entity.Product {
	return []entity.Product{
		{ID: "p1", Name: "Консультация", Price: 500_000, VAT: 20, Unit: "час"},
		{ID: "p2", Name: "Разработка сайта", Price: 15_000_000, VAT: 20},
	}
}

func TestAggregate(t *testing.T) {
	lines := []entity.DocLine{
		{ID: "l1", ProductID: "p1", Quantity: 2, Price: 500_000, VAT: 20},
		{ID: "l2", ProductID: "p2", Quantity: 1, Price: 15_000_000, VAT: 20},
	}

	data := docdata.Aggregate(lines, testCompanies(), testProducts(), "c1", "c2")

	require.NotNil(t, data.Seller)
	require.NotNil(t, data.Buyer)
	assert.Equal(t, `ООО "Ромашка"`, data.Seller.Name)
	assert.Equal(t, "ИП Иванов И.И.", data.Buyer.Name)

	require.Len(t, data.Rows, 2)
	assert.Equal(t, "Консультация", data.Rows[0].Name)
	assert.Equal(t, "час", data.Rows[0].Unit)
	assert.Equal(t, int64(1_000_000), data.Rows[0].Total)
	assert.Equal(t, int64(166_667), data.Rows[0].VATAmount)
	assert.Equal(t, int64(833_333), data.Rows[0].Net)

	// итоги — суммы построчных значений, а не пересчёт от общей суммы
	assert.Equal(t, int64(16_000_000), data.GrandTotal)
	assert.Equal(t, int64(2_666_667), data.GrandVAT)
	assert.Equal(t, data.GrandTotal-data.GrandVAT, data.GrandNet)
}

// Висячая ссылка на товар: строка печатается с «—», суммы берутся из снимка.
func TestAggregate_DanglingProduct(t *testing.T) {
	lines := []entity.DocLine{
		{ID: "l1", ProductID: "удалённый", Quantity: 3, Price: 10_000, VAT: 20},
	}

	data := docdata.Aggregate(lines, testCompanies(), testProducts(), "c1", "c2")

	require.Len(t, data.Rows, 1)
	assert.Equal(t, "—", data.Rows[0].Name)
	assert.Equal(t, entity.DefaultUnit, data.Rows[0].Unit)
	assert.Equal(t, int64(30_000), data.Rows[0].Total)
}

// Висячие ссылки на контрагентов: Seller/Buyer == nil, агрегация не падает.
func TestAggregate_DanglingCounterparties(t *testing.T) {
	data := docdata.Aggregate(nil, testCompanies(), testProducts(), "нет такого", "тоже нет")

	assert.Nil(t, data.Seller)
	assert.Nil(t, data.Buyer)
	assert.Empty(t, data.Rows)
	assert.Zero(t, data.GrandTotal)
}

// Пустой документ агрегируется в нулевые итоги.
func TestAggregate_EmptyLines(t *testing.T) {
	data := docdata.Aggregate(nil, testCompanies(), testProducts(), "c1", "c2")

	assert.Empty(t, data.Rows)
	assert.Zero(t, data.GrandTotal)
	assert.Zero(t, data.GrandVAT)
	assert.Zero(t, data.GrandNet)
}
