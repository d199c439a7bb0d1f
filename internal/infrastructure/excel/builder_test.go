package excel_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/mbdocs/mbdocs-api/internal/domain/docdata"
	"github.com/mbdocs/mbdocs-api/internal/domain/entity"
	"github.com/mbdocs/mbdocs-api/internal/infrastructure/excel"
)

func exportData() (entity.Document, docdata.DocData) {
	doc := entity.Document{
		Type: entity.DocTypeInvoice,
		DocHeader: entity.DocHeader{
			ID: "d1", Number: "0042", Date: "2024-03-15",
			SellerID: "c1", BuyerID: "c2", Currency: entity.CurrencyRUB,
		},
	}
	data := docdata.DocData{
		Seller: &entity.Company{
			ID: "c1", Name: `ООО "Ромашка"`, INN: "7707123456", KPP: "770701001",
			Bank: "ПАО Сбербанк", BIK: "044525225",
			RS: "40702810938000012345", KS: "30101810400000000225",
		},
		Buyer: &entity.Company{ID: "c2", Name: "ИП Иванов И.И.", INN: "771234567890"},
		Rows: []docdata.Row{
			{Name: "Консультация", Unit: "час", Quantity: 2, Price: 500_000,
				VAT: 20, Total: 1_000_000, VATAmount: 166_667, Net: 833_333},
		},
		GrandTotal: 1_000_000,
		GrandVAT:   166_667,
		GrandNet:   833_333,
	}
	return doc, data
}

func openWorkbook(t *testing.T, doc entity.Document, data docdata.DocData) *excelize.File {
	t.Helper()
	raw, err := excel.NewBuilder().Build(doc, data)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(raw))
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })
	return f
}

func TestBuild_InvoiceWorkbook(t *testing.T) {
	doc, data := exportData()
	f := openWorkbook(t, doc, data)

	require.Equal(t, []string{"Счет"}, f.GetSheetList())

	title, err := f.GetCellValue("Счет", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Счет на оплату №0042 от 15.03.2024", title)

	seller, err := f.GetCellValue("Счет", "B3")
	require.NoError(t, err)
	assert.Equal(t, `ООО "Ромашка"`, seller)

	// первая строка таблицы — под шапкой на 12-й строке
	name, err := f.GetCellValue("Счет", "B12")
	require.NoError(t, err)
	assert.Equal(t, "Консультация", name)

	qty, err := f.GetCellValue("Счет", "D12")
	require.NoError(t, err)
	assert.Equal(t, "2", qty)
}

func TestBuild_ActWorkbook(t *testing.T) {
	doc, data := exportData()
	doc.Type = entity.DocTypeAct
	doc.ContractNumber = "Д-42"
	doc.ContractDate = "2024-01-10"
	f := openWorkbook(t, doc, data)

	require.Equal(t, []string{"Акт"}, f.GetSheetList())

	title, err := f.GetCellValue("Акт", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Акт №0042 от 15.03.2024", title)

	contract, err := f.GetCellValue("Акт", "A2")
	require.NoError(t, err)
	assert.Equal(t, "К договору №Д-42 от 10.01.2024", contract)
}

func TestBuild_UPDWorkbook(t *testing.T) {
	doc, data := exportData()
	doc.Type = entity.DocTypeUPD
	doc.Status = entity.UPDStatusInvoiceAndAct
	f := openWorkbook(t, doc, data)

	require.Equal(t, []string{"УПД"}, f.GetSheetList())

	status, err := f.GetCellValue("УПД", "A2")
	require.NoError(t, err)
	assert.Equal(t, "Статус: 1", status)
}

// Висячие контрагенты: ячейки имён пустые, книга собирается.
func TestBuild_DanglingCounterparties(t *testing.T) {
	doc, data := exportData()
	data.Seller = nil
	data.Buyer = nil
	f := openWorkbook(t, doc, data)

	seller, err := f.GetCellValue("Счет", "B3")
	require.NoError(t, err)
	assert.Equal(t, "", seller)
}
