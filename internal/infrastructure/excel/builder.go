// Package excel сериализует агрегированный документ в книгу XLSX
// с фиксированной раскладкой строк по виду документа.
package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/mbdocs/mbdocs-api/internal/domain/docdata"
	"github.com/mbdocs/mbdocs-api/internal/domain/entity"
	"github.com/mbdocs/mbdocs-api/internal/domain/format"
)

// Builder строит книгу по агрегированным данным. От шаблонов печати
// не зависит — только документ, каталог и контрагенты.
type Builder struct{}

// NewBuilder создаёт построитель.
func NewBuilder() *Builder {
	return &Builder{}
}

// Build сериализует документ в XLSX и возвращает байты книги.
func (b *Builder) Build(doc entity.Document, data docdata.DocData) ([]byte, error) {
	var rows [][]any
	var widths []float64
	switch doc.Type {
	case entity.DocTypeAct:
		rows = actRows(doc, data)
		widths = []float64{5, 35, 6, 8, 15, 18}
	case entity.DocTypeUPD:
		rows = updRows(doc, data)
		widths = []float64{5, 30, 6, 8, 14, 14, 6, 14, 16}
	default:
		rows = invoiceRows(doc, data)
		widths = []float64{5, 30, 6, 8, 14, 14, 6, 14, 16}
	}
	return writeWorkbook(doc.Type.Label(), rows, widths)
}

// writeWorkbook складывает строки на единственный лист книги и выставляет
// подсказки ширины колонок.
func writeWorkbook(sheet string, rows [][]any, widths []float64) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("excel: лист: %w", err)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, fmt.Errorf("excel: строка %d: %w", i+1, err)
		}
	}
	for i, w := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetColWidth(sheet, col, col, w); err != nil {
			return nil, fmt.Errorf("excel: ширина колонки %s: %w", col, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("excel: запись книги: %w", err)
	}
	return buf.Bytes(), nil
}

func companyName(c *entity.Company) string {
	if c == nil {
		return ""
	}
	return c.Name
}

func companyField(c *entity.Company, get func(entity.Company) string) string {
	if c == nil {
		return ""
	}
	return get(*c)
}

func invoiceRows(doc entity.Document, data docdata.DocData) [][]any {
	cur := doc.Currency
	rows := [][]any{
		{fmt.Sprintf("Счет на оплату №%s от %s", doc.Number, format.Date(doc.Date))},
		{},
		{"Продавец:", companyName(data.Seller)},
		{"ИНН:", companyField(data.Seller, func(c entity.Company) string { return c.INN }),
			"КПП:", companyField(data.Seller, func(c entity.Company) string { return c.KPP })},
		{"Банк:", companyField(data.Seller, func(c entity.Company) string { return c.Bank }),
			"БИК:", companyField(data.Seller, func(c entity.Company) string { return c.BIK })},
		{"Р/с:", companyField(data.Seller, func(c entity.Company) string { return c.RS }),
			"К/с:", companyField(data.Seller, func(c entity.Company) string { return c.KS })},
		{},
		{"Покупатель:", companyName(data.Buyer)},
		{"ИНН:", companyField(data.Buyer, func(c entity.Company) string { return c.INN }),
			"КПП:", companyField(data.Buyer, func(c entity.Company) string { return c.KPP })},
		{},
		{"№", "Наименование", "Ед.", "Кол-во", "Цена", "Сумма без НДС", "НДС", "Сумма НДС", "Всего"},
	}
	for i, r := range data.Rows {
		rows = append(rows, []any{
			i + 1, r.Name, r.Unit, r.Quantity,
			format.Money(r.Price, cur), format.Money(r.Net, cur),
			fmt.Sprintf("%d%%", r.VAT), format.Money(r.VATAmount, cur), format.Money(r.Total, cur),
		})
	}
	rows = append(rows,
		[]any{},
		[]any{"", "", "", "", "", "", "", "Итого без НДС:", format.Money(data.GrandNet, cur)},
		[]any{"", "", "", "", "", "", "", "НДС:", format.Money(data.GrandVAT, cur)},
		[]any{"", "", "", "", "", "", "", "Всего:", format.Money(data.GrandTotal, cur)},
	)
	return rows
}

func actRows(doc entity.Document, data docdata.DocData) [][]any {
	cur := doc.Currency
	rows := [][]any{
		{fmt.Sprintf("Акт №%s от %s", doc.Number, format.Date(doc.Date))},
	}
	if doc.ContractNumber != "" {
		contractDate := "___"
		if doc.ContractDate != "" {
			contractDate = format.Date(doc.ContractDate)
		}
		rows = append(rows, []any{fmt.Sprintf("К договору №%s от %s", doc.ContractNumber, contractDate)})
	}
	rows = append(rows,
		[]any{},
		[]any{"Исполнитель:", companyName(data.Seller)},
		[]any{"Заказчик:", companyName(data.Buyer)},
		[]any{},
		[]any{"№", "Наименование", "Ед.", "Кол-во", "Цена", "Сумма"},
	)
	for i, r := range data.Rows {
		rows = append(rows, []any{
			i + 1, r.Name, r.Unit, r.Quantity,
			format.Money(r.Price, cur), format.Money(r.Total, cur),
		})
	}
	rows = append(rows,
		[]any{},
		[]any{"", "", "", "", "НДС:", format.Money(data.GrandVAT, cur)},
		[]any{"", "", "", "", "Итого:", format.Money(data.GrandTotal, cur)},
	)
	return rows
}

func updRows(doc entity.Document, data docdata.DocData) [][]any {
	cur := doc.Currency
	rows := [][]any{
		{fmt.Sprintf("УПД №%s от %s", doc.Number, format.Date(doc.Date))},
		{fmt.Sprintf("Статус: %s", doc.Status)},
		{},
		{"Продавец:", companyName(data.Seller)},
		{"Покупатель:", companyName(data.Buyer)},
		{},
		{"№", "Наименование", "Ед.", "Кол-во", "Цена", "Без НДС", "НДС%", "Сумма НДС", "С НДС"},
	}
	for i, r := range data.Rows {
		rows = append(rows, []any{
			i + 1, r.Name, r.Unit, r.Quantity,
			format.Money(r.Price, cur), format.Money(r.Net, cur),
			fmt.Sprintf("%d%%", r.VAT), format.Money(r.VATAmount, cur), format.Money(r.Total, cur),
		})
	}
	rows = append(rows,
		[]any{},
		[]any{"", "", "", "", "", "", "", "Без НДС:", format.Money(data.GrandNet, cur)},
		[]any{"", "", "", "", "", "", "", "НДС:", format.Money(data.GrandVAT, cur)},
		[]any{"", "", "", "", "", "", "", "Итого:", format.Money(data.GrandTotal, cur)},
	)
	return rows
}
