// Package docdata собирает данные документа для печати и выгрузки: строки,
// сведённые с каталогом товаров, разрешённые контрагенты и итоговые суммы.
package docdata

import (
	"github.com/mbdocs/mbdocs-api/internal/domain/entity"
	"github.com/mbdocs/mbdocs-api/internal/domain/format"
)

// Row строка документа после сведения с каталогом. Все суммы в копейках.
type Row struct {
	Name      string // название товара; «—» для висячей ссылки
	Unit      string // единица измерения; «шт» по умолчанию
	Quantity  int64
	Price     int64
	VAT       int64 // ставка в процентах
	Total     int64 // цена × количество, НДС включён
	VATAmount int64
	Net       int64 // без НДС
}

// DocData результат агрегации. Seller и Buyer могут быть nil —
// вызывающий обязан обработать висячие ссылки.
type DocData struct {
	Seller *entity.Company
	Buyer  *entity.Company
	Rows   []Row

	GrandTotal int64
	GrandVAT   int64
	GrandNet   int64
}

// Aggregate сводит строки документа с переданными снапшотами справочников.
// Товары разрешаются по точному совпадению идентификатора на момент вызова;
// кэширования нет, при любом изменении данных вызывающий агрегирует заново.
// Итоги всегда считаются суммированием построчных значений — пересчёт от
// общей цены×количества дал бы расхождение на округлении НДС.
func Aggregate(
	lines []entity.DocLine,
	companies []entity.Company,
	products []entity.Product,
	sellerID, buyerID entity.CompanyID,
) DocData {
	seller, _ := entity.FindCompany(companies, sellerID)
	buyer, _ := entity.FindCompany(companies, buyerID)

	rows := make([]Row, 0, len(lines))
	var grandTotal, grandVAT int64
	for _, line := range lines {
		row := Row{
			Name:      "—",
			Unit:      entity.DefaultUnit,
			Quantity:  line.Quantity,
			Price:     line.Price,
			VAT:       line.VAT,
			Total:     format.LineTotal(line.Price, line.Quantity),
			VATAmount: format.LineVAT(line.Price, line.Quantity, line.VAT),
			Net:       format.LineNet(line.Price, line.Quantity, line.VAT),
		}
		if product, ok := entity.FindProduct(products, line.ProductID); ok {
			row.Name = product.Name
			if product.Unit != "" {
				row.Unit = product.Unit
			}
		}
		rows = append(rows, row)
		grandTotal += row.Total
		grandVAT += row.VATAmount
	}

	return DocData{
		Seller:     seller,
		Buyer:      buyer,
		Rows:       rows,
		GrandTotal: grandTotal,
		GrandVAT:   grandVAT,
		GrandNet:   grandTotal - grandVAT,
	}
}
