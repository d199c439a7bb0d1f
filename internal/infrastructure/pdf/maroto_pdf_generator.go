// Package pdf строит PDF-представление документа на Maroto v2.
//
// Раскладка страницы A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  ШАПКА: вид документа + номер │ дата                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  ПРОДАВЕЦ: название / ИНН / КПП / банк                      │
//	│  ПОКУПАТЕЛЬ: название / ИНН / КПП                           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  ТАБЛИЦА: № | Наименование | Кол-во | Цена | НДС | Сумма    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  ИТОГИ: без НДС / НДС / Всего к оплате                      │
//	│  ПОДВАЛ: сумма прописью + платёжный QR (для счёта)          │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/mbdocs/mbdocs-api/internal/domain/docdata"
	"github.com/mbdocs/mbdocs-api/internal/domain/entity"
	"github.com/mbdocs/mbdocs-api/internal/domain/format"
)

var (
	colorPrimary = &props.Color{Red: 30, Green: 30, Blue: 30}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoGenerator строит PDF по документу и агрегированным данным.
type MarotoGenerator struct{}

// NewMarotoGenerator создаёт генератор.
func NewMarotoGenerator() *MarotoGenerator { return &MarotoGenerator{} }

// Generate строит PDF и возвращает его байты. qrPayload — строка платёжного
// QR для счёта; пустая строка отключает блок.
func (g *MarotoGenerator) Generate(
	doc entity.Document,
	data docdata.DocData,
	qrPayload string,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).WithRightMargin(15).
		WithTopMargin(15).WithBottomMargin(15).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(fmt.Sprintf("%s №%s", doc.Type.Label(), doc.Number), true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(doc))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(sellerRow(data.Seller))
	m.AddRows(buyerRow(data.Buyer))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableRows(data.Rows, doc.Currency) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(data, doc.Currency))

	m.AddRows(line.NewRow(2))
	for _, r := range footerRows(doc, data, qrPayload) {
		m.AddRows(r)
	}

	pd, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: генерация документа: %w", err)
	}
	return pd.GetBytes(), nil
}

// headerRow: вид документа и номер слева, дата справа.
func headerRow(doc entity.Document) core.Row {
	title := fmt.Sprintf("%s №%s", doc.Type.Label(), doc.Number)
	if doc.Type == entity.DocTypeInvoice {
		title = fmt.Sprintf("Счет на оплату №%s", doc.Number)
	}
	return row.New(14).Add(
		col.New(8).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New("от "+format.Date(doc.Date), props.Text{
				Size: 10, Align: align.Right, Top: 3, Color: colorGray,
			}),
		),
	)
}

// sellerRow: реквизиты продавца, включая банковские.
func sellerRow(seller *entity.Company) core.Row {
	if seller == nil {
		return row.New(8).Add(col.New(12).Add(
			text.New("Продавец не указан", props.Text{Size: 9, Color: colorGray, Top: 2}),
		))
	}
	return row.New(18).Add(
		col.New(12).Add(
			text.New("ПРОДАВЕЦ", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%s, ИНН %s%s", seller.Name, seller.INN, kppSuffix(seller.KPP)),
				props.Text{Style: fontstyle.Bold, Size: 9, Top: 6}),
			text.New(fmt.Sprintf("Банк: %s, БИК %s, р/с %s, к/с %s",
				seller.Bank, seller.BIK, seller.RS, seller.KS,
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// buyerRow: реквизиты покупателя.
func buyerRow(buyer *entity.Company) core.Row {
	if buyer == nil {
		return row.New(8).Add(col.New(12).Add(
			text.New("Покупатель не указан", props.Text{Size: 9, Color: colorGray, Top: 2}),
		))
	}
	return row.New(12).Add(
		col.New(12).Add(
			text.New("ПОКУПАТЕЛЬ", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%s, ИНН %s%s", buyer.Name, buyer.INN, kppSuffix(buyer.KPP)),
				props.Text{Style: fontstyle.Bold, Size: 9, Top: 6}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("№", 1, align.Center),
		h("Наименование", 4, align.Left),
		h("Кол-во", 1, align.Center),
		h("Цена", 2, align.Right),
		h("НДС", 1, align.Center),
		h("Сумма", 3, align.Right),
	)
}

func tableRows(rows []docdata.Row, cur entity.Currency) []core.Row {
	result := make([]core.Row, 0, len(rows))
	for i, r := range rows {
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", i+1),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(4).Add(text.New(
				r.Name,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(1).Add(text.New(
				fmt.Sprintf("%d %s", r.Quantity, r.Unit),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(2).Add(text.New(
				format.Money(r.Price, cur),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(1).Add(text.New(
				fmt.Sprintf("%d%%", r.VAT),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(3).Add(text.New(
				format.Money(r.Total, cur),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

func totalsRow(data docdata.DocData, cur entity.Currency) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2,
		})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	grandLabel := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2,
		})
	}
	grandValue := func(s string) core.Component {
		return text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1,
		})
	}

	return row.New(22).Add(
		col.New(4),
		col.New(4).Add(
			label("Итого без НДС:"),
			label("В том числе НДС:"),
			grandLabel("Всего к оплате:"),
		),
		col.New(4).Add(
			value(format.Money(data.GrandNet, cur)),
			value(format.Money(data.GrandVAT, cur)),
			grandValue(format.Money(data.GrandTotal, cur)),
		),
	)
}

// footerRows: сумма прописью, для счёта — платёжный QR.
func footerRows(doc entity.Document, data docdata.DocData, qrPayload string) []core.Row {
	var rows []core.Row

	if doc.Currency == entity.CurrencyRUB {
		rows = append(rows, row.New(8).Add(col.New(12).Add(
			text.New(format.AmountInWords(data.GrandTotal), props.Text{
				Style: fontstyle.Italic, Size: 9, Top: 2,
			}),
		)))
	}

	if doc.Type == entity.DocTypeInvoice && qrPayload != "" {
		rows = append(rows, row.New(40).Add(
			col.New(4).Add(code.NewQr(qrPayload, props.Rect{
				Percent: 90,
				Center:  true,
			})),
			col.New(8).Add(
				text.New("Отсканируйте код в мобильном банке,\nчтобы оплатить счет.", props.Text{
					Size: 8, Top: 4, Left: 3, Color: colorGray,
				}),
			),
		))
	}

	return rows
}

func kppSuffix(kpp string) string {
	if kpp == "" {
		return ""
	}
	return ", КПП " + kpp
}
