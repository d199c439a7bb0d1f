// Package printing превращает агрегированные данные документа и шаблон
// печатной формы в самодостаточную HTML-страницу: встроенный стиль, без
// внешних ресурсов, изображения (логотип, QR) только как data-URL.
package printing

import (
	"fmt"
	"html"
	"strings"

	"github.com/mbdocs/mbdocs-api/internal/domain"
	"github.com/mbdocs/mbdocs-api/internal/domain/docdata"
	"github.com/mbdocs/mbdocs-api/internal/domain/entity"
	"github.com/mbdocs/mbdocs-api/internal/domain/format"
	"github.com/mbdocs/mbdocs-api/internal/domain/payment"
)

// QREncoder порт до внешнего генератора изображений: платёжная строка →
// data-URL картинки. Держит рендерер чистым от кодирования PNG.
type QREncoder interface {
	DataURL(payload string) (string, error)
}

// Renderer печатает документы трёх видов по настраиваемому шаблону.
type Renderer struct {
	qr QREncoder
}

// NewRenderer создаёт рендерер.
func NewRenderer(qr QREncoder) *Renderer {
	return &Renderer{qr: qr}
}

// renderContext всё, что нужно блокам при печати одной формы.
type renderContext struct {
	tpl    entity.TemplateSettings
	doc    entity.Document
	seller entity.Company
	buyer  entity.Company
	rows   []docdata.Row

	grandTotal int64
	grandVAT   int64
	grandNet   int64

	cur   entity.Currency
	qrURL string // data-URL платёжного QR; пусто — блок не печатается
}

// Render печатает документ, привязанный к реальным данным. Если продавец или
// покупатель не разрешаются по ссылке, печать обрывается и возвращается
// страница-заглушка вместо частично собранной формы.
func (r *Renderer) Render(
	tpl entity.TemplateSettings,
	doc entity.Document,
	companies []entity.Company,
	products []entity.Product,
) (string, error) {
	if err := tpl.Validate(); err != nil {
		return "", err
	}
	if tpl.DocType != doc.Type {
		return "", fmt.Errorf("%w: шаблон для %q применён к документу %q",
			domain.ErrTemplateInvalid, tpl.DocType, doc.Type)
	}

	data := docdata.Aggregate(doc.Lines, companies, products, doc.SellerID, doc.BuyerID)
	if data.Seller == nil || data.Buyer == nil {
		return wrapHTML(doc.Type.Label()+" №"+doc.Number, pageCSS(tpl),
			`<p>Не указан продавец или покупатель</p>`), nil
	}

	rc := &renderContext{
		tpl:        tpl,
		doc:        doc,
		seller:     *data.Seller,
		buyer:      *data.Buyer,
		rows:       data.Rows,
		grandTotal: data.GrandTotal,
		grandVAT:   data.GrandVAT,
		grandNet:   data.GrandNet,
		cur:        doc.Currency,
	}
	r.attachQR(rc, companies)

	return wrapHTML(doc.Type.Label()+" №"+doc.Number, pageCSS(tpl), renderBody(rc)), nil
}

// Preview печатает форму на синтетических демо-данных для живого
// редактирования шаблона. Сохранённые документы не затрагиваются.
func (r *Renderer) Preview(tpl entity.TemplateSettings, companies []entity.Company) (string, error) {
	if err := tpl.Validate(); err != nil {
		return "", err
	}

	seller := DemoSeller(companies)
	buyer := DemoBuyer(companies)
	rows := DemoRows()

	var grandTotal, grandVAT int64
	for _, row := range rows {
		grandTotal += row.Total
		grandVAT += row.VATAmount
	}

	lines := make([]entity.DocLine, 0, len(rows))
	for i, row := range rows {
		lines = append(lines, entity.DocLine{
			ID:       fmt.Sprintf("%d", i),
			Quantity: row.Quantity,
			Price:    row.Price,
			VAT:      row.VAT,
		})
	}
	doc := entity.Document{
		Type: tpl.DocType,
		DocHeader: entity.DocHeader{
			ID:       "demo",
			Number:   "0001",
			Date:     format.Today(),
			SellerID: seller.ID,
			BuyerID:  buyer.ID,
			Lines:    lines,
			Currency: entity.CurrencyRUB,
		},
		Status: entity.UPDStatusInvoiceAndAct,
	}

	rc := &renderContext{
		tpl:        tpl,
		doc:        doc,
		seller:     seller,
		buyer:      buyer,
		rows:       rows,
		grandTotal: grandTotal,
		grandVAT:   grandVAT,
		grandNet:   grandTotal - grandVAT,
		cur:        entity.CurrencyRUB,
	}
	r.attachQR(rc, []entity.Company{seller, buyer})

	title := tpl.Name
	if title == "" {
		title = tpl.DocType.Label()
	}
	return wrapHTML(title, pageCSS(tpl), renderBody(rc)), nil
}

// attachQR готовит data-URL платёжного QR. Только для счетов и только при
// включённом переключателе; ошибки кодирования не фатальны — блок пропускается.
func (r *Renderer) attachQR(rc *renderContext, companies []entity.Company) {
	if rc.doc.Type != entity.DocTypeInvoice || !rc.tpl.ShowQR || r.qr == nil {
		return
	}
	payload := payment.QRPayload(rc.doc, companies)
	if payload == "" {
		return
	}
	url, err := r.qr.DataURL(payload)
	if err != nil {
		return
	}
	rc.qrURL = url
}

// renderBody прогоняет документ через упорядоченный список блоков его вида.
// Порядок блоков фиксирован структурой списка, а не порядком условий:
// отключение любого блока не двигает и не меняет остальные.
func renderBody(rc *renderContext) string {
	var sb strings.Builder
	for _, b := range blocksFor(rc.doc.Type) {
		if !b.enabled(rc) {
			continue
		}
		b.render(&sb, rc)
	}
	return sb.String()
}

func wrapHTML(title, css, body string) string {
	return `<!DOCTYPE html><html><head><meta charset="utf-8"><title>` +
		html.EscapeString(title) + `</title><style>` + css + `</style></head><body>` +
		body + `</body></html>`
}
