package printing

import (
	"fmt"
	"html"
	"strings"

	"github.com/mbdocs/mbdocs-api/internal/domain/entity"
	"github.com/mbdocs/mbdocs-api/internal/domain/format"
)

// block один участок печатной формы. Список блоков вида документа задаёт
// неизменный порядок: логотип → шапка → [банк] → заголовок → стороны →
// таблица → итоги → [сумма прописью] → [подписи [+печать]] → [QR] → подвал.
type block struct {
	enabled func(rc *renderContext) bool
	render  func(sb *strings.Builder, rc *renderContext)
}

func blocksFor(docType entity.DocType) []block {
	switch docType {
	case entity.DocTypeAct:
		return actBlocks
	case entity.DocTypeUPD:
		return updBlocks
	default:
		return invoiceBlocks
	}
}

func always(*renderContext) bool { return true }

func esc(s string) string { return html.EscapeString(s) }

func (rc *renderContext) money(kopecks int64) string {
	return format.Money(kopecks, rc.cur)
}

// innKPP строка «ИНН X, КПП Y»; КПП опускается, если пуст (ИП его не имеют).
func innKPP(c entity.Company) string {
	s := "ИНН " + esc(c.INN)
	if c.KPP != "" {
		s += ", КПП " + esc(c.KPP)
	}
	return s
}

func signName(name string) string {
	if name == "" {
		return "________________"
	}
	return esc(name)
}

// ── Общие блоки ───────────────────────────────────────────────────────────────

var blockLogo = block{
	enabled: func(rc *renderContext) bool { return rc.tpl.ShowLogo && rc.tpl.LogoURL != "" },
	render: func(sb *strings.Builder, rc *renderContext) {
		fmt.Fprintf(sb, `<img src="%s" class="logo"/>`, esc(rc.tpl.LogoURL))
	},
}

var blockHeaderText = block{
	enabled: func(rc *renderContext) bool { return rc.tpl.HeaderText != "" },
	render: func(sb *strings.Builder, rc *renderContext) {
		fmt.Fprintf(sb, `<div class="header-text">%s</div>`, esc(rc.tpl.HeaderText))
	},
}

var blockFooterText = block{
	enabled: func(rc *renderContext) bool { return rc.tpl.FooterText != "" },
	render: func(sb *strings.Builder, rc *renderContext) {
		fmt.Fprintf(sb, `<div class="footer-text">%s</div>`, esc(rc.tpl.FooterText))
	},
}

// ── Счёт ──────────────────────────────────────────────────────────────────────

var invoiceBlocks = []block{
	blockLogo,
	blockHeaderText,
	{enabled: func(rc *renderContext) bool { return rc.tpl.ShowBankBlock }, render: renderBankBlock},
	{enabled: always, render: renderInvoiceTitle},
	{enabled: always, render: renderInvoiceParties},
	{enabled: always, render: renderInvoiceTable},
	{enabled: always, render: renderInvoiceTotals},
	{enabled: func(rc *renderContext) bool { return rc.tpl.ShowAmountWords }, render: renderAmountWordsBold},
	{enabled: func(rc *renderContext) bool { return rc.tpl.ShowSignatures }, render: renderInvoiceSignatures},
	{enabled: func(rc *renderContext) bool { return rc.qrURL != "" }, render: renderQRBlock},
	blockFooterText,
}

// renderBankBlock платёжные реквизиты получателя в разграфлённой рамке,
// как в верхней части типового счёта.
func renderBankBlock(sb *strings.Builder, rc *renderContext) {
	s := rc.seller
	kpp := ""
	if s.KPP != "" {
		kpp = " КПП " + esc(s.KPP)
	}
	fmt.Fprintf(sb, `<table class="bank-block" style="border:2px solid #000;">
<tr><td style="width:55%%;border-right:2px solid #000;border-bottom:1px solid #000;" rowspan="2"><div class="header-cell">Банк получателя</div><div class="bold">%s</div></td>
<td style="border-bottom:1px solid #000;"><div class="header-cell">БИК</div><div>%s</div></td></tr>
<tr><td><div class="header-cell">Сч. №</div><div>%s</div></td></tr>
<tr><td style="border-right:2px solid #000;border-top:2px solid #000;"><div class="header-cell">Получатель</div><div class="bold">%s</div><div>ИНН %s%s</div></td>
<td style="border-top:2px solid #000;"><div class="header-cell">Сч. №</div><div class="bold">%s</div></td></tr></table>`,
		esc(s.Bank), esc(s.BIK), esc(s.KS), esc(s.Name), esc(s.INN), kpp, esc(s.RS))
}

func renderInvoiceTitle(sb *strings.Builder, rc *renderContext) {
	fmt.Fprintf(sb, `<div class="title">Счет на оплату № %s от %s</div><hr class="thick"/><hr class="thin"/>`,
		esc(rc.doc.Number), format.Date(rc.doc.Date))
}

func renderInvoiceParties(sb *strings.Builder, rc *renderContext) {
	fmt.Fprintf(sb, `<table style="margin:8px 0;"><tr><td style="width:100px;" class="bold">Поставщик:</td><td>%s, %s, %s</td></tr>
<tr><td class="bold">Покупатель:</td><td>%s, %s, %s</td></tr></table>`,
		esc(rc.seller.Name), innKPP(rc.seller), esc(rc.seller.Address),
		esc(rc.buyer.Name), innKPP(rc.buyer), esc(rc.buyer.Address))
}

func renderInvoiceTable(sb *strings.Builder, rc *renderContext) {
	sb.WriteString(`<table class="bordered"><thead><tr>`)
	if rc.tpl.ShowItemNumbers {
		sb.WriteString(`<th style="width:30px;">№</th>`)
	}
	sb.WriteString(`<th>Наименование товара, работы, услуги</th><th style="width:40px;">Ед.</th><th style="width:45px;">Кол-во</th><th style="width:75px;">Цена</th><th style="width:80px;">Сумма</th><th style="width:40px;">НДС</th><th style="width:75px;">Сумма НДС</th><th style="width:85px;">Всего</th></tr></thead><tbody>`)
	for i, r := range rc.rows {
		sb.WriteString(`<tr>`)
		if rc.tpl.ShowItemNumbers {
			fmt.Fprintf(sb, `<td class="center">%d</td>`, i+1)
		}
		fmt.Fprintf(sb, `<td>%s</td><td class="center">%s</td><td class="right">%d</td><td class="right">%s</td><td class="right">%s</td><td class="center">%d%%</td><td class="right">%s</td><td class="right">%s</td></tr>`,
			esc(r.Name), esc(r.Unit), r.Quantity,
			rc.money(r.Price), rc.money(r.Net), r.VAT, rc.money(r.VATAmount), rc.money(r.Total))
	}
	sb.WriteString(`</tbody></table>`)
}

func renderInvoiceTotals(sb *strings.Builder, rc *renderContext) {
	fmt.Fprintf(sb, `<table><tr class="totals-row"><td colspan="7"></td><td class="right bold" style="width:160px;">Итого:</td><td class="right bold" style="width:85px;">%s</td></tr>
<tr class="totals-row"><td colspan="7"></td><td class="right bold">В том числе НДС:</td><td class="right bold">%s</td></tr>
<tr class="totals-row"><td colspan="7"></td><td class="right bold">Всего к оплате:</td><td class="right bold">%s</td></tr></table>`,
		rc.money(rc.grandNet), rc.money(rc.grandVAT), rc.money(rc.grandTotal))
	fmt.Fprintf(sb, `<p style="margin:10px 0;">Всего наименований %d, на сумму %s</p>`,
		len(rc.rows), rc.money(rc.grandTotal))
}

func renderAmountWordsBold(sb *strings.Builder, rc *renderContext) {
	fmt.Fprintf(sb, `<p style="margin-bottom:15px;font-weight:bold;">%s</p>`,
		format.AmountInWords(rc.grandTotal))
}

func renderInvoiceSignatures(sb *strings.Builder, rc *renderContext) {
	fmt.Fprintf(sb, `<hr class="thin"/><table class="sign-block" style="width:100%%;"><tr>
<td style="width:50%%;"><span class="bold">Руководитель</span> <span class="sign-line"></span> / %s /</td>
<td><span class="bold">Бухгалтер</span> <span class="sign-line"></span> / %s /</td></tr></table>`,
		signName(rc.seller.Director), signName(rc.seller.Accountant))
	if rc.tpl.ShowStamp {
		sb.WriteString(`<p style="margin-top:10px;">М.П.</p>`)
	}
}

func renderQRBlock(sb *strings.Builder, rc *renderContext) {
	fmt.Fprintf(sb, `<div class="qr-block"><img src="%s"/><div><p class="bold">QR-код для оплаты (СТ00012)</p><p>Сумма: %s</p></div></div>`,
		rc.qrURL, rc.money(rc.grandTotal))
}

// ── Акт ───────────────────────────────────────────────────────────────────────

var actBlocks = []block{
	blockLogo,
	blockHeaderText,
	{enabled: always, render: renderActTitle},
	{enabled: always, render: renderActParties},
	{enabled: always, render: renderActTable},
	{enabled: always, render: renderActTotals},
	{enabled: func(rc *renderContext) bool { return rc.tpl.ShowAmountWords }, render: renderActAmountWords},
	{enabled: always, render: renderActClaims},
	{enabled: func(rc *renderContext) bool { return rc.tpl.ShowSignatures }, render: renderActSignatures},
	blockFooterText,
}

func renderActTitle(sb *strings.Builder, rc *renderContext) {
	fmt.Fprintf(sb, `<div class="title">Акт № %s от %s</div>`, esc(rc.doc.Number), format.Date(rc.doc.Date))
	if rc.doc.ContractNumber != "" {
		contractDate := "___"
		if rc.doc.ContractDate != "" {
			contractDate = format.Date(rc.doc.ContractDate)
		}
		fmt.Fprintf(sb, `<div class="subtitle">к договору № %s от %s</div>`,
			esc(rc.doc.ContractNumber), contractDate)
	}
	sb.WriteString(`<hr class="thick"/><hr class="thin"/>`)
}

func renderActParties(sb *strings.Builder, rc *renderContext) {
	fmt.Fprintf(sb, `<table style="margin:8px 0;"><tr><td style="width:100px;" class="bold">Исполнитель:</td><td>%s, %s, %s</td></tr>
<tr><td class="bold">Заказчик:</td><td>%s, %s, %s</td></tr></table>`,
		esc(rc.seller.Name), innKPP(rc.seller), esc(rc.seller.Address),
		esc(rc.buyer.Name), innKPP(rc.buyer), esc(rc.buyer.Address))
	sellerDirector := "___"
	if rc.seller.Director != "" {
		sellerDirector = esc(rc.seller.Director)
	}
	buyerDirector := "___"
	if rc.buyer.Director != "" {
		buyerDirector = esc(rc.buyer.Director)
	}
	fmt.Fprintf(sb, `<p style="margin:8px 0;">Мы, нижеподписавшиеся, Исполнитель — %s в лице %s, с одной стороны, и Заказчик — %s в лице %s, с другой стороны, составили настоящий Акт о том, что Исполнителем были выполнены следующие работы/оказаны услуги:</p>`,
		esc(rc.seller.Name), sellerDirector, esc(rc.buyer.Name), buyerDirector)
}

func renderActTable(sb *strings.Builder, rc *renderContext) {
	sb.WriteString(`<table class="bordered"><thead><tr>`)
	if rc.tpl.ShowItemNumbers {
		sb.WriteString(`<th style="width:30px;">№</th>`)
	}
	sb.WriteString(`<th>Наименование работы, услуги</th><th style="width:40px;">Ед.</th><th style="width:50px;">Кол-во</th><th style="width:80px;">Цена</th><th style="width:90px;">Сумма</th></tr></thead><tbody>`)
	for i, r := range rc.rows {
		sb.WriteString(`<tr>`)
		if rc.tpl.ShowItemNumbers {
			fmt.Fprintf(sb, `<td class="center">%d</td>`, i+1)
		}
		fmt.Fprintf(sb, `<td>%s</td><td class="center">%s</td><td class="right">%d</td><td class="right">%s</td><td class="right">%s</td></tr>`,
			esc(r.Name), esc(r.Unit), r.Quantity, rc.money(r.Price), rc.money(r.Total))
	}
	sb.WriteString(`</tbody></table>`)
}

func renderActTotals(sb *strings.Builder, rc *renderContext) {
	vatRate := int64(20)
	if len(rc.rows) > 0 {
		vatRate = rc.rows[0].VAT
	}
	fmt.Fprintf(sb, `<table><tr class="totals-row"><td colspan="4"></td><td class="right bold" style="width:100px;">Итого:</td><td class="right bold" style="width:90px;">%s</td></tr>
<tr class="totals-row"><td colspan="4"></td><td class="right bold">НДС (%d%%):</td><td class="right bold">%s</td></tr>
<tr class="totals-row"><td colspan="4"></td><td class="right bold">Всего:</td><td class="right bold">%s</td></tr></table>`,
		rc.money(rc.grandNet), vatRate, rc.money(rc.grandVAT), rc.money(rc.grandTotal))
}

func renderActAmountWords(sb *strings.Builder, rc *renderContext) {
	fmt.Fprintf(sb, `<p style="margin:10px 0;">Всего оказано услуг на сумму: <b>%s</b></p>`,
		format.AmountInWords(rc.grandTotal))
}

func renderActClaims(sb *strings.Builder, rc *renderContext) {
	sb.WriteString(`<p style="margin:5px 0;">Вышеперечисленные работы (услуги) выполнены полностью и в срок. Заказчик претензий по объему, качеству и срокам оказания услуг не имеет.</p>`)
}

func renderActSignatures(sb *strings.Builder, rc *renderContext) {
	stamp := ""
	if rc.tpl.ShowStamp {
		stamp = `<br/><p>М.П.</p>`
	}
	fmt.Fprintf(sb, `<hr class="thin" style="margin-top:15px;"/><table class="sign-block" style="width:100%%;"><tr>
<td style="width:50%%;padding-right:20px;"><p class="bold" style="margin-bottom:20px;">Исполнитель:</p><p>%s</p><br/><p><span class="sign-line"></span> / %s /</p><p class="small">подпись</p>%s</td>
<td style="padding-left:20px;"><p class="bold" style="margin-bottom:20px;">Заказчик:</p><p>%s</p><br/><p><span class="sign-line"></span> / %s /</p><p class="small">подпись</p>%s</td></tr></table>`,
		esc(rc.seller.Name), signName(rc.seller.Director), stamp,
		esc(rc.buyer.Name), signName(rc.buyer.Director), stamp)
}

// ── УПД ───────────────────────────────────────────────────────────────────────

var updBlocks = []block{
	blockLogo,
	blockHeaderText,
	{enabled: always, render: renderUPDStatus},
	{enabled: always, render: renderUPDTitle},
	{enabled: always, render: renderUPDParties},
	{enabled: always, render: renderUPDTable},
	{enabled: func(rc *renderContext) bool { return rc.tpl.ShowAmountWords }, render: renderUPDAmountWords},
	{enabled: func(rc *renderContext) bool { return rc.tpl.ShowSignatures }, render: renderUPDSignatures},
	blockFooterText,
}

func renderUPDStatus(sb *strings.Builder, rc *renderContext) {
	statusText := "Передаточный документ (акт)"
	if rc.doc.Status == entity.UPDStatusInvoiceAndAct {
		statusText = "Счет-фактура и передаточный документ (акт)"
	}
	fmt.Fprintf(sb, `<div style="text-align:right;font-size:%dpx;margin-bottom:5px;">Статус: <b>%s</b> — %s</div>`,
		rc.tpl.FontSize-1, esc(rc.doc.Status), statusText)
	sb.WriteString(`<table style="margin-bottom:5px;"><tr><td colspan="2" style="text-align:center;font-size:9px;color:#666;">Приложение №1 к постановлению Правительства РФ от 26.12.2011 №1137</td></tr></table>`)
}

func renderUPDTitle(sb *strings.Builder, rc *renderContext) {
	fmt.Fprintf(sb, `<div class="title" style="font-size:%dpx;">Универсальный передаточный документ</div>`,
		rc.tpl.TitleFontSize-2)
	fmt.Fprintf(sb, `<table style="margin-bottom:5px;"><tr><td class="bold" style="width:200px;">Счёт-фактура №</td><td>%s от %s</td></tr>`,
		esc(rc.doc.Number), format.Date(rc.doc.Date))
	if rc.doc.CorrectionNumber != "" {
		fmt.Fprintf(sb, `<tr><td class="bold">Исправление №</td><td>%s</td></tr>`, esc(rc.doc.CorrectionNumber))
	}
	sb.WriteString(`</table><hr class="thick"/>`)
}

func renderUPDParties(sb *strings.Builder, rc *renderContext) {
	currency := string(rc.cur)
	if rc.cur == entity.CurrencyRUB {
		currency = "Российский рубль (643)"
	}
	sellerINNKPP := esc(rc.seller.INN)
	if rc.seller.KPP != "" {
		sellerINNKPP += " / " + esc(rc.seller.KPP)
	}
	buyerINNKPP := esc(rc.buyer.INN)
	if rc.buyer.KPP != "" {
		buyerINNKPP += " / " + esc(rc.buyer.KPP)
	}
	fmt.Fprintf(sb, `<table style="margin:5px 0;font-size:%dpx;">
<tr><td class="bold" style="width:130px;">Продавец (1):</td><td>%s</td></tr>
<tr><td class="bold">Адрес (2):</td><td>%s</td></tr>
<tr><td class="bold">ИНН/КПП (2б):</td><td>%s</td></tr>
<tr><td class="bold">Покупатель (6):</td><td>%s</td></tr>
<tr><td class="bold">Адрес (6а):</td><td>%s</td></tr>
<tr><td class="bold">ИНН/КПП (6б):</td><td>%s</td></tr>
<tr><td class="bold">Валюта (7):</td><td>%s</td></tr></table>`,
		rc.tpl.FontSize-1,
		esc(rc.seller.Name), esc(rc.seller.Address), sellerINNKPP,
		esc(rc.buyer.Name), esc(rc.buyer.Address), buyerINNKPP,
		currency)
}

func renderUPDTable(sb *strings.Builder, rc *renderContext) {
	sb.WriteString(`<table class="bordered"><thead><tr><th style="width:20px;font-size:8px;">А</th>`)
	if rc.tpl.ShowItemNumbers {
		sb.WriteString(`<th style="width:25px;">№<br/>(1)</th>`)
	}
	sb.WriteString(`<th>Наименование товара<br/>(описание работ, услуг) (1а)</th><th style="width:35px;">Ед.<br/>(2а)</th><th style="width:40px;">Кол-во<br/>(3)</th><th style="width:70px;">Цена<br/>(4)</th><th style="width:75px;">Стоимость без НДС<br/>(5)</th><th style="width:35px;">Ставка<br/>НДС (7)</th><th style="width:70px;">Сумма НДС<br/>(8)</th><th style="width:80px;">Стоимость с НДС<br/>(9)</th></tr></thead><tbody>`)
	for i, r := range rc.rows {
		sb.WriteString(`<tr><td class="center" style="font-size:9px;">1</td>`)
		if rc.tpl.ShowItemNumbers {
			fmt.Fprintf(sb, `<td class="center">%d</td>`, i+1)
		}
		fmt.Fprintf(sb, `<td>%s</td><td class="center">%s</td><td class="right">%d</td><td class="right">%s</td><td class="right">%s</td><td class="center">%d%%</td><td class="right">%s</td><td class="right">%s</td></tr>`,
			esc(r.Name), esc(r.Unit), r.Quantity,
			rc.money(r.Price), rc.money(r.Net), r.VAT, rc.money(r.VATAmount), rc.money(r.Total))
	}
	colspan := 5
	if rc.tpl.ShowItemNumbers {
		colspan = 6
	}
	fmt.Fprintf(sb, `<tr class="bold"><td colspan="%d" class="right">Всего к оплате:</td><td class="right">%s</td><td class="center">X</td><td class="right">%s</td><td class="right">%s</td></tr></tbody></table>`,
		colspan, rc.money(rc.grandNet), rc.money(rc.grandVAT), rc.money(rc.grandTotal))
}

func renderUPDAmountWords(sb *strings.Builder, rc *renderContext) {
	fmt.Fprintf(sb, `<p style="margin:10px 0;">Всего к оплате: <b>%s</b></p>`,
		format.AmountInWords(rc.grandTotal))
}

func renderUPDSignatures(sb *strings.Builder, rc *renderContext) {
	sb.WriteString(`<hr class="thick" style="margin-top:10px;"/><div style="text-align:center;margin:5px 0;font-weight:bold;">[ II. Передаточный документ (акт) ]</div>`)
	basis := "Без договора"
	if rc.doc.CorrectionNumber != "" {
		basis = "Договор №" + esc(rc.doc.CorrectionNumber)
	}
	fmt.Fprintf(sb, `<table style="margin:5px 0;font-size:%dpx;">
<tr><td class="bold" style="width:250px;">Основание передачи (10):</td><td>%s</td></tr>
<tr><td class="bold">Данные о транспортировке (11):</td><td>—</td></tr></table>`,
		rc.tpl.FontSize-1, basis)
	stamp := ""
	if rc.tpl.ShowStamp {
		stamp = `<p style="margin-top:10px;">М.П.</p>`
	}
	fmt.Fprintf(sb, `<hr class="thin"/><table class="sign-block" style="width:100%%;"><tr>
<td style="width:50%%;padding-right:15px;vertical-align:top;"><p class="bold" style="margin-bottom:8px;">Товар (груз) передал / услугу оказал:</p><p>%s</p><br/><p><span class="sign-line"></span> / %s /</p><p class="small">подпись, дата</p>%s</td>
<td style="padding-left:15px;vertical-align:top;"><p class="bold" style="margin-bottom:8px;">Товар (груз) получил / услугу принял:</p><p>%s</p><br/><p><span class="sign-line"></span> / %s /</p><p class="small">подпись, дата</p>%s</td></tr></table>`,
		esc(rc.seller.Name), signName(rc.seller.Director), stamp,
		esc(rc.buyer.Name), signName(rc.buyer.Director), stamp)
}
