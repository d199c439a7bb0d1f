// Package payment строит платёжную строку для QR-кода по ГОСТ Р 56042-2014.
package payment

import (
	"fmt"
	"strings"

	"github.com/mbdocs/mbdocs-api/internal/domain/entity"
	"github.com/mbdocs/mbdocs-api/internal/domain/format"
)

// ServiceTag обязательный признак формата: ST, версия 0001, кодировка 2 (UTF-8).
const ServiceTag = "ST00012"

// QRPayload собирает платёжную строку счёта: реквизиты получателя, сумма и
// назначение платежа, разделённые «|». Пустые реквизиты опускаются целиком,
// пары вида «KPP=» в строку не попадают. Если продавец не разрешается по
// ссылке, возвращается пустая строка — кодировать нечего.
//
// Сумма передаётся в копейках: поле Sum по ГОСТ Р 56042-2014 задаётся
// в минорных единицах, в отличие от отображаемых сумм.
func QRPayload(doc entity.Document, companies []entity.Company) string {
	seller, ok := entity.FindCompany(companies, doc.SellerID)
	if !ok {
		return ""
	}

	var total int64
	for _, line := range doc.Lines {
		total += format.LineTotal(line.Price, line.Quantity)
	}

	pairs := []struct {
		key   string
		value string
	}{
		{"Name", seller.Name},
		{"PersonalAcc", seller.RS},
		{"BankName", seller.Bank},
		{"BIC", seller.BIK},
		{"CorrespAcc", seller.KS},
		{"PayeeINN", seller.INN},
		{"KPP", seller.KPP},
		{"Sum", fmt.Sprintf("%d", total)},
		{"Purpose", fmt.Sprintf("Оплата по счету №%s от %s", doc.Number, format.Date(doc.Date))},
	}

	parts := []string{ServiceTag}
	for _, p := range pairs {
		if p.value == "" {
			continue
		}
		parts = append(parts, p.key+"="+p.value)
	}
	return strings.Join(parts, "|")
}
