package payment_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mbdocs/mbdocs-api/internal/domain/entity"
	"github.com/mbdocs/mbdocs-api/internal/domain/payment"
)

func invoiceDoc() entity.Document {
	return entity.Document{
		Type: entity.DocTypeInvoice,
		DocHeader: entity.DocHeader{
			ID: "d1", Number: "0042", Date: "2024-03-15",
			SellerID: "c1", BuyerID: "c2",
			Lines: []entity.DocLine{
				{ID: "l1", ProductID: "p1", Quantity: 2, Price: 500_000, VAT: 20},
			},
			Currency: entity.CurrencyRUB,
		},
	}
}

func sellerWithBank() entity.Company {
	return entity.Company{
		ID: "c1", Name: `ООО "Ромашка"`, INN: "7707123456", KPP: "770701001",
		Bank: "ПАО Сбербанк", BIK: "044525225",
		RS: "40702810938000012345", KS: "30101810400000000225",
		Role: entity.RoleSeller,
	}
}

func TestQRPayload(t *testing.T) {
	got := payment.QRPayload(invoiceDoc(), []entity.Company{sellerWithBank()})

	want := "ST00012" +
		`|Name=ООО "Ромашка"` +
		"|PersonalAcc=40702810938000012345" +
		"|BankName=ПАО Сбербанк" +
		"|BIC=044525225" +
		"|CorrespAcc=30101810400000000225" +
		"|PayeeINN=7707123456" +
		"|KPP=770701001" +
		"|Sum=1000000" +
		"|Purpose=Оплата по счету №0042 от 15.03.2024"
	assert.Equal(t, want, got)
}

// Сумма — в копейках, а не в рублях.
func TestQRPayload_SumInKopecks(t *testing.T) {
	got := payment.QRPayload(invoiceDoc(), []entity.Company{sellerWithBank()})
	assert.Contains(t, got, "|Sum=1000000|")
	assert.NotContains(t, got, "|Sum=10000|")
}

// Пустые реквизиты опускаются целиком: пары вида «KPP=» в строку не попадают.
func TestQRPayload_OmitsEmptyFields(t *testing.T) {
	seller := sellerWithBank()
	seller.KPP = ""
	seller.KS = ""

	got := payment.QRPayload(invoiceDoc(), []entity.Company{seller})

	assert.NotContains(t, got, "KPP=")
	assert.NotContains(t, got, "CorrespAcc=")
	assert.True(t, strings.HasPrefix(got, payment.ServiceTag+"|"))
}

// Продавец не разрешается — кодировать нечего.
func TestQRPayload_UnresolvedSeller(t *testing.T) {
	assert.Equal(t, "", payment.QRPayload(invoiceDoc(), nil))
}
