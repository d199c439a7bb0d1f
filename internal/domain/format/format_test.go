package format_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mbdocs/mbdocs-api/internal/domain/entity"
	"github.com/mbdocs/mbdocs-api/internal/domain/format"
)

// nbsp разделитель разрядов ru-RU — неразрывный пробел.
const nbsp = " "

func TestMoney(t *testing.T) {
	cases := []struct {
		name     string
		kopecks  int64
		currency entity.Currency
		want     string
	}{
		{"ноль", 0, entity.CurrencyRUB, "0,00 ₽"},
		{"копейки", 56, entity.CurrencyRUB, "0,56 ₽"},
		{"без группировки", 99_999, entity.CurrencyRUB, "999,99 ₽"},
		{"группировка разрядов", 123_456, entity.CurrencyRUB, "1" + nbsp + "234,56 ₽"},
		{"круглая сумма", 500_000, entity.CurrencyRUB, "5" + nbsp + "000,00 ₽"},
		{"доллары", 123_456, entity.CurrencyUSD, "1" + nbsp + "234,56 $"},
		{"евро", 100, entity.CurrencyEUR, "1,00 €"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, format.Money(tc.kopecks, tc.currency))
		})
	}
}

// Неизвестная валюта печатается своим кодом вместо символа.
func TestMoney_UnknownCurrency(t *testing.T) {
	assert.Equal(t, "1,00 XXX", format.Money(100, entity.Currency("XXX")))
}

func TestDate(t *testing.T) {
	assert.Equal(t, "15.03.2024", format.Date("2024-03-15"))
	assert.Equal(t, "01.01.2026", format.Date("2026-01-01"))
}

// Нераспознанная дата возвращается как есть, печать не падает.
func TestDate_Unparseable(t *testing.T) {
	assert.Equal(t, "не дата", format.Date("не дата"))
	assert.Equal(t, "", format.Date(""))
}
