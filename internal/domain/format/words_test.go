package format_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mbdocs/mbdocs-api/internal/domain/format"
)

// Сумма прописью: согласование рода и падежа русских числительных.
func TestAmountInWords(t *testing.T) {
	cases := []struct {
		name    string
		kopecks int64
		want    string
	}{
		{"ноль рублей", 0, "Ноль рублей 00 копеек"},
		{"ноль рублей с копейками", 45, "Ноль рублей 45 копеек"},
		{"один рубль", 100, "Один рубль 00 копеек"},
		{"одна копейка", 101, "Один рубль 01 копейка"},
		{"два рубля", 245, "Два рубля 45 копеек"},
		{"пять рублей", 500, "Пять рублей 00 копеек"},
		{"одиннадцать — родительный множественного", 1_100, "Одиннадцать рублей 00 копеек"},
		{"двадцать один рубль", 2_100, "Двадцать один рубль 00 копеек"},
		{"сто один рубль", 10_100, "Сто один рубль 00 копеек"},
		{"одна тысяча — женский род", 100_000, "Одна тысяча рублей 00 копеек"},
		{"одна тысяча один рубль", 100_100, "Одна тысяча один рубль 00 копеек"},
		{"две тысячи — женский род", 200_000, "Две тысячи рублей 00 копеек"},
		{"полторы тысячи", 150_000, "Одна тысяча пятьсот рублей 00 копеек"},
		{"сто пятьдесят тысяч", 15_000_000, "Сто пятьдесят тысяч рублей 00 копеек"},
		{"миллион со всеми разрядами", 123_456_789,
			"Один миллион двести тридцать четыре тысячи пятьсот шестьдесят семь рублей 89 копеек"},
		{"миллиард", 100_000_000_000, "Один миллиард рублей 00 копеек"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, format.AmountInWords(tc.kopecks))
		})
	}
}

// Копейки всегда печатаются двумя цифрами.
func TestAmountInWords_TwoDigitKopecks(t *testing.T) {
	assert.Equal(t, "Один рубль 05 копеек", format.AmountInWords(105))
	assert.Equal(t, "Один рубль 02 копейки", format.AmountInWords(102))
}
