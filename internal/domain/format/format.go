// Package format содержит денежную арифметику в копейках и отображение
// значений в русской локали: суммы, даты, сумма прописью.
//
// Все расчёты ведутся в целых минорных единицах (копейках), чтобы исключить
// накопление ошибок плавающей точки. НДС всегда считается включённым в цену.
package format

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/mbdocs/mbdocs-api/internal/domain/entity"
)

var ruPrinter = message.NewPrinter(language.Russian)

// Money форматирует сумму в копейках для отображения: группировка разрядов
// по правилам ru-RU, ровно два знака после запятой, символ валюты в конце.
func Money(kopecks int64, currency entity.Currency) string {
	value := float64(kopecks) / 100
	formatted := ruPrinter.Sprintf("%v",
		number.Decimal(value, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
	sym, ok := entity.CurrencySymbols[currency]
	if !ok {
		sym = string(currency)
	}
	return formatted + " " + sym
}

// Date переводит ISO-дату YYYY-MM-DD в отображаемый вид ДД.ММ.ГГГГ.
// Нераспознанное значение возвращается как есть.
func Date(isoDate string) string {
	t, err := time.Parse("2006-01-02", isoDate)
	if err != nil {
		return isoDate
	}
	return t.Format("02.01.2006")
}

// Today текущая дата в ISO-виде, как она хранится в документах.
func Today() string {
	return time.Now().Format("2006-01-02")
}
