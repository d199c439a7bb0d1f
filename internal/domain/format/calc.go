package format

import "github.com/shopspring/decimal"

// LineTotal сумма строки в копейках: цена × количество.
func LineTotal(price, qty int64) int64 {
	return price * qty
}

// LineVAT сумма НДС строки в копейках. НДС включён в цену и извлекается как
// round(total·rate/(100+rate)) с округлением половины от нуля (для
// неотрицательных сумм это классическое half-up). Единственная точка
// округления во всей денежной арифметике.
func LineVAT(price, qty, vatRate int64) int64 {
	if vatRate == 0 {
		return 0
	}
	total := decimal.NewFromInt(LineTotal(price, qty))
	vat := total.
		Mul(decimal.NewFromInt(vatRate)).
		Div(decimal.NewFromInt(100 + vatRate)).
		Round(0)
	return vat.IntPart()
}

// LineNet сумма строки без НДС. Инвариант: LineNet + LineVAT == LineTotal точно.
func LineNet(price, qty, vatRate int64) int64 {
	return LineTotal(price, qty) - LineVAT(price, qty, vatRate)
}
