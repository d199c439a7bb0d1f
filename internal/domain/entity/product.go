package entity

// ProductID непрозрачный идентификатор товара. Ссылки из строк документов слабые.
type ProductID string

// Currency код валюты документа или товара.
type Currency string

const (
	CurrencyRUB Currency = "RUB"
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
)

// CurrencySymbols отображаемые символы валют.
var CurrencySymbols = map[Currency]string{
	CurrencyRUB: "₽",
	CurrencyUSD: "$",
	CurrencyEUR: "€",
}

// DefaultUnit единица измерения по умолчанию для товаров без заполненного поля.
const DefaultUnit = "шт"

// Product товар или услуга из каталога. Цена хранится в копейках.
type Product struct {
	ID       ProductID `json:"id"`
	Name     string    `json:"name"`
	Price    int64     `json:"price"` // копейки
	VAT      int64     `json:"vat"`   // ставка НДС в процентах (0/10/20)
	Barcode  string    `json:"barcode"`
	Currency Currency  `json:"currency"`
	Unit     string    `json:"unit"`
}

// FindProduct ищет товар по идентификатору в снапшоте каталога.
func FindProduct(products []Product, id ProductID) (*Product, bool) {
	for i := range products {
		if products[i].ID == id {
			return &products[i], true
		}
	}
	return nil, false
}
