package dto

// ProductRequest тело создания и полного обновления товара.
// Цена принимается в копейках; нечисловые значения приводятся к нулю.
type ProductRequest struct {
	Name     string     `json:"name"`
	Price    MoneyValue `json:"price"`
	VAT      MoneyValue `json:"vat"`
	Barcode  string     `json:"barcode"`
	Currency string     `json:"currency"`
	Unit     string     `json:"unit"`
}
