package dto

// DocLineRequest строка документа из запроса. Количество и цена терпимы к
// мусорному вводу: количество приводится к 1, цена и НДС — к 0.
type DocLineRequest struct {
	ID        string        `json:"id"`
	ProductID string        `json:"productId"`
	Quantity  QuantityValue `json:"quantity"`
	Price     MoneyValue    `json:"price"`
	VAT       MoneyValue    `json:"vat"`
}

// DocumentRequest тело создания и полного обновления документа. Номер в теле
// игнорируется: при создании он выдаётся счётчиком и далее неизменяем.
type DocumentRequest struct {
	Date     string           `json:"date"` // ISO YYYY-MM-DD; пусто — сегодня
	SellerID string           `json:"sellerId"`
	BuyerID  string           `json:"buyerId"`
	Lines    []DocLineRequest `json:"lines"`
	Currency string           `json:"currency"`

	// поля акта
	ContractNumber string `json:"contractNumber"`
	ContractDate   string `json:"contractDate"`

	// поля УПД
	CorrectionNumber string `json:"correctionNumber"`
	Status           string `json:"status"`
}

// DocumentResponse документ в ответе API: заголовок, вариантные поля
// и посчитанные итоги.
type DocumentResponse struct {
	ID       string            `json:"id"`
	Type     string            `json:"type"`
	Number   string            `json:"number"`
	Date     string            `json:"date"`
	SellerID string            `json:"sellerId"`
	BuyerID  string            `json:"buyerId"`
	Lines    []DocLineResponse `json:"lines"`
	Currency string            `json:"currency"`

	ContractNumber   string `json:"contractNumber,omitempty"`
	ContractDate     string `json:"contractDate,omitempty"`
	CorrectionNumber string `json:"correctionNumber,omitempty"`
	Status           string `json:"status,omitempty"`

	Total    int64 `json:"total"`    // копейки, НДС включён
	TotalVAT int64 `json:"totalVat"` // копейки
}

// DocLineResponse строка документа в ответе API.
type DocLineResponse struct {
	ID        string `json:"id"`
	ProductID string `json:"productId"`
	Quantity  int64  `json:"quantity"`
	Price     int64  `json:"price"`
	VAT       int64  `json:"vat"`
}
