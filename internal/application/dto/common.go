package dto

import (
	"bytes"
	"strconv"
)

// ErrorResponse тело ошибки HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// QuantityValue количество в строке документа. Клиенты присылают и числа, и
// строки; нечисловой мусор приводится к 1, а не роняет разбор тела запроса.
type QuantityValue int64

func (q *QuantityValue) UnmarshalJSON(b []byte) error {
	*q = QuantityValue(flexInt64(b, 1))
	return nil
}

// MoneyValue денежное значение в копейках либо ставка НДС в процентах.
// Нечисловой мусор приводится к 0.
type MoneyValue int64

func (m *MoneyValue) UnmarshalJSON(b []byte) error {
	*m = MoneyValue(flexInt64(b, 0))
	return nil
}

// flexInt64 разбирает JSON-значение как целое: число, строку с числом или
// что угодно ещё — тогда возвращается fallback.
func flexInt64(b []byte, fallback int64) int64 {
	s := string(bytes.Trim(bytes.TrimSpace(b), `"`))
	if s == "" || s == "null" {
		return fallback
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	// дробные значения усекаются до целого
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int64(f)
	}
	return fallback
}
