package domain

import "errors"

// Ошибки домена (без внешних зависимостей).
var (
	ErrNotFound            = errors.New("ресурс не найден")
	ErrInvalidInput        = errors.New("некорректные входные данные")
	ErrTemplateInvalid     = errors.New("шаблон повреждён или заполнен не полностью")
	ErrMissingCounterparty = errors.New("не указан продавец или покупатель")
)
