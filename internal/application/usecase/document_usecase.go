package usecase

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/mbdocs/mbdocs-api/internal/application/dto"
	"github.com/mbdocs/mbdocs-api/internal/domain"
	"github.com/mbdocs/mbdocs-api/internal/domain/docdata"
	"github.com/mbdocs/mbdocs-api/internal/domain/entity"
	"github.com/mbdocs/mbdocs-api/internal/domain/format"
	"github.com/mbdocs/mbdocs-api/internal/domain/repository"
)

// DocumentUseCase CRUD документов всех трёх видов. Кейс владеет нумерацией:
// номер выдаётся монотонным счётчиком при создании и далее неизменяем.
type DocumentUseCase struct {
	docs     repository.DocumentRepository
	counters repository.CounterRepository
	products repository.ProductRepository
}

// NewDocumentUseCase строит кейс.
func NewDocumentUseCase(
	docs repository.DocumentRepository,
	counters repository.CounterRepository,
	products repository.ProductRepository,
) *DocumentUseCase {
	return &DocumentUseCase{docs: docs, counters: counters, products: products}
}

// List возвращает документы вида, отсортированные по номеру.
func (uc *DocumentUseCase) List(docType entity.DocType) ([]dto.DocumentResponse, error) {
	if !docType.Valid() {
		return nil, fmt.Errorf("%w: неизвестный вид документа %q", domain.ErrInvalidInput, docType)
	}
	docs, err := uc.docs.List(docType)
	if err != nil {
		return nil, err
	}
	out := make([]dto.DocumentResponse, 0, len(docs))
	for _, d := range docs {
		out = append(out, toDocumentResponse(d))
	}
	return out, nil
}

// GetByID возвращает документ или nil, если его нет.
func (uc *DocumentUseCase) GetByID(docType entity.DocType, id string) (*dto.DocumentResponse, error) {
	doc, err := uc.docs.GetByID(docType, id)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, nil
	}
	resp := toDocumentResponse(*doc)
	return &resp, nil
}

// Create создаёт документ: выдаёт номер из счётчика вида, снимает в строки
// текущие цену и ставку НДС из каталога и сохраняет снапшот.
func (uc *DocumentUseCase) Create(docType entity.DocType, in dto.DocumentRequest) (*dto.DocumentResponse, error) {
	if !docType.Valid() {
		return nil, fmt.Errorf("%w: неизвестный вид документа %q", domain.ErrInvalidInput, docType)
	}
	n, err := uc.counters.Next(docType)
	if err != nil {
		return nil, err
	}
	doc, err := uc.buildDocument(docType, uuid.New().String(), fmt.Sprintf("%04d", n), in)
	if err != nil {
		return nil, err
	}
	if err := uc.docs.Save(doc); err != nil {
		return nil, err
	}
	resp := toDocumentResponse(*doc)
	return &resp, nil
}

// Update полностью заменяет документ, сохраняя его номер. Строки из запроса
// с пустой ценой добирают снимок из каталога так же, как при создании.
func (uc *DocumentUseCase) Update(docType entity.DocType, id string, in dto.DocumentRequest) (*dto.DocumentResponse, error) {
	existing, err := uc.docs.GetByID(docType, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}
	doc, err := uc.buildDocument(docType, existing.ID, existing.Number, in)
	if err != nil {
		return nil, err
	}
	if err := uc.docs.Save(doc); err != nil {
		return nil, err
	}
	resp := toDocumentResponse(*doc)
	return &resp, nil
}

// Delete удаляет документ. Счётчик номеров не откатывается: номер удалённого
// документа никогда не выдаётся повторно.
func (uc *DocumentUseCase) Delete(docType entity.DocType, id string) error {
	return uc.docs.Delete(docType, id)
}

// buildDocument собирает документ из запроса: подставляет сегодняшнюю дату и
// рубли по умолчанию, копирует строки со снимками цены и ставки.
func (uc *DocumentUseCase) buildDocument(
	docType entity.DocType,
	id, number string,
	in dto.DocumentRequest,
) (*entity.Document, error) {
	products, err := uc.products.List()
	if err != nil {
		return nil, err
	}

	date := in.Date
	if date == "" {
		date = format.Today()
	}
	currency := entity.Currency(in.Currency)
	if currency == "" {
		currency = entity.CurrencyRUB
	}

	lines := make([]entity.DocLine, 0, len(in.Lines))
	for _, l := range in.Lines {
		line := entity.DocLine{
			ID:        l.ID,
			ProductID: entity.ProductID(l.ProductID),
			Quantity:  int64(l.Quantity),
			Price:     int64(l.Price),
			VAT:       int64(l.VAT),
		}
		if line.ID == "" {
			line.ID = uuid.New().String()
		}
		if line.Quantity <= 0 {
			line.Quantity = 1
		}
		// строка без снятой цены берёт текущую из каталога; дальше каталог
		// может меняться как угодно, снимок зафиксирован
		if line.Price == 0 && line.VAT == 0 {
			if p, ok := entity.FindProduct(products, line.ProductID); ok {
				line.Price = p.Price
				line.VAT = p.VAT
			}
		}
		lines = append(lines, line)
	}

	doc := &entity.Document{
		Type: docType,
		DocHeader: entity.DocHeader{
			ID:       id,
			Number:   number,
			Date:     date,
			SellerID: entity.CompanyID(in.SellerID),
			BuyerID:  entity.CompanyID(in.BuyerID),
			Lines:    lines,
			Currency: currency,
		},
	}
	switch docType {
	case entity.DocTypeAct:
		doc.ContractNumber = in.ContractNumber
		doc.ContractDate = in.ContractDate
	case entity.DocTypeUPD:
		doc.CorrectionNumber = in.CorrectionNumber
		doc.Status = in.Status
		if doc.Status == "" {
			doc.Status = entity.UPDStatusInvoiceAndAct
		}
		if doc.Status != entity.UPDStatusInvoiceAndAct && doc.Status != entity.UPDStatusActOnly {
			return nil, fmt.Errorf("%w: неизвестный статус УПД %q", domain.ErrInvalidInput, doc.Status)
		}
	}
	return doc, nil
}

func toDocumentResponse(doc entity.Document) dto.DocumentResponse {
	lines := make([]dto.DocLineResponse, 0, len(doc.Lines))
	var total, totalVAT int64
	for _, l := range doc.Lines {
		lines = append(lines, dto.DocLineResponse{
			ID:        l.ID,
			ProductID: string(l.ProductID),
			Quantity:  l.Quantity,
			Price:     l.Price,
			VAT:       l.VAT,
		})
		total += format.LineTotal(l.Price, l.Quantity)
		totalVAT += format.LineVAT(l.Price, l.Quantity, l.VAT)
	}
	return dto.DocumentResponse{
		ID:               doc.ID,
		Type:             string(doc.Type),
		Number:           doc.Number,
		Date:             doc.Date,
		SellerID:         string(doc.SellerID),
		BuyerID:          string(doc.BuyerID),
		Lines:            lines,
		Currency:         string(doc.Currency),
		ContractNumber:   doc.ContractNumber,
		ContractDate:     doc.ContractDate,
		CorrectionNumber: doc.CorrectionNumber,
		Status:           doc.Status,
		Total:            total,
		TotalVAT:         totalVAT,
	}
}

// aggregate сводит документ со справочниками для печати и выгрузки.
func aggregate(doc entity.Document, companies []entity.Company, products []entity.Product) docdata.DocData {
	return docdata.Aggregate(doc.Lines, companies, products, doc.SellerID, doc.BuyerID)
}
