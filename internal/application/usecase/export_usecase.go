package usecase

import (
	"fmt"

	"github.com/mbdocs/mbdocs-api/internal/domain"
	"github.com/mbdocs/mbdocs-api/internal/domain/docdata"
	"github.com/mbdocs/mbdocs-api/internal/domain/entity"
	"github.com/mbdocs/mbdocs-api/internal/domain/payment"
	"github.com/mbdocs/mbdocs-api/internal/domain/repository"
)

// SpreadsheetEncoder порт выгрузки документа в XLSX.
type SpreadsheetEncoder interface {
	Build(doc entity.Document, data docdata.DocData) ([]byte, error)
}

// XMLEncoder порт выгрузки документа в XML.
type XMLEncoder interface {
	Build(doc entity.Document, data docdata.DocData) ([]byte, error)
}

// PDFGenerator порт выгрузки документа в PDF. qrPayload — строка платёжного
// QR для счёта, пустая строка отключает блок.
type PDFGenerator interface {
	Generate(doc entity.Document, data docdata.DocData, qrPayload string) ([]byte, error)
}

// ExportFile готовый файл выгрузки.
type ExportFile struct {
	Name        string
	ContentType string
	Data        []byte
}

// ExportUseCase выгрузка документов в XLSX, XML и PDF. Имя файла строится
// из локализованного названия вида и номера: «Счет_0001.xlsx».
type ExportUseCase struct {
	excel     SpreadsheetEncoder
	xml       XMLEncoder
	pdf       PDFGenerator
	docs      repository.DocumentRepository
	companies repository.CompanyRepository
	products  repository.ProductRepository
}

// NewExportUseCase строит кейс.
func NewExportUseCase(
	excel SpreadsheetEncoder,
	xml XMLEncoder,
	pdf PDFGenerator,
	docs repository.DocumentRepository,
	companies repository.CompanyRepository,
	products repository.ProductRepository,
) *ExportUseCase {
	return &ExportUseCase{
		excel:     excel,
		xml:       xml,
		pdf:       pdf,
		docs:      docs,
		companies: companies,
		products:  products,
	}
}

// ExportXLSX выгружает документ книгой Excel.
func (uc *ExportUseCase) ExportXLSX(docType entity.DocType, id string) (*ExportFile, error) {
	doc, data, _, err := uc.load(docType, id)
	if err != nil {
		return nil, err
	}
	b, err := uc.excel.Build(*doc, data)
	if err != nil {
		return nil, err
	}
	return &ExportFile{
		Name:        exportName(*doc, "xlsx"),
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Data:        b,
	}, nil
}

// ExportXML выгружает документ в XML.
func (uc *ExportUseCase) ExportXML(docType entity.DocType, id string) (*ExportFile, error) {
	doc, data, _, err := uc.load(docType, id)
	if err != nil {
		return nil, err
	}
	b, err := uc.xml.Build(*doc, data)
	if err != nil {
		return nil, err
	}
	return &ExportFile{
		Name:        exportName(*doc, "xml"),
		ContentType: "application/xml",
		Data:        b,
	}, nil
}

// ExportPDF выгружает документ в PDF. Для счёта добавляется платёжный QR,
// если реквизиты продавца разрешаются.
func (uc *ExportUseCase) ExportPDF(docType entity.DocType, id string) (*ExportFile, error) {
	doc, data, companies, err := uc.load(docType, id)
	if err != nil {
		return nil, err
	}
	qrPayload := ""
	if docType == entity.DocTypeInvoice {
		qrPayload = payment.QRPayload(*doc, companies)
	}
	b, err := uc.pdf.Generate(*doc, data, qrPayload)
	if err != nil {
		return nil, err
	}
	return &ExportFile{
		Name:        exportName(*doc, "pdf"),
		ContentType: "application/pdf",
		Data:        b,
	}, nil
}

func (uc *ExportUseCase) load(docType entity.DocType, id string) (*entity.Document, docdata.DocData, []entity.Company, error) {
	doc, err := uc.docs.GetByID(docType, id)
	if err != nil {
		return nil, docdata.DocData{}, nil, err
	}
	if doc == nil {
		return nil, docdata.DocData{}, nil, domain.ErrNotFound
	}
	companies, err := uc.companies.List()
	if err != nil {
		return nil, docdata.DocData{}, nil, err
	}
	products, err := uc.products.List()
	if err != nil {
		return nil, docdata.DocData{}, nil, err
	}
	return doc, aggregate(*doc, companies, products), companies, nil
}

func exportName(doc entity.Document, ext string) string {
	return fmt.Sprintf("%s_%s.%s", doc.Type.Label(), doc.Number, ext)
}
