// Package xmlexport сериализует документ в XML для обмена с внешними
// системами. Суммы выгружаются в копейках без форматирования, даты — в ISO.
package xmlexport

import (
	"strconv"

	"github.com/beevik/etree"

	"github.com/mbdocs/mbdocs-api/internal/domain/docdata"
	"github.com/mbdocs/mbdocs-api/internal/domain/entity"
)

// Builder строит XML-представление документа.
type Builder struct{}

// NewBuilder создаёт построитель.
func NewBuilder() *Builder {
	return &Builder{}
}

// Build возвращает XML-документ с отступами и декларацией.
func (b *Builder) Build(doc entity.Document, data docdata.DocData) ([]byte, error) {
	xml := etree.NewDocument()
	xml.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := xml.CreateElement(rootName(doc.Type))
	root.CreateElement("Number").SetText(doc.Number)
	root.CreateElement("Date").SetText(doc.Date)
	root.CreateElement("Currency").SetText(string(doc.Currency))

	switch doc.Type {
	case entity.DocTypeAct:
		if doc.ContractNumber != "" {
			root.CreateElement("ContractNumber").SetText(doc.ContractNumber)
		}
		if doc.ContractDate != "" {
			root.CreateElement("ContractDate").SetText(doc.ContractDate)
		}
	case entity.DocTypeUPD:
		root.CreateElement("Status").SetText(doc.Status)
	}

	seller := root.CreateElement("Seller")
	if s := data.Seller; s != nil {
		seller.CreateElement("Name").SetText(s.Name)
		seller.CreateElement("INN").SetText(s.INN)
		seller.CreateElement("KPP").SetText(s.KPP)
		seller.CreateElement("Bank").SetText(s.Bank)
		seller.CreateElement("BIK").SetText(s.BIK)
		seller.CreateElement("RS").SetText(s.RS)
		seller.CreateElement("KS").SetText(s.KS)
	}
	buyer := root.CreateElement("Buyer")
	if c := data.Buyer; c != nil {
		buyer.CreateElement("Name").SetText(c.Name)
		buyer.CreateElement("INN").SetText(c.INN)
		buyer.CreateElement("KPP").SetText(c.KPP)
	}

	lines := root.CreateElement("Lines")
	for i, r := range data.Rows {
		line := lines.CreateElement("Line")
		line.CreateElement("Number").SetText(strconv.Itoa(i + 1))
		line.CreateElement("Name").SetText(r.Name)
		line.CreateElement("Unit").SetText(r.Unit)
		line.CreateElement("Quantity").SetText(strconv.FormatInt(r.Quantity, 10))
		line.CreateElement("Price").SetText(strconv.FormatInt(r.Price, 10))
		line.CreateElement("VAT").SetText(strconv.FormatInt(r.VAT, 10))
		line.CreateElement("VATAmount").SetText(strconv.FormatInt(r.VATAmount, 10))
		line.CreateElement("Total").SetText(strconv.FormatInt(r.Total, 10))
	}

	root.CreateElement("Total").SetText(strconv.FormatInt(data.GrandTotal, 10))
	root.CreateElement("TotalVAT").SetText(strconv.FormatInt(data.GrandVAT, 10))

	xml.Indent(2)
	return xml.WriteToBytes()
}

func rootName(t entity.DocType) string {
	switch t {
	case entity.DocTypeAct:
		return "Act"
	case entity.DocTypeUPD:
		return "UPD"
	default:
		return "Invoice"
	}
}
