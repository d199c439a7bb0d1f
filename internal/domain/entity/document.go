package entity

// DocType вид документа.
type DocType string

const (
	DocTypeInvoice DocType = "invoice"
	DocTypeAct     DocType = "act"
	DocTypeUPD     DocType = "upd"
)

// Valid сообщает, известен ли вид документа.
func (t DocType) Valid() bool {
	switch t {
	case DocTypeInvoice, DocTypeAct, DocTypeUPD:
		return true
	}
	return false
}

// Label локализованное название вида документа. Используется в заголовках
// печатных форм и в именах файлов выгрузки.
func (t DocType) Label() string {
	switch t {
	case DocTypeInvoice:
		return "Счет"
	case DocTypeAct:
		return "Акт"
	case DocTypeUPD:
		return "УПД"
	}
	return string(t)
}

// Статусы УПД.
const (
	UPDStatusInvoiceAndAct = "1" // счёт-фактура и передаточный документ
	UPDStatusActOnly       = "2" // только передаточный документ
)

// DocLine строка документа. Цена и ставка НДС — снимки на момент добавления
// строки или смены товара; последующие правки каталога их не меняют.
type DocLine struct {
	ID        string    `json:"id"`
	ProductID ProductID `json:"productId"`
	Quantity  int64     `json:"quantity"`
	Price     int64     `json:"price"` // копейки
	VAT       int64     `json:"vat"`   // проценты
}

// DocHeader общая часть всех трёх видов документов. Номер присваивается один
// раз при создании из монотонного счётчика и никогда не переиспользуется.
// Дата хранится ISO-строкой YYYY-MM-DD, как и в снапшотах хранилища.
type DocHeader struct {
	ID       string    `json:"id"`
	Number   string    `json:"number"`
	Date     string    `json:"date"`
	SellerID CompanyID `json:"sellerId"`
	BuyerID  CompanyID `json:"buyerId"`
	Lines    []DocLine `json:"lines"`
	Currency Currency  `json:"currency"`
}

// Invoice счёт на оплату.
type Invoice struct {
	DocHeader
}

// Act акт выполненных работ, опционально привязанный к договору.
type Act struct {
	DocHeader
	ContractNumber string `json:"contractNumber"`
	ContractDate   string `json:"contractDate"`
}

// UPD универсальный передаточный документ.
type UPD struct {
	DocHeader
	CorrectionNumber string `json:"correctionNumber"`
	Status           string `json:"status"` // UPDStatusInvoiceAndAct | UPDStatusActOnly
}

// Document общее представление документа для слоёв рендеринга и выгрузки:
// заголовок плюс поля конкретного варианта. Диспетчеризация — по Type.
type Document struct {
	Type DocType
	DocHeader

	// поля акта
	ContractNumber string
	ContractDate   string

	// поля УПД
	CorrectionNumber string
	Status           string
}

// AsDocument приводит счёт к общему представлению.
func (i Invoice) AsDocument() Document {
	return Document{Type: DocTypeInvoice, DocHeader: i.DocHeader}
}

// AsDocument приводит акт к общему представлению.
func (a Act) AsDocument() Document {
	return Document{
		Type:           DocTypeAct,
		DocHeader:      a.DocHeader,
		ContractNumber: a.ContractNumber,
		ContractDate:   a.ContractDate,
	}
}

// AsDocument приводит УПД к общему представлению.
func (u UPD) AsDocument() Document {
	return Document{
		Type:             DocTypeUPD,
		DocHeader:        u.DocHeader,
		CorrectionNumber: u.CorrectionNumber,
		Status:           u.Status,
	}
}
