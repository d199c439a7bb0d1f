package entity

import (
	"fmt"

	"github.com/mbdocs/mbdocs-api/internal/domain"
)

// TemplateID непрозрачный идентификатор шаблона печатной формы.
type TemplateID string

// TemplateSettings пользовательский шаблон печатной формы: типографика плюс
// семь независимых переключателей блоков содержимого. Несколько шаблонов могут
// относиться к одному виду документа.
type TemplateSettings struct {
	ID      TemplateID `json:"id"`
	Name    string     `json:"name"`
	DocType DocType    `json:"docType"`

	Font          string `json:"font"`
	FontSize      int    `json:"fontSize"`      // px, основной размер
	TitleFontSize int    `json:"titleFontSize"` // px, заголовок
	PageMargin    int    `json:"pageMargin"`    // мм
	TableHeaderBg string `json:"tableHeaderBg"` // любое валидное CSS-значение цвета

	ShowLogo        bool   `json:"showLogo"`
	LogoURL         string `json:"logoUrl"`
	ShowBankBlock   bool   `json:"showBankBlock"`
	ShowQR          bool   `json:"showQR"`
	ShowSignatures  bool   `json:"showSignatures"`
	ShowStamp       bool   `json:"showStamp"`
	ShowAmountWords bool   `json:"showAmountWords"`
	ShowItemNumbers bool   `json:"showItemNumbers"`

	HeaderText string `json:"headerText"`
	FooterText string `json:"footerText"`
}

// DefaultTemplate встроенный макет для вида документа: значения по умолчанию
// из стандартных шаблонов. У акта и УПД банковский блок и QR отключены —
// они имеют смысл только на счёте.
func DefaultTemplate(docType DocType) TemplateSettings {
	tpl := TemplateSettings{
		DocType:         docType,
		Font:            "Times New Roman",
		FontSize:        11,
		TitleFontSize:   14,
		PageMargin:      15,
		TableHeaderBg:   "#e8e8e8",
		ShowBankBlock:   true,
		ShowQR:          true,
		ShowSignatures:  true,
		ShowStamp:       true,
		ShowAmountWords: true,
		ShowItemNumbers: true,
	}
	if docType != DocTypeInvoice {
		tpl.ShowBankBlock = false
		tpl.ShowQR = false
	}
	return tpl
}

// Validate проверяет структурную целостность шаблона. Шаблоны — пользовательская
// конфигурация, поэтому повреждённый шаблон отклоняется с описательной ошибкой,
// а не рендерится молча со сломанным макетом.
func (t TemplateSettings) Validate() error {
	if !t.DocType.Valid() {
		return fmt.Errorf("%w: неизвестный вид документа %q", domain.ErrTemplateInvalid, t.DocType)
	}
	if t.Font == "" {
		return fmt.Errorf("%w: не задан шрифт", domain.ErrTemplateInvalid)
	}
	if t.FontSize <= 0 {
		return fmt.Errorf("%w: некорректный размер шрифта %d", domain.ErrTemplateInvalid, t.FontSize)
	}
	if t.TitleFontSize <= 0 {
		return fmt.Errorf("%w: некорректный размер заголовка %d", domain.ErrTemplateInvalid, t.TitleFontSize)
	}
	if t.PageMargin < 0 {
		return fmt.Errorf("%w: отрицательное поле страницы %d", domain.ErrTemplateInvalid, t.PageMargin)
	}
	if t.TableHeaderBg == "" {
		return fmt.Errorf("%w: не задан цвет шапки таблицы", domain.ErrTemplateInvalid)
	}
	return nil
}
