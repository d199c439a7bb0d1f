package dto

// TemplateRequest тело создания и полного обновления шаблона печатной формы.
type TemplateRequest struct {
	Name    string `json:"name"`
	DocType string `json:"docType"`

	Font          string `json:"font"`
	FontSize      int    `json:"fontSize"`
	TitleFontSize int    `json:"titleFontSize"`
	PageMargin    int    `json:"pageMargin"`
	TableHeaderBg string `json:"tableHeaderBg"`

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

// PreviewRequest тело предпросмотра: шаблон рендерится на демо-данных,
// не затрагивая сохранённые документы.
type PreviewRequest struct {
	Template TemplateRequest `json:"template"`
}

// PreviewResponse готовая HTML-страница предпросмотра.
type PreviewResponse struct {
	HTML string `json:"html"`
}
