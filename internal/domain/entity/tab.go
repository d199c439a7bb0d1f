package entity

// TabItem вкладка рабочей области. Хранится как часть снапшота состояния,
// чтобы рабочее место восстанавливалось между запусками.
type TabItem struct {
	ID       string `json:"id"`
	Type     string `json:"type"` // companies, products, invoices, invoice-edit и т.д.
	Title    string `json:"title"`
	EntityID string `json:"entityId,omitempty"`
}
