package dto

// TabRequest вкладка рабочей области.
type TabRequest struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	Title    string `json:"title"`
	EntityID string `json:"entityId"`
}

// TabsRequest полный список вкладок; сохраняется снапшотом.
type TabsRequest struct {
	Tabs []TabRequest `json:"tabs"`
}

// ActiveTabRequest идентификатор активной вкладки.
type ActiveTabRequest struct {
	ID string `json:"id"`
}
