package repository

import "github.com/mbdocs/mbdocs-api/internal/domain/entity"

// WorkspaceRepository порт персистентности для состояния рабочей области
// (список вкладок и активная вкладка).
type WorkspaceRepository interface {
	Tabs() ([]entity.TabItem, error)
	SaveTabs(tabs []entity.TabItem) error
	ActiveTab() (string, error)
	SetActiveTab(id string) error
}
