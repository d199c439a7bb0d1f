package bolt

import (
	"github.com/mbdocs/mbdocs-api/internal/domain/entity"
	"github.com/mbdocs/mbdocs-api/internal/domain/repository"
)

const (
	keyTabs      = "tabs"
	keyActiveTab = "activeTab"
)

// WorkspaceRepository состояние рабочей области (вкладки, активная вкладка)
// в бакете workspace. Список вкладок хранится одним снапшотом-массивом.
type WorkspaceRepository struct {
	store *Store
}

var _ repository.WorkspaceRepository = (*WorkspaceRepository)(nil)

// NewWorkspaceRepository создаёт репозиторий.
func NewWorkspaceRepository(store *Store) *WorkspaceRepository {
	return &WorkspaceRepository{store: store}
}

// Tabs возвращает сохранённый список вкладок (возможно пустой).
func (r *WorkspaceRepository) Tabs() ([]entity.TabItem, error) {
	var tabs []entity.TabItem
	_, err := r.store.get(bucketWorkspace, keyTabs, &tabs)
	return tabs, err
}

// SaveTabs перезаписывает список вкладок целиком.
func (r *WorkspaceRepository) SaveTabs(tabs []entity.TabItem) error {
	if tabs == nil {
		tabs = []entity.TabItem{}
	}
	return r.store.put(bucketWorkspace, keyTabs, tabs)
}

// ActiveTab идентификатор активной вкладки; пустая строка, если не задан.
func (r *WorkspaceRepository) ActiveTab() (string, error) {
	var id string
	_, err := r.store.get(bucketWorkspace, keyActiveTab, &id)
	return id, err
}

// SetActiveTab запоминает активную вкладку.
func (r *WorkspaceRepository) SetActiveTab(id string) error {
	return r.store.put(bucketWorkspace, keyActiveTab, id)
}
