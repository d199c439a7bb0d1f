package usecase

import (
	"github.com/mbdocs/mbdocs-api/internal/application/dto"
	"github.com/mbdocs/mbdocs-api/internal/domain/entity"
	"github.com/mbdocs/mbdocs-api/internal/domain/repository"
)

// WorkspaceUseCase состояние рабочей области: открытые вкладки и активная вкладка.
type WorkspaceUseCase struct {
	repo repository.WorkspaceRepository
}

// NewWorkspaceUseCase строит кейс.
func NewWorkspaceUseCase(repo repository.WorkspaceRepository) *WorkspaceUseCase {
	return &WorkspaceUseCase{repo: repo}
}

// Tabs возвращает сохранённые вкладки.
func (uc *WorkspaceUseCase) Tabs() ([]entity.TabItem, error) {
	return uc.repo.Tabs()
}

// SaveTabs сохраняет список вкладок целиком.
func (uc *WorkspaceUseCase) SaveTabs(in dto.TabsRequest) ([]entity.TabItem, error) {
	tabs := make([]entity.TabItem, 0, len(in.Tabs))
	for _, t := range in.Tabs {
		tabs = append(tabs, entity.TabItem{
			ID:       t.ID,
			Type:     t.Type,
			Title:    t.Title,
			EntityID: t.EntityID,
		})
	}
	if err := uc.repo.SaveTabs(tabs); err != nil {
		return nil, err
	}
	return tabs, nil
}

// ActiveTab возвращает идентификатор активной вкладки (пустая строка — нет).
func (uc *WorkspaceUseCase) ActiveTab() (string, error) {
	return uc.repo.ActiveTab()
}

// SetActiveTab запоминает активную вкладку.
func (uc *WorkspaceUseCase) SetActiveTab(id string) error {
	return uc.repo.SetActiveTab(id)
}
