package service

import (
	"context"

	"stockboard/internal/repository"
)

type TablesService interface {
	GetCountTablesDB(ctx context.Context) (int, error)
}

type tablesService struct {
	tablesRepo repository.TablesRepository
}

func NewTablesService(tablesRepo repository.TablesRepository) TablesService {
	return &tablesService{tablesRepo: tablesRepo}
}

func (t *tablesService) GetCountTablesDB(ctx context.Context) (int, error) {
	countTables, err := t.tablesRepo.CountTablesDB(ctx)
	if err != nil {
		return 0, err
	}

	return countTables, nil
}
