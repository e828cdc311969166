package catalog

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/casedesk/casedesk-backend/internal/domain"
)

var _ configRepo = &configRepoMock{}

type configRepoMock struct {
	ListFunc     func(ctx context.Context, params domain.CatalogFilter) ([]domain.Config, error)
	CountFunc    func(ctx context.Context, typeFilter string) (int, error)
	GetByIDsFunc func(ctx context.Context, ids []uuid.UUID) ([]domain.Config, error)

	calls struct {
		List []struct {
			Params domain.CatalogFilter
		}
		Count []struct {
			TypeFilter string
		}
		GetByIDs []struct {
			IDs []uuid.UUID
		}
	}
	lockList     sync.RWMutex
	lockCount    sync.RWMutex
	lockGetByIDs sync.RWMutex
}

func (mock *configRepoMock) List(ctx context.Context, params domain.CatalogFilter) ([]domain.Config, error) {
	if mock.ListFunc == nil {
		panic("configRepoMock.ListFunc: method is nil but configRepo.List was just called")
	}
	callInfo := struct{ Params domain.CatalogFilter }{Params: params}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, params)
}

func (mock *configRepoMock) ListCalls() []struct {
	Params domain.CatalogFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *configRepoMock) Count(ctx context.Context, typeFilter string) (int, error) {
	if mock.CountFunc == nil {
		panic("configRepoMock.CountFunc: method is nil but configRepo.Count was just called")
	}
	callInfo := struct{ TypeFilter string }{TypeFilter: typeFilter}
	mock.lockCount.Lock()
	mock.calls.Count = append(mock.calls.Count, callInfo)
	mock.lockCount.Unlock()
	return mock.CountFunc(ctx, typeFilter)
}

func (mock *configRepoMock) CountCalls() []struct {
	TypeFilter string
} {
	mock.lockCount.RLock()
	calls := mock.calls.Count
	mock.lockCount.RUnlock()
	return calls
}

func (mock *configRepoMock) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Config, error) {
	if mock.GetByIDsFunc == nil {
		panic("configRepoMock.GetByIDsFunc: method is nil but configRepo.GetByIDs was just called")
	}
	callInfo := struct{ IDs []uuid.UUID }{IDs: ids}
	mock.lockGetByIDs.Lock()
	mock.calls.GetByIDs = append(mock.calls.GetByIDs, callInfo)
	mock.lockGetByIDs.Unlock()
	return mock.GetByIDsFunc(ctx, ids)
}

func (mock *configRepoMock) GetByIDsCalls() []struct {
	IDs []uuid.UUID
} {
	mock.lockGetByIDs.RLock()
	calls := mock.calls.GetByIDs
	mock.lockGetByIDs.RUnlock()
	return calls
}
