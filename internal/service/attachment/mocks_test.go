package attachment

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/casedesk/casedesk-backend/internal/domain"
	"github.com/casedesk/casedesk-backend/internal/events"
)

var _ caseRepo = &caseRepoMock{}

type caseRepoMock struct {
	GetByIDFunc func(ctx context.Context, caseID uuid.UUID) (*domain.Case, error)

	calls struct {
		GetByID []struct {
			CaseID uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
}

func (mock *caseRepoMock) GetByID(ctx context.Context, caseID uuid.UUID) (*domain.Case, error) {
	if mock.GetByIDFunc == nil {
		panic("caseRepoMock.GetByIDFunc: method is nil but caseRepo.GetByID was just called")
	}
	callInfo := struct{ CaseID uuid.UUID }{CaseID: caseID}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, caseID)
}

func (mock *caseRepoMock) GetByIDCalls() []struct {
	CaseID uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

var _ configRepo = &configRepoMock{}

type configRepoMock struct {
	GetByIDsFunc func(ctx context.Context, ids []uuid.UUID) ([]domain.Config, error)

	calls struct {
		GetByIDs []struct {
			IDs []uuid.UUID
		}
	}
	lockGetByIDs sync.RWMutex
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

var _ caseConfigRepo = &caseConfigRepoMock{}

type caseConfigRepoMock struct {
	ListByCaseFunc   func(ctx context.Context, caseID uuid.UUID) ([]domain.CaseConfig, error)
	LabelsByCaseFunc func(ctx context.Context, caseID uuid.UUID) (map[string]struct{}, error)
	BulkInsertFunc   func(ctx context.Context, rows []domain.CaseConfig) error

	calls struct {
		ListByCase []struct {
			CaseID uuid.UUID
		}
		LabelsByCase []struct {
			CaseID uuid.UUID
		}
		BulkInsert []struct {
			Rows []domain.CaseConfig
		}
	}
	lockListByCase   sync.RWMutex
	lockLabelsByCase sync.RWMutex
	lockBulkInsert   sync.RWMutex
}

func (mock *caseConfigRepoMock) ListByCase(ctx context.Context, caseID uuid.UUID) ([]domain.CaseConfig, error) {
	if mock.ListByCaseFunc == nil {
		panic("caseConfigRepoMock.ListByCaseFunc: method is nil but caseConfigRepo.ListByCase was just called")
	}
	callInfo := struct{ CaseID uuid.UUID }{CaseID: caseID}
	mock.lockListByCase.Lock()
	mock.calls.ListByCase = append(mock.calls.ListByCase, callInfo)
	mock.lockListByCase.Unlock()
	return mock.ListByCaseFunc(ctx, caseID)
}

func (mock *caseConfigRepoMock) ListByCaseCalls() []struct {
	CaseID uuid.UUID
} {
	mock.lockListByCase.RLock()
	calls := mock.calls.ListByCase
	mock.lockListByCase.RUnlock()
	return calls
}

func (mock *caseConfigRepoMock) LabelsByCase(ctx context.Context, caseID uuid.UUID) (map[string]struct{}, error) {
	if mock.LabelsByCaseFunc == nil {
		panic("caseConfigRepoMock.LabelsByCaseFunc: method is nil but caseConfigRepo.LabelsByCase was just called")
	}
	callInfo := struct{ CaseID uuid.UUID }{CaseID: caseID}
	mock.lockLabelsByCase.Lock()
	mock.calls.LabelsByCase = append(mock.calls.LabelsByCase, callInfo)
	mock.lockLabelsByCase.Unlock()
	return mock.LabelsByCaseFunc(ctx, caseID)
}

func (mock *caseConfigRepoMock) LabelsByCaseCalls() []struct {
	CaseID uuid.UUID
} {
	mock.lockLabelsByCase.RLock()
	calls := mock.calls.LabelsByCase
	mock.lockLabelsByCase.RUnlock()
	return calls
}

func (mock *caseConfigRepoMock) BulkInsert(ctx context.Context, rows []domain.CaseConfig) error {
	if mock.BulkInsertFunc == nil {
		panic("caseConfigRepoMock.BulkInsertFunc: method is nil but caseConfigRepo.BulkInsert was just called")
	}
	callInfo := struct{ Rows []domain.CaseConfig }{Rows: rows}
	mock.lockBulkInsert.Lock()
	mock.calls.BulkInsert = append(mock.calls.BulkInsert, callInfo)
	mock.lockBulkInsert.Unlock()
	return mock.BulkInsertFunc(ctx, rows)
}

func (mock *caseConfigRepoMock) BulkInsertCalls() []struct {
	Rows []domain.CaseConfig
} {
	mock.lockBulkInsert.RLock()
	calls := mock.calls.BulkInsert
	mock.lockBulkInsert.RUnlock()
	return calls
}

var _ txManager = &txManagerMock{}

type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

	calls struct {
		RunInTx []struct{}
	}
	lockRunInTx sync.RWMutex
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc == nil {
		panic("txManagerMock.RunInTxFunc: method is nil but txManager.RunInTx was just called")
	}
	mock.lockRunInTx.Lock()
	mock.calls.RunInTx = append(mock.calls.RunInTx, struct{}{})
	mock.lockRunInTx.Unlock()
	return mock.RunInTxFunc(ctx, fn)
}

func (mock *txManagerMock) RunInTxCalls() []struct{} {
	mock.lockRunInTx.RLock()
	calls := mock.calls.RunInTx
	mock.lockRunInTx.RUnlock()
	return calls
}

var _ eventPublisher = &eventPublisherMock{}

type eventPublisherMock struct {
	PublishFunc func(ctx context.Context, ev events.CaseConfigsChanged)

	calls struct {
		Publish []struct {
			Ev events.CaseConfigsChanged
		}
	}
	lockPublish sync.RWMutex
}

func (mock *eventPublisherMock) Publish(ctx context.Context, ev events.CaseConfigsChanged) {
	if mock.PublishFunc == nil {
		panic("eventPublisherMock.PublishFunc: method is nil but eventPublisher.Publish was just called")
	}
	callInfo := struct{ Ev events.CaseConfigsChanged }{Ev: ev}
	mock.lockPublish.Lock()
	mock.calls.Publish = append(mock.calls.Publish, callInfo)
	mock.lockPublish.Unlock()
	mock.PublishFunc(ctx, ev)
}

func (mock *eventPublisherMock) PublishCalls() []struct {
	Ev events.CaseConfigsChanged
} {
	mock.lockPublish.RLock()
	calls := mock.calls.Publish
	mock.lockPublish.RUnlock()
	return calls
}
