package submission

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
	CloseFunc   func(ctx context.Context, caseID uuid.UUID) error

	calls struct {
		GetByID []struct {
			CaseID uuid.UUID
		}
		Close []struct {
			CaseID uuid.UUID
		}
	}
	lockGetByID sync.RWMutex
	lockClose   sync.RWMutex
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

func (mock *caseRepoMock) Close(ctx context.Context, caseID uuid.UUID) error {
	if mock.CloseFunc == nil {
		panic("caseRepoMock.CloseFunc: method is nil but caseRepo.Close was just called")
	}
	callInfo := struct{ CaseID uuid.UUID }{CaseID: caseID}
	mock.lockClose.Lock()
	mock.calls.Close = append(mock.calls.Close, callInfo)
	mock.lockClose.Unlock()
	return mock.CloseFunc(ctx, caseID)
}

func (mock *caseRepoMock) CloseCalls() []struct {
	CaseID uuid.UUID
} {
	mock.lockClose.RLock()
	calls := mock.calls.Close
	mock.lockClose.RUnlock()
	return calls
}

var _ caseConfigRepo = &caseConfigRepoMock{}

type caseConfigRepoMock struct {
	GetByIDsFunc func(ctx context.Context, ids []uuid.UUID) ([]domain.CaseConfig, error)

	calls struct {
		GetByIDs []struct {
			IDs []uuid.UUID
		}
	}
	lockGetByIDs sync.RWMutex
}

func (mock *caseConfigRepoMock) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.CaseConfig, error) {
	if mock.GetByIDsFunc == nil {
		panic("caseConfigRepoMock.GetByIDsFunc: method is nil but caseConfigRepo.GetByIDs was just called")
	}
	callInfo := struct{ IDs []uuid.UUID }{IDs: ids}
	mock.lockGetByIDs.Lock()
	mock.calls.GetByIDs = append(mock.calls.GetByIDs, callInfo)
	mock.lockGetByIDs.Unlock()
	return mock.GetByIDsFunc(ctx, ids)
}

func (mock *caseConfigRepoMock) GetByIDsCalls() []struct {
	IDs []uuid.UUID
} {
	mock.lockGetByIDs.RLock()
	calls := mock.calls.GetByIDs
	mock.lockGetByIDs.RUnlock()
	return calls
}

var _ sender = &senderMock{}

type senderMock struct {
	SendFunc func(ctx context.Context, sub domain.Submission) error

	calls struct {
		Send []struct {
			Sub domain.Submission
		}
	}
	lockSend sync.RWMutex
}

func (mock *senderMock) Send(ctx context.Context, sub domain.Submission) error {
	if mock.SendFunc == nil {
		panic("senderMock.SendFunc: method is nil but sender.Send was just called")
	}
	callInfo := struct{ Sub domain.Submission }{Sub: sub}
	mock.lockSend.Lock()
	mock.calls.Send = append(mock.calls.Send, callInfo)
	mock.lockSend.Unlock()
	return mock.SendFunc(ctx, sub)
}

func (mock *senderMock) SendCalls() []struct {
	Sub domain.Submission
} {
	mock.lockSend.RLock()
	calls := mock.calls.Send
	mock.lockSend.RUnlock()
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
