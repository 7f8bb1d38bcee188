package project

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/taskboard/taskboard-backend/internal/domain"
)

var _ taskRepo = &taskRepoMock{}

type taskRepoMock struct {
	ListByProjectFunc   func(ctx context.Context, projectID uuid.UUID) ([]*domain.Task, error)
	DeleteByProjectFunc func(ctx context.Context, projectID uuid.UUID) (int, error)

	calls struct {
		ListByProject []struct {
			Ctx       context.Context
			ProjectID uuid.UUID
		}
		DeleteByProject []struct {
			Ctx       context.Context
			ProjectID uuid.UUID
		}
	}
	lockListByProject   sync.RWMutex
	lockDeleteByProject sync.RWMutex
}

func (mock *taskRepoMock) ListByProject(ctx context.Context, projectID uuid.UUID) ([]*domain.Task, error) {
	if mock.ListByProjectFunc == nil {
		panic("taskRepoMock.ListByProjectFunc: method is nil but taskRepo.ListByProject was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ProjectID uuid.UUID
	}{Ctx: ctx, ProjectID: projectID}
	mock.lockListByProject.Lock()
	mock.calls.ListByProject = append(mock.calls.ListByProject, callInfo)
	mock.lockListByProject.Unlock()
	return mock.ListByProjectFunc(ctx, projectID)
}

func (mock *taskRepoMock) ListByProjectCalls() []struct {
	Ctx       context.Context
	ProjectID uuid.UUID
} {
	mock.lockListByProject.RLock()
	calls := mock.calls.ListByProject
	mock.lockListByProject.RUnlock()
	return calls
}

func (mock *taskRepoMock) DeleteByProject(ctx context.Context, projectID uuid.UUID) (int, error) {
	if mock.DeleteByProjectFunc == nil {
		panic("taskRepoMock.DeleteByProjectFunc: method is nil but taskRepo.DeleteByProject was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ProjectID uuid.UUID
	}{Ctx: ctx, ProjectID: projectID}
	mock.lockDeleteByProject.Lock()
	mock.calls.DeleteByProject = append(mock.calls.DeleteByProject, callInfo)
	mock.lockDeleteByProject.Unlock()
	return mock.DeleteByProjectFunc(ctx, projectID)
}

func (mock *taskRepoMock) DeleteByProjectCalls() []struct {
	Ctx       context.Context
	ProjectID uuid.UUID
} {
	mock.lockDeleteByProject.RLock()
	calls := mock.calls.DeleteByProject
	mock.lockDeleteByProject.RUnlock()
	return calls
}
