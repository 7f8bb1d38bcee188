package task

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/taskboard/taskboard-backend/internal/domain"
)

var _ taskRepo = &taskRepoMock{}

type taskRepoMock struct {
	CreateFunc        func(ctx context.Context, task *domain.Task) (*domain.Task, error)
	GetByIDFunc       func(ctx context.Context, id uuid.UUID) (*domain.Task, error)
	ListByProjectFunc func(ctx context.Context, projectID uuid.UUID) ([]*domain.Task, error)
	PatchFunc         func(ctx context.Context, id uuid.UUID, params domain.TaskUpdateParams) (*domain.Task, error)
	AppendCommentFunc func(ctx context.Context, id uuid.UUID, comment domain.Comment) (*domain.Task, error)
	RemoveCommentFunc func(ctx context.Context, id uuid.UUID, commentID uuid.UUID) (*domain.Task, error)

	calls struct {
		Create []struct {
			Ctx  context.Context
			Task *domain.Task
		}
		GetByID []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ListByProject []struct {
			Ctx       context.Context
			ProjectID uuid.UUID
		}
		Patch []struct {
			Ctx    context.Context
			ID     uuid.UUID
			Params domain.TaskUpdateParams
		}
		AppendComment []struct {
			Ctx     context.Context
			ID      uuid.UUID
			Comment domain.Comment
		}
		RemoveComment []struct {
			Ctx       context.Context
			ID        uuid.UUID
			CommentID uuid.UUID
		}
	}
	lockCreate        sync.RWMutex
	lockGetByID       sync.RWMutex
	lockListByProject sync.RWMutex
	lockPatch         sync.RWMutex
	lockAppendComment sync.RWMutex
	lockRemoveComment sync.RWMutex
}

func (mock *taskRepoMock) Create(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	if mock.CreateFunc == nil {
		panic("taskRepoMock.CreateFunc: method is nil but taskRepo.Create was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Task *domain.Task
	}{Ctx: ctx, Task: task}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, task)
}

func (mock *taskRepoMock) CreateCalls() []struct {
	Ctx  context.Context
	Task *domain.Task
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *taskRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	if mock.GetByIDFunc == nil {
		panic("taskRepoMock.GetByIDFunc: method is nil but taskRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *taskRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
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

func (mock *taskRepoMock) Patch(ctx context.Context, id uuid.UUID, params domain.TaskUpdateParams) (*domain.Task, error) {
	if mock.PatchFunc == nil {
		panic("taskRepoMock.PatchFunc: method is nil but taskRepo.Patch was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		ID     uuid.UUID
		Params domain.TaskUpdateParams
	}{Ctx: ctx, ID: id, Params: params}
	mock.lockPatch.Lock()
	mock.calls.Patch = append(mock.calls.Patch, callInfo)
	mock.lockPatch.Unlock()
	return mock.PatchFunc(ctx, id, params)
}

func (mock *taskRepoMock) PatchCalls() []struct {
	Ctx    context.Context
	ID     uuid.UUID
	Params domain.TaskUpdateParams
} {
	mock.lockPatch.RLock()
	calls := mock.calls.Patch
	mock.lockPatch.RUnlock()
	return calls
}

func (mock *taskRepoMock) AppendComment(ctx context.Context, id uuid.UUID, comment domain.Comment) (*domain.Task, error) {
	if mock.AppendCommentFunc == nil {
		panic("taskRepoMock.AppendCommentFunc: method is nil but taskRepo.AppendComment was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		ID      uuid.UUID
		Comment domain.Comment
	}{Ctx: ctx, ID: id, Comment: comment}
	mock.lockAppendComment.Lock()
	mock.calls.AppendComment = append(mock.calls.AppendComment, callInfo)
	mock.lockAppendComment.Unlock()
	return mock.AppendCommentFunc(ctx, id, comment)
}

func (mock *taskRepoMock) AppendCommentCalls() []struct {
	Ctx     context.Context
	ID      uuid.UUID
	Comment domain.Comment
} {
	mock.lockAppendComment.RLock()
	calls := mock.calls.AppendComment
	mock.lockAppendComment.RUnlock()
	return calls
}

func (mock *taskRepoMock) RemoveComment(ctx context.Context, id uuid.UUID, commentID uuid.UUID) (*domain.Task, error) {
	if mock.RemoveCommentFunc == nil {
		panic("taskRepoMock.RemoveCommentFunc: method is nil but taskRepo.RemoveComment was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ID        uuid.UUID
		CommentID uuid.UUID
	}{Ctx: ctx, ID: id, CommentID: commentID}
	mock.lockRemoveComment.Lock()
	mock.calls.RemoveComment = append(mock.calls.RemoveComment, callInfo)
	mock.lockRemoveComment.Unlock()
	return mock.RemoveCommentFunc(ctx, id, commentID)
}

func (mock *taskRepoMock) RemoveCommentCalls() []struct {
	Ctx       context.Context
	ID        uuid.UUID
	CommentID uuid.UUID
} {
	mock.lockRemoveComment.RLock()
	calls := mock.calls.RemoveComment
	mock.lockRemoveComment.RUnlock()
	return calls
}
