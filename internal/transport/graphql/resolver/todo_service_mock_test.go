package resolver

import (
	"context"
	"sync"

	"github.com/heartmarshall/todo-backend/internal/domain"
	"github.com/heartmarshall/todo-backend/internal/service/todo"
)

var _ todoService = &todoServiceMock{}

type todoServiceMock struct {
	ListTodosFunc  func(ctx context.Context) ([]domain.Todo, error)
	GetTodoFunc    func(ctx context.Context, id string) (*domain.Todo, error)
	CreateTodoFunc func(ctx context.Context, input todo.CreateTodoInput) (*domain.Todo, error)
	UpdateTodoFunc func(ctx context.Context, input todo.UpdateTodoInput) (*domain.Todo, error)
	DeleteTodoFunc func(ctx context.Context, id string) (bool, error)

	calls struct {
		CreateTodo []struct {
			Ctx   context.Context
			Input todo.CreateTodoInput
		}
		UpdateTodo []struct {
			Ctx   context.Context
			Input todo.UpdateTodoInput
		}
		DeleteTodo []struct {
			Ctx context.Context
			ID  string
		}
	}
	lockCreateTodo sync.RWMutex
	lockUpdateTodo sync.RWMutex
	lockDeleteTodo sync.RWMutex
}

func (mock *todoServiceMock) ListTodos(ctx context.Context) ([]domain.Todo, error) {
	if mock.ListTodosFunc == nil {
		panic("todoServiceMock.ListTodosFunc: method is nil but todoService.ListTodos was just called")
	}
	return mock.ListTodosFunc(ctx)
}

func (mock *todoServiceMock) GetTodo(ctx context.Context, id string) (*domain.Todo, error) {
	if mock.GetTodoFunc == nil {
		panic("todoServiceMock.GetTodoFunc: method is nil but todoService.GetTodo was just called")
	}
	return mock.GetTodoFunc(ctx, id)
}

func (mock *todoServiceMock) CreateTodo(ctx context.Context, input todo.CreateTodoInput) (*domain.Todo, error) {
	if mock.CreateTodoFunc == nil {
		panic("todoServiceMock.CreateTodoFunc: method is nil but todoService.CreateTodo was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input todo.CreateTodoInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateTodo.Lock()
	mock.calls.CreateTodo = append(mock.calls.CreateTodo, callInfo)
	mock.lockCreateTodo.Unlock()
	return mock.CreateTodoFunc(ctx, input)
}

func (mock *todoServiceMock) CreateTodoCalls() []struct {
	Ctx   context.Context
	Input todo.CreateTodoInput
} {
	mock.lockCreateTodo.RLock()
	calls := mock.calls.CreateTodo
	mock.lockCreateTodo.RUnlock()
	return calls
}

func (mock *todoServiceMock) UpdateTodo(ctx context.Context, input todo.UpdateTodoInput) (*domain.Todo, error) {
	if mock.UpdateTodoFunc == nil {
		panic("todoServiceMock.UpdateTodoFunc: method is nil but todoService.UpdateTodo was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input todo.UpdateTodoInput
	}{Ctx: ctx, Input: input}
	mock.lockUpdateTodo.Lock()
	mock.calls.UpdateTodo = append(mock.calls.UpdateTodo, callInfo)
	mock.lockUpdateTodo.Unlock()
	return mock.UpdateTodoFunc(ctx, input)
}

func (mock *todoServiceMock) UpdateTodoCalls() []struct {
	Ctx   context.Context
	Input todo.UpdateTodoInput
} {
	mock.lockUpdateTodo.RLock()
	calls := mock.calls.UpdateTodo
	mock.lockUpdateTodo.RUnlock()
	return calls
}

func (mock *todoServiceMock) DeleteTodo(ctx context.Context, id string) (bool, error) {
	if mock.DeleteTodoFunc == nil {
		panic("todoServiceMock.DeleteTodoFunc: method is nil but todoService.DeleteTodo was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  string
	}{Ctx: ctx, ID: id}
	mock.lockDeleteTodo.Lock()
	mock.calls.DeleteTodo = append(mock.calls.DeleteTodo, callInfo)
	mock.lockDeleteTodo.Unlock()
	return mock.DeleteTodoFunc(ctx, id)
}

func (mock *todoServiceMock) DeleteTodoCalls() []struct {
	Ctx context.Context
	ID  string
} {
	mock.lockDeleteTodo.RLock()
	calls := mock.calls.DeleteTodo
	mock.lockDeleteTodo.RUnlock()
	return calls
}
