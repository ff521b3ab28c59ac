package todo

import (
	"sync"

	"github.com/heartmarshall/todo-backend/internal/domain"
)

var _ todoRepo = &todoRepoMock{}

type todoRepoMock struct {
	ListAllFunc    func() []domain.Todo
	GetFunc        func(id string) (domain.Todo, bool)
	CreateFunc     func(title string) (domain.Todo, error)
	SaveFunc       func(t domain.Todo) domain.Todo
	DeleteByIDFunc func(id string) bool

	calls struct {
		ListAll []struct{}
		Get     []struct {
			ID string
		}
		Create []struct {
			Title string
		}
		Save []struct {
			T domain.Todo
		}
		DeleteByID []struct {
			ID string
		}
	}
	lockListAll    sync.RWMutex
	lockGet        sync.RWMutex
	lockCreate     sync.RWMutex
	lockSave       sync.RWMutex
	lockDeleteByID sync.RWMutex
}

func (mock *todoRepoMock) ListAll() []domain.Todo {
	if mock.ListAllFunc == nil {
		panic("todoRepoMock.ListAllFunc: method is nil but todoRepo.ListAll was just called")
	}
	mock.lockListAll.Lock()
	mock.calls.ListAll = append(mock.calls.ListAll, struct{}{})
	mock.lockListAll.Unlock()
	return mock.ListAllFunc()
}

func (mock *todoRepoMock) ListAllCalls() []struct{} {
	mock.lockListAll.RLock()
	calls := mock.calls.ListAll
	mock.lockListAll.RUnlock()
	return calls
}

func (mock *todoRepoMock) Get(id string) (domain.Todo, bool) {
	if mock.GetFunc == nil {
		panic("todoRepoMock.GetFunc: method is nil but todoRepo.Get was just called")
	}
	callInfo := struct{ ID string }{ID: id}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(id)
}

func (mock *todoRepoMock) GetCalls() []struct{ ID string } {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

func (mock *todoRepoMock) Create(title string) (domain.Todo, error) {
	if mock.CreateFunc == nil {
		panic("todoRepoMock.CreateFunc: method is nil but todoRepo.Create was just called")
	}
	callInfo := struct{ Title string }{Title: title}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(title)
}

func (mock *todoRepoMock) CreateCalls() []struct{ Title string } {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *todoRepoMock) Save(t domain.Todo) domain.Todo {
	if mock.SaveFunc == nil {
		panic("todoRepoMock.SaveFunc: method is nil but todoRepo.Save was just called")
	}
	callInfo := struct{ T domain.Todo }{T: t}
	mock.lockSave.Lock()
	mock.calls.Save = append(mock.calls.Save, callInfo)
	mock.lockSave.Unlock()
	return mock.SaveFunc(t)
}

func (mock *todoRepoMock) SaveCalls() []struct{ T domain.Todo } {
	mock.lockSave.RLock()
	calls := mock.calls.Save
	mock.lockSave.RUnlock()
	return calls
}

func (mock *todoRepoMock) DeleteByID(id string) bool {
	if mock.DeleteByIDFunc == nil {
		panic("todoRepoMock.DeleteByIDFunc: method is nil but todoRepo.DeleteByID was just called")
	}
	callInfo := struct{ ID string }{ID: id}
	mock.lockDeleteByID.Lock()
	mock.calls.DeleteByID = append(mock.calls.DeleteByID, callInfo)
	mock.lockDeleteByID.Unlock()
	return mock.DeleteByIDFunc(id)
}

func (mock *todoRepoMock) DeleteByIDCalls() []struct{ ID string } {
	mock.lockDeleteByID.RLock()
	calls := mock.calls.DeleteByID
	mock.lockDeleteByID.RUnlock()
	return calls
}
