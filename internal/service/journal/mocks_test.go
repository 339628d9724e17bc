package journal

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/holyghost-backend/internal/domain"
)

var _ impressionRepo = &impressionRepoMock{}

type impressionRepoMock struct {
	CreateFunc        func(ctx context.Context, imp *domain.Impression) error
	GetByIDFunc       func(ctx context.Context, userID, id uuid.UUID) (*domain.Impression, error)
	ListFunc          func(ctx context.Context, userID uuid.UUID, filter domain.ImpressionQuery) ([]domain.Impression, error)
	UpdateFunc        func(ctx context.Context, userID, id uuid.UUID, params domain.ImpressionUpdateParams, updatedAt time.Time) (*domain.Impression, error)
	SetCategoriesFunc func(ctx context.Context, userID, id uuid.UUID, categoryIDs []int) error
	DeleteFunc        func(ctx context.Context, userID, id uuid.UUID) error

	calls struct {
		Create []struct {
			Imp *domain.Impression
		}
		GetByID []struct {
			UserID uuid.UUID
			ID     uuid.UUID
		}
		List []struct {
			UserID uuid.UUID
			Filter domain.ImpressionQuery
		}
		Update []struct {
			UserID    uuid.UUID
			ID        uuid.UUID
			Params    domain.ImpressionUpdateParams
			UpdatedAt time.Time
		}
		SetCategories []struct {
			UserID      uuid.UUID
			ID          uuid.UUID
			CategoryIDs []int
		}
		Delete []struct {
			UserID uuid.UUID
			ID     uuid.UUID
		}
	}
	lockCreate        sync.RWMutex
	lockGetByID       sync.RWMutex
	lockList          sync.RWMutex
	lockUpdate        sync.RWMutex
	lockSetCategories sync.RWMutex
	lockDelete        sync.RWMutex
}

func (mock *impressionRepoMock) Create(ctx context.Context, imp *domain.Impression) error {
	if mock.CreateFunc == nil {
		panic("impressionRepoMock.CreateFunc: method is nil but impressionRepo.Create was just called")
	}
	callInfo := struct {
		Imp *domain.Impression
	}{Imp: imp}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, imp)
}

func (mock *impressionRepoMock) CreateCalls() []struct {
	Imp *domain.Impression
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *impressionRepoMock) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Impression, error) {
	if mock.GetByIDFunc == nil {
		panic("impressionRepoMock.GetByIDFunc: method is nil but impressionRepo.GetByID was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
		ID     uuid.UUID
	}{UserID: userID, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, userID, id)
}

func (mock *impressionRepoMock) GetByIDCalls() []struct {
	UserID uuid.UUID
	ID     uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *impressionRepoMock) List(ctx context.Context, userID uuid.UUID, filter domain.ImpressionQuery) ([]domain.Impression, error) {
	if mock.ListFunc == nil {
		panic("impressionRepoMock.ListFunc: method is nil but impressionRepo.List was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
		Filter domain.ImpressionQuery
	}{UserID: userID, Filter: filter}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, userID, filter)
}

func (mock *impressionRepoMock) ListCalls() []struct {
	UserID uuid.UUID
	Filter domain.ImpressionQuery
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *impressionRepoMock) Update(ctx context.Context, userID, id uuid.UUID, params domain.ImpressionUpdateParams, updatedAt time.Time) (*domain.Impression, error) {
	if mock.UpdateFunc == nil {
		panic("impressionRepoMock.UpdateFunc: method is nil but impressionRepo.Update was just called")
	}
	callInfo := struct {
		UserID    uuid.UUID
		ID        uuid.UUID
		Params    domain.ImpressionUpdateParams
		UpdatedAt time.Time
	}{UserID: userID, ID: id, Params: params, UpdatedAt: updatedAt}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, userID, id, params, updatedAt)
}

func (mock *impressionRepoMock) UpdateCalls() []struct {
	UserID    uuid.UUID
	ID        uuid.UUID
	Params    domain.ImpressionUpdateParams
	UpdatedAt time.Time
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *impressionRepoMock) SetCategories(ctx context.Context, userID, id uuid.UUID, categoryIDs []int) error {
	if mock.SetCategoriesFunc == nil {
		panic("impressionRepoMock.SetCategoriesFunc: method is nil but impressionRepo.SetCategories was just called")
	}
	callInfo := struct {
		UserID      uuid.UUID
		ID          uuid.UUID
		CategoryIDs []int
	}{UserID: userID, ID: id, CategoryIDs: categoryIDs}
	mock.lockSetCategories.Lock()
	mock.calls.SetCategories = append(mock.calls.SetCategories, callInfo)
	mock.lockSetCategories.Unlock()
	return mock.SetCategoriesFunc(ctx, userID, id, categoryIDs)
}

func (mock *impressionRepoMock) SetCategoriesCalls() []struct {
	UserID      uuid.UUID
	ID          uuid.UUID
	CategoryIDs []int
} {
	mock.lockSetCategories.RLock()
	calls := mock.calls.SetCategories
	mock.lockSetCategories.RUnlock()
	return calls
}

func (mock *impressionRepoMock) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("impressionRepoMock.DeleteFunc: method is nil but impressionRepo.Delete was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
		ID     uuid.UUID
	}{UserID: userID, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, userID, id)
}

func (mock *impressionRepoMock) DeleteCalls() []struct {
	UserID uuid.UUID
	ID     uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

var _ categoryRepo = &categoryRepoMock{}

type categoryRepoMock struct {
	ListByUserFunc func(ctx context.Context, userID uuid.UUID) ([]domain.Category, error)
	GetByIDFunc    func(ctx context.Context, userID uuid.UUID, id int) (*domain.Category, error)
	NextIDFunc     func(ctx context.Context, userID uuid.UUID) (int, error)
	CreateFunc     func(ctx context.Context, userID uuid.UUID, c domain.Category) error
	UpdateFunc     func(ctx context.Context, userID uuid.UUID, id int, params domain.CategoryUpdateParams) (*domain.Category, error)
	DeleteFunc     func(ctx context.Context, userID uuid.UUID, id int) error

	calls struct {
		ListByUser []struct {
			UserID uuid.UUID
		}
		GetByID []struct {
			UserID uuid.UUID
			ID     int
		}
		NextID []struct {
			UserID uuid.UUID
		}
		Create []struct {
			UserID uuid.UUID
			C      domain.Category
		}
		Update []struct {
			UserID uuid.UUID
			ID     int
			Params domain.CategoryUpdateParams
		}
		Delete []struct {
			UserID uuid.UUID
			ID     int
		}
	}
	lockListByUser sync.RWMutex
	lockGetByID    sync.RWMutex
	lockNextID     sync.RWMutex
	lockCreate     sync.RWMutex
	lockUpdate     sync.RWMutex
	lockDelete     sync.RWMutex
}

func (mock *categoryRepoMock) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Category, error) {
	if mock.ListByUserFunc == nil {
		panic("categoryRepoMock.ListByUserFunc: method is nil but categoryRepo.ListByUser was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
	}{UserID: userID}
	mock.lockListByUser.Lock()
	mock.calls.ListByUser = append(mock.calls.ListByUser, callInfo)
	mock.lockListByUser.Unlock()
	return mock.ListByUserFunc(ctx, userID)
}

func (mock *categoryRepoMock) ListByUserCalls() []struct {
	UserID uuid.UUID
} {
	mock.lockListByUser.RLock()
	calls := mock.calls.ListByUser
	mock.lockListByUser.RUnlock()
	return calls
}

func (mock *categoryRepoMock) GetByID(ctx context.Context, userID uuid.UUID, id int) (*domain.Category, error) {
	if mock.GetByIDFunc == nil {
		panic("categoryRepoMock.GetByIDFunc: method is nil but categoryRepo.GetByID was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
		ID     int
	}{UserID: userID, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, userID, id)
}

func (mock *categoryRepoMock) GetByIDCalls() []struct {
	UserID uuid.UUID
	ID     int
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *categoryRepoMock) NextID(ctx context.Context, userID uuid.UUID) (int, error) {
	if mock.NextIDFunc == nil {
		panic("categoryRepoMock.NextIDFunc: method is nil but categoryRepo.NextID was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
	}{UserID: userID}
	mock.lockNextID.Lock()
	mock.calls.NextID = append(mock.calls.NextID, callInfo)
	mock.lockNextID.Unlock()
	return mock.NextIDFunc(ctx, userID)
}

func (mock *categoryRepoMock) NextIDCalls() []struct {
	UserID uuid.UUID
} {
	mock.lockNextID.RLock()
	calls := mock.calls.NextID
	mock.lockNextID.RUnlock()
	return calls
}

func (mock *categoryRepoMock) Create(ctx context.Context, userID uuid.UUID, c domain.Category) error {
	if mock.CreateFunc == nil {
		panic("categoryRepoMock.CreateFunc: method is nil but categoryRepo.Create was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
		C      domain.Category
	}{UserID: userID, C: c}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, userID, c)
}

func (mock *categoryRepoMock) CreateCalls() []struct {
	UserID uuid.UUID
	C      domain.Category
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *categoryRepoMock) Update(ctx context.Context, userID uuid.UUID, id int, params domain.CategoryUpdateParams) (*domain.Category, error) {
	if mock.UpdateFunc == nil {
		panic("categoryRepoMock.UpdateFunc: method is nil but categoryRepo.Update was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
		ID     int
		Params domain.CategoryUpdateParams
	}{UserID: userID, ID: id, Params: params}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, userID, id, params)
}

func (mock *categoryRepoMock) UpdateCalls() []struct {
	UserID uuid.UUID
	ID     int
	Params domain.CategoryUpdateParams
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}

func (mock *categoryRepoMock) Delete(ctx context.Context, userID uuid.UUID, id int) error {
	if mock.DeleteFunc == nil {
		panic("categoryRepoMock.DeleteFunc: method is nil but categoryRepo.Delete was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
		ID     int
	}{UserID: userID, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, userID, id)
}

func (mock *categoryRepoMock) DeleteCalls() []struct {
	UserID uuid.UUID
	ID     int
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
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
