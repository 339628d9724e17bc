package auth

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/holyghost-backend/internal/domain"
)

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	CreateFunc     func(ctx context.Context, user *domain.User) error
	GetByIDFunc    func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmailFunc func(ctx context.Context, email string) (*domain.User, error)

	calls struct {
		Create []struct {
			User *domain.User
		}
		GetByID []struct {
			ID uuid.UUID
		}
		GetByEmail []struct {
			Email string
		}
	}
	lockCreate     sync.RWMutex
	lockGetByID    sync.RWMutex
	lockGetByEmail sync.RWMutex
}

func (mock *userRepoMock) Create(ctx context.Context, user *domain.User) error {
	if mock.CreateFunc == nil {
		panic("userRepoMock.CreateFunc: method is nil but userRepo.Create was just called")
	}
	callInfo := struct {
		User *domain.User
	}{User: user}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, user)
}

func (mock *userRepoMock) CreateCalls() []struct {
	User *domain.User
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *userRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if mock.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	callInfo := struct {
		ID uuid.UUID
	}{ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *userRepoMock) GetByIDCalls() []struct {
	ID uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *userRepoMock) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if mock.GetByEmailFunc == nil {
		panic("userRepoMock.GetByEmailFunc: method is nil but userRepo.GetByEmail was just called")
	}
	callInfo := struct {
		Email string
	}{Email: email}
	mock.lockGetByEmail.Lock()
	mock.calls.GetByEmail = append(mock.calls.GetByEmail, callInfo)
	mock.lockGetByEmail.Unlock()
	return mock.GetByEmailFunc(ctx, email)
}

func (mock *userRepoMock) GetByEmailCalls() []struct {
	Email string
} {
	mock.lockGetByEmail.RLock()
	calls := mock.calls.GetByEmail
	mock.lockGetByEmail.RUnlock()
	return calls
}

var _ tokenRepo = &tokenRepoMock{}

type tokenRepoMock struct {
	CreateFunc          func(ctx context.Context, token *domain.RefreshToken) error
	GetByHashFunc       func(ctx context.Context, tokenHash string) (*domain.RefreshToken, error)
	RevokeByIDFunc      func(ctx context.Context, id uuid.UUID) error
	RevokeAllByUserFunc func(ctx context.Context, userID uuid.UUID) error
	DeleteExpiredFunc   func(ctx context.Context) (int, error)

	calls struct {
		Create []struct {
			Token *domain.RefreshToken
		}
		GetByHash []struct {
			TokenHash string
		}
		RevokeByID []struct {
			ID uuid.UUID
		}
		RevokeAllByUser []struct {
			UserID uuid.UUID
		}
		DeleteExpired []struct{}
	}
	lockCreate          sync.RWMutex
	lockGetByHash       sync.RWMutex
	lockRevokeByID      sync.RWMutex
	lockRevokeAllByUser sync.RWMutex
	lockDeleteExpired   sync.RWMutex
}

func (mock *tokenRepoMock) Create(ctx context.Context, token *domain.RefreshToken) error {
	if mock.CreateFunc == nil {
		panic("tokenRepoMock.CreateFunc: method is nil but tokenRepo.Create was just called")
	}
	callInfo := struct {
		Token *domain.RefreshToken
	}{Token: token}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, token)
}

func (mock *tokenRepoMock) CreateCalls() []struct {
	Token *domain.RefreshToken
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *tokenRepoMock) GetByHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error) {
	if mock.GetByHashFunc == nil {
		panic("tokenRepoMock.GetByHashFunc: method is nil but tokenRepo.GetByHash was just called")
	}
	callInfo := struct {
		TokenHash string
	}{TokenHash: tokenHash}
	mock.lockGetByHash.Lock()
	mock.calls.GetByHash = append(mock.calls.GetByHash, callInfo)
	mock.lockGetByHash.Unlock()
	return mock.GetByHashFunc(ctx, tokenHash)
}

func (mock *tokenRepoMock) GetByHashCalls() []struct {
	TokenHash string
} {
	mock.lockGetByHash.RLock()
	calls := mock.calls.GetByHash
	mock.lockGetByHash.RUnlock()
	return calls
}

func (mock *tokenRepoMock) RevokeByID(ctx context.Context, id uuid.UUID) error {
	if mock.RevokeByIDFunc == nil {
		panic("tokenRepoMock.RevokeByIDFunc: method is nil but tokenRepo.RevokeByID was just called")
	}
	callInfo := struct {
		ID uuid.UUID
	}{ID: id}
	mock.lockRevokeByID.Lock()
	mock.calls.RevokeByID = append(mock.calls.RevokeByID, callInfo)
	mock.lockRevokeByID.Unlock()
	return mock.RevokeByIDFunc(ctx, id)
}

func (mock *tokenRepoMock) RevokeByIDCalls() []struct {
	ID uuid.UUID
} {
	mock.lockRevokeByID.RLock()
	calls := mock.calls.RevokeByID
	mock.lockRevokeByID.RUnlock()
	return calls
}

func (mock *tokenRepoMock) RevokeAllByUser(ctx context.Context, userID uuid.UUID) error {
	if mock.RevokeAllByUserFunc == nil {
		panic("tokenRepoMock.RevokeAllByUserFunc: method is nil but tokenRepo.RevokeAllByUser was just called")
	}
	callInfo := struct {
		UserID uuid.UUID
	}{UserID: userID}
	mock.lockRevokeAllByUser.Lock()
	mock.calls.RevokeAllByUser = append(mock.calls.RevokeAllByUser, callInfo)
	mock.lockRevokeAllByUser.Unlock()
	return mock.RevokeAllByUserFunc(ctx, userID)
}

func (mock *tokenRepoMock) RevokeAllByUserCalls() []struct {
	UserID uuid.UUID
} {
	mock.lockRevokeAllByUser.RLock()
	calls := mock.calls.RevokeAllByUser
	mock.lockRevokeAllByUser.RUnlock()
	return calls
}

func (mock *tokenRepoMock) DeleteExpired(ctx context.Context) (int, error) {
	if mock.DeleteExpiredFunc == nil {
		panic("tokenRepoMock.DeleteExpiredFunc: method is nil but tokenRepo.DeleteExpired was just called")
	}
	mock.lockDeleteExpired.Lock()
	mock.calls.DeleteExpired = append(mock.calls.DeleteExpired, struct{}{})
	mock.lockDeleteExpired.Unlock()
	return mock.DeleteExpiredFunc(ctx)
}

func (mock *tokenRepoMock) DeleteExpiredCalls() []struct{} {
	mock.lockDeleteExpired.RLock()
	calls := mock.calls.DeleteExpired
	mock.lockDeleteExpired.RUnlock()
	return calls
}
