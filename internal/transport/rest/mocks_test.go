package rest

import (
	"context"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/holyghost-backend/internal/domain"
	"github.com/heartmarshall/holyghost-backend/internal/service/auth"
	"github.com/heartmarshall/holyghost-backend/internal/service/journal"
	"github.com/heartmarshall/holyghost-backend/internal/service/quiz"
)

type authServiceMock struct {
	RegisterFunc      func(ctx context.Context, input auth.RegisterInput) (*auth.AuthResult, error)
	LoginFunc         func(ctx context.Context, input auth.LoginInput) (*auth.AuthResult, error)
	RefreshFunc       func(ctx context.Context, input auth.RefreshInput) (*auth.AuthResult, error)
	LogoutFunc        func(ctx context.Context) error
	ValidateTokenFunc func(ctx context.Context, token string) (uuid.UUID, error)
}

func (m *authServiceMock) Register(ctx context.Context, input auth.RegisterInput) (*auth.AuthResult, error) {
	return m.RegisterFunc(ctx, input)
}

func (m *authServiceMock) Login(ctx context.Context, input auth.LoginInput) (*auth.AuthResult, error) {
	return m.LoginFunc(ctx, input)
}

func (m *authServiceMock) Refresh(ctx context.Context, input auth.RefreshInput) (*auth.AuthResult, error) {
	return m.RefreshFunc(ctx, input)
}

func (m *authServiceMock) Logout(ctx context.Context) error {
	return m.LogoutFunc(ctx)
}

func (m *authServiceMock) ValidateToken(ctx context.Context, token string) (uuid.UUID, error) {
	return m.ValidateTokenFunc(ctx, token)
}

type journalServiceMock struct {
	CreateImpressionFunc func(ctx context.Context, input journal.CreateImpressionInput) (*domain.Impression, error)
	GetImpressionFunc    func(ctx context.Context, id uuid.UUID) (*domain.Impression, error)
	ListImpressionsFunc  func(ctx context.Context, spec domain.FilterSpec) ([]domain.Impression, error)
	UpdateImpressionFunc func(ctx context.Context, input journal.UpdateImpressionInput) (*domain.Impression, error)
	DeleteImpressionFunc func(ctx context.Context, id uuid.UUID) error

	ListCategoriesFunc func(ctx context.Context) ([]domain.Category, error)
	CreateCategoryFunc func(ctx context.Context, input journal.CreateCategoryInput) (*domain.Category, error)
	UpdateCategoryFunc func(ctx context.Context, input journal.UpdateCategoryInput) (*domain.Category, error)
	DeleteCategoryFunc func(ctx context.Context, id int) error
}

func (m *journalServiceMock) CreateImpression(ctx context.Context, input journal.CreateImpressionInput) (*domain.Impression, error) {
	return m.CreateImpressionFunc(ctx, input)
}

func (m *journalServiceMock) GetImpression(ctx context.Context, id uuid.UUID) (*domain.Impression, error) {
	return m.GetImpressionFunc(ctx, id)
}

func (m *journalServiceMock) ListImpressions(ctx context.Context, spec domain.FilterSpec) ([]domain.Impression, error) {
	return m.ListImpressionsFunc(ctx, spec)
}

func (m *journalServiceMock) UpdateImpression(ctx context.Context, input journal.UpdateImpressionInput) (*domain.Impression, error) {
	return m.UpdateImpressionFunc(ctx, input)
}

func (m *journalServiceMock) DeleteImpression(ctx context.Context, id uuid.UUID) error {
	return m.DeleteImpressionFunc(ctx, id)
}

func (m *journalServiceMock) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return m.ListCategoriesFunc(ctx)
}

func (m *journalServiceMock) CreateCategory(ctx context.Context, input journal.CreateCategoryInput) (*domain.Category, error) {
	return m.CreateCategoryFunc(ctx, input)
}

func (m *journalServiceMock) UpdateCategory(ctx context.Context, input journal.UpdateCategoryInput) (*domain.Category, error) {
	return m.UpdateCategoryFunc(ctx, input)
}

func (m *journalServiceMock) DeleteCategory(ctx context.Context, id int) error {
	return m.DeleteCategoryFunc(ctx, id)
}

type quizServiceMock struct {
	GenerateFunc func(ctx context.Context, input quiz.GenerateInput) (*quiz.Result, error)
}

func (m *quizServiceMock) Generate(ctx context.Context, input quiz.GenerateInput) (*quiz.Result, error) {
	return m.GenerateFunc(ctx, input)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
