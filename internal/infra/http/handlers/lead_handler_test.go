package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/nazorathub/nazorat-hub/internal/entity"
	"github.com/nazorathub/nazorat-hub/internal/infra/http/handlers"
	"github.com/nazorathub/nazorat-hub/internal/usecase"
)

type mockLeadRepo struct {
	mock.Mock
}

func (m *mockLeadRepo) All(ctx context.Context) ([]entity.Lead, error) {
	args := m.Called(ctx)
	return args.Get(0).([]entity.Lead), args.Error(1)
}

func (m *mockLeadRepo) UnassignedPool(ctx context.Context) ([]entity.Lead, error) {
	args := m.Called(ctx)
	return args.Get(0).([]entity.Lead), args.Error(1)
}

func (m *mockLeadRepo) PoolForOperator(ctx context.Context, operatorID string) ([]entity.Lead, error) {
	args := m.Called(ctx, operatorID)
	return args.Get(0).([]entity.Lead), args.Error(1)
}

func (m *mockLeadRepo) BulkAdd(ctx context.Context, leads []entity.Lead, operatorID string) error {
	args := m.Called(ctx, leads, operatorID)
	return args.Error(0)
}

func (m *mockLeadRepo) Update(ctx context.Context, l entity.Lead) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *mockLeadRepo) Purge(ctx context.Context, match func(entity.Lead) bool) error {
	args := m.Called(ctx, mock.Anything)
	return args.Error(0)
}

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) All(ctx context.Context) ([]entity.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]entity.User), args.Error(1)
}

func (m *mockUserRepo) Save(ctx context.Context, u entity.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *mockUserRepo) Delete(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *mockUserRepo) FindByID(ctx context.Context, userID string) (*entity.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func newLeadHandler(leads *mockLeadRepo, users *mockUserRepo) *handlers.LeadHandler {
	distribute := usecase.NewDistributeLeadsUseCase(leads, users)
	importer := usecase.NewImportLeadsUseCase(leads)
	return handlers.NewLeadHandler(leads, distribute, importer, zap.NewNop())
}

func TestHandleDistributeSuccess(t *testing.T) {
	leads := new(mockLeadRepo)
	users := new(mockUserRepo)
	users.On("FindByID", mock.Anything, "op1").
		Return(&entity.User{ID: "op1", Role: entity.RoleOperator}, nil)
	leads.On("UnassignedPool", mock.Anything).
		Return([]entity.Lead{
			{ID: "l1", Status: entity.LeadStatusNew},
			{ID: "l2", Status: entity.LeadStatusNew},
		}, nil)
	leads.On("Update", mock.Anything, mock.Anything).Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/leads/distribute",
		strings.NewReader(`{"operatorId":"op1","count":2}`))
	rec := httptest.NewRecorder()

	newLeadHandler(leads, users).HandleDistribute(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var out usecase.DistributeLeadsOutput
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Equal(t, 2, out.Assigned)
	leads.AssertNumberOfCalls(t, "Update", 2)
}

func TestHandleDistributeInsufficientPool(t *testing.T) {
	leads := new(mockLeadRepo)
	users := new(mockUserRepo)
	users.On("FindByID", mock.Anything, "op1").
		Return(&entity.User{ID: "op1", Role: entity.RoleOperator}, nil)
	leads.On("UnassignedPool", mock.Anything).
		Return([]entity.Lead{{ID: "l1", Status: entity.LeadStatusNew}}, nil)

	req := httptest.NewRequest(http.MethodPost, "/leads/distribute",
		strings.NewReader(`{"operatorId":"op1","count":5}`))
	rec := httptest.NewRecorder()

	newLeadHandler(leads, users).HandleDistribute(rec, req)

	require.Equal(t, http.StatusConflict, rec.Code)
	var body struct {
		Success   bool `json:"success"`
		Available int  `json:"available"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, 1, body.Available)
	leads.AssertNotCalled(t, "Update")
}

func TestHandleDistributeUnknownOperator(t *testing.T) {
	leads := new(mockLeadRepo)
	users := new(mockUserRepo)
	users.On("FindByID", mock.Anything, "ghost").Return(nil, entity.ErrUserNotFound)

	req := httptest.NewRequest(http.MethodPost, "/leads/distribute",
		strings.NewReader(`{"operatorId":"ghost","count":1}`))
	rec := httptest.NewRecorder()

	newLeadHandler(leads, users).HandleDistribute(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleDistributeInvalidJSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/leads/distribute", strings.NewReader("{"))
	rec := httptest.NewRecorder()

	newLeadHandler(new(mockLeadRepo), new(mockUserRepo)).HandleDistribute(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleCreateRequiresNameAndPhone(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/leads",
		strings.NewReader(`{"name":"","phone":""}`))
	rec := httptest.NewRecorder()

	newLeadHandler(new(mockLeadRepo), new(mockUserRepo)).HandleCreate(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandlePurgeRequiresFilter(t *testing.T) {
	req := httptest.NewRequest(http.MethodDelete, "/leads", nil)
	rec := httptest.NewRecorder()

	newLeadHandler(new(mockLeadRepo), new(mockUserRepo)).HandlePurge(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
