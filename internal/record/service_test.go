package record_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/contas/internal/record"
)

func TestService_Create(t *testing.T) {
	accessID := uuid.New()

	type testCase struct {
		name       string
		params     record.CreateParams
		setupMock  func(m *record.MockRepository)
		wantErr    error
		wantStatus string
	}

	tests := []testCase{
		{
			name: "Success",
			params: record.CreateParams{
				Kind:          record.KindExpense,
				Category:      "groceries",
				Amount:        249.90,
				PaymentMethod: "debit",
				DueAt:         time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC),
				Status:        "settled",
			},
			setupMock: func(m *record.MockRepository) {
				m.EXPECT().AccessExists(gomock.Any(), accessID).Return(true, nil)
				m.EXPECT().
					CreateRecord(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, rec *record.Record) error {
						rec.ID = uuid.New()
						rec.CreatedAt = time.Now()
						rec.UpdatedAt = rec.CreatedAt
						return nil
					})
			},
			wantStatus: "settled",
		},
		{
			name: "EmptyStatusDefaultsToPending",
			params: record.CreateParams{
				Kind:   record.KindIncome,
				Amount: 1000,
				DueAt:  time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC),
			},
			setupMock: func(m *record.MockRepository) {
				m.EXPECT().AccessExists(gomock.Any(), accessID).Return(true, nil)
				m.EXPECT().
					CreateRecord(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, rec *record.Record) error {
						rec.ID = uuid.New()
						return nil
					})
			},
			wantStatus: record.StatusPending,
		},
		{
			name:   "UnknownAccessPersistsNothing",
			params: record.CreateParams{Kind: record.KindExpense},
			setupMock: func(m *record.MockRepository) {
				m.EXPECT().AccessExists(gomock.Any(), accessID).Return(false, nil)
				// No CreateRecord call expected.
			},
			wantErr: record.ErrAccessNotFound,
		},
		{
			name:   "ExistenceCheckErrorPropagates",
			params: record.CreateParams{Kind: record.KindExpense},
			setupMock: func(m *record.MockRepository) {
				m.EXPECT().AccessExists(gomock.Any(), accessID).Return(false, errors.New("db down"))
			},
			wantErr: errors.New("db down"),
		},
		{
			name:   "PersistenceErrorPropagates",
			params: record.CreateParams{Kind: record.KindExpense},
			setupMock: func(m *record.MockRepository) {
				m.EXPECT().AccessExists(gomock.Any(), accessID).Return(true, nil)
				m.EXPECT().
					CreateRecord(gomock.Any(), gomock.Any()).
					Return(errors.New("insert failed"))
			},
			wantErr: errors.New("insert failed"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := record.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := record.NewService(repo)
			got, err := svc.Create(context.Background(), accessID, tt.params)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, accessID, got.AccessID)
			assert.True(t, got.Active)
			assert.Equal(t, tt.wantStatus, got.Status)
		})
	}
}

func TestService_Update_SparsePatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()
	before := time.Date(2024, 4, 1, 10, 0, 0, 0, time.UTC)
	stored := &record.Record{
		ID:            id,
		AccessID:      uuid.New(),
		Kind:          record.KindExpense,
		Category:      "groceries",
		Amount:        100,
		PaymentMethod: "debit",
		Description:   "weekly shop",
		DueAt:         time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC),
		Status:        record.StatusPending,
		Active:        true,
		CreatedAt:     before,
		UpdatedAt:     before,
	}

	repo := record.NewMockRepository(ctrl)
	repo.EXPECT().GetRecord(gomock.Any(), id).Return(stored, nil)

	var persisted *record.Record

	repo.EXPECT().
		UpdateRecord(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, rec *record.Record) error {
			persisted = rec
			return nil
		})

	svc := record.NewService(repo)

	got, err := svc.Update(context.Background(), id, record.UpdateParams{
		Amount: new(float64(250)),
		Status: new("settled"),
	})
	require.NoError(t, err)
	require.NotNil(t, persisted)

	// Patched fields change, everything else stays.
	assert.Equal(t, float64(250), got.Amount)
	assert.Equal(t, "settled", got.Status)
	assert.Equal(t, record.KindExpense, got.Kind)
	assert.Equal(t, "groceries", got.Category)
	assert.Equal(t, "debit", got.PaymentMethod)
	assert.Equal(t, "weekly shop", got.Description)
	assert.True(t, got.Active)

	assert.True(t, got.UpdatedAt.After(before), "UpdatedAt must advance")
	assert.Equal(t, got, persisted)
}

func TestService_Update_EmptyPatchStillTouchesUpdatedAt(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()
	before := time.Date(2024, 4, 1, 10, 0, 0, 0, time.UTC)
	stored := &record.Record{ID: id, Active: true, UpdatedAt: before}

	repo := record.NewMockRepository(ctrl)
	repo.EXPECT().GetRecord(gomock.Any(), id).Return(stored, nil)
	repo.EXPECT().UpdateRecord(gomock.Any(), gomock.Any()).Return(nil)

	svc := record.NewService(repo)

	got, err := svc.Update(context.Background(), id, record.UpdateParams{})
	require.NoError(t, err)
	assert.True(t, got.UpdatedAt.After(before))
}

func TestService_Update_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()

	repo := record.NewMockRepository(ctrl)
	repo.EXPECT().GetRecord(gomock.Any(), id).Return(nil, record.ErrNotFound)

	svc := record.NewService(repo)

	got, err := svc.Update(context.Background(), id, record.UpdateParams{Status: new("settled")})
	assert.ErrorIs(t, err, record.ErrNotFound)
	assert.Nil(t, got)
}

func TestService_Deactivate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()
	before := time.Date(2024, 4, 1, 10, 0, 0, 0, time.UTC)
	stored := &record.Record{ID: id, Active: true, UpdatedAt: before}

	repo := record.NewMockRepository(ctrl)
	repo.EXPECT().GetRecord(gomock.Any(), id).Return(stored, nil)
	repo.EXPECT().UpdateRecord(gomock.Any(), gomock.Any()).Return(nil)

	svc := record.NewService(repo)

	got, err := svc.Deactivate(context.Background(), id)
	require.NoError(t, err)
	assert.False(t, got.Active)
	assert.True(t, got.UpdatedAt.After(before))
}

func TestService_Deactivate_TwiceReportsNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()
	stored := &record.Record{ID: id, Active: true}

	repo := record.NewMockRepository(ctrl)

	gomock.InOrder(
		repo.EXPECT().GetRecord(gomock.Any(), id).Return(stored, nil),
		repo.EXPECT().UpdateRecord(gomock.Any(), gomock.Any()).Return(nil),
		// The lookup filters on active, so the second call misses.
		repo.EXPECT().GetRecord(gomock.Any(), id).Return(nil, record.ErrNotFound),
	)

	svc := record.NewService(repo)

	_, err := svc.Deactivate(context.Background(), id)
	require.NoError(t, err)

	_, err = svc.Deactivate(context.Background(), id)
	assert.ErrorIs(t, err, record.ErrNotFound)
}

func TestService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accessID := uuid.New()

	repo := record.NewMockRepository(ctrl)
	repo.EXPECT().
		ListRecords(gomock.Any(), accessID, 0, 10).
		Return([]*record.Record{{ID: uuid.New(), Active: true}}, 23, nil)

	svc := record.NewService(repo)

	items, total, err := svc.List(context.Background(), accessID, 0, 10)
	require.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, 23, total)
}
