package access_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MrJamesThe3rd/contas/internal/access"
)

func TestService_GetOrCreate(t *testing.T) {
	existingID := uuid.New()

	type testCase struct {
		name      string
		cpf       string
		setupMock func(m *access.MockRepository)
		wantErr   error
		wantID    uuid.UUID
	}

	tests := []testCase{
		{
			name: "InvalidCPFNeverTouchesStorage",
			cpf:  "12345678900",
			setupMock: func(_ *access.MockRepository) {
				// No repository calls expected.
			},
			wantErr: access.ErrInvalidCPF,
		},
		{
			name: "ExistingAccessReturnedUnchanged",
			cpf:  "52601815906",
			setupMock: func(m *access.MockRepository) {
				m.EXPECT().
					GetAccessByCPF(gomock.Any(), "52601815906").
					Return(&access.Access{ID: existingID, CPF: "52601815906"}, nil)
			},
			wantID: existingID,
		},
		{
			name: "FormattedInputResolvesToNormalizedCPF",
			cpf:  "526.018.159-06",
			setupMock: func(m *access.MockRepository) {
				m.EXPECT().
					GetAccessByCPF(gomock.Any(), "52601815906").
					Return(&access.Access{ID: existingID, CPF: "52601815906"}, nil)
			},
			wantID: existingID,
		},
		{
			name: "UnknownCPFCreatesAccess",
			cpf:  "11144477735",
			setupMock: func(m *access.MockRepository) {
				m.EXPECT().
					GetAccessByCPF(gomock.Any(), "11144477735").
					Return(nil, access.ErrNotFound)
				m.EXPECT().
					CreateAccess(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, a *access.Access) error {
						a.ID = uuid.New()
						a.CreatedAt = time.Now()
						a.UpdatedAt = a.CreatedAt
						return nil
					})
			},
		},
		{
			name: "LookupErrorPropagates",
			cpf:  "11144477735",
			setupMock: func(m *access.MockRepository) {
				m.EXPECT().
					GetAccessByCPF(gomock.Any(), "11144477735").
					Return(nil, errors.New("db down"))
			},
			wantErr: errors.New("db down"),
		},
		{
			name: "CreateErrorPropagates",
			cpf:  "11144477735",
			setupMock: func(m *access.MockRepository) {
				m.EXPECT().
					GetAccessByCPF(gomock.Any(), "11144477735").
					Return(nil, access.ErrNotFound)
				m.EXPECT().
					CreateAccess(gomock.Any(), gomock.Any()).
					Return(errors.New("insert failed"))
			},
			wantErr: errors.New("insert failed"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := access.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := access.NewService(repo)
			got, err := svc.GetOrCreate(context.Background(), tt.cpf)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, got)

				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)

			if tt.wantID != uuid.Nil {
				assert.Equal(t, tt.wantID, got.ID)
			} else {
				assert.NotEqual(t, uuid.Nil, got.ID)
			}
		})
	}
}

func TestService_GetOrCreate_Idempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := access.NewMockRepository(ctrl)
	svc := access.NewService(repo)

	created := uuid.New()

	// First call creates, second call finds the same row. Exactly one
	// CreateAccess across both calls.
	gomock.InOrder(
		repo.EXPECT().
			GetAccessByCPF(gomock.Any(), "52601815906").
			Return(nil, access.ErrNotFound),
		repo.EXPECT().
			CreateAccess(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, a *access.Access) error {
				a.ID = created
				return nil
			}),
		repo.EXPECT().
			GetAccessByCPF(gomock.Any(), "52601815906").
			Return(&access.Access{ID: created, CPF: "52601815906"}, nil),
	)

	first, err := svc.GetOrCreate(context.Background(), "52601815906")
	require.NoError(t, err)

	second, err := svc.GetOrCreate(context.Background(), "526.018.159-06")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
}

func TestService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := access.NewMockRepository(ctrl)
	repo.EXPECT().
		ListAccesses(gomock.Any(), 0, 10).
		Return([]*access.Access{{ID: uuid.New()}, {ID: uuid.New()}}, 7, nil)

	svc := access.NewService(repo)

	items, total, err := svc.List(context.Background(), 0, 10)
	require.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, 7, total)
}
