package core

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/nordlys/outreach-admin/internal/model"
)

func TestEmailAccountService_BulkInsert_Empty(t *testing.T) {
	db := &mockDB{}
	svc := NewEmailAccountService(db)

	err := svc.BulkInsert(context.Background(), nil)
	require.NoError(t, err)
	db.AssertNotCalled(t, "Exec", mock.Anything, mock.Anything, mock.Anything)
}

func TestEmailAccountService_BulkInsert_MultiRow(t *testing.T) {
	db := &mockDB{}
	svc := NewEmailAccountService(db)
	ctx := context.Background()

	var capturedSQL string
	var capturedArgs []any
	db.On("Exec", ctx, mock.AnythingOfType("string"), mock.Anything).
		Run(func(args mock.Arguments) {
			capturedSQL = args.Get(1).(string)
			capturedArgs = args.Get(2).([]any)
		}).
		Return(pgconn.CommandTag{}, nil)

	now := time.Now()
	err := svc.BulkInsert(ctx, []model.EmailAccount{
		{ID: "a-1", OrgID: "org-1", Email: "ada@getreply.io", SenderName: "Ada Mills", DailyLimit: 50, Status: model.StatusWarming, CreatedAt: now},
		{ID: "a-2", OrgID: "org-1", Email: "tom@getreply.io", SenderName: "Tom Mills", DailyLimit: 50, Status: model.StatusWarming, CreatedAt: now},
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(capturedSQL, "INSERT INTO email_accounts"))
	assert.Equal(t, 1, strings.Count(capturedSQL, "INSERT"), "must be a single statement")
	assert.Contains(t, capturedSQL, "($1, $2, $3, $4, $5, $6, $7)")
	assert.Contains(t, capturedSQL, "($8, $9, $10, $11, $12, $13, $14)")
	require.Len(t, capturedArgs, 14)
	assert.Equal(t, "a-1", capturedArgs[0])
	assert.Equal(t, "tom@getreply.io", capturedArgs[9])

	db.AssertExpectations(t)
}

func TestEmailAccountService_BulkInsert_Error(t *testing.T) {
	db := &mockDB{}
	svc := NewEmailAccountService(db)
	ctx := context.Background()

	db.On("Exec", ctx, mock.AnythingOfType("string"), mock.Anything).
		Return(pgconn.CommandTag{}, assert.AnError)

	err := svc.BulkInsert(ctx, []model.EmailAccount{{ID: "a-1"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insert email accounts")
}

func TestEmailAccountService_ListByOrg_Success(t *testing.T) {
	db := &mockDB{}
	svc := NewEmailAccountService(db)
	ctx := context.Background()

	now := time.Now().Truncate(time.Microsecond)
	rows := newMockRows(func(dest ...any) error {
		*(dest[0].(*string)) = "a-1"
		*(dest[1].(*string)) = "org-1"
		*(dest[2].(*string)) = "ada@getreply.io"
		*(dest[3].(*string)) = "Ada Mills"
		*(dest[4].(*int)) = 50
		*(dest[5].(*string)) = model.StatusWarming
		*(dest[6].(**string)) = nil
		*(dest[7].(*time.Time)) = now
		return nil
	})
	db.On("Query", ctx, mock.AnythingOfType("string"), mock.Anything).Return(rows, nil)

	accounts, hasMore, err := svc.ListByOrg(ctx, "org-1", 50, "")
	require.NoError(t, err)
	assert.False(t, hasMore)
	require.Len(t, accounts, 1)
	assert.Equal(t, "ada@getreply.io", accounts[0].Email)
	assert.Nil(t, accounts[0].SmartleadAccountID)
	db.AssertExpectations(t)
}

func TestEmailAccountService_ListByOrg_Empty(t *testing.T) {
	db := &mockDB{}
	svc := NewEmailAccountService(db)
	ctx := context.Background()

	db.On("Query", ctx, mock.AnythingOfType("string"), mock.Anything).Return(newMockRows(), nil)

	accounts, hasMore, err := svc.ListByOrg(ctx, "org-1", 50, "")
	require.NoError(t, err)
	assert.False(t, hasMore)
	require.NotNil(t, accounts, "empty result must marshal as [], not null")
	assert.Empty(t, accounts)
}

func TestEmailAccountService_ListByOrg_Pagination(t *testing.T) {
	db := &mockDB{}
	svc := NewEmailAccountService(db)
	ctx := context.Background()

	row := func(id string) func(dest ...any) error {
		return func(dest ...any) error {
			*(dest[0].(*string)) = id
			*(dest[1].(*string)) = "org-1"
			*(dest[2].(*string)) = id + "@getreply.io"
			*(dest[3].(*string)) = "Sender"
			*(dest[4].(*int)) = 50
			*(dest[5].(*string)) = model.StatusWarming
			*(dest[6].(**string)) = nil
			*(dest[7].(*time.Time)) = time.Now()
			return nil
		}
	}

	var capturedArgs []any
	db.On("Query", ctx, mock.AnythingOfType("string"), mock.Anything).
		Run(func(args mock.Arguments) {
			capturedArgs = args.Get(2).([]any)
		}).
		Return(newMockRows(row("a-1"), row("a-2"), row("a-3")), nil)

	accounts, hasMore, err := svc.ListByOrg(ctx, "org-1", 2, "a-0")
	require.NoError(t, err)
	assert.True(t, hasMore)
	assert.Len(t, accounts, 2)

	// org id, cursor, limit+1
	require.Len(t, capturedArgs, 3)
	assert.Equal(t, "a-0", capturedArgs[1])
	assert.Equal(t, 3, capturedArgs[2])
}
