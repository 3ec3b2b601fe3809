package repository

import (
	apperrors "Integration_Pool_Manager/internal/pool-manager/errors"
	"Integration_Pool_Manager/internal/pool-manager/model"
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{})
	require.NoError(t, err)

	return gormDB, mock
}

func testServer() model.ServerConfig {
	return model.ServerConfig{
		ID:       "server-1",
		Name:     "github-primary",
		Status:   model.ServerStatusInactive,
		Endpoint: "http://10.0.0.1:9000",
		Protocol: model.ProtocolHTTP,
		Authentication: model.Authentication{
			Type: model.AuthTypeNone,
		},
		Priority: model.PriorityHigh,
	}
}

func TestServerRepository_CreateServer(t *testing.T) {
	testErr := errors.New("test error")
	tests := []struct {
		name          string
		mockSetup     func(mock sqlmock.Sqlmock)
		expectedError error
	}{
		{
			name: "Success",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "servers"`)).
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
		},
		{
			name: "Error Server Name Already Exists",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "servers"`)).
					WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "servers_name_key"})
				mock.ExpectRollback()
			},
			expectedError: apperrors.ErrServerNameExists,
		},
		{
			name: "Error Generic Database Error",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO "servers"`)).
					WillReturnError(testErr)
				mock.ExpectRollback()
			},
			expectedError: testErr,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			db, mock := setupTestDB(t)
			repo := NewServerRepository(db)
			tc.mockSetup(mock)

			created, err := repo.CreateServer(context.Background(), testServer())

			if tc.expectedError != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tc.expectedError)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "server-1", created.ID)
				assert.False(t, created.CreatedAt.IsZero())
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestServerRepository_GetServerById(t *testing.T) {
	tests := []struct {
		name          string
		mockSetup     func(mock sqlmock.Sqlmock)
		expectedError error
	}{
		{
			name: "Success",
			mockSetup: func(mock sqlmock.Sqlmock) {
				rows := sqlmock.NewRows([]string{"id", "name", "status", "protocol", "authentication"}).
					AddRow("server-1", "github-primary", "active", "http", `{"type":"bearer","credentials":{"token":"t"}}`)
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "servers" WHERE id = $1 ORDER BY "servers"."id" LIMIT $2`)).
					WithArgs("server-1", 1).
					WillReturnRows(rows)
			},
		},
		{
			name: "Error Not Found",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "servers" WHERE id = $1 ORDER BY "servers"."id" LIMIT $2`)).
					WithArgs("server-1", 1).
					WillReturnError(gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrServerNotFound,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			db, mock := setupTestDB(t)
			repo := NewServerRepository(db)
			tc.mockSetup(mock)

			server, err := repo.GetServerById(context.Background(), "server-1")

			if tc.expectedError != nil {
				assert.ErrorIs(t, err, tc.expectedError)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "github-primary", server.Name)
				assert.Equal(t, model.AuthTypeBearer, server.Authentication.Type)
				assert.Equal(t, "t", server.Authentication.Credentials["token"])
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestServerRepository_GetServers(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewServerRepository(db)
	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "name", "status", "tags", "created_at"}).
		AddRow("server-1", "a", "active", `["eu"]`, now).
		AddRow("server-2", "b", "inactive", `[]`, now)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "servers" ORDER BY created_at asc`)).WillReturnRows(rows)

	servers, err := repo.GetServers(context.Background())

	require.NoError(t, err)
	require.Len(t, servers, 2)
	assert.Equal(t, []string{"eu"}, servers[0].Tags)
	assert.Equal(t, model.ServerStatusInactive, servers[1].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestServerRepository_UpdateServer(t *testing.T) {
	tests := []struct {
		name          string
		mockSetup     func(mock sqlmock.Sqlmock)
		expectedError error
	}{
		{
			name: "Success",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta(`UPDATE "servers" SET`)).WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
		},
		{
			name: "Error Not Found",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta(`UPDATE "servers" SET`)).WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectCommit()
			},
			expectedError: apperrors.ErrServerNotFound,
		},
		{
			name: "Error Duplicate Name",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta(`UPDATE "servers" SET`)).
					WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "servers_name_key"})
				mock.ExpectRollback()
			},
			expectedError: apperrors.ErrServerNameExists,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			db, mock := setupTestDB(t)
			repo := NewServerRepository(db)
			tc.mockSetup(mock)

			err := repo.UpdateServer(context.Background(), testServer())

			if tc.expectedError != nil {
				assert.ErrorIs(t, err, tc.expectedError)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestServerRepository_UpdateServerStatus(t *testing.T) {
	db, mock := setupTestDB(t)
	repo := NewServerRepository(db)
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "servers" SET "status"=$1,"updated_at"=$2 WHERE id = $3`)).
		WithArgs(model.ServerStatusDegraded, sqlmock.AnyArg(), "server-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.UpdateServerStatus(context.Background(), "server-1", model.ServerStatusDegraded)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestServerRepository_DeleteServerById(t *testing.T) {
	testErr := errors.New("test error")
	tests := []struct {
		name          string
		mockSetup     func(mock sqlmock.Sqlmock)
		expectedError error
	}{
		{
			name: "Success",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "servers" WHERE id = $1`)).
					WithArgs("server-1").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
		},
		{
			name: "Error Database Error",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "servers" WHERE id = $1`)).
					WithArgs("server-1").
					WillReturnError(testErr)
				mock.ExpectRollback()
			},
			expectedError: testErr,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			db, mock := setupTestDB(t)
			repo := NewServerRepository(db)
			tc.mockSetup(mock)

			err := repo.DeleteServerById(context.Background(), "server-1")

			if tc.expectedError != nil {
				assert.ErrorIs(t, err, tc.expectedError)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
