package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

func TestOperationRepository_ReserveOperationID(t *testing.T) {
	key := "operation:op-1"
	ttl := time.Hour

	tests := []struct {
		name        string
		mockSetup   func(mock redismock.ClientMock)
		expected    bool
		expectError bool
	}{
		{
			name: "Success, first reservation",
			mockSetup: func(mock redismock.ClientMock) {
				mock.ExpectSetNX(key, 1, ttl).SetVal(true)
			},
			expected: true,
		},
		{
			name: "Success, already reserved",
			mockSetup: func(mock redismock.ClientMock) {
				mock.ExpectSetNX(key, 1, ttl).SetVal(false)
			},
			expected: false,
		},
		{
			name: "Error - Redis returns an error",
			mockSetup: func(mock redismock.ClientMock) {
				mock.ExpectSetNX(key, 1, ttl).SetErr(errors.New("redis connection error"))
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := redismock.NewClientMock()
			repo := NewOperationRepository(db, ttl)
			tt.mockSetup(mock)

			ok, err := repo.ReserveOperationID(context.Background(), "op-1")

			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, ok)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestOperationRepository_ReleaseOperationID(t *testing.T) {
	key := "operation:op-1"

	tests := []struct {
		name        string
		mockSetup   func(mock redismock.ClientMock)
		expectError bool
	}{
		{
			name: "Success",
			mockSetup: func(mock redismock.ClientMock) {
				mock.ExpectDel(key).SetVal(1)
			},
		},
		{
			name: "Error - Redis returns an error",
			mockSetup: func(mock redismock.ClientMock) {
				mock.ExpectDel(key).SetErr(errors.New("redis connection error"))
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := redismock.NewClientMock()
			repo := NewOperationRepository(db, time.Hour)
			tt.mockSetup(mock)

			err := repo.ReleaseOperationID(context.Background(), "op-1")

			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
