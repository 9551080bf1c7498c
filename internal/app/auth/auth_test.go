package auth

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	apperrors "s3-audio-translate/internal/app/errors"
	"s3-audio-translate/internal/app/model"
	"s3-audio-translate/internal/app/repository"
	"s3-audio-translate/internal/app/testutil"
)

var _ repository.AccountDAO = (*testutil.MockAccountDAO)(nil)
var _ Authenticator = (*testutil.MockAuthenticator)(nil)
var _ Authenticator = (*Service)(nil)

func hashFor(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestService_Authenticate(t *testing.T) {
	tests := []struct {
		name        string
		email       string
		password    string
		setupMocks  func(*testutil.MockAccountDAO)
		expected    bool
		expectError bool
	}{
		{
			name:     "valid credentials",
			email:    "  User@X.com ",
			password: "abcdef",
			setupMocks: func(m *testutil.MockAccountDAO) {
				m.On("GetAccountByEmail", mock.Anything, "user@x.com").
					Return(&model.Account{Email: "user@x.com", PasswordHash: hashFor(t, "abcdef")}, nil)
			},
			expected: true,
		},
		{
			name:     "wrong password",
			email:    "user@x.com",
			password: "wrongpw",
			setupMocks: func(m *testutil.MockAccountDAO) {
				m.On("GetAccountByEmail", mock.Anything, "user@x.com").
					Return(&model.Account{Email: "user@x.com", PasswordHash: hashFor(t, "abcdef")}, nil)
			},
			expected: false,
		},
		{
			name:     "unknown account",
			email:    "nobody@x.com",
			password: "abcdef",
			setupMocks: func(m *testutil.MockAccountDAO) {
				m.On("GetAccountByEmail", mock.Anything, "nobody@x.com").
					Return(nil, apperrors.ErrAccountNotFound)
			},
			expected: false,
		},
		{
			name:       "empty email never hits the store",
			email:      "   ",
			password:   "abcdef",
			setupMocks: func(m *testutil.MockAccountDAO) {},
			expected:   false,
		},
		{
			name:     "store failure",
			email:    "user@x.com",
			password: "abcdef",
			setupMocks: func(m *testutil.MockAccountDAO) {
				m.On("GetAccountByEmail", mock.Anything, "user@x.com").
					Return(nil, errors.New("connection refused"))
			},
			expected:    false,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			accounts := testutil.NewMockAccountDAO(t)
			tt.setupMocks(accounts)
			svc := NewService(accounts, WithCost(bcrypt.MinCost))

			ok, err := svc.Authenticate(context.Background(), tt.email, tt.password)

			assert.Equal(t, tt.expected, ok)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			accounts.AssertExpectations(t)
		})
	}
}

func TestService_Register(t *testing.T) {
	tests := []struct {
		name            string
		email           string
		password        string
		setupMocks      func(*testutil.MockAccountDAO)
		expectedSuccess bool
		expectedMessage string
		expectError     bool
	}{
		{
			name:     "new account",
			email:    "New@X.com",
			password: "abcdef",
			setupMocks: func(m *testutil.MockAccountDAO) {
				m.On("CreateAccount", mock.Anything, "new@x.com", mock.MatchedBy(func(hash string) bool {
					return bcrypt.CompareHashAndPassword([]byte(hash), []byte("abcdef")) == nil
				})).Return(&model.Account{ID: 1, Email: "new@x.com"}, nil)
			},
			expectedSuccess: true,
			expectedMessage: MsgRegistered,
		},
		{
			name:     "email already registered",
			email:    "user@x.com",
			password: "abcdef",
			setupMocks: func(m *testutil.MockAccountDAO) {
				m.On("CreateAccount", mock.Anything, "user@x.com", mock.Anything).
					Return(nil, apperrors.ErrAccountExists)
			},
			expectedSuccess: false,
			expectedMessage: MsgEmailTaken,
		},
		{
			name:            "missing email",
			email:           "",
			password:        "abcdef",
			setupMocks:      func(m *testutil.MockAccountDAO) {},
			expectedSuccess: false,
			expectedMessage: MsgEmailRequired,
		},
		{
			name:            "password over bcrypt limit",
			email:           "user@x.com",
			password:        strings.Repeat("a", 73),
			setupMocks:      func(m *testutil.MockAccountDAO) {},
			expectedSuccess: false,
			expectedMessage: MsgPasswordTooLong,
		},
		{
			name:     "store failure",
			email:    "user@x.com",
			password: "abcdef",
			setupMocks: func(m *testutil.MockAccountDAO) {
				m.On("CreateAccount", mock.Anything, "user@x.com", mock.Anything).
					Return(nil, apperrors.ErrInsertFailed)
			},
			expectedSuccess: false,
			expectError:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			accounts := testutil.NewMockAccountDAO(t)
			tt.setupMocks(accounts)
			svc := NewService(accounts, WithCost(bcrypt.MinCost))

			ok, msg, err := svc.Register(context.Background(), tt.email, tt.password)

			assert.Equal(t, tt.expectedSuccess, ok)
			assert.Equal(t, tt.expectedMessage, msg)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			accounts.AssertExpectations(t)
		})
	}
}
