package testutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"s3-audio-translate/internal/app/model"
)

// MockServices contains all mocked collaborators of the app server
type MockServices struct {
	Accounts      *MockAccountDAO
	Authenticator *MockAuthenticator
	Store         *MockObjectStore
	Transcriber   *MockTranscriber
	Translator    *MockTranslator
}

// NewMockServices creates a new instance of mock services
func NewMockServices(t *testing.T) *MockServices {
	return &MockServices{
		Accounts:      NewMockAccountDAO(t),
		Authenticator: NewMockAuthenticator(t),
		Store:         NewMockObjectStore(t),
		Transcriber:   NewMockTranscriber(t),
		Translator:    NewMockTranslator(t),
	}
}

// MockAccountDAO is a mock implementation of repository.AccountDAO
type MockAccountDAO struct {
	mock.Mock
}

func NewMockAccountDAO(t *testing.T) *MockAccountDAO {
	m := &MockAccountDAO{}
	m.Test(t)
	return m
}

func (m *MockAccountDAO) Close() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockAccountDAO) CreateAccount(ctx context.Context, email, passwordHash string) (*model.Account, error) {
	args := m.Called(ctx, email, passwordHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Account), args.Error(1)
}

func (m *MockAccountDAO) GetAccountByEmail(ctx context.Context, email string) (*model.Account, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Account), args.Error(1)
}

// MockAuthenticator is a mock implementation of auth.Authenticator
type MockAuthenticator struct {
	mock.Mock
}

func NewMockAuthenticator(t *testing.T) *MockAuthenticator {
	m := &MockAuthenticator{}
	m.Test(t)
	return m
}

func (m *MockAuthenticator) Authenticate(ctx context.Context, email, password string) (bool, error) {
	args := m.Called(ctx, email, password)
	return args.Bool(0), args.Error(1)
}

func (m *MockAuthenticator) Register(ctx context.Context, email, password string) (bool, string, error) {
	args := m.Called(ctx, email, password)
	return args.Bool(0), args.String(1), args.Error(2)
}

// MockObjectStore is a mock implementation of storage.ObjectStore
type MockObjectStore struct {
	mock.Mock
}

func NewMockObjectStore(t *testing.T) *MockObjectStore {
	m := &MockObjectStore{}
	m.Test(t)
	return m
}

func (m *MockObjectStore) ListAudioFiles(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockObjectStore) Download(ctx context.Context, key, destinationPath string) error {
	args := m.Called(ctx, key, destinationPath)
	return args.Error(0)
}

// MockTranscriber is a mock implementation of api.Transcriber
type MockTranscriber struct {
	mock.Mock
}

func NewMockTranscriber(t *testing.T) *MockTranscriber {
	m := &MockTranscriber{}
	m.Test(t)
	return m
}

func (m *MockTranscriber) Transcribe(ctx context.Context, inputFilePath string) (string, error) {
	args := m.Called(ctx, inputFilePath)
	return args.String(0), args.Error(1)
}

// MockTranslator is a mock implementation of api.Translator
type MockTranslator struct {
	mock.Mock
}

func NewMockTranslator(t *testing.T) *MockTranslator {
	m := &MockTranslator{}
	m.Test(t)
	return m
}

func (m *MockTranslator) Translate(ctx context.Context, text, targetLanguage string) (string, error) {
	args := m.Called(ctx, text, targetLanguage)
	return args.String(0), args.Error(1)
}
