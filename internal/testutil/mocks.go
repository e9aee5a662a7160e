package testutil

import (
	"github.com/stretchr/testify/mock"
)

// MockAttributeRepository is a mock for repository.AttributeRepository
type MockAttributeRepository struct {
	mock.Mock
}

func (m *MockAttributeRepository) Get(userID string) (map[string]any, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]any), args.Error(1)
}

func (m *MockAttributeRepository) Put(userID string, data map[string]any) error {
	args := m.Called(userID, data)
	return args.Error(0)
}

// MockNotifier records alerts for assertions
type MockNotifier struct {
	Alerts []string
}

func (m *MockNotifier) Alert(text string) {
	m.Alerts = append(m.Alerts, text)
}
