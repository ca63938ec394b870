package libevents

import (
	"github.com/stretchr/testify/mock"
)

type mockLogger struct {
	mock.Mock
}

func (m *mockLogger) WithField(string, any) Logger {
	return m
}

func (m *mockLogger) Debug(args ...any) { m.Called(args...) }

func (m *mockLogger) Debugf(format string, args ...any) { m.Called(format, args) }

func (m *mockLogger) Debugln(args ...any) { m.Called(args...) }

func (m *mockLogger) Info(args ...any) { m.Called(args...) }

func (m *mockLogger) Infof(format string, args ...any) { m.Called(format, args) }

func (m *mockLogger) Infoln(args ...any) { m.Called(args...) }

func (m *mockLogger) Warn(args ...any) { m.Called(args...) }

func (m *mockLogger) Warnf(format string, args ...any) { m.Called(format, args) }

func (m *mockLogger) Warnln(args ...any) { m.Called(args...) }

func (m *mockLogger) Error(args ...any) { m.Called(args...) }

func (m *mockLogger) Errorf(format string, args ...any) { m.Called(format, args) }

func (m *mockLogger) Errorln(args ...any) { m.Called(args...) }

// newQuietMockLogger tolerates any debug output.
func newQuietMockLogger() *mockLogger {
	m := &mockLogger{}
	m.On("Debugf", mock.Anything, mock.Anything).Maybe()
	return m
}
