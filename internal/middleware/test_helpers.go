package middleware

import (
	"context"
	"fmt"
	"sync"
)

// Mock logger for testing. Unlike a no-op mock it records formatted lines so
// tests can assert on diagnostic output.
type mockLogger struct {
	mu      sync.Mutex
	entries []string
}

func (m *mockLogger) record(arg ...any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, fmt.Sprint(arg...))
}

func (m *mockLogger) recordf(template string, arg ...any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, fmt.Sprintf(template, arg...))
}

func (m *mockLogger) lines() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.entries...)
}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    { m.record(arg...) }
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  { m.recordf(template, arg...) }
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     { m.record(arg...) }
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   { m.recordf(template, arg...) }
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     { m.record(arg...) }
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   { m.recordf(template, arg...) }
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    { m.record(arg...) }
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  { m.recordf(template, arg...) }
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    { m.record(arg...) }
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  { m.recordf(template, arg...) }
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   { m.record(arg...) }
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) { m.recordf(template, arg...) }
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    { m.record(arg...) }
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  { m.recordf(template, arg...) }
