package ping_get_test

import "fleet/pkg/logger"

// Debug makes MockhandlerLogger satisfy logger.Logger so it can be
// returned from With in test expectations; nothing under test calls it.
func (m *MockhandlerLogger) Debug(msg string, fields ...logger.Field) {}
