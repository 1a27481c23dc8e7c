package factory

import (
	"time"

	"github.com/mcoot/gamemodules/internal/dependencies/mocks"
	memoryledger "github.com/mcoot/gamemodules/internal/ledger/memory"
	noncememory "github.com/mcoot/gamemodules/internal/nonce/memory"
	"github.com/mcoot/gamemodules/internal/services/auth"
	"github.com/mcoot/gamemodules/internal/storage/memory"
	"github.com/mcoot/gamemodules/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock *mocks.MockClock
}

// NewTestApp creates an App on memory backends with a mocked clock
func NewTestApp() *TestApp {
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))

	app := newWithDependencies(memory.New(), memoryledger.New(), noncememory.New(mockClock), mockClock, auth.DefaultConfig(), testutil.NopLogger())

	return &TestApp{
		App:       app,
		MockClock: mockClock,
	}
}
