package stub

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mcoot/gamemodules/internal/model"
	"github.com/mcoot/gamemodules/internal/services/auth"
	"github.com/mcoot/gamemodules/internal/testutil"
)

func TestInitializeSucceedsForVerifiedCaller(t *testing.T) {
	service := New(testutil.NopLogger())

	err := service.Initialize(context.Background(), auth.Verified(model.Identity{1}))
	assert.NoError(t, err)

	// Repeated calls are fine, nothing is recorded
	err = service.Initialize(context.Background(), auth.Verified(model.Identity{1}))
	assert.NoError(t, err)
}

func TestInitializeRequiresVerifiedCaller(t *testing.T) {
	service := New(testutil.NopLogger())

	err := service.Initialize(context.Background(), auth.Anonymous())
	assert.ErrorIs(t, err, model.ErrInvalidAuthority)
}
