package domain_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"go-cvs-backend/internal/domain"
)

func TestMarkVoidedIsOneWay(t *testing.T) {
	var l domain.Lifecycle

	assert.True(t, l.IsActive())
	assert.NoError(t, l.MarkVoided())
	assert.True(t, l.Voided)
	assert.Equal(t, domain.VoidedReason, l.VoidedReason)
	assert.False(t, l.IsActive())

	// A second void is rejected and changes nothing.
	assert.ErrorIs(t, l.MarkVoided(), domain.ErrAlreadyVoided)
	assert.True(t, l.Voided)
}

func TestMarkRetiredIsOneWay(t *testing.T) {
	var l domain.Lifecycle

	assert.NoError(t, l.MarkRetired())
	assert.True(t, l.Retired)
	assert.Equal(t, domain.RetiredReason, l.RetiredReason)
	assert.False(t, l.IsActive())

	assert.ErrorIs(t, l.MarkRetired(), domain.ErrAlreadyRetired)
}

func TestVoidedAndRetiredAreIndependent(t *testing.T) {
	var l domain.Lifecycle

	assert.NoError(t, l.MarkRetired())
	assert.NoError(t, l.MarkVoided())
	assert.True(t, l.Voided)
	assert.True(t, l.Retired)
}

func TestActorDefaultsToSystem(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, domain.SystemActor, domain.Actor(ctx))

	ctx = domain.WithActor(ctx, "jbloggs")
	assert.Equal(t, "jbloggs", domain.Actor(ctx))

	assert.Equal(t, domain.SystemActor, domain.Actor(domain.WithActor(context.Background(), "")))
}
