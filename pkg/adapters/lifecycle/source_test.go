package lifecycle_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	blifecycle "github.com/aretw0/bower/pkg/adapters/lifecycle"
	"github.com/aretw0/bower/pkg/core"
)

func TestSourceBridgesEvents(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	in := make(chan core.Event, 1)
	src := blifecycle.NewSource(in)
	require.NoError(t, src.Start(ctx))

	want := core.Event{Type: core.EventModify, Name: "bower.json", Timestamp: time.Now().Unix()}
	in <- want

	select {
	case got := <-src.Events():
		change, ok := got.(blifecycle.Change)
		require.True(t, ok, "expected a Change event, got %T", got)
		assert.Equal(t, want, change.Event)
		assert.Equal(t, blifecycle.ActionReload, change.Action)
		assert.Equal(t, "MODIFY bower.json (reload)", change.String())
	case <-ctx.Done():
		t.Fatal("Timed out waiting for bridged event")
	}
}

func TestSourceMapsDeleteToReset(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	in := make(chan core.Event, 1)
	src := blifecycle.NewSource(in)
	require.NoError(t, src.Start(ctx))

	in <- core.Event{Type: core.EventDelete, Name: "bower.json"}

	select {
	case got := <-src.Events():
		change, ok := got.(blifecycle.Change)
		require.True(t, ok)
		assert.Equal(t, blifecycle.ActionReset, change.Action)
	case <-ctx.Done():
		t.Fatal("Timed out waiting for bridged event")
	}
}

func TestSourceClosesWhenInputCloses(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	in := make(chan core.Event)
	src := blifecycle.NewSource(in)
	require.NoError(t, src.Start(ctx))

	close(in)

	select {
	case _, ok := <-src.Events():
		assert.False(t, ok, "expected output channel to close")
	case <-ctx.Done():
		t.Fatal("Timed out waiting for channel to close")
	}
}
