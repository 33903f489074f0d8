package core

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingForceTarget struct {
	mu    sync.Mutex
	calls [][]string
	err   error
}

func (r *recordingForceTarget) ForceModules(_ context.Context, modules []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, append([]string(nil), modules...))
	return r.err
}

func TestComputeForceSet(t *testing.T) {
	store := NewTieStore()
	require.NoError(t, store.Tie("org.b", "core", "2.0"))
	require.NoError(t, store.Tie("org.a", "core", "1.0"))
	require.NoError(t, store.Tie("org.c", "*", "3.0"))

	want := []string{"org.a:core:1.0", "org.b:core:2.0"}
	if diff := cmp.Diff(want, ComputeForceSet(store)); diff != "" {
		t.Fatalf("unexpected force set (-want +got):\n%s", diff)
	}
	assert.Empty(t, ComputeForceSet(NewTieStore()))
}

func TestForceApplierAppliesOnce(t *testing.T) {
	var logs bytes.Buffer
	ctx := zerolog.New(&logs).WithContext(t.Context())
	target := &recordingForceTarget{}
	applier := &ForceApplier{}

	applied, err := applier.Apply(ctx, []string{"g:a:1.0"}, target)
	require.NoError(t, err)
	assert.True(t, applied)
	assert.True(t, applier.IsForced())

	applied, err = applier.Apply(ctx, []string{"g:a:2.0", "g:b:1.0"}, target)
	require.NoError(t, err)
	assert.False(t, applied)

	if diff := cmp.Diff([][]string{{"g:a:1.0"}}, target.calls); diff != "" {
		t.Fatalf("unexpected force calls (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"g:a:1.0"}, applier.Forced()); diff != "" {
		t.Fatalf("unexpected forced modules (-want +got):\n%s", diff)
	}
	assert.Contains(t, logs.String(), "versions already forced for this run")
	assert.Contains(t, logs.String(), `"level":"error"`)
}

func TestForceApplierConcurrentApplyRunsOnce(t *testing.T) {
	target := &recordingForceTarget{}
	applier := &ForceApplier{}

	var wg sync.WaitGroup
	var mu sync.Mutex
	appliedCount := 0
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			applied, err := applier.Apply(t.Context(), []string{"g:a:1.0"}, target)
			assert.NoError(t, err)
			if applied {
				mu.Lock()
				appliedCount++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, appliedCount)
	assert.Len(t, target.calls, 1)
}

func TestForceApplierTargetFailureIsTerminal(t *testing.T) {
	target := &recordingForceTarget{err: errors.New("substrate unavailable")}
	applier := &ForceApplier{}

	applied, err := applier.Apply(t.Context(), []string{"g:a:1.0"}, target)
	require.Error(t, err)
	assert.True(t, applied)

	applied, err = applier.Apply(t.Context(), []string{"g:a:1.0"}, target)
	require.NoError(t, err)
	assert.False(t, applied)
	assert.Len(t, target.calls, 1)
}
