package core

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"relman/internal/types"
)

func TestDecideGroupTie(t *testing.T) {
	store := NewTieStore()
	require.NoError(t, store.Tie("g", "*", "2.0"))
	ledger := NewUntiedLedger()

	tests := []struct {
		name      string
		requested types.VersionedArtifactName
		want      types.Decision
	}{
		{"different version substitutes", types.NewVersionedArtifactName("g", "anything", "1.0"), types.SubstituteTo("g:anything:2.0")},
		{"tied version is kept", types.NewVersionedArtifactName("g", "anything", "2.0"), types.Unchanged()},
		{"other artifact of the group substitutes", types.NewVersionedArtifactName("g", "other", "0.1"), types.SubstituteTo("g:other:2.0")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Decide(t.Context(), store, ledger, tt.requested)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("unexpected decision (-want +got):\n%s", diff)
			}
		})
	}
	assert.Zero(t, ledger.Len())
}

func TestDecideExactTieKeepsRequest(t *testing.T) {
	store := NewTieStore()
	require.NoError(t, store.Tie("org.x", "lib", "1.2"))
	ledger := NewUntiedLedger()

	for _, version := range []string{"1.0", "1.2", "9.9"} {
		got := Decide(t.Context(), store, ledger, types.NewVersionedArtifactName("org.x", "lib", version))
		if diff := cmp.Diff(types.Unchanged(), got); diff != "" {
			t.Fatalf("unexpected decision for %s (-want +got):\n%s", version, diff)
		}
	}
	assert.Zero(t, ledger.Len())
}

func TestDecideExactTieTakesPrecedenceOverGroupTie(t *testing.T) {
	store := NewTieStore()
	require.NoError(t, store.Tie("org.x", "lib", "1.2"))
	require.NoError(t, store.Tie("org.x", "*", "5.0"))
	ledger := NewUntiedLedger()

	got := Decide(t.Context(), store, ledger, types.NewVersionedArtifactName("org.x", "lib", "1.0"))
	if diff := cmp.Diff(types.Unchanged(), got); diff != "" {
		t.Fatalf("unexpected decision (-want +got):\n%s", diff)
	}
	got = Decide(t.Context(), store, ledger, types.NewVersionedArtifactName("org.x", "util", "1.0"))
	if diff := cmp.Diff(types.SubstituteTo("org.x:util:5.0"), got); diff != "" {
		t.Fatalf("unexpected decision (-want +got):\n%s", diff)
	}
}

func TestSatisfiesExactTie(t *testing.T) {
	tied := types.NewVersionedArtifactName("g", "a", "1.0")
	tests := []struct {
		name      string
		requested types.VersionedArtifactName
		want      bool
	}{
		{"same identity other version", types.NewVersionedArtifactName("g", "a", "2.0"), true},
		{"same coordinates", types.NewVersionedArtifactName("g", "a", "1.0"), true},
		{"other group", types.NewVersionedArtifactName("h", "b", "2.0"), true},
		{"same group other artifact and version", types.NewVersionedArtifactName("g", "b", "2.0"), false},
		{"same group other artifact same version", types.NewVersionedArtifactName("g", "b", "1.0"), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, satisfiesExactTie(tt.requested, tied))
		})
	}
}

func TestDecideRecordsUntiedOnce(t *testing.T) {
	store := NewTieStore()
	ledger := NewUntiedLedger()
	requested := types.NewVersionedArtifactName("g2", "art", "9.9")

	for i := 0; i < 2; i++ {
		got := Decide(t.Context(), store, ledger, requested)
		if diff := cmp.Diff(types.Unchanged(), got); diff != "" {
			t.Fatalf("unexpected decision (-want +got):\n%s", diff)
		}
	}
	if diff := cmp.Diff([]types.VersionedArtifactName{requested}, ledger.All()); diff != "" {
		t.Fatalf("unexpected ledger (-want +got):\n%s", diff)
	}
	assert.Equal(t, "g2:art:9.9", ledger.All()[0].Coordinates())
}

func TestDecideEndToEndScenario(t *testing.T) {
	store := NewTieStore()
	require.NoError(t, store.TieCoordinates("org.x:lib:1.2"))
	require.NoError(t, store.Tie("com.y", "*", "3.0"))
	ledger := NewUntiedLedger()

	requests := []types.VersionedArtifactName{
		types.NewVersionedArtifactName("org.x", "lib", "1.0"),
		types.NewVersionedArtifactName("com.y", "a", "2.0"),
		types.NewVersionedArtifactName("com.y", "a", "3.0"),
		types.NewVersionedArtifactName("z", "q", "0.1"),
		types.NewVersionedArtifactName("z", "q", "0.1"),
	}
	var got []types.Decision
	for _, requested := range requests {
		got = append(got, Decide(t.Context(), store, ledger, requested))
	}
	want := []types.Decision{
		types.Unchanged(),
		types.SubstituteTo("com.y:a:3.0"),
		types.Unchanged(),
		types.Unchanged(),
		types.Unchanged(),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected decisions (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]types.VersionedArtifactName{types.NewVersionedArtifactName("z", "q", "0.1")}, ledger.All()); diff != "" {
		t.Fatalf("unexpected ledger (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"org.x:lib:1.2"}, ComputeForceSet(store)); diff != "" {
		t.Fatalf("unexpected force set (-want +got):\n%s", diff)
	}
}
