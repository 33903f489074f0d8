package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"relman/internal/types"
)

func TestOutputFileAdapterFormats(t *testing.T) {
	dir := t.TempDir()
	adapter := NewOutputFileAdapter(dir)

	require.NoError(t, adapter.WriteForcedModules([]string{"org.b:core:2.0", "org.a:core:1.0"}))
	data, err := os.ReadFile(filepath.Join(dir, ForcedModulesFile))
	require.NoError(t, err)
	if diff := cmp.Diff("org.a:core:1.0\norg.b:core:2.0\n", string(data)); diff != "" {
		t.Fatalf("unexpected forced.modules content (-want +got):\n%s", diff)
	}

	require.NoError(t, adapter.WriteUntiedReport([]types.VersionedArtifactName{
		types.NewVersionedArtifactName("z", "q", "0.1"),
		types.NewVersionedArtifactName("a", "b", "1.0"),
	}))
	data, err = os.ReadFile(filepath.Join(dir, UntiedReportFile))
	require.NoError(t, err)
	if diff := cmp.Diff("z:q:0.1\na:b:1.0\n", string(data)); diff != "" {
		t.Fatalf("unexpected untied.report content (-want +got):\n%s", diff)
	}

	require.NoError(t, adapter.WriteResolutionReport([]types.ResolutionRecord{
		{
			Project:   "web",
			Requested: types.NewVersionedArtifactName("z", "q", "0.1"),
			Decision:  types.Unchanged(),
			Selected:  "z:q:0.1",
		},
		{
			Project:   "api",
			Requested: types.NewVersionedArtifactName("com.y", "a", "2.0"),
			Decision:  types.SubstituteTo("com.y:a:3.0"),
			Selected:  "com.y:a:3.0",
		},
	}))
	data, err = os.ReadFile(filepath.Join(dir, ResolutionReportFile))
	require.NoError(t, err)
	want := "api,com.y:a:2.0,substitute,com.y:a:3.0,false,com.y:a:3.0\nweb,z:q:0.1,unchanged,,false,z:q:0.1\n"
	if diff := cmp.Diff(want, string(data)); diff != "" {
		t.Fatalf("unexpected resolution.report content (-want +got):\n%s", diff)
	}
}

func TestOutputFileAdapterEmptyDir(t *testing.T) {
	err := NewOutputFileAdapter("").WriteForcedModules(nil)
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}

func TestOutputReaderAdapterReadsWhatWasWritten(t *testing.T) {
	dir := t.TempDir()
	writer := NewOutputFileAdapter(dir)
	reader := NewOutputReaderAdapter()

	untied := []types.VersionedArtifactName{types.NewVersionedArtifactName("z", "q", "0.1")}
	records := []types.ResolutionRecord{{
		Project:   "api",
		Requested: types.NewVersionedArtifactName("org.x", "lib", "1.0"),
		Decision:  types.Unchanged(),
		Forced:    true,
		Selected:  "org.x:lib:1.2",
	}}
	require.NoError(t, writer.WriteForcedModules([]string{"org.x:lib:1.2"}))
	require.NoError(t, writer.WriteUntiedReport(untied))
	require.NoError(t, writer.WriteResolutionReport(records))

	forced, err := reader.ReadForcedModules(filepath.Join(dir, ForcedModulesFile))
	require.NoError(t, err)
	assert.Equal(t, []string{"org.x:lib:1.2"}, forced)

	gotUntied, err := reader.ReadUntiedReport(filepath.Join(dir, UntiedReportFile))
	require.NoError(t, err)
	if diff := cmp.Diff(untied, gotUntied); diff != "" {
		t.Fatalf("unexpected untied entries (-want +got):\n%s", diff)
	}

	gotRecords, err := reader.ReadResolutionReport(filepath.Join(dir, ResolutionReportFile))
	require.NoError(t, err)
	if diff := cmp.Diff(records, gotRecords); diff != "" {
		t.Fatalf("unexpected records (-want +got):\n%s", diff)
	}
}

func TestOutputReaderAdapterErrors(t *testing.T) {
	reader := NewOutputReaderAdapter()
	_, err := reader.ReadUntiedReport(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))

	path := filepath.Join(t.TempDir(), UntiedReportFile)
	require.NoError(t, os.WriteFile(path, []byte("not-a-coordinate\n"), 0644))
	_, err = reader.ReadUntiedReport(path)
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}
