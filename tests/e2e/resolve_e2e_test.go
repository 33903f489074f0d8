package e2e

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"relman/tests/testutil"
)

func TestResolveCommandE2E(t *testing.T) {
	root := testutil.RepoRoot(t)
	outDir := t.TempDir()

	cmd := exec.Command("go", "run", "./cmd/relman", "resolve",
		"--run-config", "fixtures/relman.yaml",
		"--output", outDir,
	)
	cmd.Dir = root
	cmd.Env = append(os.Environ(), "GO111MODULE=on")
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, string(out))

	require.FileExists(t, filepath.Join(outDir, "forced.modules"))
	require.FileExists(t, filepath.Join(outDir, "untied.report"))
	require.FileExists(t, filepath.Join(outDir, "resolution.report"))
}

func TestFailOnUntiedCommandE2E(t *testing.T) {
	root := testutil.RepoRoot(t)

	cmd := exec.Command("go", "run", "./cmd/relman", "fail-on-untied",
		"--run-config", "fixtures/relman.yaml",
	)
	cmd.Dir = root
	cmd.Env = append(os.Environ(), "GO111MODULE=on")
	out, err := cmd.Output()
	require.Error(t, err)
	require.Contains(t, string(out), "z:q:0.1")
}
