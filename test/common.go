//go:build e2e

package test

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/lerenn/depub/pkg/config"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// TestSetup holds the test environment setup
type TestSetup struct {
	TempDir   string
	SrcDir    string
	DepubPath string
}

// result holds the outcome of one depub invocation
type result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// setupTestEnvironment creates a temporary directory and builds the depub binary into it
func setupTestEnvironment(t *testing.T) *TestSetup {
	t.Helper()

	tempDir := t.TempDir()
	srcDir := filepath.Join(tempDir, "src")
	require.NoError(t, os.MkdirAll(srcDir, 0755))

	currentDir, err := os.Getwd()
	require.NoError(t, err)
	projectRoot := filepath.Dir(currentDir)

	depubPath := filepath.Join(tempDir, "depub")
	buildCmd := exec.Command("go", "build", "-o", depubPath, "./cmd/depub")
	buildCmd.Dir = projectRoot
	if output, err := buildCmd.CombinedOutput(); err != nil {
		t.Logf("Build failed with output: %s", string(output))
		require.NoError(t, err, "Failed to build depub binary")
	}

	return &TestSetup{
		TempDir:   tempDir,
		SrcDir:    srcDir,
		DepubPath: depubPath,
	}
}

// writeSource creates a file under the source directory and returns its path
func writeSource(t *testing.T, setup *TestSetup, name, content string) string {
	t.Helper()

	path := filepath.Join(setup.SrcDir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// readSource returns the content of a file under the source directory
func readSource(t *testing.T, setup *TestSetup, name string) string {
	t.Helper()

	data, err := os.ReadFile(filepath.Join(setup.SrcDir, name))
	require.NoError(t, err)
	return string(data)
}

// writeConfig marshals cfg into a config file and returns its path
func writeConfig(t *testing.T, setup *TestSetup, cfg config.Config) string {
	t.Helper()

	data, err := yaml.Marshal(cfg)
	require.NoError(t, err)

	path := filepath.Join(setup.TempDir, "depub.yaml")
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

// runDepub runs the binary from the temporary directory
func runDepub(t *testing.T, setup *TestSetup, args ...string) result {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := exec.Command(setup.DepubPath, args...)
	cmd.Dir = setup.TempDir
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := result{Stdout: stdout.String(), Stderr: stderr.String()}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		res.ExitCode = exitErr.ExitCode()
	} else {
		require.NoError(t, err)
	}

	return res
}
