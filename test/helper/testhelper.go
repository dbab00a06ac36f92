// Package helper provides test utilities shared by the trial license packages
package helper

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	cn "github.com/tektronix/lib-trial-license-go/constant"
	"github.com/tektronix/lib-trial-license-go/model"
)

// Sandbox is an isolated pair of public-data and cache directories
type Sandbox struct {
	DataDir  string
	CacheDir string
}

// NewSandbox creates empty data and cache directories under t.TempDir
func NewSandbox(t *testing.T) *Sandbox {
	t.Helper()

	root := t.TempDir()
	sb := &Sandbox{
		DataDir:  filepath.Join(root, "public"),
		CacheDir: filepath.Join(root, "cache"),
	}

	require.NoError(t, os.MkdirAll(sb.DataDir, 0o755))
	require.NoError(t, os.MkdirAll(sb.CacheDir, 0o755))

	return sb
}

// Config returns a gate configuration rooted in the sandbox
func (sb *Sandbox) Config() model.Config {
	return model.Config{
		Vendor:   cn.DefaultVendor,
		Product:  cn.DefaultProduct,
		DataDir:  sb.DataDir,
		CacheDir: sb.CacheDir,
	}
}

// KeyFile returns the trial record path inside the sandbox
func (sb *Sandbox) KeyFile() string {
	return filepath.Join(sb.DataDir, cn.DefaultVendor, cn.DefaultProduct, cn.KeyFileName)
}

// WriteKeyFile overwrites the trial record with content
func (sb *Sandbox) WriteKeyFile(t *testing.T, content string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(sb.KeyFile()), 0o755))
	require.NoError(t, os.WriteFile(sb.KeyFile(), []byte(content), 0o644))
}

// ReadKeyFile returns the trial record content
func (sb *Sandbox) ReadKeyFile(t *testing.T) string {
	t.Helper()

	data, err := os.ReadFile(sb.KeyFile())
	require.NoError(t, err)

	return string(data)
}

// Witnesses lists the witness images present in the cache directory
func (sb *Sandbox) Witnesses(t *testing.T) []string {
	t.Helper()

	matches, err := filepath.Glob(filepath.Join(sb.CacheDir, "*"+cn.WitnessExtension))
	require.NoError(t, err)

	return matches
}
