package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCLI runs the built binary against a private data directory.
func runCLI(t *testing.T, dataDir string, args ...string) (string, error) {
	t.Helper()
	binaryPath := getBinaryPath(t)
	cmd := exec.Command(binaryPath, append([]string{"--store", "file", "--data-dir", dataDir}, args...)...)
	cmd.Env = append(os.Environ(), "INFOFILL_PASSPHRASE=")
	output, err := cmd.CombinedOutput()
	return string(output), err
}

func TestCLI_ProfileAndGenerate(t *testing.T) {
	dataDir := t.TempDir()

	_, err := runCLI(t, dataDir, "profile", "set", "name=张三", "phone=13800000000", "wechat=zs_1990")
	require.NoError(t, err)

	out, err := runCLI(t, dataDir, "experience", "add", "--type", "education", "--name", "University X", "--start", "2010-09", "--end", "2014-06")
	require.NoError(t, err, out)

	out, err = runCLI(t, dataDir, "generate", "--template", "default-1")
	require.NoError(t, err, out)
	assert.Contains(t, out, "姓名：张三")
	assert.Contains(t, out, "University X")

	out, err = runCLI(t, dataDir, "profile", "show", "--json")
	require.NoError(t, err, out)
	assert.Contains(t, out, `"wechat": "zs_1990"`)
}

func TestCLI_GenerateUnknownTemplate(t *testing.T) {
	out, err := runCLI(t, t.TempDir(), "generate", "--template", "missing")
	assert.Error(t, err)
	assert.Contains(t, out, "not found")
}

func TestCLI_GenerateMalformedTemplate(t *testing.T) {
	dataDir := t.TempDir()

	id, err := runCLI(t, dataDir, "template", "add", "--name", "Broken", "--content", "{{#experiences}}")
	require.NoError(t, err, id)

	out, err := runCLI(t, dataDir, "generate", "--template", strings.TrimSpace(id))
	assert.Error(t, err)
	assert.Contains(t, out, "generation failed, check template format")
}

func TestCLI_GenerateAll(t *testing.T) {
	dataDir := t.TempDir()
	outDir := filepath.Join(t.TempDir(), "out")

	out, err := runCLI(t, dataDir, "generate", "--all", "--out-dir", outDir)
	require.NoError(t, err, out)
	assert.Contains(t, out, "GENERATION COMPLETE")

	for _, name := range []string{"default-1.txt", "default-2.json", "default-3.tsv"} {
		_, err := os.Stat(filepath.Join(outDir, name))
		assert.NoError(t, err, name)
	}
}

func TestCLI_GenerateRequiresTemplateOrAll(t *testing.T) {
	out, err := runCLI(t, t.TempDir(), "generate")
	assert.Error(t, err)
	assert.Contains(t, out, "at least one of the flags")
}
