package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/infofill/internal/config"
	"github.com/jonathan/infofill/internal/types"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAssignments(t *testing.T) {
	got, err := parseAssignments([]string{"name=张三", "note=a=b", "ethnicity=", " wechat =zs"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"name":      "张三",
		"note":      "a=b",
		"ethnicity": "",
		"wechat":    "zs",
	}, got)

	_, err = parseAssignments([]string{"novalue"})
	assert.Error(t, err)
	_, err = parseAssignments([]string{"=x"})
	assert.Error(t, err)
}

func TestExperiencePatchFromFlags_OnlyChangedFields(t *testing.T) {
	cmd := &cobra.Command{Use: "update"}
	bindExperienceFlags(cmd)
	require.NoError(t, cmd.Flags().Parse([]string{"--name", "Company Z", "--end", ""}))

	patch := experiencePatchFromFlags(cmd)
	require.NotNil(t, patch.Name)
	assert.Equal(t, "Company Z", *patch.Name)
	require.NotNil(t, patch.EndDate)
	assert.Equal(t, "", *patch.EndDate, "an explicit empty value clears the field")
	assert.Nil(t, patch.Type)
	assert.Nil(t, patch.StartDate)
	assert.Nil(t, patch.Description)
}

func TestFamilyPatchFromFlags(t *testing.T) {
	cmd := &cobra.Command{Use: "update"}
	bindFamilyFlags(cmd)
	require.NoError(t, cmd.Flags().Parse([]string{"--relation", "母亲"}))

	patch := familyPatchFromFlags(cmd)
	require.NotNil(t, patch.Relation)
	assert.Equal(t, "母亲", *patch.Relation)
	assert.Nil(t, patch.Name)
}

func TestOutputFileName(t *testing.T) {
	assert.Equal(t, "default-1.txt", outputFileName(types.Template{ID: "default-1", Type: types.TemplateText}))
	assert.Equal(t, "default-2.json", outputFileName(types.Template{ID: "default-2", Type: types.TemplateJSON}))
	assert.Equal(t, "default-3.tsv", outputFileName(types.Template{ID: "default-3", Type: types.TemplateTable}))
}

func TestResolveConfig_Precedence(t *testing.T) {
	t.Setenv(config.EnvStore, "memory")
	t.Setenv(config.EnvDataDir, "/from/env")
	t.Setenv(config.EnvLogLevel, "warn")

	rootStore, rootDataDir, rootLogLevel, rootVerbose, rootConfigFile = "", "/from/flag", "", false, ""
	t.Cleanup(func() { rootDataDir = "" })

	cfg, err := resolveConfig()
	require.NoError(t, err)
	assert.Equal(t, "memory", cfg.Store)
	assert.Equal(t, "/from/flag", cfg.DataDir, "flags win over the environment")
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestResolveConfig_VerboseForcesDebug(t *testing.T) {
	rootVerbose = true
	t.Cleanup(func() { rootVerbose = false })

	cfg, err := resolveConfig()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestResolveConfig_InvalidStore(t *testing.T) {
	rootStore = "s3"
	t.Cleanup(func() { rootStore = "" })

	_, err := resolveConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown store")
}

func TestResolveConfig_FileCompletedByEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"store":"postgres"}`), 0o600))
	t.Setenv(config.EnvDatabaseURL, "postgres://localhost/infofill")

	rootConfigFile = path
	t.Cleanup(func() { rootConfigFile = "" })

	cfg, err := resolveConfig()
	require.NoError(t, err)
	assert.Equal(t, "postgres", cfg.Store)
	assert.Equal(t, "postgres://localhost/infofill", cfg.DatabaseURL)
}

func TestExperiencePatchFromFlags_NormalizesDatesAndType(t *testing.T) {
	cmd := &cobra.Command{Use: "update"}
	bindExperienceFlags(cmd)
	require.NoError(t, cmd.Flags().Parse([]string{"--type", "Education", "--start", "2010.9"}))

	patch := experiencePatchFromFlags(cmd)
	require.NotNil(t, patch.Type)
	assert.Equal(t, types.ExperienceEducation, *patch.Type)
	require.NotNil(t, patch.StartDate)
	assert.Equal(t, "2010-09", *patch.StartDate)
}
