package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdclust/mdclust/internal/version"
)

func TestVersionCommand(t *testing.T) {
	if version.Short() == "" {
		t.Error("version should not be empty")
	}

	var out bytes.Buffer
	cmd := NewVersionCmd()
	cmd.SetOut(&out)
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), version.Short())
}

func TestSubcommandsRegistered(t *testing.T) {
	names := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		names[cmd.Name()] = true
	}

	for _, name := range []string{"maxclique", "daura", "qt", "init", "version"} {
		assert.True(t, names[name], "missing subcommand %s", name)
	}
}

func TestQTCommandEndToEnd(t *testing.T) {
	dir := t.TempDir()
	matrixPath := filepath.Join(dir, "distances.csv")
	content := "0, 0.5, 1.0, 1.2\n0.5, 0, 0.5, 0.7\n1.0, 0.5, 0, 0.2\n1.2, 0.7, 0.2, 0\n"
	require.NoError(t, os.WriteFile(matrixPath, []byte(content), 0o644))

	var out bytes.Buffer
	cmd := NewQTCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--cutoff", "0.6", "--members", "--no-progress", matrixPath})

	require.NoError(t, cmd.Execute())
	report := out.String()
	assert.Contains(t, report, "Method: qt")
	assert.Contains(t, report, "members: 2 3")
}

func TestMaxCliqueCommandRejectsUnknownBackend(t *testing.T) {
	dir := t.TempDir()
	matrixPath := filepath.Join(dir, "adj.dat")
	require.NoError(t, os.WriteFile(matrixPath, []byte("0 1\n1 0\n"), 0o644))

	cmd := NewMaxCliqueCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--backend", "gpu", "--no-progress", matrixPath})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gpu")
}

func TestInitCommand(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, ".mdclust.toml")

	var out bytes.Buffer
	cmd := NewInitCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--config", configPath})
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(configPath)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "[cluster]"))

	// refuses to overwrite without --force
	cmd = NewInitCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--config", configPath})
	assert.Error(t, cmd.Execute())

	cmd = NewInitCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--config", configPath, "--force"})
	assert.NoError(t, cmd.Execute())
}
