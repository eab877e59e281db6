package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand_HasSubcommands(t *testing.T) {
	cmds := rootCmd.Commands()

	names := make(map[string]bool)
	for _, c := range cmds {
		names[c.Name()] = true
	}

	expected := []string{"ocr", "analyze", "runs", "export", "serve", "config"}
	for _, name := range expected {
		assert.True(t, names[name], "expected subcommand %q not found", name)
	}
}

func TestRootCommand_Metadata(t *testing.T) {
	assert.Equal(t, "docintel", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Short)
	assert.NotEmpty(t, rootCmd.Long)
}

func TestAnalyzeCommand_Flags(t *testing.T) {
	flag := analyzeCmd.Flags().Lookup("xlsx")
	require.NotNil(t, flag, "analyze command should have --xlsx flag")
	assert.Equal(t, "", flag.DefValue)
}

func TestOCRCommand_Flags(t *testing.T) {
	flag := ocrCmd.Flags().Lookup("format")
	require.NotNil(t, flag, "ocr command should have --format flag")
	assert.Equal(t, "text", flag.DefValue)

	out := ocrCmd.Flags().Lookup("out")
	require.NotNil(t, out, "ocr command should have --out flag")
}

func TestExportCommand_Flags(t *testing.T) {
	flag := exportCmd.Flags().Lookup("format")
	require.NotNil(t, flag, "export command should have --format flag")
	assert.Equal(t, "xlsx", flag.DefValue)
}

func TestServeCommand_Flags(t *testing.T) {
	flag := serveCmd.Flags().Lookup("port")
	require.NotNil(t, flag, "serve command should have --port flag")
	assert.Equal(t, "0", flag.DefValue)
}

func TestRunsCommand_HasSubcommands(t *testing.T) {
	cmds := runsCmd.Commands()
	names := make(map[string]bool)
	for _, c := range cmds {
		names[c.Name()] = true
	}

	for _, name := range []string{"list", "show"} {
		assert.True(t, names[name], "expected runs subcommand %q not found", name)
	}
}

func TestConfigCommand_HasSubcommands(t *testing.T) {
	cmds := configCmd.Commands()
	names := make(map[string]bool)
	for _, c := range cmds {
		names[c.Name()] = true
	}

	for _, name := range []string{"init", "show"} {
		assert.True(t, names[name], "expected config subcommand %q not found", name)
	}
}
