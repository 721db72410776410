package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-resumegen"
	"github.com/goliatone/go-resumegen/pkg/wizard"
)

var sampleInput = filepath.Join("..", "..", "pkg", "resume", "testdata", "resume.yaml")

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append(args, "--log-level", "error"))
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestValidateCommand(t *testing.T) {
	out, err := execute(t, "validate", sampleInput)
	require.NoError(t, err)
	assert.Contains(t, out, "ok (")

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"personalInfo":{"fullName":"X"},"skills":[{"name":"Go","level":9}]}`), 0o644))
	out, err = execute(t, "validate", sampleInput, bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2")
	assert.Contains(t, out, "bad.json: invalid")
}

func TestRenderCommand(t *testing.T) {
	output := filepath.Join(t.TempDir(), "out", "resume.html")
	_, err := execute(t, "render", "-i", sampleInput, "-o", output, "-t", "timeline", "--color", "#123456")
	require.NoError(t, err)

	page, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(page), "Ada Lovelace")
	assert.Contains(t, string(page), "#123456")
	assert.NotContains(t, string(page), "contenteditable")

	_, err = execute(t, "render")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "input document is required")
}

func TestExportCommand(t *testing.T) {
	out, err := execute(t, "export", "-i", sampleInput, "-f", "text", "-t", "compact")
	require.NoError(t, err)
	assert.Contains(t, out, "Ada Lovelace")

	txt := filepath.Join(t.TempDir(), "resume.txt")
	_, err = execute(t, "export", "-i", sampleInput, "-o", txt)
	require.NoError(t, err)
	raw, err := os.ReadFile(txt)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "Ada Lovelace")

	_, err = execute(t, "export", "-i", sampleInput, "-f", "docx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")

	_, err = execute(t, "export", "-i", sampleInput, "-o", filepath.Join(t.TempDir(), "resume.docx"))
	require.Error(t, err)
}

func TestGalleryCommand(t *testing.T) {
	dir := t.TempDir()
	out, err := execute(t, "gallery", "-i", sampleInput, "-o", dir, "classic", "timeline")
	require.NoError(t, err)
	for _, id := range []string{"classic", "timeline"} {
		path := filepath.Join(dir, id+".html")
		assert.FileExists(t, path)
		assert.Contains(t, out, path)
	}
}

func TestTemplatesAndVariantsCommands(t *testing.T) {
	out, err := execute(t, "templates")
	require.NoError(t, err)
	assert.Contains(t, out, "classic *")
	assert.Contains(t, out, "modern-cards")

	out, err = execute(t, "variants")
	require.NoError(t, err)
	assert.Contains(t, out, "standard *")
	assert.Contains(t, out, "metrics")

	out, err = execute(t, "variants", "skills")
	require.NoError(t, err)
	assert.Contains(t, out, "pills")

	_, err = execute(t, "variants", "hobbies")
	assert.Error(t, err)
}

type answers struct {
	inputs []string
}

func (a *answers) Input(context.Context, wizard.InputConfig) (string, error) {
	if len(a.inputs) == 0 {
		return "", nil
	}
	value := a.inputs[0]
	a.inputs = a.inputs[1:]
	return value, nil
}

func (a *answers) Confirm(context.Context, wizard.ConfirmConfig) (bool, error) { return false, nil }

func (a *answers) Select(_ context.Context, cfg wizard.SelectConfig) (int, error) {
	return cfg.DefaultIndex, nil
}

func (a *answers) TextArea(context.Context, wizard.TextAreaConfig) (string, error) {
	return "Writes compilers.", nil
}

func (a *answers) Info(context.Context, string) error { return nil }

func TestInitCommand(t *testing.T) {
	previous := newDriver
	t.Cleanup(func() { newDriver = previous })
	newDriver = func(*cobra.Command) wizard.PromptDriver {
		return &answers{inputs: []string{"Grace Hopper", "Admiral", "", "", "COBOL"}}
	}

	path := filepath.Join(t.TempDir(), "resume.yaml")
	out, err := execute(t, "init", "-o", path)
	require.NoError(t, err)
	assert.Contains(t, out, "-t classic")

	data, err := resumegen.LoadResume(path)
	require.NoError(t, err)
	assert.Equal(t, "Grace Hopper", data.PersonalInfo.FullName)
	assert.Equal(t, "Writes compilers.", data.Summary)
	require.Len(t, data.Skills, 1)
	assert.NotEmpty(t, data.Skills[0].ID)

	_, err = execute(t, "init", "-o", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestLoadConfigPrecedence(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "resumegen.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("template: timeline\ntheme: modern\npaper: a4\n"), 0o644))
	t.Setenv("RESUMEGEN_THEME", "minimal")

	root := newRootCmd()
	cmd, _, err := root.Find([]string{"render"})
	require.NoError(t, err)
	require.NoError(t, cmd.ParseFlags([]string{"--config", cfgPath, "--template", "boxed"}))

	cfg, err := loadConfig(cmd)
	require.NoError(t, err)
	assert.Equal(t, "boxed", cfg.Template, "flags win")
	assert.Equal(t, "minimal", cfg.Theme, "env beats the file")
	assert.Equal(t, "a4", cfg.Paper, "file beats defaults")
	assert.Equal(t, ":8080", cfg.Addr, "defaults fill the rest")
}

func TestDocumentID(t *testing.T) {
	assert.Equal(t, "jane", documentID(filepath.Join("cv", "jane.yaml")))
	assert.Equal(t, "resume", documentID("resume"))
}
