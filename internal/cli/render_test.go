package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const barsTOML = `
title = "Sales"
width = 400.0
height = 300.0

[encode]
position = "genre*sold"

[[data.values]]
genre = "Sports"
sold = 275

[[data.values]]
genre = "Strategy"
sold = 115
`

func writeChart(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

// execute runs the root command with args against an isolated cache.
func execute(t *testing.T, args ...string) error {
	t.Helper()
	t.Setenv(envRedisURL, "")
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs(append(args, "--cache-dir", filepath.Join(t.TempDir(), "cache")))
	return root.ExecuteContext(context.Background())
}

func TestParseFormats(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty defaults to svg", "", []string{"svg"}},
		{"single format", "png", []string{"png"}},
		{"multiple formats", "svg,png,json", []string{"svg", "png", "json"}},
		{"spaces and empties", " svg, ,json ", []string{"svg", "json"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseFormats(tt.input)
			if strings.Join(got, ",") != strings.Join(tt.want, ",") {
				t.Errorf("parseFormats(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestOutputPaths(t *testing.T) {
	tests := []struct {
		name    string
		output  string
		input   string
		formats []string
		want    []string
	}{
		{"derived from input", "", "charts/sales.toml", []string{"svg"}, []string{"charts/sales.svg"}},
		{"explicit single", "out/bars.png", "sales.toml", []string{"png"}, []string{"out/bars.png"}},
		{"base path for many", "out/bars", "sales.toml", []string{"svg", "png"}, []string{"out/bars.svg", "out/bars.png"}},
		{"format extension stripped", "out/bars.svg", "sales.toml", []string{"svg", "json"}, []string{"out/bars.svg", "out/bars.json"}},
		{"unknown extension kept", "out/bars.v1", "sales.toml", []string{"svg", "png"}, []string{"out/bars.v1.svg", "out/bars.v1.png"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := outputPaths(tt.output, tt.input, tt.formats)
			if strings.Join(got, " ") != strings.Join(tt.want, " ") {
				t.Errorf("outputPaths() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRenderCommand(t *testing.T) {
	dir := t.TempDir()
	chart := writeChart(t, dir, "sales.toml", barsTOML)
	out := filepath.Join(dir, "out", "sales")

	if err := execute(t, "render", chart, "-f", "svg,png,json", "-o", out, "--no-cache"); err != nil {
		t.Fatalf("render: %v", err)
	}

	svg, err := os.ReadFile(out + ".svg")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(svg), "<svg") || strings.Count(string(svg), "<path") != 2 {
		t.Errorf("unexpected svg:\n%s", svg)
	}
	png, err := os.ReadFile(out + ".png")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(png), "\x89PNG") {
		t.Error("png output lacks PNG signature")
	}
	if _, err := os.Stat(out + ".json"); err != nil {
		t.Error(err)
	}
}

func TestRenderCommandErrors(t *testing.T) {
	dir := t.TempDir()
	chart := writeChart(t, dir, "sales.toml", barsTOML)
	jsonChart := writeChart(t, dir, "bars.json", `{"encode":{"position":"a*b"},"data":{"values":[{"a":"x","b":1}]}}`)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"bad format", []string{"render", chart, "-f", "pdf"}, "invalid format"},
		{"missing file", []string{"render", filepath.Join(dir, "none.toml")}, "not found"},
		{"overwrite chart", []string{"render", jsonChart, "-f", "json"}, "overwrite"},
		{"no args", []string{"render"}, "arg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := execute(t, tt.args...)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %v, want containing %q", err, tt.want)
			}
		})
	}
}
