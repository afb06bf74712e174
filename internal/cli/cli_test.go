package cli

import (
	"bytes"
	"context"
	"io"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/matzehuels/chartgeom/pkg/observability"
)

func TestRootCommand(t *testing.T) {
	root := New(io.Discard, LogInfo).RootCommand()

	var names []string
	for _, cmd := range root.Commands() {
		names = append(names, cmd.Name())
	}
	sort.Strings(names)
	want := "cache,completion,inspect,render,serve,validate"
	// cobra adds help lazily; ignore it if present.
	got := strings.ReplaceAll(strings.Join(names, ","), "help,", "")
	if got != want {
		t.Errorf("subcommands = %s, want %s", got, want)
	}
	if root.Use != appName {
		t.Errorf("Use = %q", root.Use)
	}
}

func TestSetLogLevel(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, LogInfo)
	c.Logger.Debug("hidden")
	c.SetLogLevel(LogDebug)
	c.Logger.Debug("shown")

	if strings.Contains(buf.String(), "hidden") || !strings.Contains(buf.String(), "shown") {
		t.Errorf("unexpected log output: %q", buf.String())
	}
}

func TestVerboseRegistersHooks(t *testing.T) {
	t.Cleanup(observability.Reset)
	dir := t.TempDir()
	chart := writeChart(t, dir, "sales.toml", barsTOML)

	var buf bytes.Buffer
	c := New(&buf, log.DebugLevel)
	root := c.RootCommand()
	root.SetArgs([]string{"validate", chart})
	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatal(err)
	}
	if _, ok := observability.Pipeline().(*observability.LogHooks); !ok {
		t.Errorf("pipeline hooks = %T, want *LogHooks", observability.Pipeline())
	}
}

func TestValidateCommand(t *testing.T) {
	dir := t.TempDir()
	good := writeChart(t, dir, "sales.toml", barsTOML)
	bad := writeChart(t, dir, "bad.toml", "shape = \"blob\"\n[encode]\nposition = \"a*b\"\n")

	if err := execute(t, "validate", good); err != nil {
		t.Errorf("validate good chart: %v", err)
	}
	err := execute(t, "validate", bad)
	if err == nil || !strings.Contains(err.Error(), "bad.toml is not a valid chart") {
		t.Errorf("validate bad chart: %v", err)
	}
}

func TestInspectPlain(t *testing.T) {
	dir := t.TempDir()
	chart := writeChart(t, dir, "sales.toml", barsTOML)
	if err := execute(t, "inspect", chart, "--plain"); err != nil {
		t.Fatal(err)
	}
	if err := execute(t, "inspect", filepath.Join(dir, "none.toml"), "--plain"); err == nil {
		t.Error("missing chart should fail")
	}
}

func TestPaintRows(t *testing.T) {
	dir := t.TempDir()
	chart := writeChart(t, dir, "sales.toml", barsTOML)

	c := New(io.Discard, LogInfo)
	rows, title, err := c.paintRows(context.Background(), chart)
	if err != nil {
		t.Fatal(err)
	}
	if title != "Sales" || len(rows) != 2 {
		t.Fatalf("title %q, %d rows", title, len(rows))
	}
	if rows[0].Origin["genre"] != "Sports" {
		t.Errorf("first row origin = %v", rows[0].Origin)
	}
	if rows[0].BBox.Height() <= rows[1].BBox.Height() {
		t.Errorf("275 should be taller than 115: %v vs %v", rows[0].BBox, rows[1].BBox)
	}

	table := elementTable(rows, 0)
	for _, want := range []string{rows[0].ID[:8], rows[1].ID[:8], "genre=Sports", "▸"} {
		if !strings.Contains(table, want) {
			t.Errorf("table lacks %q:\n%s", want, table)
		}
	}
}

func TestOriginSummary(t *testing.T) {
	got := originSummary(map[string]any{"sold": 275.0, "genre": "Sports"})
	if got != "genre=Sports sold=275" {
		t.Errorf("originSummary() = %q", got)
	}
}

func TestSwatch(t *testing.T) {
	tests := []struct {
		color string
		want  string
	}{
		{"#5B8FF9", "#5B8FF9"},
		{"", ""},
		{"steelblue", "steelblue"},
	}
	for _, tt := range tests {
		got := swatch(tt.color)
		if !strings.HasSuffix(got, tt.want) {
			t.Errorf("swatch(%q) = %q, want suffix %q", tt.color, got, tt.want)
		}
		if strings.HasPrefix(tt.color, "#") != strings.Contains(got, "■") {
			t.Errorf("swatch(%q) = %q, block only for hex colors", tt.color, got)
		}
	}
}

func key(s string) tea.KeyMsg {
	switch s {
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestElementListModel(t *testing.T) {
	rows := make([]elementRow, 8)
	for i := range rows {
		rows[i] = elementRow{ID: strings.Repeat(string(rune('a'+i)), 36), Kind: "rect", Color: "#5b8ff9"}
	}
	m := newElementListModel("Sales", rows)
	m.Height = 3

	step := func(k string) tea.Cmd {
		next, cmd := m.Update(key(k))
		m = next.(elementListModel)
		return cmd
	}

	step("up")
	if m.Cursor != 0 {
		t.Errorf("up at top moved cursor to %d", m.Cursor)
	}
	for i := 0; i < 4; i++ {
		step("down")
	}
	if m.Cursor != 4 || m.Offset != 2 {
		t.Errorf("after 4 downs: cursor %d offset %d, want 4 and 2", m.Cursor, m.Offset)
	}
	step("G")
	if m.Cursor != 7 || m.Offset != 5 {
		t.Errorf("end: cursor %d offset %d", m.Cursor, m.Offset)
	}
	step("j")
	if m.Cursor != 7 {
		t.Errorf("down at bottom moved cursor to %d", m.Cursor)
	}
	step("g")
	if m.Cursor != 0 || m.Offset != 0 {
		t.Errorf("home: cursor %d offset %d", m.Cursor, m.Offset)
	}

	view := m.View()
	if !strings.Contains(view, "Sales") || !strings.Contains(view, "[1/8]") {
		t.Errorf("view:\n%s", view)
	}
	if strings.Contains(view, "dddddddd") {
		t.Error("view should only show the visible window")
	}

	step("down")
	if cmd := step("enter"); cmd == nil {
		t.Error("enter should quit")
	}
	if m.Selected == nil || m.Selected.ID != rows[1].ID {
		t.Errorf("selected = %+v", m.Selected)
	}

	if cmd := step("q"); cmd == nil {
		t.Error("q should quit")
	}
}

func TestElementListModelResize(t *testing.T) {
	m := newElementListModel("t", make([]elementRow, 20))
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 10})
	if got := next.(elementListModel).Height; got != 5 {
		t.Errorf("height = %d, want the minimum 5", got)
	}
}

func TestCompletionCommand(t *testing.T) {
	root := New(io.Discard, LogInfo).RootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"completion", "bash"})
	if err := root.Execute(); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), appName) {
		t.Error("bash completion should mention the command name")
	}
}
