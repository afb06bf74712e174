package cli

import (
	"context"
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/matzehuels/chartgeom/pkg/cache"
)

func TestArtifactDir(t *testing.T) {
	c := New(io.Discard, LogInfo)
	c.cacheDir = "/tmp/charts"
	if dir, err := c.artifactDir(); err != nil || dir != "/tmp/charts" {
		t.Errorf("artifactDir() = %q, %v", dir, err)
	}

	c.cacheDir = ""
	dir, err := c.artifactDir()
	if err != nil {
		t.Skipf("no user cache dir: %v", err)
	}
	if filepath.Base(dir) != appName {
		t.Errorf("artifactDir() = %q, want it to end in %q", dir, appName)
	}
}

func TestNewCache(t *testing.T) {
	ctx := context.Background()
	c := New(io.Discard, LogInfo)
	c.cacheDir = t.TempDir()

	cc, err := c.newCache(ctx, true)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := cc.(cache.NullCache); !ok {
		t.Errorf("--no-cache gave %T, want NullCache", cc)
	}

	cc, err = c.newCache(ctx, false)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := cc.(*cache.FileCache); !ok {
		t.Errorf("default cache is %T, want *FileCache", cc)
	}

	c.redisURL = "redis://127.0.0.1:1/0"
	if _, err := c.newCache(ctx, false); err == nil {
		t.Error("unreachable redis should fail")
	}
}

func TestCacheCommands(t *testing.T) {
	t.Setenv(envRedisURL, "")
	ctx := context.Background()
	dir := t.TempDir()

	fc, err := cache.NewFileCache(dir)
	if err != nil {
		t.Fatal(err)
	}
	if err := fc.Set(ctx, "fresh", []byte("a"), time.Hour); err != nil {
		t.Fatal(err)
	}
	if err := fc.Set(ctx, "stale", []byte("b"), time.Nanosecond); err != nil {
		t.Fatal(err)
	}
	time.Sleep(5 * time.Millisecond)

	run := func(args ...string) {
		t.Helper()
		root := New(io.Discard, LogInfo).RootCommand()
		root.SetOut(io.Discard)
		root.SetArgs(append(args, "--cache-dir", dir))
		if err := root.ExecuteContext(ctx); err != nil {
			t.Fatalf("%v: %v", args, err)
		}
	}

	run("cache", "info")
	run("cache", "prune")
	st, err := fc.Stats()
	if err != nil {
		t.Fatal(err)
	}
	if st.Entries != 1 || st.Expired != 0 {
		t.Errorf("after prune: %+v, want one live entry", st)
	}

	run("cache", "clear")
	if st, _ := fc.Stats(); st.Entries != 0 {
		t.Errorf("after clear: %d entries", st.Entries)
	}
	run("cache", "clear")
	run("cache", "path")
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		n    int64
		want string
	}{
		{0, "0 B"},
		{1023, "1023 B"},
		{1024, "1.0 KiB"},
		{1536, "1.5 KiB"},
		{5 << 20, "5.0 MiB"},
	}
	for _, tt := range tests {
		if got := formatBytes(tt.n); got != tt.want {
			t.Errorf("formatBytes(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}
