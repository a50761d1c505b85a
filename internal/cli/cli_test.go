package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/matzehuels/resizable/pkg/store"
	"github.com/matzehuels/resizable/pkg/unit"
)

func TestRootCommand(t *testing.T) {
	root := testCLI().RootCommand()
	if root.Use != appName {
		t.Errorf("Use = %q, want %q", root.Use, appName)
	}

	want := map[string]bool{"simulate": false, "tui": false, "store": false, "completion": false}
	for _, cmd := range root.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("missing subcommand %q", name)
		}
	}
}

func TestSetLogLevel(t *testing.T) {
	c := testCLI()
	c.SetLogLevel(LogDebug)
	if c.Logger.GetLevel() != LogDebug {
		t.Errorf("level = %v, want debug", c.Logger.GetLevel())
	}
}

func TestOpenStore(t *testing.T) {
	ctx := context.Background()
	c := testCLI()

	t.Run("disabled", func(t *testing.T) {
		st, err := c.openStore(ctx, storeFlags{noStore: true})
		if err != nil {
			t.Fatal(err)
		}
		if _, ok := st.(*store.NullStore); !ok {
			t.Errorf("got %T, want *store.NullStore", st)
		}
	})

	t.Run("file", func(t *testing.T) {
		dir := t.TempDir()
		st, err := c.openStore(ctx, storeFlags{dir: dir})
		if err != nil {
			t.Fatal(err)
		}
		defer st.Close()

		fs, ok := st.(*store.FileStore)
		if !ok {
			t.Fatalf("got %T, want *store.FileStore", st)
		}
		if fs.Dir() != dir {
			t.Errorf("Dir() = %q, want %q", fs.Dir(), dir)
		}
		if err := st.Save(ctx, "k", unit.Size{Width: unit.Px(1)}); err != nil {
			t.Errorf("Save() error: %v", err)
		}
	})

	t.Run("default dir from XDG", func(t *testing.T) {
		t.Setenv("XDG_STATE_HOME", t.TempDir())
		st, err := c.openStore(ctx, storeFlags{})
		if err != nil {
			t.Fatal(err)
		}
		want, _ := store.DefaultDir()
		if fs, ok := st.(*store.FileStore); !ok || fs.Dir() != want {
			t.Errorf("got %T, want a file store in %s", st, want)
		}
	})
}

func TestRedisPassword(t *testing.T) {
	t.Setenv(redisPasswordEnv, "secret")
	if got := redisPassword(); got != "secret" {
		t.Errorf("redisPassword() = %q", got)
	}
}

func TestCompletionGenerators(t *testing.T) {
	root := testCLI().RootCommand()
	for _, shell := range completionShells() {
		var buf bytes.Buffer
		if err := completionGenerators[shell](root, &buf); err != nil {
			t.Errorf("%s: %v", shell, err)
			continue
		}
		if !strings.Contains(buf.String(), appName) {
			t.Errorf("%s script does not mention %s", shell, appName)
		}
	}
	if got := len(completionShells()); got != 4 {
		t.Errorf("got %d shells, want 4", got)
	}
}
