package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/extq/cmd/extq/commands"
	"go.trai.ch/extq/internal/app"
	"go.trai.ch/extq/internal/build"
)

type mockApp struct {
	queryFunc func(ctx context.Context, opts app.QueryOptions) error
	cleanFunc func(ctx context.Context, opts app.CleanOptions) error
}

func (m *mockApp) QueryExt(ctx context.Context, opts app.QueryOptions) error {
	if m.queryFunc != nil {
		return m.queryFunc(ctx, opts)
	}
	return nil
}

func (m *mockApp) Clean(ctx context.Context, opts app.CleanOptions) error {
	if m.cleanFunc != nil {
		return m.cleanFunc(ctx, opts)
	}
	return nil
}

func TestCommands_QueryExt(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var captured app.QueryOptions
		called := false

		mock := &mockApp{
			queryFunc: func(_ context.Context, opts app.QueryOptions) error {
				captured = opts
				called = true
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{
			"-c", "custom.yaml", "--verbose",
			"query-ext", "https://ads.example.com/banner.js",
			"-a", "file:///tmp/ghostery.zip",
			"-s", "https://news.example.com/",
			"-e", "firefox-mobile",
			"--skip-regionals",
			"-r", "heads/main",
			"--cache-dir", "/tmp/cache",
		})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.True(t, called)
		assert.Equal(t, app.QueryOptions{
			ConfigPath:    "custom.yaml",
			Artifact:      "file:///tmp/ghostery.zip",
			TargetURL:     "https://ads.example.com/banner.js",
			SourceURL:     "https://news.example.com/",
			Env:           "firefox-mobile",
			Ref:           "heads/main",
			CacheDir:      "/tmp/cache",
			SkipRegionals: true,
			Verbose:       true,
		}, captured)
	})

	t.Run("passes an empty target when the url is omitted", func(t *testing.T) {
		var captured app.QueryOptions

		mock := &mockApp{
			queryFunc: func(_ context.Context, opts app.QueryOptions) error {
				captured = opts
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"query-ext"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Empty(t, captured.TargetURL)
	})

	t.Run("rejects extra arguments", func(t *testing.T) {
		cli := commands.New(&mockApp{})
		cli.SetArgs([]string{"query-ext", "https://a.example/", "https://b.example/"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		require.Error(t, cli.Execute(context.Background()))
	})

	t.Run("returns error on query failure", func(t *testing.T) {
		mock := &mockApp{
			queryFunc: func(_ context.Context, _ app.QueryOptions) error {
				return errors.New("simulated error")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"query-ext", "https://ads.example.com/"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})
}

func TestCommands_Clean(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want app.CleanOptions
	}{
		{
			name: "default cleans downloaded content",
			args: []string{"clean"},
			want: app.CleanOptions{Bytes: true},
		},
		{
			name: "libraries",
			args: []string{"clean", "--libraries"},
			want: app.CleanOptions{Libraries: true},
		},
		{
			name: "all",
			args: []string{"-c", "extq.yaml", "clean", "--all", "--cache-dir", "/tmp/cache"},
			want: app.CleanOptions{ConfigPath: "extq.yaml", CacheDir: "/tmp/cache", Bytes: true, Libraries: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var captured app.CleanOptions

			mock := &mockApp{
				cleanFunc: func(_ context.Context, opts app.CleanOptions) error {
					captured = opts
					return nil
				},
			}

			cli := commands.New(mock)
			cli.SetArgs(tt.args)

			require.NoError(t, cli.Execute(context.Background()))
			assert.Equal(t, tt.want, captured)
		})
	}
}

func TestCommands_Version(t *testing.T) {
	mock := &mockApp{}
	cli := commands.New(mock)

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "extq version "+build.Version+" (commit: "+build.Commit+", date: "+build.Date+")\n", buf.String())
}
