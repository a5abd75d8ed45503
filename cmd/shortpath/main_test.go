package main

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpath/graph"
)

func TestLoadConfig(t *testing.T) {
	t.Parallel()
	cfg, err := LoadConfig(filepath.Join("testdata", "network.toml"))
	require.NoError(t, err)
	require.Equal(t, 0, cfg.Start)
	require.Equal(t, 5, cfg.End)
	require.Equal(t, graph.DefaultNoEdge, cfg.NoEdge)
	require.False(t, cfg.Validate)
	require.Len(t, cfg.Matrix, 6)
	require.Equal(t, []int64{0, 10, 20, 0, 0, 0}, cfg.Matrix[0])

	g, err := cfg.Graph()
	require.NoError(t, err)
	require.Equal(t, 6, g.Size())
}

func TestLoadConfig_Errors(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	write := func(name, body string) string {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
		return p
	}

	_, err := LoadConfig(filepath.Join("testdata", "missing_end.toml"))
	require.ErrorIs(t, err, ErrBadConfig)

	_, err = LoadConfig(write("empty.toml", "start = 0\nend = 0\nmatrix = []\n"))
	require.ErrorIs(t, err, ErrBadConfig)

	_, err = LoadConfig(write("unknown.toml", "start = 0\nend = 0\nmatrix = [[0]]\nweights = 1\n"))
	require.ErrorIs(t, err, ErrBadConfig)

	_, err = LoadConfig(write("broken.toml", "start = \n"))
	require.Error(t, err)

	_, err = LoadConfig(filepath.Join(dir, "absent.toml"))
	require.Error(t, err)
}

func TestConfig_GraphErrors(t *testing.T) {
	t.Parallel()
	cfg, err := LoadConfig(filepath.Join("testdata", "ragged.toml"))
	require.NoError(t, err)
	_, err = cfg.Graph()
	require.ErrorIs(t, err, graph.ErrNonSquare)

	neg := &Config{Matrix: [][]int64{{0, -2}, {0, 0}}, Validate: true}
	_, err = neg.Graph()
	require.ErrorIs(t, err, graph.ErrNegativeWeight)

	neg.Validate = false
	_, err = neg.Graph()
	require.NoError(t, err)
}

func TestRun(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"Network", []string{"-config", "testdata/network.toml"}, "0 1 4 5 (cost 21)\n"},
		{"OverrideEndpoints", []string{"-config", "testdata/network.toml", "-start", "2", "-end", "5"}, "2 3 5 (cost 22)\n"},
		{"Unreachable", []string{"-config", "testdata/network.toml", "-start", "5", "-end", "0"}, "unreachable\n"},
		{"ZeroCost", []string{"-config", "testdata/zero_cost.toml"}, "0 1 2 (cost 0)\n"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var out, logs bytes.Buffer
			err := run(tc.args, &out, log.New(&logs, "", 0))
			require.NoError(t, err)
			require.Equal(t, tc.want, out.String())
			require.Empty(t, logs.String())
		})
	}
}

func TestRun_Verbose(t *testing.T) {
	t.Parallel()
	var out, logs bytes.Buffer
	err := run([]string{"-config", "testdata/network.toml", "-v"}, &out, log.New(&logs, "", 0))
	require.NoError(t, err)
	require.Equal(t, "0 1 4 5 (cost 21)\n", out.String())
	require.Contains(t, logs.String(), "visit 0 dist=0\n")
	require.Contains(t, logs.String(), "relax 4→5 dist=21\n")
	require.Contains(t, logs.String(), "solved 0→5 in 5 steps\n")
}

func TestRun_Errors(t *testing.T) {
	t.Parallel()
	var out bytes.Buffer
	logger := log.New(&out, "", 0)

	require.Error(t, run([]string{"-nope"}, &out, logger))
	require.ErrorIs(t, run([]string{"-config", "testdata/ragged.toml"}, &out, logger), graph.ErrNonSquare)
	require.ErrorIs(t, run([]string{"-config", "testdata/network.toml", "-end", "9"}, &out, logger), graph.ErrNodeOutOfRange)
	require.Empty(t, out.String())
}
