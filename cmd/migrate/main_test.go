package main

import (
	"bytes"
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/boutique/internal/storage/postgres"
)

func noEnv(string) string { return "" }

func TestRun_RequiresDSN(t *testing.T) {
	err := run([]string{"-direction=status"}, noEnv, &bytes.Buffer{})
	require.ErrorContains(t, err, envPostgresDSN)
}

func TestRun_UnsupportedDirection(t *testing.T) {
	err := run([]string{"-direction=sideways", "-dsn=postgres://localhost/none"}, noEnv, &bytes.Buffer{})
	require.ErrorContains(t, err, "unsupported direction")
}

func TestRun_NegativeSteps(t *testing.T) {
	err := run([]string{"-direction=down", "-steps=-1"}, noEnv, &bytes.Buffer{})
	require.ErrorContains(t, err, "steps must be >= 0")
}

func TestRun_UnknownFlag(t *testing.T) {
	err := run([]string{"-force"}, noEnv, &bytes.Buffer{})
	require.Error(t, err)
}

func testPostgresDSN(t *testing.T) string {
	t.Helper()

	dsn := strings.TrimSpace(os.Getenv("BOUTIQUE_POSTGRES_TEST_DSN"))
	if dsn == "" {
		t.Skip("postgres dsn is not available")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	store, err := postgres.Open(ctx, dsn)
	if err != nil {
		t.Skipf("postgres is not available: %v", err)
	}
	_ = store.Close()
	return dsn
}

func TestRun_StatusUpDownPaths(t *testing.T) {
	dsn := testPostgresDSN(t)
	env := func(key string) string {
		if key == envPostgresDSN {
			return dsn
		}
		return ""
	}

	var out bytes.Buffer
	require.NoError(t, run([]string{"-direction=up"}, env, &out))
	require.Contains(t, out.String(), "migrate up ok")
	require.Contains(t, out.String(), "version=3 latest=3")
	require.Contains(t, out.String(), "pending=0")

	out.Reset()
	require.NoError(t, run([]string{"-direction=down", "-steps=1"}, env, &out))
	require.Contains(t, out.String(), "pending=1")

	out.Reset()
	require.NoError(t, run([]string{"-direction=status"}, env, &out))
	require.Contains(t, out.String(), "migrate status ok")

	out.Reset()
	require.NoError(t, run([]string{"-direction=up", "-dsn=" + dsn}, noEnv, &out))
	require.Contains(t, out.String(), "pending=0")
}
