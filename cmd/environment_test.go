package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/modelstore/internal/config"
	"github.com/zjrosen/modelstore/internal/registry"
)

func writeEnv(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func testCommand() *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Flags().Bool("no-cache", false, "")
	return cmd
}

func TestBuildEnvironment_ResolvesFromPrimary(t *testing.T) {
	cfg = config.Defaults()
	cfg.EnvironmentPath = writeEnv(t, "environment.yaml",
		"objects:\n  - id: urn:x-test:one\n")

	env, err := buildEnvironment(testCommand())
	require.NoError(t, err)
	defer func() { _ = env.close() }()

	obj, err := env.provider.GetIdentifiable("urn:x-test:one")
	require.NoError(t, err)
	require.Equal(t, "urn:x-test:one", obj.ID())
	require.Equal(t, 1, env.store().Len())
}

func TestBuildEnvironment_ConsultsExtraProviders(t *testing.T) {
	cfg = config.Defaults()
	cfg.EnvironmentPath = writeEnv(t, "environment.yaml",
		"objects:\n  - id: urn:x-test:one\n")
	cfg.Providers = []string{writeEnv(t, "extra.yaml",
		"objects:\n  - id: urn:x-test:two\n")}

	env, err := buildEnvironment(testCommand())
	require.NoError(t, err)
	defer func() { _ = env.close() }()

	// The chain falls through to the extra provider.
	obj, err := env.provider.GetIdentifiable("urn:x-test:two")
	require.NoError(t, err)
	require.Equal(t, "urn:x-test:two", obj.ID())

	// The primary store only holds its own environment.
	require.False(t, env.store().Contains("urn:x-test:two"))

	_, err = env.provider.GetIdentifiable("urn:x-test:missing")
	require.ErrorIs(t, err, registry.ErrNotFound)
}

func TestBuildEnvironment_MissingEnvironmentFile(t *testing.T) {
	cfg = config.Defaults()
	cfg.EnvironmentPath = filepath.Join(t.TempDir(), "nope.yaml")

	_, err := buildEnvironment(testCommand())

	require.Error(t, err)
	require.Contains(t, err.Error(), "loading environment")
}

func TestBuildEnvironment_InvalidConfig(t *testing.T) {
	cfg = config.Defaults()
	cfg.Cache.TTLSeconds = -1

	_, err := buildEnvironment(testCommand())

	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid configuration")
}

func TestTracingConfig_Defaults(t *testing.T) {
	out := tracingConfig(config.TracingConfig{})

	require.False(t, out.Enabled)
	require.Equal(t, "file", out.Exporter)
	require.Equal(t, "localhost:4317", out.OTLPEndpoint)
	require.Equal(t, 1.0, out.SampleRate)
	require.Equal(t, "modelstore", out.ServiceName)
}

func TestTracingConfig_Overrides(t *testing.T) {
	out := tracingConfig(config.TracingConfig{
		Enabled:      true,
		Exporter:     "stdout",
		SampleRate:   0.25,
		OTLPEndpoint: "collector:4317",
	})

	require.True(t, out.Enabled)
	require.Equal(t, "stdout", out.Exporter)
	require.Equal(t, 0.25, out.SampleRate)
	require.Equal(t, "collector:4317", out.OTLPEndpoint)
}
