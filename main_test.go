package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newConfigCmd(t *testing.T) *cobra.Command {
	t.Helper()
	saved := configPath
	t.Cleanup(func() { configPath = saved })
	cmd := &cobra.Command{Use: "test", Run: func(*cobra.Command, []string) {}}
	cmd.Flags().StringVar(&configPath, "config", "config.yaml", "")
	return cmd
}

func writeDotEnv(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	// Registered for restore, then cleared so the file can set it.
	t.Setenv("CONFIG_FILE", "")
	require.NoError(t, os.Unsetenv("CONFIG_FILE"))
	return path
}

func TestLoadEnv(t *testing.T) {
	tests := []struct {
		name   string
		dotenv string
		args   []string
		want   string
	}{
		{name: "dotenv picks the config", dotenv: "CONFIG_FILE=/etc/goldensnow/site.yaml\n", want: "/etc/goldensnow/site.yaml"},
		{name: "flag wins over dotenv", dotenv: "CONFIG_FILE=/etc/goldensnow/site.yaml\n", args: []string{"--config", "local.yaml"}, want: "local.yaml"},
		{name: "default without CONFIG_FILE", dotenv: "# no overrides\n", want: "config.yaml"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := newConfigCmd(t)
			path := writeDotEnv(t, tt.dotenv)
			require.NoError(t, cmd.ParseFlags(tt.args))

			loadEnv(cmd, path)
			assert.Equal(t, tt.want, configPath)
		})
	}
}
