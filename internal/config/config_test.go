package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
listen: ":9090"
log_level: debug
scanner:
  work_dir: /srv/docs
  workers: 8
  skip_names:
    - assets
content:
  source: http
  base_url: https://static.example.org/docs
  fetch_timeout: 3s
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, ":9090", cfg.Listen)
	require.Equal(t, LogLevelDebug, cfg.LogLevel)
	require.Equal(t, "/srv/docs", cfg.ScannerConfig.WorkDir)
	require.Equal(t, 8, cfg.ScannerConfig.Workers)
	require.Equal(t, []string{"assets"}, cfg.ScannerConfig.SkipNames)
	require.Equal(t, ContentSourceHTTP, cfg.ContentConfig.Source)
	require.Equal(t, "https://static.example.org/docs", cfg.ContentConfig.BaseURL)
	require.Equal(t, Duration(3*time.Second), cfg.ContentConfig.FetchTimeout)
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, `
scanner:
  work_dir: /srv/docs
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, defaultListen, cfg.Listen)
	require.Equal(t, LogLevelInfo, cfg.LogLevel)
	require.Equal(t, defaultWorkers, cfg.ScannerConfig.Workers)
	require.Equal(t, ContentSourceFS, cfg.ContentConfig.Source)
	require.Equal(t, defaultFetchTimeout, cfg.ContentConfig.FetchTimeout)
}

func TestLoadEnvOverrides(t *testing.T) {
	path := writeConfig(t, `
listen: ":9090"
scanner:
  work_dir: /srv/docs
content:
  source: http
  base_url: http://localhost:8000/docs
`)

	t.Setenv(envListen, ":7070")
	t.Setenv(envBaseURL, "https://cdn.example.org/docs")
	t.Setenv(envWorkDir, "/data/docs")

	cfg, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, ":7070", cfg.Listen)
	require.Equal(t, "https://cdn.example.org/docs", cfg.ContentConfig.BaseURL)
	require.Equal(t, "/data/docs", cfg.ScannerConfig.WorkDir)
}

func TestLoadInvalid(t *testing.T) {
	testCases := []struct {
		name    string
		content string
	}{
		{
			name:    "missing work_dir",
			content: "listen: \":9090\"\n",
		},
		{
			name: "http source without base_url",
			content: `
scanner:
  work_dir: /srv/docs
content:
  source: http
`,
		},
		{
			name: "unknown content source",
			content: `
scanner:
  work_dir: /srv/docs
content:
  source: ftp
`,
		},
		{
			name: "zero workers",
			content: `
scanner:
  work_dir: /srv/docs
  workers: -1
`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tc.content))
			require.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.Error(t, err)
}
