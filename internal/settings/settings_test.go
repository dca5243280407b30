package settings

import (
	"strings"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPath = "/home/me/.config/mountd/config.yaml"

func TestLoad_Defaults(t *testing.T) {
	s, err := Load(afero.NewMemMapFs(), testPath)
	require.NoError(t, err)

	assert.False(t, s.Debug)
	assert.False(t, s.Force)
	assert.Equal(t, "text", s.LogFormat)
	assert.Equal(t, DefaultHTTPTimeout, s.HTTPTimeout)
}

func TestLoad_File(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, testPath, []byte(strings.Join([]string{
		"debug: true",
		"log_format: pretty",
		"http_timeout: 5s",
		"force: true",
	}, "\n")), 0o644))

	s, err := Load(fsys, testPath)
	require.NoError(t, err)

	assert.True(t, s.Debug)
	assert.True(t, s.Force)
	assert.Equal(t, "pretty", s.LogFormat)
	assert.Equal(t, 5*time.Second, s.HTTPTimeout)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, testPath, []byte("log_format: pretty\n"), 0o644))
	t.Setenv("MOUNTD_LOG_FORMAT", "json")
	t.Setenv("MOUNTD_HTTP_TIMEOUT", "2m")

	s, err := Load(fsys, testPath)
	require.NoError(t, err)

	assert.Equal(t, "json", s.LogFormat)
	assert.Equal(t, 2*time.Minute, s.HTTPTimeout)
}

func TestLoad_InvalidFormat(t *testing.T) {
	t.Setenv("MOUNTD_LOG_FORMAT", "xml")

	_, err := Load(afero.NewMemMapFs(), testPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log_format")
}

func TestLoad_BadYAML(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, testPath, []byte("debug: [\n"), 0o644))

	_, err := Load(fsys, testPath)
	assert.Error(t, err)
}

func TestFilePath(t *testing.T) {
	assert.True(t, strings.HasSuffix(FilePath(), "mountd/config.yaml"), FilePath())
}
