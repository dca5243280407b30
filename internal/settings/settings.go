// Package settings loads user-level mountd settings from the XDG config
// directory and MOUNTD_* environment variables.
package settings

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/spf13/afero"
	"github.com/spf13/viper"

	"github.com/mountd-cli/mountd/internal/logger"
)

const (
	appName   = "mountd"
	fileName  = "config"
	fileType  = "yaml"
	envPrefix = "MOUNTD"
)

// Setting keys.
const (
	KeyDebug       = "debug"
	KeyLogFormat   = "log_format"
	KeyHTTPTimeout = "http_timeout"
	KeyForce       = "force"
)

// DefaultHTTPTimeout bounds each download.
const DefaultHTTPTimeout = 60 * time.Second

// Settings are the user-level defaults. Command flags override them.
type Settings struct {
	Debug       bool
	LogFormat   string
	HTTPTimeout time.Duration
	Force       bool
}

// FilePath returns $XDG_CONFIG_HOME/mountd/config.yaml.
func FilePath() string {
	return filepath.Join(xdg.ConfigHome, appName, fileName+"."+fileType)
}

// Load reads settings from path on fsys, then the environment.
// A missing file is not an error.
func Load(fsys afero.Fs, path string) (*Settings, error) {
	v := viper.New()
	v.SetFs(fsys)
	v.SetConfigFile(path)
	v.SetConfigType(fileType)
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	v.SetDefault(KeyDebug, false)
	v.SetDefault(KeyLogFormat, logger.FormatText)
	v.SetDefault(KeyHTTPTimeout, DefaultHTTPTimeout)
	v.SetDefault(KeyForce, false)

	exists, err := afero.Exists(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("checking settings file %s: %w", path, err)
	}
	if exists {
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading settings file %s: %w", path, err)
		}
	}

	s := &Settings{
		Debug:       v.GetBool(KeyDebug),
		LogFormat:   v.GetString(KeyLogFormat),
		HTTPTimeout: v.GetDuration(KeyHTTPTimeout),
		Force:       v.GetBool(KeyForce),
	}
	if !logger.ValidFormat(s.LogFormat) {
		return nil, fmt.Errorf("invalid %s %q: must be one of %v", KeyLogFormat, s.LogFormat, logger.Formats)
	}
	if s.HTTPTimeout <= 0 {
		s.HTTPTimeout = DefaultHTTPTimeout
	}
	return s, nil
}
