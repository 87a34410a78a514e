package config

import (
	"path/filepath"

	"go.uber.org/zap"

	"github.com/muurk/emoti/internal/logging"
)

const (
	appName    = "emoti"
	configFile = "config.yaml"
)

// Environment variables consulted by ResolvePath, in order.
const (
	EnvConfigHome = "XDG_CONFIG_HOME"
	EnvHome       = "HOME"
	EnvUser       = "USER"
)

// Env looks up an environment variable. os.LookupEnv satisfies it.
type Env func(key string) (string, bool)

// ResolveBaseDir returns the directory that holds the application config
// directory:
//   - $XDG_CONFIG_HOME
//   - $HOME/.config
//   - /home/$USER
//
// Variables set to the empty string count as unset.
func ResolveBaseDir(env Env) (string, error) {
	if dir, ok := lookup(env, EnvConfigHome); ok {
		return dir, nil
	}
	if home, ok := lookup(env, EnvHome); ok {
		return filepath.Join(home, ".config"), nil
	}
	if user, ok := lookup(env, EnvUser); ok {
		return filepath.Join("/home", user), nil
	}
	return "", &Error{Kind: ErrPathResolution}
}

// ResolvePath returns the full path to the configuration file,
// <base>/emoti/config.yaml.
func ResolvePath(env Env) (string, error) {
	base, err := ResolveBaseDir(env)
	if err != nil {
		return "", err
	}

	path := filepath.Join(base, appName, configFile)
	logging.Info("Resolved config path", zap.String("path", path))
	return path, nil
}

func lookup(env Env, key string) (string, bool) {
	value, ok := env(key)
	if !ok || value == "" {
		return "", false
	}
	return value, true
}
