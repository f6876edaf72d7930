// Package config resolves where the diary lives and which editor opens it.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

const (
	// DefaultEditor is used when neither DIARY_EDITOR nor EDITOR is set.
	DefaultEditor = "vim"

	// DefaultDirName is the directory created under home when DIARY_DIR is unset.
	DefaultDirName = "diary"
)

// ErrNoHome is returned when no diary directory override is set and the
// home directory cannot be determined.
var ErrNoHome = errors.New("i couldn't find your home directory")

// Config holds the optional overrides. A nil field means "use the default".
type Config struct {
	Dir    *string
	Editor *string

	// File is the config file that was read, empty when none was found.
	File string

	// DirSource names where Dir came from, empty when Dir is nil.
	DirSource string

	// HomeDir looks up the user's home directory. Defaults to homedir.Dir.
	HomeDir func() (string, error)
}

// Load reads DIARY_DIR, DIARY_EDITOR and EDITOR from the environment, with an
// optional .diary.yaml in $DIARY_CONFIG_PATH or the home directory underneath.
//
// Lookup order for the editor is DIARY_EDITOR, the config file, then EDITOR.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName(".diary") // .yaml is implicit
	_ = v.BindEnv("dir", "DIARY_DIR")
	_ = v.BindEnv("editor", "DIARY_EDITOR")
	_ = v.BindEnv("fallback_editor", "EDITOR")

	if override := os.Getenv("DIARY_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	if home, err := homedir.Dir(); err == nil {
		v.AddConfigPath(home)
	}

	cfg := &Config{HomeDir: homedir.Dir}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		cfg.File = v.ConfigFileUsed()
	}

	if dir := v.GetString("dir"); dir != "" {
		cfg.Dir = &dir
		cfg.DirSource = cfg.File
		if os.Getenv("DIARY_DIR") != "" {
			cfg.DirSource = "DIARY_DIR"
		}
	}

	editor := v.GetString("editor")
	if editor == "" {
		editor = v.GetString("fallback_editor")
	}
	if editor != "" {
		cfg.Editor = &editor
	}

	return cfg, nil
}

// DiaryDir returns the diary directory, expanding a leading ~ in an override.
func (c *Config) DiaryDir() (string, error) {
	if c.Dir != nil {
		dir, err := homedir.Expand(*c.Dir)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrNoHome, err)
		}
		return dir, nil
	}

	lookup := c.HomeDir
	if lookup == nil {
		lookup = homedir.Dir
	}
	home, err := lookup()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNoHome, err)
	}
	if home == "" {
		return "", ErrNoHome
	}
	return filepath.Join(home, DefaultDirName), nil
}

// EditorCommand returns the configured editor command line.
func (c *Config) EditorCommand() string {
	if c.Editor != nil {
		return *c.Editor
	}
	return DefaultEditor
}

// Source describes where the diary directory setting came from.
func (c *Config) Source() string {
	switch {
	case c.Dir == nil:
		return "default"
	case c.DirSource == "":
		return "override"
	default:
		return c.DirSource
	}
}
