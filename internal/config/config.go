// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tfctl/flatdiff/internal/log"
)

// FileName is the config file looked up in os.UserConfigDir.
const FileName = "flatdiff.yaml"

// Type is the in-memory representation of the loaded configuration. Lookups
// try Namespace + "." + key before key itself.
type Type struct {
	Source    string
	Namespace string
	Data      map[string]interface{}
}

// Config is the process-wide configuration, loaded lazily.
var Config Type

// GetInt returns the integer at the dotted key path, or the single default
// when the key is missing.
func GetInt(key string, defaultValue ...int) (int, error) {
	val, err := lookup(key, defaultValue)
	if err != nil || val == nil {
		return first(defaultValue), err
	}

	// YAML numbers may decode as int, int64 or float64.
	switch v := val.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		return int(v), nil
	}
	return 0, errors.New("value is not an int")
}

// GetString returns the string at the dotted key path, or the single default
// when the key is missing.
func GetString(key string, defaultValue ...string) (string, error) {
	val, err := lookup(key, defaultValue)
	if err != nil || val == nil {
		return first(defaultValue), err
	}

	s, ok := val.(string)
	if !ok {
		return "", errors.New("value is not a string")
	}
	return s, nil
}

// GetStringSlice returns the list of strings at the dotted key path, or the
// single default when the key is missing.
func GetStringSlice(key string, defaultValue ...[]string) ([]string, error) {
	val, err := lookup(key, defaultValue)
	if err != nil || val == nil {
		return first(defaultValue), err
	}

	switch v := val.(type) {
	case []string:
		return v, nil
	case []interface{}:
		result := make([]string, len(v))
		for i, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, errors.New("slice element is not a string")
			}
			result[i] = s
		}
		return result, nil
	}
	return nil, errors.New("value is not a slice")
}

// Load reads the config file and replaces the global Config. A missing file is
// an error; callers that treat the file as optional ignore it.
func Load() (Type, error) {
	path, err := getConfigFile()
	if err != nil {
		return Type{}, err
	}

	bytes, err := os.ReadFile(path)
	if err != nil {
		return Type{}, err
	}

	var data map[string]interface{}
	if err := yaml.Unmarshal(bytes, &data); err != nil {
		return Type{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	Config = Type{
		Source:    path,
		Namespace: Config.Namespace,
		Data:      data,
	}

	return Config, nil
}

// lookup loads the config on first use and resolves key, with the namespace
// tried first. A missing key with exactly one default is not an error and
// yields a nil value.
func lookup[T any](key string, defaultValue []T) (any, error) {
	if len(Config.Data) == 0 {
		_, _ = Load()
	}

	val, err := Config.get(key)
	if err != nil {
		if len(defaultValue) == 1 {
			return nil, nil
		}
		return nil, err
	}
	return val, nil
}

func first[T any](values []T) (zero T) {
	if len(values) == 1 {
		return values[0]
	}
	return
}

// get traverses the configuration tree using a dotted key path such as
// "cmp.style". When Namespace is set, Namespace + "." + kspec is tried before
// kspec.
func (cfg *Type) get(kspec string) (any, error) {
	candidateKeys := []string{kspec}
	if cfg.Namespace != "" {
		candidateKeys = []string{cfg.Namespace + "." + kspec, kspec}
	}

	for _, key := range candidateKeys {
		var current interface{} = cfg.Data

		found := true
		for _, part := range strings.Split(key, ".") {
			m, ok := current.(map[string]interface{})
			if !ok {
				found = false
				break
			}
			if current, ok = m[part]; !ok {
				found = false
				break
			}
		}

		if found {
			return current, nil
		}
	}

	return nil, fmt.Errorf("no valid path found among: %v", candidateKeys)
}

// Path returns the config file that would be loaded, or "" when there is none.
func Path() string {
	path, err := getConfigFile()
	if err != nil {
		return ""
	}
	return path
}

// getConfigFile returns the absolute path to the YAML config file.
// FLATDIFF_CFG_FILE wins when set; otherwise FileName in os.UserConfigDir is
// used. The file must exist and not be a directory.
func getConfigFile() (string, error) {
	if cfgPath := os.Getenv("FLATDIFF_CFG_FILE"); cfgPath != "" {
		if fileInfo, err := os.Stat(cfgPath); err == nil {
			if !fileInfo.IsDir() {
				log.Debugf("using config file from FLATDIFF_CFG_FILE: %s", cfgPath)
				return cfgPath, nil
			}
			return "", fmt.Errorf("FLATDIFF_CFG_FILE points to a directory: %s", cfgPath)
		}
		return "", fmt.Errorf("config file not found at FLATDIFF_CFG_FILE path: %s", cfgPath)
	}

	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	file := filepath.Join(dir, FileName)
	if fileInfo, err := os.Stat(file); err == nil && !fileInfo.IsDir() {
		log.Debugf("using config file: %s", file)
		return file, nil
	}

	return "", fmt.Errorf("no config file found in standard locations")
}
