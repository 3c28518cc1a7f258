// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets loads Evernote credentials from local files. Two layouts
// are supported: a directory of plain-text key files (the filename is the
// key name, the trimmed contents are the value) and dotenv-style KEY=VALUE
// files.
//
// Supported key files: evernote-dev-token, evernote-notebook, evernote-sandbox.
package secrets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Load reads all files in dir and returns a map of filename to trimmed contents.
// A missing directory or missing files are not errors; Load returns an empty map.
// Unreadable files produce a warning on stderr but do not abort.
func Load(dir string) (map[string]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	secrets := make(map[string]string)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not read secret %s: %v\n", name, err)
			continue
		}

		value := strings.TrimSpace(string(data))
		if value != "" {
			secrets[name] = value
		}
	}

	return secrets, nil
}

// LoadEnvFile reads the first existing file among paths and parses it as
// dotenv-format KEY=VALUE lines. Blank lines and # comments are skipped, an
// "export " prefix is tolerated, and single or double quotes around the
// value are stripped. When no file exists LoadEnvFile returns an empty map.
func LoadEnvFile(paths ...string) (map[string]string, error) {
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("reading env file %s: %w", path, err)
		}
		return parseEnv(string(data)), nil
	}
	return map[string]string{}, nil
}

// parseEnv extracts KEY=VALUE pairs from dotenv-format content. Lines
// without an = sign are ignored.
func parseEnv(content string) map[string]string {
	vars := make(map[string]string)
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimPrefix(line, "export ")

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}

		value = strings.TrimSpace(value)
		if len(value) >= 2 {
			if (value[0] == '"' && value[len(value)-1] == '"') ||
				(value[0] == '\'' && value[len(value)-1] == '\'') {
				value = value[1 : len(value)-1]
			}
		}
		vars[key] = value
	}
	return vars
}
