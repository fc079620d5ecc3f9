package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var embeddedDefaultConfig []byte

//go:embed default_copy.yaml
var embeddedDefaultCopy []byte

// Load resolves the config and copy-rules paths, bootstraps missing
// files from the embedded defaults, and parses both.
func Load(pathArg, cwd string) (*Config, *CopyRules, *Paths, error) {
	paths, err := resolvePaths(pathArg)
	if err != nil {
		return nil, nil, nil, err
	}
	if err := ensureBootstrap(paths); err != nil {
		return nil, nil, nil, err
	}

	raw, err := os.ReadFile(paths.ConfigPath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("read config %s: %w", paths.ConfigPath, err)
	}
	cfg := &Config{}
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, nil, nil, fmt.Errorf("malformed config %s: %w", paths.ConfigPath, err)
	}
	cfg.applyDefaults()

	paths.ConfigSource = paths.ConfigPath
	paths.ResolvedCopyPath = expandPath(cfg.CopyFile, paths.HomeDir, cwd)
	if err := ensureFile(paths.ResolvedCopyPath, embeddedDefaultCopy, 0o644); err != nil {
		return nil, nil, nil, err
	}

	rules, err := ReadCopyRules(paths.ResolvedCopyPath)
	if err != nil {
		return nil, nil, nil, err
	}
	return cfg, rules, paths, nil
}

func resolvePaths(configArg string) (*Paths, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}
	root := filepath.Join(home, ".tyrepage")
	configPath := filepath.Join(root, "config.yaml")
	if strings.TrimSpace(configArg) != "" {
		configPath = expandPath(configArg, home, "")
	}
	return &Paths{
		HomeDir:    home,
		RootDir:    root,
		ConfigPath: configPath,
		CopyPath:   filepath.Join(root, "copy.yaml"),
	}, nil
}

func ensureBootstrap(paths *Paths) error {
	if err := os.MkdirAll(filepath.Dir(paths.ConfigPath), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	return ensureFile(paths.ConfigPath, embeddedDefaultConfig, 0o644)
}

func ensureFile(path string, data []byte, mode os.FileMode) error {
	if st, err := os.Stat(path); err == nil && !st.IsDir() {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, mode); err != nil {
		return fmt.Errorf("write default file %s: %w", path, err)
	}
	return nil
}

func expandPath(v, home, cwd string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return v
	}
	if strings.HasPrefix(v, "~/") {
		return filepath.Join(home, v[2:])
	}
	if filepath.IsAbs(v) {
		return v
	}
	if strings.TrimSpace(cwd) != "" {
		return filepath.Join(cwd, v)
	}
	return v
}
