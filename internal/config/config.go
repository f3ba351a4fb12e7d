package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// RuntimeConfig is the resolved configuration for a single CLI invocation.
type RuntimeConfig struct {
	// ProjectRoot is the directory mintcast.toml was found in, or the
	// working directory when there is none.
	ProjectRoot string

	// Network is the target network name or chain ID, as given by the
	// caller via flag, env or config file.
	Network string

	// Debug enables debug logging
	Debug bool

	// NonInteractive disables interactive prompts
	NonInteractive bool

	// JSON switches renderers to machine-readable output
	JSON bool

	// FactoryOverrides maps chain IDs to factory addresses configured in
	// mintcast.toml, taking precedence over the built-in table.
	FactoryOverrides map[uint64]common.Address
}

// Provider creates RuntimeConfig for Wire dependency injection
func Provider(v *viper.Viper) (*RuntimeConfig, error) {
	projectRoot := v.GetString("project_root")
	if projectRoot == "" {
		projectRoot = FindProjectRoot()
	}

	cfg := &RuntimeConfig{
		ProjectRoot:    projectRoot,
		Network:        v.GetString("network"),
		Debug:          v.GetBool("debug"),
		NonInteractive: v.GetBool("non_interactive"),
		JSON:           v.GetBool("json"),
	}

	overrides, err := LoadFactoryOverrides(projectRoot)
	if err != nil {
		return nil, fmt.Errorf("loading factory overrides: %w", err)
	}
	cfg.FactoryOverrides = overrides

	return cfg, nil
}

// FindProjectRoot walks up from the current directory looking for
// mintcast.toml. Unlike a deployment tool, prediction works fine without a
// project file, so the working directory is returned when none is found.
func FindProjectRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		return "."
	}

	for probe := dir; ; {
		if _, err := os.Stat(filepath.Join(probe, "mintcast.toml")); err == nil {
			return probe
		}
		parent := filepath.Dir(probe)
		if parent == probe {
			return dir
		}
		probe = parent
	}
}

// SetupViper creates and configures a viper instance
func SetupViper(projectRoot string) *viper.Viper {
	// .env is optional; ignore a missing file
	_ = godotenv.Load(filepath.Join(projectRoot, ".env"))

	v := viper.New()

	v.SetConfigName("config.local")
	v.SetConfigType("json")
	v.AddConfigPath(filepath.Join(projectRoot, ".mintcast"))

	v.SetEnvPrefix("MINTCAST")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	v.SetDefault("project_root", projectRoot)
	v.SetDefault("debug", false)
	v.SetDefault("non_interactive", false)
	v.SetDefault("json", false)

	// A missing local config file is fine
	_ = v.ReadInConfig()

	return v
}
