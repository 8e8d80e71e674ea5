package main

// Config file support. Load transport defaults from "~/.nestqlc.toml".

import (
	"fmt"
	"os"
	"runtime"

	"github.com/pelletier/go-toml"
	"go.uber.org/zap"

	"github.com/nestql/nestql/internal/obslog"
)

type transportConfig struct {
	Host     string
	Port     int
	TLS      bool
	Username string
	Password string
}

func defaultTransportConfig() transportConfig {
	return transportConfig{Host: "localhost", Port: 9200, TLS: false}
}

func configFilePath() string {
	homeEnvVar := "HOME"
	if runtime.GOOS == "windows" {
		homeEnvVar = "UserProfile"
	}
	homeDir, ok := os.LookupEnv(homeEnvVar)
	if !ok {
		return ""
	}
	return homeDir + string(os.PathSeparator) + ".nestqlc.toml"
}

// loadTransportConfig starts from the built-in defaults and overrides them
// with whatever ~/.nestqlc.toml provides. A missing file is not an error.
func loadTransportConfig() (transportConfig, error) {
	cfg := defaultTransportConfig()

	path := configFilePath()
	if path == "" {
		return cfg, nil
	}

	tree, err := toml.LoadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("error loading '%s': %s", path, err)
	}

	if v, ok := tree.Get("host").(string); ok {
		cfg.Host = v
	}
	if v, ok := tree.Get("port").(int64); ok {
		cfg.Port = int(v)
	}
	if v, ok := tree.Get("tls").(bool); ok {
		cfg.TLS = v
	}
	if v, ok := tree.Get("username").(string); ok {
		cfg.Username = v
	}
	if v, ok := tree.Get("password").(string); ok {
		cfg.Password = v
	}

	obslog.Debug("loaded transport config", zap.String("path", path))
	return cfg, nil
}
