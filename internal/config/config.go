package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"
)

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
}

type RabbitMQConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	VHost    string
}

type RedisConfig struct {
	Host string
	Port int
}

type HTTPConfig struct {
	Port int
}

type Config struct {
	Database DatabaseConfig
	RabbitMQ RabbitMQConfig
	Redis    RedisConfig
	HTTP     HTTPConfig
}

// Load parses a two-level YAML subset (section headers plus key: value lines)
// without external packages.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	var section string
	for _, ln := range strings.Split(string(b), "\n") {
		line := strings.TrimSpace(ln)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasSuffix(line, ":") {
			section = strings.TrimSuffix(line, ":")
			continue
		}
		parts := strings.SplitN(line, ":", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.TrimSpace(parts[0])
		value := strings.Trim(strings.TrimSpace(parts[1]), `"'`)

		switch section {
		case "database":
			assignDB(&cfg.Database, key, value)
		case "rabbitmq":
			assignMQ(&cfg.RabbitMQ, key, value)
		case "redis":
			assignRedis(&cfg.Redis, key, value)
		case "http":
			if key == "port" {
				cfg.HTTP.Port = atoiSafe(value)
			}
		}
	}

	if cfg.Database.Host == "" {
		return nil, errors.New("invalid config: missing database host")
	}
	return cfg, nil
}

func assignDB(d *DatabaseConfig, k, v string) {
	switch k {
	case "host":
		d.Host = v
	case "port":
		d.Port = atoiSafe(v)
	case "user":
		d.User = v
	case "password":
		d.Password = v
	case "database":
		d.Database = v
	}
}

func assignMQ(m *RabbitMQConfig, k, v string) {
	switch k {
	case "host":
		m.Host = v
	case "port":
		m.Port = atoiSafe(v)
	case "user":
		m.User = v
	case "password":
		m.Password = v
	case "vhost":
		m.VHost = v
	}
}

func assignRedis(r *RedisConfig, k, v string) {
	switch k {
	case "host":
		r.Host = v
	case "port":
		r.Port = atoiSafe(v)
	}
}

func atoiSafe(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

func FindConfig() (string, error) {
	candidates := []string{"config.yaml", "deploy/config.example.yaml"}
	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", fs.ErrNotExist
}
