package server

import (
	"os"

	"github.com/pelletier/go-toml"
)

// Config is the server's on-disk TOML configuration, read (and
// defaulted/persisted back) the way draco's readConfig does for its
// proxy settings.
type Config struct {
	Listen struct {
		Address string
	}
	OnlineMode   bool
	ViewDistance int32
}

func defaultConfig() Config {
	var c Config
	c.Listen.Address = "0.0.0.0:25565"
	c.OnlineMode = true
	c.ViewDistance = 10
	return c
}

// LoadConfig reads path, creating it with defaults on first run and
// persisting the merged result back, mirroring the teacher's
// create-default-then-reload config bootstrap.
func LoadConfig(path string) (Config, error) {
	c := defaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		data, err := toml.Marshal(c)
		if err != nil {
			return Config{}, err
		}
		if err := os.WriteFile(path, data, 0644); err != nil {
			return Config{}, err
		}
		return c, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	if err := toml.Unmarshal(data, &c); err != nil {
		return Config{}, err
	}
	if c.Listen.Address == "" {
		c.Listen.Address = defaultConfig().Listen.Address
	}
	if c.ViewDistance == 0 {
		c.ViewDistance = defaultConfig().ViewDistance
	}

	data, err = toml.Marshal(c)
	if err != nil {
		return Config{}, err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return Config{}, err
	}
	return c, nil
}
