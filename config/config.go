package config

import (
	"os"
	"sync"

	"github.com/BurntSushi/toml"

	"github.com/kurobane/frontdoor/entity"
	"github.com/kurobane/frontdoor/logger"
)

// FileName is the project configuration file looked up from the
// working directory.
const FileName = "Frontdoor.toml"

// Config is the struct which maps configuration file into this.
// Ensure call Write() to update configuration.
type Config struct {
	exists bool   `toml:"-"`
	Root   string `toml:"-"`
	Path   string `toml:"-"`

	Project  entity.Project  `toml:"project"`
	Network  entity.Network  `toml:"network"`
	Table    entity.Table    `toml:"table"`
	Function entity.Function `toml:"function"`
	Gateway  entity.Gateway  `toml:"gateway"`
	Firewall entity.Firewall `toml:"firewall"`
	Alarms   entity.Alarms   `toml:"alarms"`

	log *logger.Logger `toml:"-"`
}

// Exists returns bool which config file exists or not.
func (c *Config) Exists() bool {
	return c.exists
}

// Mutex for file I/O
var mu sync.Mutex

// Write writes configuration to file.
func (c *Config) Write() error {
	mu.Lock()
	defer mu.Unlock()
	fp, err := os.OpenFile(c.Path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	defer fp.Close()
	return toml.NewEncoder(fp).Encode(c)
}
