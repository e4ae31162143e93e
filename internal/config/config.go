package config

import (
	"os"
	"path"
	"time"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Public  Public
	private Private
}

type Public struct {
	Port          int    `yaml:"port"`
	LogLevel      string `yaml:"log_level"`
	LogJSON       bool   `yaml:"log_json"`
	JwtTTLSeconds int    `yaml:"jwt_ttl_seconds"`
	BcryptCost    int    `yaml:"bcrypt_cost"` // 0 means bcrypt.DefaultCost
}

type Private struct {
	JwtKey string `yaml:"jwt_key"`
	Pg     Pg     `yaml:"pg"`
}

type Pg struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Dbname   string `yaml:"dbname"`
}

// New assembles a config from already-populated sections, skipping
// validation. Deployments go through MustLoad.
func New(public Public, private Private) *Config {
	return &Config{public, private}
}

func (c *Config) JwtKey() string {
	return c.private.JwtKey
}

func (c *Config) JwtTTL() time.Duration {
	return time.Duration(c.Public.JwtTTLSeconds) * time.Second
}

func (c *Config) Pg() Pg {
	return c.private.Pg
}

func mustLoadPath(configPath string, output interface{}) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		panic("can't read config file")
	}

	if err = yaml.Unmarshal(configFile, output); err != nil {
		panic("can't unmarshal config file")
	}
}

func MustLoad(configFolder string) *Config {
	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)

	var private Private
	mustLoadPath(path.Join(configFolder, "private.yaml"), &private)

	cfg := &Config{public, private}
	cfg.mustValidate()
	return cfg
}

func (c *Config) mustValidate() {
	if c.Public.JwtTTLSeconds <= 0 {
		panic("config: jwt_ttl_seconds must be positive")
	}
	if c.private.JwtKey == "" {
		panic("config: jwt_key is required")
	}
	if c.private.Pg.Host == "" || c.private.Pg.Dbname == "" {
		panic("config: pg host and dbname are required")
	}
}
