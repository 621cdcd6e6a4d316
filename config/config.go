// Copyright (C) 2026 The Reel Authors.
//
// This file is part of Reel.
//
// Reel is free software: you can redistribute it and/or modify it under the
// terms of the GNU Affero General Public License as published by the Free
// Software Foundation, either version 3 of the License, or (at your option)
// any later version.
//
// Reel is distributed in the hope that it will be useful, but WITHOUT ANY
// WARRANTY; without even the implied warranty of MERCHANTABILITY or FITNESS
// FOR A PARTICULAR PURPOSE.  See the GNU Affero General Public License for
// more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with Reel.  If not, see <https://www.gnu.org/licenses/>.

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/reelhouse/reel"
	"github.com/spf13/viper"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverSqlite   = "sqlite3"
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"

	CacheMemory = "memory"
	CacheRedis  = "redis"
	CacheNone   = "none"
)

type DatabaseConfig struct {
	Driver  string
	Source  string
	LogMode bool
}

func (c DatabaseConfig) GormConfig() *gorm.Config {
	var glog logger.Interface
	if c.LogMode == false {
		glog = logger.Discard
	} else {
		glog = logger.Default
	}
	return &gorm.Config{
		Logger: glog,
	}
}

type BucketConfig struct {
	Endpoint        string
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string
	ObjectPrefix    string
	UseSSL          bool
	URLExpiration   time.Duration
}

func (b BucketConfig) Enabled() bool {
	return b.BucketName != ""
}

type CatalogConfig struct {
	DB              DatabaseConfig
	SearchLimit     int
	Recent          time.Duration
	RecentLimit     int
	ReindexInterval time.Duration
	AllocRetries    int
}

type ImagesConfig struct {
	BaseURL string // w/o trailing slash
	Bucket  BucketConfig
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Prefix   string
}

type CacheConfig struct {
	Driver string
	TTL    time.Duration
	Redis  RedisConfig
}

type SearchConfig struct {
	BleveDir   string
	MemoryOnly bool
}

type ServerConfig struct {
	Listen string
	URL    string
}

type AuthConfig struct {
	Secret string
	Issuer string
	Age    time.Duration
}

type LogConfig struct {
	Level string
	JSON  bool
}

type Config struct {
	Auth    AuthConfig
	Cache   CacheConfig
	Catalog CatalogConfig
	DataDir string
	Images  ImagesConfig
	Log     LogConfig
	Search  SearchConfig
	Server  ServerConfig
}

func configDefaults(v *viper.Viper) {
	v.SetDefault("Auth.Secret", "")
	v.SetDefault("Auth.Issuer", reel.AppName)
	v.SetDefault("Auth.Age", "720h") // 30 days in hours

	v.SetDefault("Cache.Driver", CacheMemory)
	v.SetDefault("Cache.TTL", "5m")
	v.SetDefault("Cache.Redis.Addr", "127.0.0.1:6379")
	v.SetDefault("Cache.Redis.DB", "0")
	v.SetDefault("Cache.Redis.Prefix", "reel:search:")

	v.SetDefault("Catalog.DB.Driver", DriverSqlite)
	v.SetDefault("Catalog.DB.Source", "catalog.db")
	v.SetDefault("Catalog.DB.LogMode", "false")
	v.SetDefault("Catalog.SearchLimit", "100")
	v.SetDefault("Catalog.Recent", "720h") // 30 days
	v.SetDefault("Catalog.RecentLimit", "25")
	v.SetDefault("Catalog.ReindexInterval", "6h")
	v.SetDefault("Catalog.AllocRetries", "5")

	v.SetDefault("DataDir", ".")

	v.SetDefault("Images.BaseURL", "/images")
	v.SetDefault("Images.Bucket.URLExpiration", "72h")
	v.SetDefault("Images.Bucket.UseSSL", "true")

	v.SetDefault("Log.Level", "info")
	v.SetDefault("Log.JSON", "false")

	v.SetDefault("Search.BleveDir", ".")
	v.SetDefault("Search.MemoryOnly", "false")

	v.SetDefault("Server.Listen", "127.0.0.1:3000")
	v.SetDefault("Server.URL", "https://example.com") // w/o trailing slash
}

// matches keys that hold filesystem paths, relative values are resolved
// against the directory of the config file
var pathRegexp = regexp.MustCompile(`(file|dir|source)$`)

func relativePath(val string) bool {
	if val == "" || strings.HasPrefix(val, "/") {
		return false
	}
	// sqlite in-memory and uri style sources
	if strings.HasPrefix(val, ":") || strings.HasPrefix(val, "file:") {
		return false
	}
	// dsn style sources for mysql & postgres
	if strings.Contains(val, "@") || strings.Contains(val, "=") {
		return false
	}
	return true
}

func readConfig(v *viper.Viper) (*Config, error) {
	var config Config
	err := v.ReadInConfig()
	if err != nil {
		return &config, err
	}
	dir := filepath.Dir(v.ConfigFileUsed())
	for _, k := range v.AllKeys() {
		if pathRegexp.MatchString(k) {
			val, ok := v.Get(k).(string)
			if ok && relativePath(val) {
				v.Set(k, fmt.Sprintf("%s/%s", dir, val))
			}
		}
	}
	err = v.Unmarshal(&config)
	return &config, err
}

func testDefaults(v *viper.Viper) {
	v.Set("Auth.Secret", "test-secret")
	v.Set("Cache.Driver", CacheMemory)
	v.Set("Catalog.DB.Source", "file::memory:?cache=shared")
	v.Set("Search.MemoryOnly", "true")
}

// TestConfig loads test.yaml from the TEST_CONFIG directory when set.
// Otherwise the defaults are used with in-memory storage.
func TestConfig() (*Config, error) {
	v := viper.New()
	configDefaults(v)
	testDir := os.Getenv("TEST_CONFIG")
	if testDir == "" {
		testDefaults(v)
		var config Config
		err := v.Unmarshal(&config)
		return &config, err
	}
	v.SetConfigFile(filepath.Join(testDir, "test.yaml"))
	v.SetDefault("Catalog.DB.Source", filepath.Join(testDir, "catalog.db"))
	return readConfig(v)
}

var configFile, configPath, configName string

func SetConfigFile(path string) {
	configFile = path
}

func AddConfigPath(path string) {
	configPath = path
}

func SetConfigName(name string) {
	configName = name
}

func GetConfig() (*Config, error) {
	v := viper.New()
	if configFile != "" {
		v.SetConfigFile(configFile)
	}
	if configPath != "" {
		v.AddConfigPath(configPath)
	}
	if configName != "" {
		v.SetConfigName(configName)
	}
	v.SetEnvPrefix(reel.AppName)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	configDefaults(v)
	return readConfig(v)
}

func LoadConfig(dir string) (*Config, error) {
	v := viper.New()
	v.AddConfigPath(dir)
	configDefaults(v)
	return readConfig(v)
}

var ErrMissingSecret = errors.New("auth secret required")

// Validate checks settings that have no usable default.
func (c *Config) Validate() error {
	if c.Auth.Secret == "" {
		return ErrMissingSecret
	}
	return nil
}
