package config

import (
	"fmt"
	"os"
	"strings"
	"sync/atomic"

	"skuld/infra/errorx"
	"skuld/infra/errorx/errCode"

	"gopkg.in/yaml.v3"
)

const (
	DEFAULT_REPEAT        = 1000
	DEFAULT_CHUNK_SIZE    = 512
	DEFAULT_MARKER        = "#"
	DEFAULT_LABEL_MARGIN  = 5 // "255: "
	DEFAULT_WIDTH         = 80
	DEFAULT_TOP_N         = 10
	DEFAULT_LOG_LEVEL     = "warn"
	MAX_CHUNK_SIZE        = 64 << 20
	DEFAULT_LOG_MAXSIZEMB = 10
)

type LogConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"` // 为空时写 stderr
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
}

type Config struct {
	Repeat       uint32    `yaml:"repeat"`
	ChunkSize    int       `yaml:"chunk_size"`
	Marker       string    `yaml:"marker"`
	LabelMargin  int       `yaml:"label_margin"`
	DefaultWidth int       `yaml:"default_width"`
	TopN         int       `yaml:"top_n"`
	Log          LogConfig `yaml:"log"`
}

// 用 atomic.Value 存当前配置, 读取无锁
var cfgValue atomic.Value // stores *Config

func Default() *Config {
	return &Config{
		Repeat:       DEFAULT_REPEAT,
		ChunkSize:    DEFAULT_CHUNK_SIZE,
		Marker:       DEFAULT_MARKER,
		LabelMargin:  DEFAULT_LABEL_MARGIN,
		DefaultWidth: DEFAULT_WIDTH,
		TopN:         DEFAULT_TOP_N,
		Log: LogConfig{
			Level:     DEFAULT_LOG_LEVEL,
			MaxSizeMB: DEFAULT_LOG_MAXSIZEMB,
		},
	}
}

// Load 读取 yaml, 未出现的字段保留默认值
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errorx.Wrap(errCode.CONFIG_FAILED, err, fmt.Sprintf("read yaml %s", path))
	}

	c := Default()
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, errorx.Wrap(errCode.CONFIG_FAILED, err, fmt.Sprintf("unmarshal yaml %s", path))
	}
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	if c.Log.Level == "" {
		c.Log.Level = DEFAULT_LOG_LEVEL
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) Validate() error {
	if c.Repeat == 0 {
		return errorx.New(errCode.INVALID_VALUE, "repeat must be > 0")
	}
	if c.ChunkSize <= 0 || c.ChunkSize > MAX_CHUNK_SIZE {
		return errorx.Newf(errCode.INVALID_VALUE, "chunk_size must be in (0, %d], got %d", MAX_CHUNK_SIZE, c.ChunkSize)
	}
	if c.Marker == "" {
		return errorx.New(errCode.EMPTY_VALUE, "marker is empty")
	}
	if c.LabelMargin < 0 {
		return errorx.Newf(errCode.INVALID_VALUE, "label_margin must be >= 0, got %d", c.LabelMargin)
	}
	if c.DefaultWidth <= 0 {
		return errorx.Newf(errCode.INVALID_VALUE, "default_width must be > 0, got %d", c.DefaultWidth)
	}
	if c.TopN < 0 {
		return errorx.Newf(errCode.INVALID_VALUE, "top_n must be >= 0, got %d", c.TopN)
	}
	return nil
}

// Init 加载 path 并设为当前配置; path 为空时使用默认配置
func Init(path string) (*Config, error) {
	c := Default()
	if path != "" {
		var err error
		if c, err = Load(path); err != nil {
			return nil, err
		}
	}
	cfgValue.Store(c)
	return c, nil
}

// Get 返回当前配置的拷贝, 未 Init 时返回默认值
func Get() Config {
	cAny := cfgValue.Load()
	if cAny == nil {
		return *Default()
	}
	return *cAny.(*Config)
}
