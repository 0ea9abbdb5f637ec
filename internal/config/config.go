// Package config 提供应用程序的配置加载和管理功能
// 使用 TOML 格式的配置文件，支持多路径查找
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"api_contatos/pkg/constants"

	"github.com/BurntSushi/toml" // TOML 配置文件解析库
	"github.com/caarlos0/env/v11"
)

// MainConfig 主配置，包含应用基本信息
type MainConfig struct {
	AppName string `toml:"appName"`                      // 应用名称，用于日志标识等
	Host    string `toml:"host" env:"API_CONTATOS_HOST"` // 服务器监听地址，如 "0.0.0.0"
	Port    int    `toml:"port" env:"API_CONTATOS_PORT"` // 服务器监听端口，如 8000
	Mode    string `toml:"mode" env:"API_CONTATOS_MODE"` // 运行模式：dev / release
}

// DatabaseConfig 数据库连接配置
// Driver 为 "sqlite" 时只使用 Path；为 "mysql" 时使用其余连接参数
type DatabaseConfig struct {
	Driver       string `toml:"driver" env:"API_CONTATOS_DB_DRIVER"`     // 数据库驱动："sqlite" 或 "mysql"
	Path         string `toml:"path" env:"API_CONTATOS_DB_PATH"`         // SQLite 数据库文件路径
	Host         string `toml:"host"`                                    // MySQL 服务器地址
	Port         int    `toml:"port"`                                    // MySQL 端口，默认 3306
	User         string `toml:"user"`                                    // 数据库用户名
	Password     string `toml:"password" env:"API_CONTATOS_DB_PASSWORD"` // 数据库密码
	DatabaseName string `toml:"databaseName"`                            // 数据库名称
	MaxOpenConns int    `toml:"maxOpenConns"`                            // 最大连接数，0 表示按驱动取默认值
}

// RedisConfig Redis 连接配置，用于联系人读缓存
type RedisConfig struct {
	Enabled  bool   `toml:"enabled" env:"API_CONTATOS_REDIS_ENABLED"` // 是否启用缓存
	Host     string `toml:"host" env:"API_CONTATOS_REDIS_HOST"`       // Redis 服务器地址
	Port     int    `toml:"port"`                                     // Redis 端口，默认 6379
	Password string `toml:"password"`                                 // Redis 密码，无密码留空
	Db       int    `toml:"db"`                                       // Redis 数据库编号，默认 0
	TTL      int    `toml:"ttl"`                                      // 缓存有效期（秒）
}

// LogConfig 日志配置，使用 lumberjack 进行日志轮转
type LogConfig struct {
	LogPath    string `toml:"logPath"`    // 日志文件存储目录
	FileName   string `toml:"fileName"`   // 日志文件名
	MaxSize    int    `toml:"maxSize"`    // 单个日志文件最大大小（MB）
	MaxBackups int    `toml:"maxBackups"` // 保留旧日志文件的最大个数
	MaxAge     int    `toml:"maxAge"`     // 保留旧日志文件的最大天数
	Level      string `toml:"level"`      // 日志级别：debug, info, warn, error
}

// KafkaConfig 联系人变更事件的 Kafka 配置
type KafkaConfig struct {
	Mode     string `toml:"mode" env:"API_CONTATOS_KAFKA_MODE"`         // 事件模式："none" 或 "kafka"
	HostPort string `toml:"hostPort" env:"API_CONTATOS_KAFKA_HOSTPORT"` // Kafka 服务器地址，如 "localhost:9092"
	Topic    string `toml:"topic"`                                      // 联系人事件主题
	Timeout  int    `toml:"timeout"`                                    // 写入超时（秒）
}

// SecureConfig 安全响应头与 HTTPS 重定向配置
type SecureConfig struct {
	SSLRedirect bool   `toml:"sslRedirect"` // 是否将 HTTP 请求重定向到 HTTPS
	SSLHost     string `toml:"sslHost"`     // 重定向目标主机，留空则使用请求 Host
}

// CorsConfig 跨域配置
type CorsConfig struct {
	AllowOrigins []string `toml:"allowOrigins"` // 允许的来源，默认 "*"
}

// ValidatorConfig 参数校验错误提示的语言
type ValidatorConfig struct {
	Locale string `toml:"locale"` // "en" / "zh" / "pt_BR"
}

// Config 应用程序总配置，聚合所有子配置
type Config struct {
	MainConfig      `toml:"mainConfig"`      // 主配置
	DatabaseConfig  `toml:"databaseConfig"`  // 数据库配置
	RedisConfig     `toml:"redisConfig"`     // Redis 配置
	LogConfig       `toml:"logConfig"`       // 日志配置
	KafkaConfig     `toml:"kafkaConfig"`     // Kafka 配置
	SecureConfig    `toml:"secureConfig"`    // 安全配置
	CorsConfig      `toml:"corsConfig"`      // 跨域配置
	ValidatorConfig `toml:"validatorConfig"` // 校验配置
}

// config 全局配置单例，延迟加载
var config *Config

// searchPaths 候选配置文件路径（优先加载本地配置）
var searchPaths = []string{
	"configs/config_local.toml",
	"configs/config.toml",
	"../../configs/config_local.toml", // 从子目录运行时的路径
	"../../configs/config.toml",
}

// Load 从指定文件加载配置，再用环境变量覆盖，最后填充默认值
func Load(path string) (*Config, error) {
	conf := new(Config)
	if _, err := toml.DecodeFile(path, conf); err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}
	if err := conf.overrideFromEnv(); err != nil {
		return nil, err
	}
	conf.applyDefaults()
	return conf, nil
}

// overrideFromEnv 只覆盖设置了对应环境变量的字段
func (c *Config) overrideFromEnv() error {
	if err := env.Parse(c); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// ErrConfigNotFound 所有候选路径下都没有配置文件
var ErrConfigNotFound = errors.New("could not find configuration file in any of the search paths")

// LoadConfig 从多个候选路径加载配置文件
// 按顺序尝试加载，文件不存在时尝试下一个；文件存在但解析失败（含环境变量）直接返回错误
func LoadConfig() error {
	for _, path := range searchPaths {
		conf, err := Load(path)
		if err == nil {
			config = conf
			return nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	return ErrConfigNotFound
}

// GetConfig 获取全局配置实例（单例模式）
// 首次调用时会自动加载配置文件，找不到文件时使用环境变量和默认值
// 配置文件或环境变量无法解析时返回错误，不会退回默认值
func GetConfig() (*Config, error) {
	if config != nil {
		return config, nil
	}

	err := LoadConfig()
	if err == nil {
		return config, nil
	}
	if !errors.Is(err, ErrConfigNotFound) {
		return nil, err
	}

	conf := new(Config)
	if err := conf.overrideFromEnv(); err != nil {
		return nil, err
	}
	conf.applyDefaults()
	config = conf
	return config, nil
}

// SetConfig 替换全局配置实例，用于 -config 参数指定的文件
func SetConfig(conf *Config) {
	config = conf
}

// Default 返回全部使用默认值的配置，不读取环境变量
func Default() *Config {
	conf := new(Config)
	conf.applyDefaults()
	return conf
}

// applyDefaults 为未配置的字段填充默认值
func (c *Config) applyDefaults() {
	if c.AppName == "" {
		c.AppName = "api_contatos"
	}
	if c.MainConfig.Host == "" {
		c.MainConfig.Host = "0.0.0.0"
	}
	if c.MainConfig.Port == 0 {
		c.MainConfig.Port = 8000
	}
	if c.MainConfig.Mode == "" {
		c.MainConfig.Mode = "dev"
	}

	if c.Driver == "" {
		c.Driver = "sqlite"
	}
	if c.Path == "" {
		c.Path = "data/db.sqlite3"
	}
	if c.Driver == "mysql" && c.DatabaseConfig.Port == 0 {
		c.DatabaseConfig.Port = 3306
	}

	if c.RedisConfig.Host == "" {
		c.RedisConfig.Host = "127.0.0.1"
	}
	if c.RedisConfig.Port == 0 {
		c.RedisConfig.Port = 6379
	}
	if c.TTL == 0 {
		c.TTL = constants.DEFAULT_CACHE_TTL_SECS
	}

	if c.LogPath == "" {
		c.LogPath = "logs"
	}
	if c.Level == "" {
		c.Level = "info"
	}

	if c.KafkaConfig.Mode == "" {
		c.KafkaConfig.Mode = "none"
	}
	if c.Topic == "" {
		c.Topic = "contatos"
	}
	if c.Timeout == 0 {
		c.Timeout = 5
	}

	if len(c.AllowOrigins) == 0 {
		c.AllowOrigins = []string{"*"}
	}
	if c.Locale == "" {
		c.Locale = "pt_BR"
	}
}
