// Package database 提供数据库连接的初始化和会话管理
// 负责按配置选择驱动、自动建表，并以事务为单位向上层提供 Repository
package database

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"api_contatos/internal/config"
	"api_contatos/internal/dao/database/repository"
	"api_contatos/internal/infrastructure/logger"
	"api_contatos/internal/model"
	"api_contatos/pkg/constants"

	mysqldriver "gorm.io/driver/mysql"
	sqlitedriver "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite" // 纯 Go SQLite 引擎，注册驱动名 "sqlite"
)

// Store 持有进程级数据库连接
// 在 main 中初始化一次，通过构造函数传给 Service 层
type Store struct {
	db *gorm.DB
}

// Open 打开数据库连接并确保联系人表存在
// 可在每次启动时重复调用；文件不可访问时返回错误
func Open(cfg *config.DatabaseConfig, logLevel string) (*Store, error) {
	dialector, err := newDialector(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.NewGormLogger(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", cfg.Driver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql.DB: %w", err)
	}
	maxOpen := cfg.MaxOpenConns
	if maxOpen == 0 && cfg.Driver == "sqlite" {
		maxOpen = constants.SQLITE_MAX_OPEN_CONNS
	}
	if maxOpen > 0 {
		sqlDB.SetMaxOpenConns(maxOpen)
	}

	// AutoMigrate 表不存在则创建，不会删除已有字段或数据
	if err := db.AutoMigrate(&model.Contact{}); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("migrate contatos: %w", err)
	}

	return &Store{db: db}, nil
}

// newDialector 根据配置构建 GORM 方言
func newDialector(cfg *config.DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case "", "sqlite":
		if dir := filepath.Dir(cfg.Path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create database dir %s: %w", dir, err)
			}
		}
		// busy_timeout 让并发写入等待锁而不是立即失败
		dsn := cfg.Path + "?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"
		return sqlitedriver.Dialector{DriverName: "sqlite", DSN: dsn}, nil
	case "mysql":
		// 格式：user:password@tcp(host:port)/database?params
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			cfg.User,
			cfg.Password,
			cfg.Host,
			cfg.Port,
			cfg.DatabaseName,
		)
		return mysqldriver.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// Session 在一个事务内执行 fn
// fn 返回 nil 时提交，返回错误或 panic 时回滚；连接在任何路径上都会归还连接池
func (s *Store) Session(ctx context.Context, fn func(repos *repository.Repositories) error) error {
	return repository.NewRepositories(s.db.WithContext(ctx)).Transaction(fn)
}

// Ping 检查数据库连接是否可用
func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close 关闭底层连接池
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
