// Copyright 2025 Arcade Team
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package database

import (
	"fmt"
	"time"

	"github.com/go-arcade/navtree/pkg/log"
	"github.com/go-arcade/navtree/pkg/trace/inject"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

const (
	defaultTablePrefix = "t_"
	defaultSlowSQL     = time.Second
)

// IDatabase 数据库抽象
type IDatabase interface {
	// Database 返回底层的 *gorm.DB
	Database() *gorm.DB
}

// GormDB GORM 数据库实现
type GormDB struct {
	db *gorm.DB
}

// NewGormDB 创建 GORM 数据库实例
func NewGormDB(db *gorm.DB) IDatabase {
	return &GormDB{db: db}
}

func (g *GormDB) Database() *gorm.DB {
	return g.db
}

type Database struct {
	Type         string
	Host         string
	Port         string
	User         string
	Password     string
	DB           string
	OutPut       bool `mapstructure:"output"`
	TraceQuery   bool `mapstructure:"traceQuery"`
	MaxOpenConns int  `mapstructure:"maxOpenConns"`
	MaxIdleConns int  `mapstructure:"maxIdleConns"`
	MaxLifetime  int  `mapstructure:"maxLifeTime"`
	MaxIdleTime  int  `mapstructure:"maxIdleTime"`
}

func (d *Database) SetDefaults() {
	if d.Type == "" {
		d.Type = "mysql"
	}
	if d.Port == "" {
		d.Port = "3306"
	}
	if d.MaxOpenConns == 0 {
		d.MaxOpenConns = 20
	}
	if d.MaxIdleConns == 0 {
		d.MaxIdleConns = 5
	}
	if d.MaxLifetime == 0 {
		d.MaxLifetime = 300
	}
	if d.MaxIdleTime == 0 {
		d.MaxIdleTime = 60
	}
}

// DSN 生成 mysql 连接串
func (d *Database) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		d.User, d.Password, d.Host, d.Port, d.DB)
}

// NewDatabase 打开 mysql 连接并注册 trace 插件
func NewDatabase(cfg Database) (*gorm.DB, error) {
	cfg.SetDefaults()
	if cfg.Type != "mysql" {
		return nil, fmt.Errorf("unsupported database type: %s", cfg.Type)
	}

	gormConf := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
		NamingStrategy: schema.NamingStrategy{
			TablePrefix:   defaultTablePrefix,
			SingularTable: true,
		},
	}
	if cfg.OutPut {
		gormConf.Logger = NewGormLoggerAdapter(logger.Config{
			SlowThreshold:             defaultSlowSQL,
			LogLevel:                  logger.Info,
			Colorful:                  false,
			IgnoreRecordNotFoundError: true,
			ParameterizedQueries:      true,
		}, logger.Info)
	}

	db, err := gorm.Open(mysql.Open(cfg.DSN()), gormConf)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	if err := inject.RegisterGormPlugin(db, cfg.TraceQuery); err != nil {
		return nil, fmt.Errorf("failed to register gorm trace plugin: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.MaxLifetime) * time.Second)
	sqlDB.SetConnMaxIdleTime(time.Duration(cfg.MaxIdleTime) * time.Second)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Infow("database connected successfully", "host", cfg.Host, "db", cfg.DB)
	return db, nil
}
