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

package inject

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"
)

const (
	gormTracerName = "github.com/go-arcade/navtree/pkg/trace/inject/gorm"
	gormSpanKey    = "opentelemetry:span"
)

// GormPlugin 为 gorm 查询创建客户端 span
type GormPlugin struct {
	// WithQuery 是否记录 SQL 语句
	WithQuery bool
}

func (p *GormPlugin) Name() string {
	return "opentelemetry"
}

func (p *GormPlugin) Initialize(db *gorm.DB) error {
	cb := db.Callback()
	if err := cb.Query().Before("gorm:query").Register("opentelemetry:before_query", p.before("query")); err != nil {
		return err
	}
	if err := cb.Query().After("gorm:query").Register("opentelemetry:after_query", p.after); err != nil {
		return err
	}
	if err := cb.Row().Before("gorm:row").Register("opentelemetry:before_row", p.before("row")); err != nil {
		return err
	}
	if err := cb.Row().After("gorm:row").Register("opentelemetry:after_row", p.after); err != nil {
		return err
	}
	if err := cb.Raw().Before("gorm:raw").Register("opentelemetry:before_raw", p.before("raw")); err != nil {
		return err
	}
	return cb.Raw().After("gorm:raw").Register("opentelemetry:after_raw", p.after)
}

func (p *GormPlugin) before(operation string) func(*gorm.DB) {
	return func(db *gorm.DB) {
		if db.Statement == nil {
			return
		}
		ctx := db.Statement.Context
		if ctx == nil {
			ctx = context.Background()
		}
		ctx, span := otel.Tracer(gormTracerName).Start(ctx, "gorm."+operation, trace.WithSpanKind(trace.SpanKindClient))
		span.SetAttributes(
			attribute.String("db.system", db.Dialector.Name()),
			attribute.String("db.operation", operation),
		)
		if db.Statement.Table != "" {
			span.SetAttributes(attribute.String("db.sql.table", db.Statement.Table))
		}
		db.Statement.Context = ctx
		db.InstanceSet(gormSpanKey, span)
	}
}

func (p *GormPlugin) after(db *gorm.DB) {
	v, ok := db.InstanceGet(gormSpanKey)
	if !ok {
		return
	}
	span, ok := v.(trace.Span)
	if !ok {
		return
	}
	defer span.End()

	if p.WithQuery && db.Statement != nil {
		span.SetAttributes(attribute.String("db.statement", db.Statement.SQL.String()))
	}
	span.SetAttributes(attribute.Int64("db.rows_affected", db.RowsAffected))
	if db.Error != nil && db.Error != gorm.ErrRecordNotFound {
		span.SetStatus(codes.Error, db.Error.Error())
		span.RecordError(db.Error)
	}
}

// RegisterGormPlugin 注册 gorm 追踪插件
func RegisterGormPlugin(db *gorm.DB, withQuery bool) error {
	return db.Use(&GormPlugin{WithQuery: withQuery})
}
