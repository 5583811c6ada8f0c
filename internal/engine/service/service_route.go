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

package service

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/singleflight"

	"github.com/go-arcade/navtree/internal/engine/config"
	"github.com/go-arcade/navtree/internal/engine/model"
	"github.com/go-arcade/navtree/internal/engine/source"
	"github.com/go-arcade/navtree/internal/pkg/menutree"
	"github.com/go-arcade/navtree/pkg/cache"
	"github.com/go-arcade/navtree/pkg/id"
	"github.com/go-arcade/navtree/pkg/log"
	"github.com/go-arcade/navtree/pkg/metrics"
	navtrace "github.com/go-arcade/navtree/pkg/trace"
)

const (
	tracerName = "github.com/go-arcade/navtree/internal/engine/service"
	keyPrefix  = "navtree:routes"
	// AllPermissions 持有该权限的会话不做权限过滤
	AllPermissions = "*"
)

// RouteBundle 一次生成的路由与菜单
type RouteBundle struct {
	PassID      string               `json:"passId"`
	Fingerprint string               `json:"fingerprint"`
	Routes      []model.RouteNode    `json:"routes"`
	Menus       []model.MenuNode     `json:"menus"`
	Report      *menutree.BindReport `json:"report"`
	Fallback    bool                 `json:"fallback"`
	GeneratedAt time.Time            `json:"generatedAt"`
}

// localFlusher 配置变更时清空本地缓存层
type localFlusher interface {
	FlushLocal()
}

// RouteService 获取菜单并生成路由，按会话缓存生成结果
type RouteService struct {
	source  source.MenuSource
	store   cache.ICache
	metrics *metrics.Metrics
	tracer  trace.Tracer

	mu       sync.RWMutex
	pipeline *menutree.Pipeline
	ttl      time.Duration

	// epoch 参与缓存 key，配置变更后旧结果整体失效
	epoch atomic.Uint64
	group singleflight.Group
}

func NewRouteService(src source.MenuSource, store cache.ICache, m *metrics.Metrics, conf *config.MenuConfig) (*RouteService, error) {
	pipeline, err := NewPipeline(conf)
	if err != nil {
		return nil, err
	}
	if m == nil {
		m = metrics.NewMetrics()
	}
	return &RouteService{
		source:   src,
		store:    store,
		metrics:  m,
		tracer:   navtrace.GetTracer(tracerName),
		pipeline: pipeline,
		ttl:      conf.TTL(),
	}, nil
}

// NewPipeline 根据菜单配置构建编译流水线
func NewPipeline(conf *config.MenuConfig) (*menutree.Pipeline, error) {
	strategy, err := menutree.ParseNameStrategy(conf.NameStrategy)
	if err != nil {
		return nil, err
	}
	rule, err := menutree.ParseCollapseRule(conf.CollapseRule)
	if err != nil {
		return nil, err
	}
	registry := menutree.NewRegistry(conf.ModuleRoot, nil)
	if conf.ManifestFile != "" {
		registry, err = menutree.LoadManifest(conf.ManifestFile, conf.ModuleRoot)
		if err != nil {
			return nil, err
		}
		log.Infow("view module manifest loaded", "file", conf.ManifestFile, "modules", registry.Len(), "root", registry.Root())
	}
	return menutree.NewPipeline(menutree.Options{
		Tables:       conf.Tables(),
		NameStrategy: strategy,
		CollapseRule: rule,
		Registry:     registry,
	}), nil
}

// Reload 配置变更后重建流水线并使已生成的路由失效
func (s *RouteService) Reload(conf *config.MenuConfig) error {
	pipeline, err := NewPipeline(conf)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.pipeline = pipeline
	s.ttl = conf.TTL()
	s.mu.Unlock()

	epoch := s.epoch.Add(1)
	if f, ok := s.store.(localFlusher); ok {
		f.FlushLocal()
	}
	log.Infow("route service reloaded", "epoch", epoch)
	return nil
}

func (s *RouteService) current() (*menutree.Pipeline, time.Duration) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pipeline, s.ttl
}

func (s *RouteService) storeKey(session *model.Session) string {
	return fmt.Sprintf("%s:%d:%s", keyPrefix, s.epoch.Load(), session.Key())
}

// Generate 返回会话的路由与菜单，同一会话在权限不变时只生成一次
func (s *RouteService) Generate(ctx context.Context, session *model.Session) (*RouteBundle, error) {
	if session == nil {
		return nil, fmt.Errorf("session is required")
	}
	key := s.storeKey(session)
	fingerprint := session.Fingerprint()

	var cached RouteBundle
	ok, err := cache.GetJSON(ctx, s.store, key, &cached)
	if err != nil {
		log.WithContext(ctx).Warnw("route store read failed", "key", key, "error", err)
	}
	if ok && cached.Fingerprint == fingerprint {
		s.metrics.StoreTotal.WithLabelValues("hit").Inc()
		return &cached, nil
	}
	if ok {
		s.metrics.StoreTotal.WithLabelValues("rebuild").Inc()
	} else {
		s.metrics.StoreTotal.WithLabelValues("miss").Inc()
	}

	v, err, _ := s.group.Do(key+":"+fingerprint, func() (any, error) {
		return s.build(context.WithoutCancel(ctx), session, key, fingerprint)
	})
	if err != nil {
		return nil, err
	}
	return v.(*RouteBundle), nil
}

func (s *RouteService) build(ctx context.Context, session *model.Session, key, fingerprint string) (*RouteBundle, error) {
	passID := id.GetUlid()
	ctx, span := s.tracer.Start(ctx, "navtree.generate", trace.WithAttributes(
		attribute.String("navtree.pass_id", passID),
		attribute.String("navtree.session", session.Key()),
		attribute.String("navtree.source", s.source.Name()),
	))
	defer span.End()
	logger := log.WithContext(ctx).With("passId", passID, "tenantId", session.TenantId, "userId", session.UserId)

	pipeline, ttl := s.current()

	start := time.Now()
	records, err := s.source.Fetch(ctx, session)
	s.metrics.StageDuration.WithLabelValues("fetch").Observe(time.Since(start).Seconds())

	fallback := false
	if err != nil {
		logger.Errorw("menu source failed, using default menus", "source", s.source.Name(), "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "menu source failed")
		records = menutree.DefaultRecords()
		fallback = true
	}

	start = time.Now()
	result := s.run(pipeline, records, session.Permissions, true)
	s.metrics.StageDuration.WithLabelValues("compile").Observe(time.Since(start).Seconds())
	s.observeReport(result.Report)

	bundle := &RouteBundle{
		PassID:      passID,
		Fingerprint: fingerprint,
		Routes:      result.Routes,
		Menus:       result.Menus,
		Report:      result.Report,
		Fallback:    fallback,
		GeneratedAt: time.Now(),
	}

	if fallback {
		s.metrics.PassTotal.WithLabelValues("fallback").Inc()
		return bundle, nil
	}
	s.metrics.PassTotal.WithLabelValues("ok").Inc()

	if err := cache.SetJSON(ctx, s.store, key, bundle, ttl); err != nil {
		logger.Warnw("route store write failed", "key", key, "error", err)
	}
	logger.Infow("routes generated", "records", len(records), "routes", len(bundle.Routes), "menus", len(bundle.Menus))
	span.SetAttributes(attribute.Int("navtree.routes", len(bundle.Routes)))
	return bundle, nil
}

func (s *RouteService) run(pipeline *menutree.Pipeline, records []model.MenuRecord, permissions []string, filter bool) *menutree.Result {
	if !filter || slices.Contains(permissions, AllPermissions) {
		return pipeline.Run(records)
	}
	return pipeline.RunFiltered(records, permissions)
}

func (s *RouteService) observeReport(report *menutree.BindReport) {
	if report == nil {
		return
	}
	s.metrics.UnresolvedViews.Add(float64(len(report.Unresolved)))
	s.metrics.BindConflicts.Add(float64(len(report.Conflicts)))
}

// Invalidate 删除会话已生成的路由，下次请求重新生成
func (s *RouteService) Invalidate(ctx context.Context, session *model.Session) error {
	if session == nil {
		return fmt.Errorf("session is required")
	}
	key := s.storeKey(session)
	if err := s.store.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("invalidate routes: %w", err)
	}
	log.WithContext(ctx).Infow("generated routes invalidated", "key", key)
	return nil
}

// Compile 对调用方提供的菜单记录执行一次编译，不写缓存
// permissions 为 nil 时不做权限过滤
func (s *RouteService) Compile(ctx context.Context, records []model.MenuRecord, permissions []string) *menutree.Result {
	_, span := s.tracer.Start(ctx, "navtree.compile")
	defer span.End()

	pipeline, _ := s.current()
	start := time.Now()
	result := s.run(pipeline, records, permissions, permissions != nil)
	s.metrics.StageDuration.WithLabelValues("compile").Observe(time.Since(start).Seconds())
	s.observeReport(result.Report)
	return result
}

// CompileMix 混合布局菜单
func (s *RouteService) CompileMix(bundle *RouteBundle, name string, location menutree.Location) []model.MenuNode {
	pipeline, _ := s.current()
	return pipeline.Compiler().CompileMix(bundle.Routes, name, location)
}
