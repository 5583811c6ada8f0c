package http

import (
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
)

/**
 * @author: gagral.x@gmail.com
 * @time: 2024/9/8 15:38
 * @file: http.go
 * @description: http server config
 */

type Http struct {
	Host            string
	Port            int
	ContextPath     string
	ExposeMetrics   bool
	AccessLog       bool
	PProf           bool
	BodyLimit       int // MB
	ReadTimeout     int
	WriteTimeout    int
	IdleTimeout     int
	ShutdownTimeout int
	TLS             TLS
	Auth            Auth
}

type TLS struct {
	CertFile string
	KeyFile  string
}

type Auth struct {
	SecretKey    string
	Issuer       string
	AccessExpire time.Duration
}

// SetDefaults 填充未配置的字段
func (h *Http) SetDefaults() {
	if h.Host == "" {
		h.Host = "0.0.0.0"
	}
	if h.Port == 0 {
		h.Port = 8080
	}
	if h.ContextPath == "" {
		h.ContextPath = "/api"
	}
	if h.BodyLimit <= 0 {
		h.BodyLimit = 4
	}
	if h.ReadTimeout <= 0 {
		h.ReadTimeout = 30
	}
	if h.WriteTimeout <= 0 {
		h.WriteTimeout = 30
	}
	if h.IdleTimeout <= 0 {
		h.IdleTimeout = 60
	}
	if h.ShutdownTimeout <= 0 {
		h.ShutdownTimeout = 30
	}
	if h.Auth.Issuer == "" {
		h.Auth.Issuer = "navtree"
	}
	if h.Auth.AccessExpire <= 0 {
		h.Auth.AccessExpire = 2 * time.Hour
	}
}

// Addr 监听地址
func (h *Http) Addr() string {
	return fmt.Sprintf("%s:%d", h.Host, h.Port)
}

// FiberConfig 转换为 fiber.Config
func (h *Http) FiberConfig(appName string) fiber.Config {
	return fiber.Config{
		AppName:               appName,
		BodyLimit:             h.BodyLimit * 1024 * 1024,
		ReadTimeout:           time.Duration(h.ReadTimeout) * time.Second,
		WriteTimeout:          time.Duration(h.WriteTimeout) * time.Second,
		IdleTimeout:           time.Duration(h.IdleTimeout) * time.Second,
		DisableStartupMessage: true,
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
	}
}
