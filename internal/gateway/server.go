// Package gateway provides the HTTP surface over the OpenClaw core:
// the caching stores plus the hashing, JSON, and compression helpers.
package gateway

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/openclaw/openclaw-core/internal/cache"
)

// Server represents the gateway server.
type Server struct {
	router  *gin.Engine
	server  *http.Server
	config  *Config
	logger  *zap.Logger
	caches  *cache.Facade
	sweeper *cache.Sweeper
}

// NewServer creates a gateway server owning one cache facade.
func NewServer(config *Config, logger *zap.Logger) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(loggingMiddleware(logger))

	if config.Cache.LRUCapacity <= 0 {
		logger.Warn("non-positive LRU capacity, substituting default",
			zap.Int("requested", config.Cache.LRUCapacity),
			zap.Int("effective", cache.DefaultTimedCacheCapacity),
		)
	}

	caches := cache.New(cache.Config{
		DefaultTTL:        config.Cache.DefaultTTL,
		LRUCapacity:       config.Cache.LRUCapacity,
		LRUTTL:            config.Cache.LRUTTL,
		HistoryMaxEntries: config.Cache.HistoryMaxEntries,
	})

	s := &Server{
		router: router,
		config: config,
		logger: logger,
		caches: caches,
	}
	if config.Cache.SweepInterval > 0 {
		s.sweeper = cache.NewSweeper(caches.TTL, config.Cache.SweepInterval)
	}

	s.setupRoutes()

	return s
}

// Start starts the server.
func (s *Server) Start() error {
	s.server = &http.Server{
		Addr:    s.config.Address,
		Handler: s.router,
	}

	s.logger.Info("Starting gateway server",
		zap.String("address", s.config.Address),
	)

	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server and stops the sweep loop.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.sweeper != nil {
		_ = s.sweeper.Close()
	}
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

func (s *Server) setupRoutes() {
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := s.router.Group("/api/v1")
	{
		api.GET("/cache", s.handleCacheKeys)
		api.POST("/cache/cleanup", s.handleCacheCleanup)
		api.GET("/cache/:key", s.handleCacheGet)
		api.PUT("/cache/:key", s.handleCachePut)
		api.DELETE("/cache/:key", s.handleCacheDelete)

		api.GET("/lru/:key", s.handleLRUGet)
		api.PUT("/lru/:key", s.handleLRUPut)

		api.GET("/history/:group", s.handleHistoryGet)
		api.POST("/history/:group", s.handleHistoryAdd)
		api.DELETE("/history/:group", s.handleHistoryClear)

		api.POST("/hash", s.handleHash)
		api.POST("/image/info", s.handleImageInfo)
		api.POST("/image/resize", s.handleImageResize)
		api.POST("/json/normalize", s.handleJSONNormalize)
		api.POST("/json/get", s.handleJSONGet)
		api.POST("/compress", s.handleCompress)
		api.POST("/decompress", s.handleDecompress)
	}
}

func loggingMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		status := c.Writer.Status()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		requestsTotal.WithLabelValues(c.Request.Method, route, strconv.Itoa(status)).Inc()

		logger.Info("HTTP request",
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Duration("duration", time.Since(start)),
		)
	}
}
