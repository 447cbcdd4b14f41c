package gateway

import (
	"encoding/base64"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/openclaw/openclaw-core/internal/cache"
	"github.com/openclaw/openclaw-core/internal/compress"
	"github.com/openclaw/openclaw-core/internal/hashing"
	"github.com/openclaw/openclaw-core/internal/imaging"
	"github.com/openclaw/openclaw-core/internal/jsonkit"
)

// TTL cache handlers

func (s *Server) handleCachePut(c *gin.Context) {
	key := c.Param("key")

	var req struct {
		Value string `json:"value"`
		TTLMs int64  `json:"ttl_ms"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.caches.TTL.Set(key, []byte(req.Value), time.Duration(req.TTLMs)*time.Millisecond)
	c.JSON(http.StatusOK, gin.H{"key": key, "stored": true})
}

func (s *Server) handleCacheGet(c *gin.Context) {
	key := c.Param("key")

	value, ok := s.caches.TTL.Get(key)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found", "key": key})
		return
	}
	c.JSON(http.StatusOK, gin.H{"key": key, "value": string(value)})
}

func (s *Server) handleCacheDelete(c *gin.Context) {
	key := c.Param("key")
	c.JSON(http.StatusOK, gin.H{"key": key, "deleted": s.caches.TTL.Delete(key)})
}

func (s *Server) handleCacheKeys(c *gin.Context) {
	keys := s.caches.TTL.Keys()
	c.JSON(http.StatusOK, gin.H{"keys": keys, "count": len(keys)})
}

func (s *Server) handleCacheCleanup(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"removed": s.caches.TTL.CleanupExpired()})
}

// LRU cache handlers

func (s *Server) handleLRUPut(c *gin.Context) {
	key := c.Param("key")

	var req struct {
		Value string `json:"value"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.caches.LRU.Set(key, []byte(req.Value))
	c.JSON(http.StatusOK, gin.H{"key": key, "stored": true, "len": s.caches.LRU.Len()})
}

func (s *Server) handleLRUGet(c *gin.Context) {
	key := c.Param("key")

	value, ok := s.caches.LRU.Get(key)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found", "key": key})
		return
	}
	c.JSON(http.StatusOK, gin.H{"key": key, "value": string(value)})
}

// History handlers

func (s *Server) handleHistoryAdd(c *gin.Context) {
	group := c.Param("group")

	var req cache.HistoryEntry
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.caches.History.Add(group, req)
	c.JSON(http.StatusOK, gin.H{"group": group, "stored": true})
}

func (s *Server) handleHistoryGet(c *gin.Context) {
	group := c.Param("group")
	entries := s.caches.History.Get(group)
	c.JSON(http.StatusOK, gin.H{"group": group, "entries": entries, "count": len(entries)})
}

func (s *Server) handleHistoryClear(c *gin.Context) {
	group := c.Param("group")
	s.caches.History.ClearGroup(group)
	c.JSON(http.StatusOK, gin.H{"group": group, "cleared": true})
}

// Utility handlers

func (s *Server) handleHash(c *gin.Context) {
	var req struct {
		Data      string `json:"data"`
		Algorithm string `json:"algorithm"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Algorithm == "" {
		req.Algorithm = string(hashing.SHA256)
	}

	if req.Algorithm == "xxh64" {
		sum := hashing.Fast64([]byte(req.Data))
		c.JSON(http.StatusOK, gin.H{"algorithm": "xxh64", "digest": strconv.FormatUint(sum, 16)})
		return
	}

	digest, err := hashing.Sum([]byte(req.Data), hashing.Algorithm(req.Algorithm))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"algorithm": req.Algorithm, "digest": digest})
}

func (s *Server) handleImageInfo(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	info, err := imaging.Dimensions(body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, info)
}

func (s *Server) handleImageResize(c *gin.Context) {
	width, err := strconv.Atoi(c.Query("width"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid width"})
		return
	}
	height, err := strconv.Atoi(c.Query("height"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid height"})
		return
	}
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	out, err := imaging.Resize(body, width, height)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/jpeg", out)
}

func (s *Server) handleJSONNormalize(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var out []byte
	if c.Query("pretty") == "true" {
		out, err = jsonkit.Prettify(body)
	} else {
		out, err = jsonkit.Normalize(body)
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "application/json", out)
}

func (s *Server) handleJSONGet(c *gin.Context) {
	path := c.Query("path")
	if path == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing path query parameter"})
		return
	}
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	out, err := jsonkit.Get(body, path)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "application/json", out)
}

func (s *Server) handleCompress(c *gin.Context) {
	var req struct {
		Data  string `json:"data"` // base64
		Codec string `json:"codec"`
		Level int    `json:"level"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	data, err := base64.StdEncoding.DecodeString(req.Data)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "data must be base64"})
		return
	}

	var packed []byte
	switch req.Codec {
	case "", "zstd":
		packed, err = compress.ZstdCompress(data, req.Level)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	case "s2":
		packed = compress.S2Compress(data)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown codec: " + req.Codec})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"compressed":      base64.StdEncoding.EncodeToString(packed),
		"original_size":   len(data),
		"compressed_size": len(packed),
	})
}

func (s *Server) handleDecompress(c *gin.Context) {
	var req struct {
		Data  string `json:"data"` // base64
		Codec string `json:"codec"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	data, err := base64.StdEncoding.DecodeString(req.Data)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "data must be base64"})
		return
	}

	var out []byte
	switch req.Codec {
	case "", "zstd":
		out, err = compress.ZstdDecompress(data)
	case "s2":
		out, err = compress.S2Decompress(data)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown codec: " + req.Codec})
		return
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": base64.StdEncoding.EncodeToString(out),
		"size": len(out),
	})
}
