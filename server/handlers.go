package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/preniv-cli/preniv/constant"
	"github.com/preniv-cli/preniv/log"
	"github.com/preniv-cli/preniv/media"
	"github.com/preniv-cli/preniv/platform"
	"github.com/samber/lo"
)

func (s *Server) handleIndex(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":        "Preniv API Server",
		"version":     constant.Version,
		"description": "Universal Social Media Downloader API",
		"endpoints": gin.H{
			"GET /health":        "Health check",
			"GET /api/platforms": "List all supported platforms",
			"GET /api/info":      "Get media info and download links for ?url=<url>",
			"GET /api/download":  "Proxy-download ?url=<url>&filename=<name>&type=<video|audio|image>",
		},
	})
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"version":   constant.Version,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"uptime":    time.Since(s.start).Seconds(),
	})
}

func (s *Server) handlePlatforms(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"platforms": lo.Map(platform.All(), func(p *platform.Platform, _ int) gin.H {
			return gin.H{"id": p.ID, "name": p.Name, "types": p.Types}
		}),
	})
}

func (s *Server) handleInfo(c *gin.Context) {
	target := c.Query("url")
	if target == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "URL parameter is required",
		})
		return
	}

	plat, ok := platform.Detect(target)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Unsupported platform. Use /api/platforms to see supported platforms.",
		})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
	defer cancel()

	result, err := s.client.Fetch(ctx, plat, target)
	if err != nil {
		log.Errorf("info %s: %s", plat.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success":  false,
			"error":    err.Error(),
			"platform": plat.ID,
		})
		return
	}

	log.Infof("info %s: %d links", plat.ID, len(result.Links))
	if result.Links == nil {
		result.Links = []media.Link{}
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"platform": plat.ID,
		"data":     result,
	})
}
