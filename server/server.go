// Package server exposes the resolver pipeline over HTTP.
package server

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/preniv-cli/preniv/key"
	"github.com/preniv-cli/preniv/log"
	"github.com/preniv-cli/preniv/upstream"
	"github.com/spf13/viper"
)

// Server bundles the HTTP surface with its upstream client.
type Server struct {
	client *upstream.Client
	start  time.Time
}

// New builds a server using the current configuration.
func New() *Server {
	return &Server{
		client: upstream.NewClient(),
		start:  time.Now(),
	}
}

// Router assembles the gin engine with every route attached.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/", s.handleIndex)
	r.GET("/health", s.handleHealth)
	r.GET("/api/platforms", s.handlePlatforms)
	r.GET("/api/info", s.handleInfo)
	r.GET("/api/download", s.handleDownload)

	return r
}

// Run serves on the configured host and port, blocking until the listener fails.
func (s *Server) Run() error {
	addr := fmt.Sprintf("%s:%d", viper.GetString(key.ServerHost), viper.GetInt(key.ServerPort))
	log.Infof("serving on %s", addr)
	return s.Router().Run(addr)
}
