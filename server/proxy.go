package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/preniv-cli/preniv/constant"
	"github.com/preniv-cli/preniv/key"
	"github.com/preniv-cli/preniv/log"
	"github.com/preniv-cli/preniv/network"
	"github.com/preniv-cli/preniv/util"
	"github.com/spf13/viper"
)

// attachmentNameLimit bounds Content-Disposition filenames.
const attachmentNameLimit = 50

// handleDownload proxy-streams a remote media file to the client so the
// browser never talks to the media CDN directly.
func (s *Server) handleDownload(c *gin.Context) {
	target := c.Query("url")
	if target == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "URL parameter is required",
		})
		return
	}

	ext, contentType := typeDefaults(c.Query("type"))

	filename := c.Query("filename")
	if filename == "" {
		filename = "download"
	}
	filename = util.SanitizeAttachment(filename, attachmentNameLimit)

	timeout := time.Duration(viper.GetInt(key.DownloadProxyTimeout)) * time.Second
	if timeout <= 0 {
		timeout = 120 * time.Second
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid URL",
		})
		return
	}
	req.Header.Set("User-Agent", constant.DesktopUserAgent)

	resp, err := network.Client.Do(req)
	if err != nil {
		log.Errorf("proxy download: %s", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to download file",
		})
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Errorf("proxy download: upstream status %d", resp.StatusCode)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Failed to download file",
		})
		return
	}

	// The upstream content type wins over the type-parameter default.
	if actual := resp.Header.Get("Content-Type"); actual != "" {
		contentType = actual
	}

	c.Header("Content-Type", contentType)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.%s"`, filename, ext))
	if length := resp.Header.Get("Content-Length"); length != "" {
		c.Header("Content-Length", length)
	}

	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, resp.Body); err != nil {
		// Headers are already sent; all that is left is logging the break.
		log.Warnf("proxy stream interrupted: %s", err)
	}
}

// typeDefaults maps the type query parameter to the fallback extension and
// content type, defaulting to video.
func typeDefaults(t string) (ext, contentType string) {
	switch t {
	case "audio":
		return "mp3", "audio/mpeg"
	case "image":
		return "jpg", "image/jpeg"
	default:
		return "mp4", "video/mp4"
	}
}
