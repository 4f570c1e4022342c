// Package download streams remote media files to local storage.
package download

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/preniv-cli/preniv/constant"
	"github.com/preniv-cli/preniv/filesystem"
	"github.com/preniv-cli/preniv/log"
	"github.com/preniv-cli/preniv/network"
	"github.com/preniv-cli/preniv/util"
	"github.com/samber/mo"
)

// ErrTooLarge is returned when the remote file exceeds the requested size cap.
// The partially written file is removed before returning.
var ErrTooLarge = errors.New("file exceeds the size cap")

// Request describes one file transfer.
type Request struct {
	URL      string
	Filename string
	Dir      string

	// MaxSize caps the transfer in bytes. The declared Content-Length is
	// checked up front and the byte count is enforced while streaming, since
	// upstreams routinely omit or understate the header.
	MaxSize mo.Option[int64]

	// Progress is invoked after every write with the bytes written so far and
	// the declared total (0 when unknown).
	Progress func(done, total int64)
}

// Fetch streams the remote file into Dir/Filename and returns the final path.
// The transfer goes through a temp file so a failed download never leaves a
// partial file under the target name.
func Fetch(ctx context.Context, req Request) (string, error) {
	if err := filesystem.API().MkdirAll(req.Dir, os.ModePerm); err != nil {
		return "", fmt.Errorf("create download dir: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, req.URL, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("User-Agent", constant.DesktopUserAgent)

	resp, err := network.Client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("download request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("download returned status %d", resp.StatusCode)
	}

	total := resp.ContentLength
	if total < 0 {
		total = 0
	}

	if limit, ok := req.MaxSize.Get(); ok && total > limit {
		return "", ErrTooLarge
	}

	path := filepath.Join(req.Dir, req.Filename)
	tmpPath := path + ".tmp"

	out, err := filesystem.API().Create(tmpPath)
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}

	writer := &meteredWriter{
		w:        out,
		total:    total,
		limit:    req.MaxSize.OrElse(0),
		progress: req.Progress,
	}

	_, err = io.Copy(writer, resp.Body)
	closeErr := out.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		if removeErr := filesystem.API().Remove(tmpPath); removeErr != nil {
			log.Warnf("remove partial download %s: %s", tmpPath, removeErr)
		}
		return "", err
	}

	if err := filesystem.API().Rename(tmpPath, path); err != nil {
		return "", fmt.Errorf("finalize download: %w", err)
	}

	return path, nil
}

// Name builds the canonical download filename
// <platform>_<label>_<unix-timestamp>.<ext>; the label part is dropped when empty.
func Name(platform, label, ext string) string {
	label = util.SanitizeFilename(label)
	if label == "" {
		return fmt.Sprintf("%s_%d.%s", platform, time.Now().Unix(), ext)
	}
	return fmt.Sprintf("%s_%s_%d.%s", platform, label, time.Now().Unix(), ext)
}

// meteredWriter counts written bytes, reports progress, and enforces the cap.
type meteredWriter struct {
	w        io.Writer
	done     int64
	total    int64
	limit    int64
	progress func(done, total int64)
}

func (m *meteredWriter) Write(p []byte) (int, error) {
	if m.limit > 0 && m.done+int64(len(p)) > m.limit {
		return 0, ErrTooLarge
	}

	n, err := m.w.Write(p)
	m.done += int64(n)
	if m.progress != nil {
		m.progress(m.done, m.total)
	}
	return n, err
}
