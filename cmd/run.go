package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/preniv-cli/preniv/download"
	"github.com/preniv-cli/preniv/key"
	"github.com/preniv-cli/preniv/media"
	"github.com/preniv-cli/preniv/platform"
	"github.com/preniv-cli/preniv/platform/custom"
	"github.com/preniv-cli/preniv/ui"
	"github.com/preniv-cli/preniv/upstream"
	"github.com/preniv-cli/preniv/where"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

// runPipeline is the interactive fetch-select-download flow shared by the
// root command and every platform subcommand.
func runPipeline(plat *platform.Platform, target, outputDir string) error {
	ctx := context.Background()

	var result media.Result
	err := ui.Spin(fmt.Sprintf("Fetching %s media data...", plat.Name), func() error {
		var fetchErr error
		result, fetchErr = upstream.NewClient().Fetch(ctx, plat, target)
		return fetchErr
	})
	if err != nil {
		return err
	}

	return offerDownloads(ctx, result, outputDir)
}

// runCustom tries the user's Lua plugins against the URL. It reports whether
// any plugin claimed it.
func runCustom(target, outputDir string) (bool, error) {
	plugins, err := custom.Plugins()
	if err != nil {
		return false, err
	}

	for _, plugin := range plugins {
		if !plugin.Matches(target) {
			continue
		}

		var result media.Result
		err := ui.Spin(fmt.Sprintf("Fetching %s media data...", plugin.Name()), func() error {
			var fetchErr error
			result, fetchErr = plugin.FetchMedia(target)
			return fetchErr
		})
		if err != nil {
			return true, err
		}

		return true, offerDownloads(context.Background(), result, outputDir)
	}

	return false, nil
}

func offerDownloads(ctx context.Context, result media.Result, outputDir string) error {
	if len(result.Links) == 0 {
		return errors.New("no downloadable media found, " + upstream.NoMediaHint)
	}

	fmt.Println(ui.Info(result))

	selection, err := ui.SelectLink(result.Links)
	if errors.Is(err, ui.ErrAborted) {
		fmt.Println("Download cancelled.")
		return nil
	}
	if err != nil {
		return err
	}

	links := []media.Link{selection.Link}
	if selection.All {
		links = result.Links
	}

	dir := outputDir
	if dir == "" {
		dir = where.Downloads()
	}

	for _, link := range links {
		if err := transfer(ctx, result.Platform, link, dir); err != nil {
			return err
		}
	}
	return nil
}

func transfer(ctx context.Context, platformID string, link media.Link, dir string) error {
	filename := download.Name(platformID, link.Quality, link.Format)

	// Audio tracks carry a size cap so a mislabeled video stream never
	// fills the disk under an mp3 name.
	maxSize := mo.None[int64]()
	if link.Type == media.TypeAudio {
		if mb := viper.GetInt64(key.DownloadMaxAudioMB); mb > 0 {
			maxSize = mo.Some(mb << 20)
		}
	}

	started := time.Now()
	var path string
	err := ui.Transfer(filename, func(report func(done, total int64)) error {
		var fetchErr error
		path, fetchErr = download.Fetch(ctx, download.Request{
			URL:      link.URL,
			Filename: filename,
			Dir:      dir,
			MaxSize:  maxSize,
			Progress: report,
		})
		return fetchErr
	})
	if err != nil {
		return err
	}

	fmt.Println(ui.Success(fmt.Sprintf("Saved %s in %s", path, time.Since(started).Round(time.Millisecond))))
	return nil
}
