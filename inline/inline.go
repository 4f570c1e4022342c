// Package inline provides the application's non-interactive, programmable execution mode.
package inline

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/preniv-cli/preniv/media"
	"github.com/preniv-cli/preniv/platform"
	"github.com/preniv-cli/preniv/upstream"
)

// Options configures one inline run.
type Options struct {
	Out io.Writer

	// URL is the target media URL; the platform is detected from it.
	URL string

	// Platform pins detection to a specific platform ID instead of
	// pattern-matching the URL.
	Platform string
}

// Output is the machine-readable result shape; `preniv inline schema`
// generates its JSON Schema.
type Output struct {
	Success  bool         `json:"success" jsonschema:"description=Whether media resolution succeeded."`
	Platform string       `json:"platform" jsonschema:"description=Identifier of the detected platform."`
	Data     media.Result `json:"data" jsonschema:"description=Unified media result with its download links."`
}

// Run resolves the URL and writes the Output JSON to Options.Out.
func Run(ctx context.Context, options *Options) error {
	if options.Out == nil {
		options.Out = os.Stdout
	}

	plat, err := resolvePlatform(options)
	if err != nil {
		return err
	}

	result, err := upstream.NewClient().Fetch(ctx, plat, options.URL)
	if err != nil {
		return err
	}
	if result.Links == nil {
		result.Links = []media.Link{}
	}

	return writeJson(options.Out, &Output{
		Success:  true,
		Platform: plat.ID,
		Data:     result,
	})
}

func resolvePlatform(options *Options) (*platform.Platform, error) {
	if options.Platform != "" {
		plat, ok := platform.Get(options.Platform)
		if !ok {
			return nil, errors.New("unknown platform " + options.Platform + ", did you mean " + platform.Suggest(options.Platform).ID + "?")
		}
		return plat, nil
	}

	plat, ok := platform.Detect(options.URL)
	if !ok {
		return nil, errors.New("unsupported URL, see `preniv platforms` for the supported list")
	}
	return plat, nil
}
