// Package inline provides the application's non-interactive, programmable execution mode.
package inline

import (
	"encoding/json"
	"io"
)

func writeJson(out io.Writer, output *Output) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
