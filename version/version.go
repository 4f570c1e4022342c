// Package version provides unified mechanisms for application version tracking, update discovery, and compatibility validation.
package version

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/preniv-cli/preniv/util"
)

// Latest retrieves the most recent stable application version identifier from the remote update registry.
// It queries the GitHub Releases API once per invocation; failures degrade to skipping the notification.
func Latest() (version string, err error) {
	resp, err := http.Get("https://api.github.com/repos/preniv-cli/preniv/releases/latest")
	if err != nil {
		return
	}

	defer util.Ignore(resp.Body.Close)

	var release struct {
		TagName string `json:"tag_name"`
	}

	err = json.NewDecoder(resp.Body).Decode(&release)
	if err != nil {
		return
	}

	// Sanitization: Normalize the release identifier by stripping the 'v' prefix if present.
	if release.TagName == "" {
		err = errors.New("empty tag name")
		return
	}

	version = release.TagName[1:]
	return
}
