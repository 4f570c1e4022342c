package ui

import (
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/core"
	"github.com/preniv-cli/preniv/icon"
	"github.com/preniv-cli/preniv/key"
	"github.com/preniv-cli/preniv/media"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// ErrAborted reports that the user backed out of an interactive prompt.
var ErrAborted = errors.New("aborted")

// Selection is the outcome of the download option menu.
type Selection struct {
	All  bool
	Link media.Link
}

const (
	optionDownloadAll = "Download All"
	optionCancel      = "Cancel"
)

// SelectLink prompts for one of the unified links. A single link is selected
// without prompting; with several, a "Download All" entry is offered first
// and "Cancel" last. Cancelling returns ErrAborted.
func SelectLink(links []media.Link) (Selection, error) {
	if len(links) == 0 {
		return Selection{}, errors.New("no download options")
	}
	if len(links) == 1 {
		return Selection{Link: links[0]}, nil
	}

	options := lo.Map(links, func(link media.Link, _ int) string {
		return linkLabel(link)
	})
	options = append(options, optionDownloadAll, optionCancel)

	prompt := &survey.Select{
		Message:  "Select download option:",
		Options:  options,
		PageSize: viper.GetInt(key.CliPageSize),
	}

	var answer core.OptionAnswer
	if err := survey.AskOne(prompt, &answer); err != nil {
		return Selection{}, err
	}

	switch answer.Value {
	case optionCancel:
		return Selection{}, ErrAborted
	case optionDownloadAll:
		return Selection{All: true}, nil
	default:
		return Selection{Link: links[answer.Index]}, nil
	}
}

func linkLabel(link media.Link) string {
	var ic string
	switch link.Type {
	case media.TypeAudio:
		ic = icon.Get(icon.Audio)
	case media.TypeImage:
		ic = icon.Get(icon.Image)
	default:
		ic = icon.Get(icon.Video)
	}
	return fmt.Sprintf("%s %s (%s)", ic, link.Quality, link.Format)
}
