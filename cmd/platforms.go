package cmd

import (
	"fmt"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/preniv-cli/preniv/color"
	"github.com/preniv-cli/preniv/media"
	"github.com/preniv-cli/preniv/platform"
	"github.com/preniv-cli/preniv/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(platformsCmd)
	platformsCmd.Flags().StringP("filter", "f", "", "Fuzzy-filter platforms by name")
}

var platformsCmd = &cobra.Command{
	Use:   "platforms",
	Short: "List the supported platforms",
	Run: func(cmd *cobra.Command, args []string) {
		filter := lo.Must(cmd.Flags().GetString("filter"))

		platforms := platform.All()
		if filter != "" {
			platforms = lo.Filter(platforms, func(p *platform.Platform, _ int) bool {
				return fuzzy.MatchFold(filter, p.Name) || fuzzy.MatchFold(filter, p.ID)
			})
		}

		for _, p := range platforms {
			types := lo.Map(p.Types, func(t media.Type, _ int) string {
				return string(t)
			})
			fmt.Printf("%s %s\n",
				style.Fg(color.Yellow)(p.Name),
				style.Faint("("+p.ID+") "+strings.Join(types, ", ")),
			)
		}
	},
}
