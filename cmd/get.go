package cmd

import (
	"github.com/preniv-cli/preniv/platform"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	for _, id := range []string{
		"tiktok",
		"instagram",
		"facebook",
		"twitter",
		"youtube",
		"spotify",
		"pinterest",
		"kuaishou",
	} {
		rootCmd.AddCommand(platformCmd(id))
	}
}

// platformCmd builds the dedicated subcommand for one platform. It skips URL
// detection so short links and mirrors still resolve through that platform.
func platformCmd(id string) *cobra.Command {
	plat, ok := platform.Get(id)
	if !ok {
		panic("unregistered platform " + id)
	}

	cmd := &cobra.Command{
		Use:   plat.ID + " <url>",
		Short: "Download media from " + plat.Name,
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			outputDir := lo.Must(cmd.Flags().GetString("output"))
			handleErr(runPipeline(plat, args[0], outputDir))
		},
	}
	cmd.Flags().StringP("output", "o", "", "Directory to write downloaded files to")
	return cmd
}
