// Package cmd implements the command-line interface for preniv.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/preniv-cli/preniv/color"
	"github.com/preniv-cli/preniv/constant"
	"github.com/preniv-cli/preniv/icon"
	"github.com/preniv-cli/preniv/key"
	"github.com/preniv-cli/preniv/log"
	"github.com/preniv-cli/preniv/platform"
	"github.com/preniv-cli/preniv/style"
	"github.com/preniv-cli/preniv/util"
	"github.com/preniv-cli/preniv/version"
	"github.com/preniv-cli/preniv/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, plain)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.Flags().StringP("output", "o", "", "Directory to write downloaded files to")

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify()
	})

	// Initialize cleanup of localized temporary files on application startup.
	go func() {
		_ = util.Delete(where.Temp())
	}()
}

// rootCmd defines the entry point for the preniv application. A bare URL
// argument resolves its platform automatically.
var rootCmd = &cobra.Command{
	Use:   constant.Preniv + " [url]",
	Short: "A universal social media downloader for the command line",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiRed).Render("    - A universal social media downloader for the command line"),
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		if len(args) == 0 {
			handleErr(cmd.Help())
			return
		}

		target := args[0]
		outputDir := lo.Must(cmd.Flags().GetString("output"))

		if plat, ok := platform.Detect(target); ok {
			handleErr(runPipeline(plat, target, outputDir))
			return
		}

		// No built-in platform claims the URL: consult custom Lua plugins.
		handled, err := runCustom(target, outputDir)
		handleErr(err)
		if !handled {
			handleErr(errors.New("no supported platform matches this URL, see `preniv platforms`"))
		}
	},
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
