package cmd

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/preniv-cli/preniv/color"
	"github.com/preniv-cli/preniv/constant"
	"github.com/preniv-cli/preniv/filesystem"
	"github.com/preniv-cli/preniv/icon"
	"github.com/preniv-cli/preniv/platform/custom"
	"github.com/preniv-cli/preniv/style"
	"github.com/preniv-cli/preniv/util"
	"github.com/preniv-cli/preniv/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(sourcesCmd)
}

// sourcesCmd provides a parent command for managing custom Lua platforms.
var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "Manage custom Lua platform scripts",
}

func init() {
	sourcesCmd.AddCommand(sourcesListCmd)
	sourcesListCmd.Flags().BoolP("raw", "r", false, "Suppress the header in the output")
	sourcesListCmd.SetOut(os.Stdout)
}

// sourcesListCmd displays the installed custom platform scripts.
var sourcesListCmd = &cobra.Command{
	Use:   "list",
	Short: "Display the installed custom Lua platforms",
	Run: func(cmd *cobra.Command, args []string) {
		plugins, err := custom.Plugins()
		handleErr(err)

		if !lo.Must(cmd.Flags().GetBool("raw")) {
			cmd.Println(style.New().Foreground(color.HiBlue).Bold(true).Render("Custom:"))
		}

		for _, plugin := range plugins {
			cmd.Println(plugin.Name())
		}
	},
}

func init() {
	sourcesCmd.AddCommand(sourcesRemoveCmd)

	sourcesRemoveCmd.Flags().StringArrayP("name", "n", []string{}, "Specify the name of the custom source(s) to uninstall")
	lo.Must0(sourcesRemoveCmd.RegisterFlagCompletionFunc("name", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		sources, err := filesystem.API().ReadDir(where.Sources())
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}

		return lo.FilterMap(sources, func(item os.FileInfo, _ int) (string, bool) {
			name := item.Name()
			if !strings.HasSuffix(name, ".lua") {
				return "", false
			}

			return util.FileStem(filepath.Base(name)), true
		}), cobra.ShellCompDirectiveNoFileComp
	}))
}

// sourcesRemoveCmd facilitates the uninstallation of custom Lua sources.
var sourcesRemoveCmd = &cobra.Command{
	Use:   "remove",
	Short: "Permanently uninstall specified custom Lua sources from the system",
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range lo.Must(cmd.Flags().GetStringArray("name")) {
			path := filepath.Join(where.Sources(), name+".lua")
			handleErr(filesystem.API().Remove(path))
			fmt.Printf("%s successfully removed %s\n", icon.Get(icon.Success), style.Fg(color.Yellow)(name))
		}
	},
}

func init() {
	sourcesCmd.AddCommand(sourcesGenCmd)

	sourcesGenCmd.Flags().StringP("name", "n", "", "The display name of the new platform")
	sourcesGenCmd.Flags().StringP("url", "u", "", "The base URL of the target website")

	lo.Must0(sourcesGenCmd.MarkFlagRequired("name"))
	lo.Must0(sourcesGenCmd.MarkFlagRequired("url"))
}

// sourcesGenCmd scaffolds a boilerplate Lua platform script.
var sourcesGenCmd = &cobra.Command{
	Use:   "gen",
	Short: "Scaffold a new Lua platform script using a predefined template",
	Long:  `Generate a boilerplate Lua platform script with core functions and metadata.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.SetOut(os.Stdout)

		author := "Anonymous"
		if usr, err := user.Current(); err == nil {
			author = usr.Username
		}

		s := struct {
			Name         string
			URL          string
			FetchMediaFn string
			MatchURLFn   string
			Author       string
		}{
			Name:         lo.Must(cmd.Flags().GetString("name")),
			URL:          lo.Must(cmd.Flags().GetString("url")),
			FetchMediaFn: constant.FetchMediaFn,
			MatchURLFn:   constant.MatchURLFn,
			Author:       author,
		}

		funcMap := template.FuncMap{
			"repeat": strings.Repeat,
			"plus":   func(a, b int) int { return a + b },
			"max":    util.Max[int],
		}

		tmpl, err := template.New("source").Funcs(funcMap).Parse(constant.SourceTemplate)
		handleErr(err)

		target := filepath.Join(where.Sources(), util.SanitizeFilename(s.Name)+".lua")
		f, err := filesystem.API().Create(target)
		handleErr(err)

		defer util.Ignore(f.Close)

		handleErr(tmpl.Execute(f, s))
		cmd.Println(target)
	},
}
