package cmd

import (
	"context"
	"encoding/json"
	"os"
	"reflect"

	"github.com/invopop/jsonschema"
	"github.com/preniv-cli/preniv/filesystem"
	"github.com/preniv-cli/preniv/inline"
	"github.com/preniv-cli/preniv/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inlineCmd)

	inlineCmd.Flags().StringP("url", "u", "", "Media URL to resolve")
	inlineCmd.Flags().StringP("platform", "p", "", "Pin resolution to a platform ID instead of detecting it")
	inlineCmd.Flags().StringP("output", "o", "", "Write the JSON to a file instead of stdout")
	lo.Must0(inlineCmd.MarkFlagRequired("url"))

	inlineCmd.AddCommand(inlineSchemaCmd)
}

var inlineCmd = &cobra.Command{
	Use:   "inline",
	Short: "Resolve a URL and print the result as JSON",
	Long: `Resolve a URL and print the result as JSON.
Made for scripting: no prompts, no colors, machine-readable output.
Use "inline schema" to generate the JSON schema of the output.`,
	Example: `preniv inline -u https://vm.tiktok.com/xxxx | jq '.data.links[0].url'`,
	Run: func(cmd *cobra.Command, args []string) {
		options := &inline.Options{
			URL:      lo.Must(cmd.Flags().GetString("url")),
			Platform: lo.Must(cmd.Flags().GetString("platform")),
		}

		if output := lo.Must(cmd.Flags().GetString("output")); output != "" {
			file := lo.Must(filesystem.API().Create(output))
			defer util.Ignore(file.Close)
			options.Out = file
		}

		handleErr(inline.Run(context.Background(), options))
	},
}

var inlineSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the inline output",
	Run: func(cmd *cobra.Command, args []string) {
		reflector := jsonschema.Reflector{
			Anonymous: true,
			Namer: func(t reflect.Type) string {
				return t.Name()
			},
		}

		schema := reflector.Reflect(&inline.Output{})
		handleErr(json.NewEncoder(os.Stdout).Encode(schema))
	},
}
