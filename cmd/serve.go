package cmd

import (
	"github.com/preniv-cli/preniv/key"
	"github.com/preniv-cli/preniv/server"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().IntP("port", "p", 0, "Port to listen on")
	serveCmd.Flags().String("host", "", "Host to bind to")
	lo.Must0(viper.BindPFlag(key.ServerPort, serveCmd.Flags().Lookup("port")))
	lo.Must0(viper.BindPFlag(key.ServerHost, serveCmd.Flags().Lookup("host")))
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	Long: `Run the HTTP API server exposing media resolution over REST.
See /api/platforms for the supported platforms and / for the endpoint list.`,
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(server.New().Run())
	},
}
