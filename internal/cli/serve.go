package cli

import (
	"github.com/spf13/cobra"
	"stegobmp/internal/server"
)

func serveCommand(root *rootOpts) *cobra.Command {
	var port int

	command := &cobra.Command{
		Use:     "serve",
		Short:   "Serve an API to hide and find files in BMP images over the web",
		Example: "stegobmp serve --port 8888",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("port") {
				port = root.fileConfig.Server.Port
			}
			root.logger.Info("Starting server", "port", port)
			return server.StartServer(cmd.Context(), port, root.fileConfig.Defaults)
		},
	}

	command.Flags().IntVar(&port, "port", 8080, "Port on which to start the server")

	return command
}
