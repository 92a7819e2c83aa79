package cli

import (
	"github.com/spf13/cobra"

	"github.com/lokascout/lokascout/internal/logging"
	"github.com/lokascout/lokascout/internal/web"
)

func newServeCmd() *cobra.Command {
	var port int
	var dev bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the JSON API server",
		Long:  "Start an HTTP server exposing the marketplace JSON API.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(port, dev)
		},
	}

	cmd.Flags().IntVar(&port, "port", 8080, "port to listen on")
	cmd.Flags().BoolVar(&dev, "dev", false, "human-readable debug logging")

	return cmd
}

func runServe(port int, dev bool) error {
	logging.Setup(dev)

	database, err := openDB()
	if err != nil {
		return err
	}
	defer closeDB(database)

	srv := web.NewServer(database, getExportDir())
	return srv.ListenAndServe(port)
}
