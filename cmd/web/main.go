package main

import (
	"fmt"
	"net"
	"os"

	"github.com/joho/godotenv"
	"github.com/pb-tools/partner-atlas/pkg/server"
	"github.com/pb-tools/partner-atlas/pkg/services/config"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	host string
	port string
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Serve the generated PartnerBoost reports",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVar(&host, "host", "127.0.0.1", "Address to bind")
	rootCmd.Flags().StringVar(&port, "port", "8080", "Port to listen on")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	_ = godotenv.Load()

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	api := server.NewWebAPI(logger, server.Config{
		Addr: net.JoinHostPort(host, port),
		Dependencies: server.Dependencies{
			ReportsDir: cfg.ReportsDir,
		},
	})

	return api.Start()
}
