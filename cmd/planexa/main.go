package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/Achu067/PLANEXA/internal/server"
	"github.com/Achu067/PLANEXA/pkg/building"
	"github.com/Achu067/PLANEXA/pkg/cache"
	"github.com/Achu067/PLANEXA/pkg/catalog"
)

func main() {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "planexa",
		Short: "Residential floor plan generator",
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if verbose {
				log.SetLevel(log.DebugLevel)
			} else {
				log.SetLevel(log.WarnLevel)
			}
		},
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(generateCmd())
	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(serveCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func generateCmd() *cobra.Command {
	var outPath, cacheDir string

	cmd := &cobra.Command{
		Use:   "generate [project-path]",
		Short: "Generate the floor plan document for a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runGenerate(args[0], outPath, cacheDir)
		},
	}
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "write the document to a file instead of stdout")
	cmd.Flags().StringVar(&cacheDir, "cache-dir", "", "cache generated documents in this directory")
	return cmd
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate [project-path]",
		Short: "Validate a plan request without solving it",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runValidate(args[0])
		},
	}
}

func serveCmd() *cobra.Command {
	var port int
	var redisAddr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the generation API server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := log.Default()
			cat := catalog.Default()

			var store cache.Cache = cache.NewMemoryCache()
			if redisAddr != "" {
				redisStore, err := cache.NewRedisCache(cmd.Context(), redisAddr)
				if err != nil {
					return err
				}
				store = redisStore
			}
			defer store.Close()

			srv := server.New(port, building.New(cat, logger), cat, store, logger)
			return srv.Start()
		},
	}
	cmd.Flags().IntVarP(&port, "port", "p", 3000, "HTTP server port")
	cmd.Flags().StringVar(&redisAddr, "redis", "", "Redis address for a shared cache (host:port)")
	return cmd
}
