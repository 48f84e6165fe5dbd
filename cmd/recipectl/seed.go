package main

import (
	"fmt"

	"recipe-chatbot/internal/core/catalog"

	"github.com/spf13/cobra"
)

var seedCatalog string

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Copy a catalog file into the configured Redis list",
	Long: `Reads a YAML or JSON catalog file and replaces the Redis list at catalog.redis.key
with it in a single transaction.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := seedCatalog
		if path == "" {
			path = cfg.Catalog.Path
		}

		recipes, err := catalog.NewFileProvider(path).All(cmd.Context())
		if err != nil {
			return err
		}

		client, err := catalog.NewRedisClient(cmd.Context(), cfg.Catalog.Redis)
		if err != nil {
			return err
		}
		defer client.Close()

		if err := catalog.NewRedisProvider(client, cfg.Catalog.Redis.Key).Replace(cmd.Context(), recipes); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "seeded %d recipes into %s (key %s)\n", len(recipes), cfg.Catalog.Redis.Addr, cfg.Catalog.Redis.Key)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
	seedCmd.Flags().StringVar(&seedCatalog, "catalog", "", "catalog file (default: catalog.path from config)")
}
