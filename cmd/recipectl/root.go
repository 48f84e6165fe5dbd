package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"recipe-chatbot/internal/infrastructure/config"
	"recipe-chatbot/internal/pkg/common"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	logLevel     string
	outputFormat string
	cfg          *config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "recipectl",
	Short: "recipectl - operator tool for the recipe chatbot",
	Long: `recipectl runs the chatbot routing pipeline from the command line.

Examples:
  # Show which intent a message is routed to
  recipectl classify "món này bao nhiêu calo"

  # List catalog recipes a message refers to
  recipectl mentions --catalog data/recipes.yaml "cách làm phở bò"

  # Ask the configured backend, exactly like POST /api/v1/chatbot/advice
  recipectl ask "gợi ý món cho bữa tối"

  # Copy a catalog file into the configured Redis list
  recipectl seed --catalog data/recipes.yaml`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		common.SetLogger(common.NewConsoleLogger(logLevel))

		loaded, err := config.LoadConfig()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "text", "output format (text, json, yaml)")
}

// render 以 json 或 yaml 輸出；text 格式交給 textFn
func render(w io.Writer, v interface{}, textFn func(io.Writer) error) error {
	switch outputFormat {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(v)
	case "text", "":
		return textFn(w)
	default:
		return fmt.Errorf("unsupported output format: %s", outputFormat)
	}
}
