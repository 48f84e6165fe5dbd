package main

import (
	"fmt"
	"io"
	"strings"

	"recipe-chatbot/internal/core/catalog"
	"recipe-chatbot/internal/core/chat"

	"github.com/spf13/cobra"
)

var mentionsCatalog string

var mentionsCmd = &cobra.Command{
	Use:   "mentions <message>",
	Short: "List catalog recipes a message refers to",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := mentionsCatalog
		if path == "" {
			path = cfg.Catalog.Path
		}

		recipes, err := catalog.NewFileProvider(path).All(cmd.Context())
		if err != nil {
			return err
		}

		mentioned := chat.FindMentions(strings.Join(args, " "), recipes)
		return render(cmd.OutOrStdout(), mentioned, func(w io.Writer) error {
			if len(mentioned) == 0 {
				_, err := fmt.Fprintln(w, "no recipes mentioned")
				return err
			}
			for _, r := range mentioned {
				if _, err := fmt.Fprintf(w, "%d\t%s\n", r.ID, r.Title); err != nil {
					return err
				}
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(mentionsCmd)
	mentionsCmd.Flags().StringVar(&mentionsCatalog, "catalog", "", "catalog file (default: catalog.path from config)")
}
