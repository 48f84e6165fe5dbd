package main

import (
	"fmt"
	"io"
	"strings"

	"recipe-chatbot/internal/core/ai/service"
	"recipe-chatbot/internal/core/catalog"
	"recipe-chatbot/internal/core/chat"
	"recipe-chatbot/internal/pkg/common"

	"github.com/spf13/cobra"
)

var askCmd = &cobra.Command{
	Use:   "ask <message>",
	Short: "Run a message through the full chat pipeline",
	Long: `Runs the same pipeline as POST /api/v1/chatbot/advice against the configured
catalog source and generative backend, and prints the response envelope.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := common.WithRequestID(cmd.Context(), common.GenerateUUID())

		provider, closeCatalog, err := catalog.Open(ctx, cfg.Catalog)
		if err != nil {
			return err
		}
		defer closeCatalog()

		aiService, err := service.NewService(ctx, cfg)
		if err != nil {
			return err
		}
		defer aiService.Close()

		svc := chat.NewService(provider, aiService, cfg.Catalog.WarnSize)
		resp, err := svc.Chat(ctx, &chat.Request{Message: strings.Join(args, " ")})
		if err != nil {
			return err
		}

		return render(cmd.OutOrStdout(), resp, func(w io.Writer) error {
			fmt.Fprintf(w, "Intent:    %s\n", resp.Intent)
			fmt.Fprintf(w, "Mentioned: %s\n", strings.Join(resp.MentionedRecipes, ", "))
			if len(resp.SuggestedRecipeIDs) > 0 {
				fmt.Fprintf(w, "Suggested: %v\n", resp.SuggestedRecipeIDs)
			}
			_, err := fmt.Fprintf(w, "\n%s\n", resp.Reply)
			return err
		})
	},
}

func init() {
	rootCmd.AddCommand(askCmd)
}
