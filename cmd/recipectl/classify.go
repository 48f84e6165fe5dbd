package main

import (
	"fmt"
	"io"
	"strings"

	"recipe-chatbot/internal/core/chat"

	"github.com/spf13/cobra"
)

var classifyCmd = &cobra.Command{
	Use:   "classify <message>",
	Short: "Print the intent a message is routed to",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		message := strings.Join(args, " ")
		intent := chat.Classify(message)

		out := map[string]string{"message": message, "intent": intent.String()}
		return render(cmd.OutOrStdout(), out, func(w io.Writer) error {
			_, err := fmt.Fprintln(w, intent)
			return err
		})
	},
}

func init() {
	rootCmd.AddCommand(classifyCmd)
}
