package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// ask "<question>": run one query through the pipeline and print the answer.
func askCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ask <question>",
		Short: "Answer a single question",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			responder, index, err := buildResponder()
			if err != nil {
				return err
			}
			defer index.Close()

			answer, err := responder.Respond(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Println(answer)
			return nil
		},
	}
}
