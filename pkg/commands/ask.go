package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func addAsk(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ask [question]",
		Short: "Ask the assistant a question",
		Example: `
amar ask can I take aspirin with food
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return errors.New("a question is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, err := loadService(ctx)
			if err != nil {
				return err
			}
			fmt.Println(svc.Ask(ctx, strings.Join(args, " ")))
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}
