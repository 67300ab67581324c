package client

import (
	"github.com/spf13/cobra"
)

// NewRoot constructs a root Cobra command for the opsq client.
// It registers the queue and item command groups.
func NewRoot(baseURL BaseURLFunc) *cobra.Command {
	root := &cobra.Command{
		Use:   "opsq",
		Short: "Opsq client commands",
	}
	root.AddCommand(NewQueueCommand(baseURL))
	root.AddCommand(NewItemCommand(baseURL))
	return root
}
