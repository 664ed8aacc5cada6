package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chiraleft/chime/internal/chiral"
)

// OrdersResult holds the order listing for JSON output.
type OrdersResult struct {
	Orders    []string `json:"orders"`
	Operators []string `json:"operators"`
}

// NewOrdersCommand creates the orders command.
func NewOrdersCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orders",
		Short: "List chiral orders and known operators",
		Long: `List the chiral orders in evaluation sequence, plus the operator
names the generate command accepts. "full" requests the sum over all
orders.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOrders(rootOpts, cmd)
		},
	}

	return cmd
}

func runOrders(opts *RootOptions, cmd *cobra.Command) error {
	result := OrdersResult{Operators: chiral.OperatorNames()}
	for _, on := range chiral.Orders() {
		result.Orders = append(result.Orders, on.Name)
	}
	result.Orders = append(result.Orders, "full")

	formatter := &OutputFormatter{
		Format:  opts.Format,
		Writer:  cmd.OutOrStdout(),
		Verbose: opts.Verbose,
	}
	if formatter.Format == "json" {
		return formatter.Success(result)
	}

	fmt.Fprintln(formatter.Writer, "orders:")
	for _, name := range result.Orders {
		fmt.Fprintf(formatter.Writer, "  %s\n", name)
	}
	fmt.Fprintln(formatter.Writer, "operators:")
	for _, name := range result.Operators {
		fmt.Fprintf(formatter.Writer, "  %s\n", name)
	}
	return nil
}
