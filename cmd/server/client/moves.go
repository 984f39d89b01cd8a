package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/battle-api/internal/api/battlev1"
)

var (
	moveDamage     int32
	moveUsageLimit int32
)

var createMoveCmd = &cobra.Command{
	Use:   "create-move <name>",
	Short: "Add a move to the catalog",
	Args:  cobra.ExactArgs(1),
	RunE:  runCreateMove,
}

var listMovesCmd = &cobra.Command{
	Use:   "list-moves",
	Short: "List the move catalog",
	Args:  cobra.NoArgs,
	RunE:  runListMoves,
}

func init() {
	createMoveCmd.Flags().Int32Var(&moveDamage, "damage", 10, "Damage dealt per use")
	createMoveCmd.Flags().Int32Var(&moveUsageLimit, "usage-limit", 10, "Uses allowed between heals")
}

func runCreateMove(cmd *cobra.Command, args []string) error {
	return withClient(func(ctx context.Context, c battlev1.BattleServiceClient) error {
		resp, err := c.CreateMove(ctx, &battlev1.CreateMoveRequest{
			Name:       args[0],
			Damage:     moveDamage,
			UsageLimit: moveUsageLimit,
		})
		if err != nil {
			return fmt.Errorf("failed to create move: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Created move %s\n", formatMove(resp.Move))
		return nil
	})
}

func runListMoves(cmd *cobra.Command, _ []string) error {
	return withClient(func(ctx context.Context, c battlev1.BattleServiceClient) error {
		resp, err := c.ListMoves(ctx, &battlev1.ListMovesRequest{})
		if err != nil {
			return fmt.Errorf("failed to list moves: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Found %d moves:\n", len(resp.Moves))
		for _, m := range resp.Moves {
			fmt.Fprintf(out, "  %s\n", formatMove(m))
		}
		return nil
	})
}

func formatMove(m *battlev1.Move) string {
	if m == nil {
		return "<none>"
	}
	return fmt.Sprintf("[%s] %s | damage: %d | usage limit: %d", m.ID, m.Name, m.Damage, m.UsageLimit)
}
