package client

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/battle-api/internal/api/battlev1"
	"github.com/KirkDiggler/battle-api/internal/entities/pokemon"
)

var lifePoint int32

var createCombatantCmd = &cobra.Command{
	Use:   "create-combatant <name>",
	Short: "Create a combatant at full health",
	Args:  cobra.ExactArgs(1),
	RunE:  runCreateCombatant,
}

var listCombatantsCmd = &cobra.Command{
	Use:   "list-combatants",
	Short: "List combatants with their moves",
	Args:  cobra.NoArgs,
	RunE:  runListCombatants,
}

var learnMoveCmd = &cobra.Command{
	Use:   "learn-move <combatant-id> <move-id>",
	Short: "Teach a catalog move to a combatant",
	Args:  cobra.ExactArgs(2),
	RunE:  runLearnMove,
}

var healCombatantCmd = &cobra.Command{
	Use:   "heal-combatant <combatant-id>",
	Short: "Restore a combatant's health and move quotas",
	Args:  cobra.ExactArgs(1),
	RunE:  runHealCombatant,
}

func init() {
	createCombatantCmd.Flags().Int32Var(&lifePoint, "life-point", 100, "Maximum health")
}

func runCreateCombatant(cmd *cobra.Command, args []string) error {
	return withClient(func(ctx context.Context, c battlev1.BattleServiceClient) error {
		resp, err := c.CreateCombatant(ctx, &battlev1.CreateCombatantRequest{Name: args[0], LifePoint: lifePoint})
		if err != nil {
			return fmt.Errorf("failed to create combatant: %w", err)
		}

		printCombatant(cmd.OutOrStdout(), "Created", resp.Combatant)
		return nil
	})
}

func runListCombatants(cmd *cobra.Command, _ []string) error {
	return withClient(func(ctx context.Context, c battlev1.BattleServiceClient) error {
		resp, err := c.ListCombatants(ctx, &battlev1.ListCombatantsRequest{})
		if err != nil {
			return fmt.Errorf("failed to list combatants: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Found %d combatants:\n", len(resp.Combatants))
		for _, cb := range resp.Combatants {
			printCombatant(out, " ", cb)
		}
		return nil
	})
}

func runLearnMove(cmd *cobra.Command, args []string) error {
	return withClient(func(ctx context.Context, c battlev1.BattleServiceClient) error {
		resp, err := c.LearnMove(ctx, &battlev1.LearnMoveRequest{CombatantID: args[0], MoveID: args[1]})
		if err != nil {
			return fmt.Errorf("failed to learn move: %w", err)
		}

		printCombatant(cmd.OutOrStdout(), "Updated", resp.Combatant)
		return nil
	})
}

func runHealCombatant(cmd *cobra.Command, args []string) error {
	return withClient(func(ctx context.Context, c battlev1.BattleServiceClient) error {
		resp, err := c.HealCombatant(ctx, &battlev1.HealCombatantRequest{CombatantID: args[0]})
		if err != nil {
			return fmt.Errorf("failed to heal combatant: %w", err)
		}

		printCombatant(cmd.OutOrStdout(), "Healed", resp.Combatant)
		return nil
	})
}

func printCombatant(out io.Writer, label string, cb *battlev1.Combatant) {
	if cb == nil {
		return
	}
	fmt.Fprintf(out, "%s [%s] %s (%d/%d HP)\n", label, cb.ID, cb.Name, cb.LifePoint, cb.MaxLifePoint)
	for _, m := range cb.Moves {
		fmt.Fprintf(out, "    %s\n", toMove(m).Info())
	}
}

func toMove(m *battlev1.KnownMove) *pokemon.Move {
	return &pokemon.Move{
		Name:       m.Name,
		Damage:     int(m.Damage),
		UsageLimit: int(m.UsageLimit),
		UsageCount: int(m.UsageCount),
	}
}
