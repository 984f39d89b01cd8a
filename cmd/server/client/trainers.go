package client

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/battle-api/internal/api/battlev1"
)

var createTrainerCmd = &cobra.Command{
	Use:   "create-trainer <name>",
	Short: "Create a level 1 trainer",
	Args:  cobra.ExactArgs(1),
	RunE:  runCreateTrainer,
}

var listTrainersCmd = &cobra.Command{
	Use:   "list-trainers",
	Short: "List trainers with level and roster",
	Args:  cobra.NoArgs,
	RunE:  runListTrainers,
}

var addToRosterCmd = &cobra.Command{
	Use:   "add-to-roster <trainer-id> <combatant-id>",
	Short: "Add a combatant to a trainer's roster",
	Args:  cobra.ExactArgs(2),
	RunE:  runAddToRoster,
}

var healRosterCmd = &cobra.Command{
	Use:   "heal-roster <trainer-id>",
	Short: "Heal every combatant on a trainer's roster",
	Args:  cobra.ExactArgs(1),
	RunE:  runHealRoster,
}

func runCreateTrainer(cmd *cobra.Command, args []string) error {
	return withClient(func(ctx context.Context, c battlev1.BattleServiceClient) error {
		resp, err := c.CreateTrainer(ctx, &battlev1.CreateTrainerRequest{Name: args[0]})
		if err != nil {
			return fmt.Errorf("failed to create trainer: %w", err)
		}

		printTrainer(cmd.OutOrStdout(), "Created", resp.Trainer)
		return nil
	})
}

func runListTrainers(cmd *cobra.Command, _ []string) error {
	return withClient(func(ctx context.Context, c battlev1.BattleServiceClient) error {
		resp, err := c.ListTrainers(ctx, &battlev1.ListTrainersRequest{})
		if err != nil {
			return fmt.Errorf("failed to list trainers: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Found %d trainers:\n", len(resp.Trainers))
		for _, t := range resp.Trainers {
			printTrainer(out, " ", t)
		}
		return nil
	})
}

func runAddToRoster(cmd *cobra.Command, args []string) error {
	return withClient(func(ctx context.Context, c battlev1.BattleServiceClient) error {
		resp, err := c.AddToRoster(ctx, &battlev1.AddToRosterRequest{TrainerID: args[0], CombatantID: args[1]})
		if err != nil {
			return fmt.Errorf("failed to add to roster: %w", err)
		}

		printTrainer(cmd.OutOrStdout(), "Updated", resp.Trainer)
		return nil
	})
}

func runHealRoster(cmd *cobra.Command, args []string) error {
	return withClient(func(ctx context.Context, c battlev1.BattleServiceClient) error {
		resp, err := c.HealRoster(ctx, &battlev1.HealRosterRequest{TrainerID: args[0]})
		if err != nil {
			return fmt.Errorf("failed to heal roster: %w", err)
		}

		out := cmd.OutOrStdout()
		printTrainer(out, "Healed roster of", resp.Trainer)
		for _, cb := range resp.Healed {
			printCombatant(out, " ", cb)
		}
		return nil
	})
}

func printTrainer(out io.Writer, label string, t *battlev1.Trainer) {
	if t == nil {
		return
	}
	roster := "empty"
	if len(t.CombatantIDs) > 0 {
		roster = strings.Join(t.CombatantIDs, ", ")
	}
	fmt.Fprintf(out, "%s [%s] %s (level %d, XP %d) roster: %s\n",
		label, t.ID, t.Name, t.Level, t.Experience, roster)
}
