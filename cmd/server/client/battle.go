package client

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"

	"github.com/KirkDiggler/battle-api/internal/api/battlev1"
)

type matchCall func(ctx context.Context, in *battlev1.MatchRequest, opts ...grpc.CallOption) (*battlev1.MatchResponse, error)

// battleModes maps the mode argument onto the service call
var battleModes = map[string]func(battlev1.BattleServiceClient) matchCall{
	"random":              func(c battlev1.BattleServiceClient) matchCall { return c.RandomChallenge },
	"deterministic":       func(c battlev1.BattleServiceClient) matchCall { return c.DeterministicChallenge },
	"arena-random":        func(c battlev1.BattleServiceClient) matchCall { return c.RandomArena },
	"arena-deterministic": func(c battlev1.BattleServiceClient) matchCall { return c.DeterministicArena },
}

var quiet bool

var battleCmd = &cobra.Command{
	Use:   "battle <mode> <trainer1-id> <trainer2-id>",
	Short: "Play a match between two trainers",
	Long: `Play a match between two trainers. Modes:
  random               heal both rosters, random picks, one battle
  deterministic        no healing, healthiest picks, one battle
  arena-random         100 random battles, healing before each
  arena-deterministic  up to 100 battles with healthiest picks and no healing`,
	Args: cobra.ExactArgs(3),
	RunE: runBattle,
}

func init() {
	battleCmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Print only the result, not the battle log")
}

func runBattle(cmd *cobra.Command, args []string) error {
	mode, ok := battleModes[args[0]]
	if !ok {
		return fmt.Errorf("unknown battle mode %q (want one of %s)", args[0], strings.Join(modeNames(), ", "))
	}

	return withClient(func(ctx context.Context, c battlev1.BattleServiceClient) error {
		resp, err := mode(c)(ctx, &battlev1.MatchRequest{Trainer1ID: args[1], Trainer2ID: args[2]})
		if err != nil {
			return fmt.Errorf("failed to play %s: %w", args[0], err)
		}

		out := cmd.OutOrStdout()
		if !quiet {
			for _, line := range resp.Log {
				fmt.Fprintln(out, line)
			}
			fmt.Fprintln(out)
		}

		if resp.Draw {
			fmt.Fprintf(out, "Result: draw after %d round(s)\n", resp.Rounds)
			return nil
		}
		fmt.Fprintf(out, "Result: %s wins after %d round(s) (level %d, XP %d)\n",
			resp.WinnerName, resp.Rounds, resp.WinnerLevel, resp.WinnerExperience)
		return nil
	})
}

func modeNames() []string {
	names := make([]string, 0, len(battleModes))
	for name := range battleModes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
