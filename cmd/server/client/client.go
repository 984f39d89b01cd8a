// Package client provides commands that call a running Battle API server
package client

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/KirkDiggler/battle-api/internal/api/battlev1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
)

// ClientCmd is the root command for all client commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Client commands for the Battle API",
	Long:  `Client commands manage moves, combatants and trainers and run battles over gRPC.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")

	// Catalog
	ClientCmd.AddCommand(createMoveCmd)
	ClientCmd.AddCommand(listMovesCmd)

	// Combatants
	ClientCmd.AddCommand(createCombatantCmd)
	ClientCmd.AddCommand(listCombatantsCmd)
	ClientCmd.AddCommand(learnMoveCmd)
	ClientCmd.AddCommand(healCombatantCmd)

	// Trainers
	ClientCmd.AddCommand(createTrainerCmd)
	ClientCmd.AddCommand(listTrainersCmd)
	ClientCmd.AddCommand(addToRosterCmd)
	ClientCmd.AddCommand(healRosterCmd)

	ClientCmd.AddCommand(battleCmd)
}

// createConnection creates a gRPC connection to the server
func createConnection() (*grpc.ClientConn, error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithStatsHandler(otelgrpc.NewClientHandler()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	return conn, nil
}

// createBattleClient creates a battle service client
func createBattleClient() (battlev1.BattleServiceClient, func(), error) {
	conn, err := createConnection()
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return battlev1.NewBattleServiceClient(conn), cleanup, nil
}

// withClient runs fn with a connected client and a request deadline
func withClient(fn func(ctx context.Context, c battlev1.BattleServiceClient) error) error {
	c, cleanup, err := createBattleClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	return fn(ctx, c)
}
