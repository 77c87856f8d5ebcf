package main

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/unifiedui/docskin/internal/config"
	"github.com/unifiedui/docskin/internal/core/docdb"
	"github.com/unifiedui/docskin/internal/infrastructure/docdb/factory"
	"github.com/unifiedui/docskin/internal/pkg/logging"
	"github.com/unifiedui/docskin/internal/services/skin"
)

// app carries what every command needs once the root command has run its
// setup: the connected database facade and the output printer.
type app struct {
	connect func(ctx context.Context, cfg config.DocDBConfig) (docdb.Client, error)

	uri      string
	database string
	dbType   string
	output   string
	timeout  time.Duration

	client docdb.Client
	db     *skin.Database
	out    *printer
	cancel context.CancelFunc
}

func newApp() *app {
	return &app{connect: factory.NewClient}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:               "skinctl",
		Short:             "Document collection toolkit",
		Long:              "skinctl reads and edits MongoDB collections by identifier, runs queries and streams results.",
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.uri, "uri", "", "connection string (default $MONGODB_URI)")
	flags.StringVarP(&a.database, "database", "d", "", "database name (default $MONGODB_DATABASE)")
	flags.StringVar(&a.dbType, "type", "", "database type: mongodb|cosmosdb (default $DOCDB_TYPE)")
	flags.StringVarP(&a.output, "output", "o", formatJSON, "output format: json|yaml")
	flags.DurationVar(&a.timeout, "timeout", 30*time.Second, "deadline for the whole command, 0 for none")

	root.AddCommand(
		newCollectionsCmd(a),
		newGetCmd(a),
		newFindCmd(a),
		newEachCmd(a),
		newUpdateCmd(a),
		newRemoveCmd(a),
		newIndexCmd(a),
		newCallCmd(a),
	)
	return root
}

// setup loads configuration, applies flag overrides and connects.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	out, err := newPrinter(cmd.OutOrStdout(), a.output)
	if err != nil {
		return err
	}
	a.out = out

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if a.uri != "" {
		cfg.DocDB.URI = a.uri
	}
	if a.database != "" {
		cfg.DocDB.Database = a.database
	}
	if a.dbType != "" {
		cfg.DocDB.Type = a.dbType
	}

	logger := logging.SetupWithWriter(cfg.Log, cmd.ErrOrStderr())

	ctx := cmd.Context()
	if a.timeout > 0 {
		ctx, a.cancel = context.WithTimeout(ctx, a.timeout)
		cmd.SetContext(ctx)
	}

	client, err := a.connect(ctx, cfg.DocDB)
	if err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}
	a.client = client
	a.db = skin.NewDatabase(client.Database(),
		skin.WithDatabaseLogger(logger),
		skin.WithDefaultMethods(skin.BuiltinMethods()),
	)
	return nil
}

// close releases the connection; safe to call when setup never ran.
func (a *app) close() {
	if a.client != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := a.client.Close(ctx); err != nil {
			log.Warn().Err(err).Msg("failed to close connection")
		}
		cancel()
		a.client = nil
	}
	if a.cancel != nil {
		a.cancel()
		a.cancel = nil
	}
}
