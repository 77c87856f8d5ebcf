package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/unifiedui/docskin/internal/core/docdb"
	"github.com/unifiedui/docskin/internal/pkg/extjson"
	"github.com/unifiedui/docskin/internal/services/skin"
)

var errNotFound = errors.New("document not found")

func newCollectionsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "collections",
		Short: "List the collections of the database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := a.db.ListCollectionNames(cmd.Context())
			if err != nil {
				return err
			}
			if names == nil {
				names = []string{}
			}
			return a.out.print(names)
		},
	}
}

func newGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <collection> <id>",
		Short: "Print the document with the given identifier",
		Long: "Print the document whose _id matches. A 24-character hex id is matched as an\n" +
			"ObjectId, anything else as a literal string.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.db.Collection(args[0]).FindByID(cmd.Context(), args[1])
			if err != nil {
				return err
			}
			if doc == nil {
				return fmt.Errorf("%s/%s: %w", args[0], args[1], errNotFound)
			}
			return a.out.print(doc)
		},
	}
}

// queryFlags are the query modifiers shared by find and each.
type queryFlags struct {
	filter     string
	sort       string
	projection string
	limit      int64
	skip       int64
}

func (f *queryFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVarP(&f.filter, "filter", "f", "", "filter document in Extended JSON")
	flags.StringVarP(&f.sort, "sort", "s", "", "sort document in Extended JSON, e.g. '{\"n\": -1}'")
	flags.StringVarP(&f.projection, "projection", "p", "", "projection document in Extended JSON")
	flags.Int64VarP(&f.limit, "limit", "l", 0, "maximum number of documents, 0 for all")
	flags.Int64Var(&f.skip, "skip", 0, "number of documents to skip")
}

func (f *queryFlags) options() ([]skin.QueryOption, error) {
	var opts []skin.QueryOption
	if f.filter != "" {
		filter, err := extjson.ParseDocument(f.filter)
		if err != nil {
			return nil, fmt.Errorf("invalid --filter: %w", err)
		}
		opts = append(opts, skin.Filter(filter))
	}
	if f.sort != "" {
		sort, err := extjson.ParseOrdered(f.sort)
		if err != nil {
			return nil, fmt.Errorf("invalid --sort: %w", err)
		}
		opts = append(opts, skin.Sort(sort))
	}
	if f.projection != "" {
		projection, err := extjson.ParseDocument(f.projection)
		if err != nil {
			return nil, fmt.Errorf("invalid --projection: %w", err)
		}
		opts = append(opts, skin.Projection(projection))
	}
	if f.limit < 0 || f.skip < 0 {
		return nil, errors.New("--limit and --skip must not be negative")
	}
	if f.limit > 0 {
		opts = append(opts, skin.Limit(f.limit))
	}
	if f.skip > 0 {
		opts = append(opts, skin.Skip(f.skip))
	}
	return opts, nil
}

func newFindCmd(a *app) *cobra.Command {
	var q queryFlags
	cmd := &cobra.Command{
		Use:   "find <collection>",
		Short: "Print all matching documents as one array",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := q.options()
			if err != nil {
				return err
			}
			docs, err := a.db.Collection(args[0]).FindItems(cmd.Context(), opts...)
			if err != nil {
				return err
			}
			return a.out.print(docs)
		},
	}
	q.register(cmd)
	return cmd
}

func newEachCmd(a *app) *cobra.Command {
	var q queryFlags
	cmd := &cobra.Command{
		Use:   "each <collection>",
		Short: "Stream matching documents, one per line",
		Long: "Stream matching documents as they arrive from the cursor: one compact JSON\n" +
			"document per line, or one YAML document each. The document count is\n" +
			"reported on stderr once the cursor is exhausted.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := q.options()
			if err != nil {
				return err
			}

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			count := 0
			var streamErr error
			a.db.Collection(args[0]).FindEach(ctx, func(step skin.Step) {
				switch step.Kind {
				case skin.StepDocument:
					if err := a.out.printLine(step.Document); err != nil {
						streamErr = err
						cancel()
						return
					}
					count++
				case skin.StepError:
					if streamErr == nil {
						streamErr = step.Err
					}
				}
			}, opts...)

			if err := a.out.flush(); err != nil && streamErr == nil {
				streamErr = err
			}
			if streamErr != nil {
				return streamErr
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "%d documents\n", count)
			return nil
		},
	}
	q.register(cmd)
	return cmd
}

func newUpdateCmd(a *app) *cobra.Command {
	var upsert bool
	cmd := &cobra.Command{
		Use:   "update <collection> <id> <update>",
		Short: "Apply an update document to the document with the given identifier",
		Example: `  skinctl update article 5f1d7a3b9c8e4f0012345678 '{"$set": {"title": "x"}}'
  skinctl update article slug-1 '{"$set": {"n": 1}}' --upsert`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			update, err := extjson.ParseDocument(args[2])
			if err != nil {
				return fmt.Errorf("invalid update: %w", err)
			}
			if len(update) == 0 {
				return errors.New("update must be a non-empty document")
			}

			result, err := a.db.Collection(args[0]).UpdateByID(cmd.Context(), args[1], update, &docdb.UpdateOptions{Upsert: upsert})
			if err != nil {
				return err
			}

			out := bson.D{
				{Key: "matched", Value: result.MatchedCount},
				{Key: "modified", Value: result.ModifiedCount},
				{Key: "upserted", Value: result.UpsertedCount},
			}
			if result.UpsertedID != nil {
				out = append(out, bson.E{Key: "upsertedId", Value: result.UpsertedID})
			}
			return a.out.print(out)
		},
	}
	cmd.Flags().BoolVar(&upsert, "upsert", false, "insert the document when nothing matches")
	return cmd
}

func newRemoveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <collection> <id>",
		Short: "Remove the document with the given identifier",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			removed, err := a.db.Collection(args[0]).RemoveByID(cmd.Context(), args[1])
			if err != nil {
				return err
			}
			return a.out.print(bson.D{{Key: "removed", Value: removed}})
		},
	}
}

func newIndexCmd(a *app) *cobra.Command {
	var opts docdb.IndexOptions
	cmd := &cobra.Command{
		Use:     "index <collection> <keys>",
		Short:   "Create an index and print its name",
		Example: `  skinctl index article '{"title": -1}'`,
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			keys, err := extjson.ParseOrdered(args[1])
			if err != nil {
				return fmt.Errorf("invalid keys: %w", err)
			}
			if len(keys) == 0 {
				return errors.New("index keys must be a non-empty document")
			}

			name, err := a.db.Collection(args[0]).CreateIndex(cmd.Context(), keys, &opts)
			if err != nil {
				return err
			}
			return a.out.print(bson.D{{Key: "index", Value: name}})
		},
	}
	cmd.Flags().StringVar(&opts.Name, "name", "", "index name (default generated from the keys)")
	cmd.Flags().BoolVar(&opts.Unique, "unique", false, "reject duplicate keys")
	return cmd
}

func newCallCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "call <collection> <method> [args]",
		Short: "Call a method bound on the collection",
		Long: "Call a method bound on the collection. Arguments are given as one\n" +
			"Extended JSON array. Built-in methods: count([filter]), exists(id).",
		Example: `  skinctl call article count '[{"published": true}]'
  skinctl call article exists '["5f1d7a3b9c8e4f0012345678"]'`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			var callArgs bson.A
			if len(args) == 3 {
				parsed, err := extjson.ParseArray(args[2])
				if err != nil {
					return fmt.Errorf("invalid args: %w", err)
				}
				callArgs = parsed
			}

			result, err := a.db.Collection(args[0]).Call(cmd.Context(), args[1], callArgs...)
			if err != nil {
				return err
			}
			return a.out.print(result)
		},
	}
}
