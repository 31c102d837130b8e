// Package main is the sqlengine CLI: a cobra-based front end over the
// command skins, wired the way Pieczasz-smf/cmd/smf wires its diff/
// migrate/apply subcommands around a config file and a shared backend
// connection.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/pingcap/tidb/pkg/parser"
	"github.com/pingcap/tidb/pkg/parser/ast"
	_ "github.com/pingcap/tidb/pkg/parser/test_driver"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/mstgnz/sqlengine/astcoerce"
	"github.com/mstgnz/sqlengine/command"
	"github.com/mstgnz/sqlengine/engine"
	"github.com/mstgnz/sqlengine/engineconfig"
	"github.com/mstgnz/sqlengine/enginelog"
	"github.com/mstgnz/sqlengine/metrics"
	"github.com/mstgnz/sqlengine/storage/mysqlfe"
	"github.com/mstgnz/sqlengine/storage/pgfe"
)

// closer is the subset of engine.Frontend's storage handles this
// command needs at shutdown; both mysqlfe.Frontend and pgfe.Frontend
// satisfy it.
type closer interface {
	Close() error
}

type rootDeps struct {
	configPath string
	handle     *engine.Handle
	closer     closer
	logger     *enginelog.Logger
	metrics    *metrics.Collector
}

func main() {
	deps := &rootDeps{}

	rootCmd := &cobra.Command{
		Use:   "sqlengine",
		Short: "Minimal SQL command dispatcher over a typed storage frontend",
	}
	rootCmd.PersistentFlags().StringVar(&deps.configPath, "config", "sqlengine.toml", "Path to the engine's TOML config file")

	rootCmd.AddCommand(createSchemaCmd(deps), dropSchemaCmd(deps), updateCmd(deps))

	cobra.OnInitialize(func() {
		if err := wireDeps(deps); err != nil {
			fmt.Fprintf(os.Stderr, "sqlengine: %v\n", err)
			os.Exit(1)
		}
	})

	if err := rootCmd.Execute(); err != nil {
		if deps.closer != nil {
			_ = deps.closer.Close()
		}
		os.Exit(1)
	}
	if deps.closer != nil {
		_ = deps.closer.Close()
	}
}

// wireDeps loads config and builds the handle, logger, and metrics
// collector every subcommand shares. Exactly one of cfg.MySQL.DSN /
// cfg.Postgres.DSN is expected to be populated; that choice decides
// which storage/*fe.Frontend backs the handle.
func wireDeps(deps *rootDeps) error {
	cfg, err := engineconfig.Load(deps.configPath)
	if err != nil {
		return err
	}

	deps.logger = enginelog.New(os.Stdout, cfg.LogLevelOrDefault())
	deps.metrics = metrics.NewCollector(prometheus.DefaultRegisterer)

	switch {
	case cfg.MySQL.DSN != "":
		fe, err := mysqlfe.Open(cfg.MySQL.DSN)
		if err != nil {
			return fmt.Errorf("sqlengine: connect mysql: %w", err)
		}
		deps.closer = fe
		deps.handle = engine.NewHandle(fe)
	case cfg.Postgres.DSN != "":
		fe, err := pgfe.Open(cfg.Postgres.DSN)
		if err != nil {
			return fmt.Errorf("sqlengine: connect postgres: %w", err)
		}
		deps.closer = fe
		deps.handle = engine.NewHandle(fe)
	default:
		return fmt.Errorf("sqlengine: config %q sets neither [mysql].dsn nor [postgres].dsn", deps.configPath)
	}
	return nil
}

func createSchemaCmd(deps *rootDeps) *cobra.Command {
	return &cobra.Command{
		Use:   "create-schema <name>",
		Short: "Create a schema",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return dispatch(deps, "create_schema", args[0], &command.CreateSchema{Handle: deps.handle, Name: args[0]})
		},
	}
}

func dropSchemaCmd(deps *rootDeps) *cobra.Command {
	return &cobra.Command{
		Use:   "drop-schema <name>",
		Short: "Drop a schema",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return dispatch(deps, "drop_schema", args[0], &command.DropSchema{Handle: deps.handle, Name: args[0]})
		},
	}
}

func updateCmd(deps *rootDeps) *cobra.Command {
	return &cobra.Command{
		Use:   "update <sql>",
		Short: "Execute an UPDATE ... SET statement",
		Long: `Execute an UPDATE schema.table SET col = value, ... statement.

The statement is parsed with the same SQL grammar used internally
(github.com/pingcap/tidb/pkg/parser); only literal assignments are
accepted — see astcoerce for the exact accept-list.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rawSQL := args[0]
			upd, err := parseUpdateStmt(rawSQL)
			if err != nil {
				return err
			}
			schema, table, err := updateTarget(upd)
			if err != nil {
				return err
			}
			pairs, err := astcoerce.Assignments(upd, rawSQL)
			if err != nil {
				return err
			}
			qualified := fmt.Sprintf("%s.%s", schema, table)
			return dispatch(deps, "update", qualified, &command.Update{
				Handle: deps.handle,
				Schema: schema,
				Table:  table,
				Pairs:  pairs,
				RawSQL: rawSQL,
			})
		},
	}
}

// parseUpdateStmt parses rawSQL with the tidb parser and asserts it is
// a single UPDATE statement.
func parseUpdateStmt(rawSQL string) (*ast.UpdateStmt, error) {
	p := parser.New()
	stmtNodes, _, err := p.ParseSQL(rawSQL)
	if err != nil {
		return nil, fmt.Errorf("sqlengine: parse: %w", err)
	}
	if len(stmtNodes) != 1 {
		return nil, fmt.Errorf("sqlengine: expected exactly one statement, got %d", len(stmtNodes))
	}
	upd, ok := stmtNodes[0].(*ast.UpdateStmt)
	if !ok {
		return nil, fmt.Errorf("sqlengine: expected an UPDATE statement")
	}
	return upd, nil
}

// updateTarget pulls the schema and table name out of an UPDATE
// statement's single-table reference.
func updateTarget(upd *ast.UpdateStmt) (schema, table string, err error) {
	if upd.TableRefs == nil || upd.TableRefs.TableRefs == nil {
		return "", "", fmt.Errorf("sqlengine: update statement has no table reference")
	}
	src, ok := upd.TableRefs.TableRefs.Left.(*ast.TableSource)
	if !ok {
		return "", "", fmt.Errorf("sqlengine: unsupported table reference shape")
	}
	name, ok := src.Source.(*ast.TableName)
	if !ok {
		return "", "", fmt.Errorf("sqlengine: update target must be a plain table name")
	}
	if name.Schema.O == "" {
		return "", "", fmt.Errorf("sqlengine: update target must be schema-qualified (schema.table)")
	}
	return name.Schema.O, name.Name.O, nil
}

// executor is the shape every command skin's Execute method shares.
type executor interface {
	Execute(ctx context.Context) command.SystemResult
}

// dispatch runs a command skin, times it, logs the outcome, records
// the metric, and turns the two-level result into a CLI exit status.
func dispatch(deps *rootDeps, kind, subject string, cmd executor) error {
	start := time.Now()
	result := cmd.Execute(context.Background())
	elapsed := time.Since(start)

	switch {
	case result.SystemErr != nil:
		deps.logger.Command(kind, subject, result.SystemErr)
		deps.metrics.Observe(kind, metrics.OutcomeSystemError, elapsed)
		return result.SystemErr
	case result.QueryErr != nil:
		deps.logger.Command(kind, subject, result.QueryErr)
		deps.metrics.Observe(kind, metrics.OutcomeQueryError, elapsed)
		return result.QueryErr
	default:
		deps.logger.Command(kind, subject, nil)
		deps.metrics.Observe(kind, metrics.OutcomeOK, elapsed)
		fmt.Println(result.Event.String())
		return nil
	}
}
