package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"periodic-tutor/internal/app"
	"periodic-tutor/internal/config"
	"periodic-tutor/internal/elements"
	"periodic-tutor/internal/logger"

	"github.com/charmbracelet/lipgloss"
	ltable "github.com/charmbracelet/lipgloss/table"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "periodic-tutor",
		Short: "Interactive periodic table",
		Long: `Periodic Tutor shows the periodic table as a clickable grid.

Element data is read from an RDF file (RDF/XML, Turtle or N-Triples,
chosen by extension). Clicking an element shows its name, symbol,
group, period, category, state, melting and boiling points and
electronegativity.`,
		Version:       app.AppVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}

			level, _ := logger.ParseLevel(cfg.Log.Level)
			application, err := app.NewApplication(cfg, logger.New(level, cfg.Log.JSON))
			if err != nil {
				return fmt.Errorf("failed to start: %w", err)
			}
			return application.Run()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "YAML configuration file")
	flags.String("data", "", "element data file (default "+config.DefaultDataPath+")")
	flags.String("log-level", "", "log level: debug, info, warn or error")
	flags.Bool("json-logs", false, "write logs as JSON")

	rootCmd.AddCommand(elementsCmd())
	return rootCmd
}

// resolveConfig layers explicitly set flags over config.Load.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("data") {
		cfg.Data.Path, _ = cmd.Flags().GetString("data")
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level, _ = cmd.Flags().GetString("log-level")
	}
	if cmd.Flags().Changed("json-logs") {
		cfg.Log.JSON, _ = cmd.Flags().GetBool("json-logs")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func elementsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "elements",
		Short: "Print the loaded element table",
		Long: `Load the element data file and print it without opening a window.

Example:
  periodic-tutor elements
  periodic-tutor elements --number 6
  periodic-tutor elements --data elements.ttl`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			number, _ := cmd.Flags().GetInt("number")

			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}

			level, _ := logger.ParseLevel(cfg.Log.Level)
			log := logger.NewZerolog(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), TimeFormat: "15:04:05"}, level)

			table, err := elements.LoadWithOptions(cfg.Data.Path, elements.Options{
				Namespace: cfg.Data.Namespace,
				Logger:    log,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if cmd.Flags().Changed("number") {
				return printRecord(out, table, number)
			}
			return printTable(out, table)
		},
	}

	cmd.Flags().Int("number", 0, "show every field of one element")
	return cmd
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

func printTable(out io.Writer, table *elements.Table) error {
	rows := make([][]string, 0, table.Len())
	for _, n := range table.Numbers() {
		record, _ := table.Lookup(n)
		rows = append(rows, []string{
			strconv.Itoa(record.AtomicNumber),
			record.Symbol.String(),
			record.Name.String(),
			record.Category.String(),
			record.State.String(),
		})
	}

	listing := ltable.New().
		Border(lipgloss.NormalBorder()).
		Headers("NUMBER", "SYMBOL", "NAME", "CATEGORY", "STATE").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == ltable.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	_, err := fmt.Fprintf(out, "%s\n\n%d elements\n", listing.Render(), table.Len())
	return err
}

func printRecord(out io.Writer, table *elements.Table, number int) error {
	if number <= 0 {
		return fmt.Errorf("--number must be positive, got %d", number)
	}
	record, _ := table.Lookup(number)
	for _, line := range record.Lines() {
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}
	return nil
}
