package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/primepath/input"
	"github.com/katalvlaran/primepath/internal/config"
	"github.com/katalvlaran/primepath/longest"
	"github.com/katalvlaran/primepath/prime"
	"github.com/katalvlaran/primepath/pyramid"
)

// Messages printed verbatim on stdout/stderr.
const (
	msgTrying   = "Trying to open %s...\n"
	msgNoFile   = "No filename supplied."
	msgOpenFail = "ERROR: Can not open input file."
	msgSum      = "Maximum Sum: %d\n"
	msgNoSum    = "Maximum sum does not exist."
)

// flagValues holds raw flag input; only flags the user set override config.
type flagValues struct {
	configPath string
	logLevel   string
	logFormat  string
	policy     string
	showPath   bool
}

// NewRootCommand builds the primepath root command bound to the given streams.
func NewRootCommand(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	var fv flagValues

	cmd := &cobra.Command{
		Use:   "primepath [FILE]",
		Short: "Maximum prime-free path sum through a number pyramid",
		Long: `primepath reads a number pyramid (row i holds i integers) and prints the
largest sum of a top-to-bottom walk that never steps on a prime.

With FILE, rows are read one per line. Without FILE, the level count and
every value are prompted for on stdin.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, fv)
			if err != nil {
				return &ExitError{Code: ExitUsage, Message: err.Error()}
			}
			logger := newLogger(cfg.Log.Level, cfg.Log.Format, stderr)
			logger.Debug("Configuration resolved.", "policy", cfg.Solver.Policy, "show_path", cfg.Solver.ShowPath)

			return run(logger, cfg, args, stdin, stdout, stderr)
		},
	}
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	cmd.Flags().StringVarP(&fv.configPath, "config", "c", "", "Path to a YAML configuration file")
	cmd.Flags().StringVar(&fv.logLevel, "log-level", config.DefaultLogLevel, "Logging level: debug, info, warn or error")
	cmd.Flags().StringVar(&fv.logFormat, "log-format", config.DefaultLogFormat, "Log output format: text or json")
	cmd.Flags().StringVar(&fv.policy, "policy", config.DefaultPolicy, "Extraction policy: strict or fallback")
	cmd.Flags().BoolVar(&fv.showPath, "show-path", false, "Print the cells of the winning path")

	return cmd
}

// Execute runs the command with args and returns the process exit code.
func Execute(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cmd := NewRootCommand(stdin, stdout, stderr)
	// cobra falls back to os.Args when args is nil.
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)

	err := cmd.Execute()
	if err == nil {
		return ExitOK
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Message != "" {
			fmt.Fprintln(stderr, exitErr.Message)
		}
		return exitErr.Code
	}
	// cobra argument and flag errors
	fmt.Fprintln(stderr, err)

	return ExitUsage
}

// resolveConfig loads the config file and applies explicitly set flags on top.
func resolveConfig(cmd *cobra.Command, fv flagValues) (config.Config, error) {
	cfg, err := config.Load(fv.configPath)
	if err != nil {
		return cfg, err
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Log.Level = fv.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = fv.logFormat
	}
	if flags.Changed("policy") {
		cfg.Solver.Policy = fv.policy
	}
	if flags.Changed("show-path") {
		cfg.Solver.ShowPath = fv.showPath
	}

	return cfg, cfg.Validate()
}

// run reads the pyramid, builds the graph, solves and renders the answer.
func run(logger *slog.Logger, cfg config.Config, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	rows, err := readRows(logger, args, stdin, stdout)
	if err != nil {
		if errors.Is(err, input.ErrOpenFile) {
			logger.Debug("Open failed.", "error", err)
			fmt.Fprintln(stderr, msgOpenFail)
			return &ExitError{Code: ExitOpenFile}
		}
		return &ExitError{Code: ExitUsage, Message: err.Error()}
	}

	p, err := pyramid.New(rows)
	if err != nil {
		return &ExitError{Code: ExitUsage, Message: err.Error()}
	}
	g := pyramid.Build(p, prime.IsPrime)
	logger.Debug("Graph built.",
		"rows", p.Rows(),
		"vertices", g.VertexCount(),
		"edges", g.EdgeCount(),
		"forbidden", pyramid.ForbiddenCount(p, prime.IsPrime),
	)

	opts := []longest.Option{longest.WithPolicy(cfg.Policy())}
	if cfg.Solver.ShowPath {
		opts = append(opts, longest.WithReturnPath())
	}
	res, ok, err := longest.Solve(g, opts...)
	if err != nil {
		// Sums beyond int64; a cycle or nil graph cannot come out of Build.
		return &ExitError{Code: ExitUsage, Message: fmt.Sprintf("solve: %v", err)}
	}
	logger.Debug("Solved.", "found", ok, "sum", res.Sum, "vertex", res.Vertex)

	render(stdout, p, res, ok, cfg.Solver.ShowPath)

	return nil
}

// readRows picks the file or the interactive source.
func readRows(logger *slog.Logger, args []string, stdin io.Reader, stdout io.Writer) ([][]int64, error) {
	if len(args) == 1 {
		fmt.Fprintf(stdout, msgTrying, args[0])
		logger.Debug("Reading pyramid file.", "path", args[0])
		return input.ReadFile(args[0])
	}
	fmt.Fprintln(stdout, msgNoFile)
	logger.Debug("Reading pyramid interactively.")

	return input.Prompter{In: stdin, Out: stdout}.Prompt()
}
