package cli

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/specialistvlad/depgrid/internal/app"
	"github.com/spf13/cobra"
)

// Environment variables providing flag defaults.
const (
	EnvLogLevel  = "DEPGRID_LOG_LEVEL"
	EnvLogFormat = "DEPGRID_LOG_FORMAT"
	EnvCacheSize = "DEPGRID_CACHE_SIZE"
)

// AppFactory builds the application for a validated configuration. Logs go
// to logW.
type AppFactory func(logW io.Writer, cfg *app.Config) (*app.App, error)

// options are the values of the persistent flags.
type options struct {
	logLevel  string
	logFormat string
	cacheSize int
	envFile   string
}

// command carries the state shared by all subcommands of one invocation.
type command struct {
	outW   io.Writer
	errW   io.Writer
	newApp AppFactory
	opts   options
	app    *app.App
}

// NewRootCommand builds the depgrid command tree. Command output is written to
// outW, logs and errors to errW.
func NewRootCommand(outW, errW io.Writer, newApp AppFactory) *cobra.Command {
	c := &command{outW: outW, errW: errW, newApp: newApp}

	root := &cobra.Command{
		Use:   "depgrid",
		Short: "Resolve jest configuration dependencies and workspace package graphs",
		Long: `depgrid reads declarative jest configurations (JSON, HCL, or the "jest"
key of package.json), follows their preset chains, and lists every module
they reference. It can also build the dependency graph between the members
of a package.json or pnpm workspace.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
	}
	root.SetOut(outW)
	root.SetErr(errW)

	flags := root.PersistentFlags()
	flags.StringVar(&c.opts.logLevel, "log-level", "info", "Logging level: 'debug', 'info', 'warn', or 'error'. Env: "+EnvLogLevel)
	flags.StringVar(&c.opts.logFormat, "log-format", "text", "Log output format: 'text' or 'json'. Env: "+EnvLogFormat)
	flags.IntVar(&c.opts.cacheSize, "cache-size", 0, "Number of parsed configuration documents to cache (0 uses the default). Env: "+EnvCacheSize)
	flags.StringVar(&c.opts.envFile, "env-file", ".env", "File with environment defaults, ignored when missing.")

	root.AddCommand(c.newDepsCommand(), c.newGraphCommand())
	return root
}

// setup merges environment defaults into unset flags and builds the app.
func (c *command) setup(cmd *cobra.Command, _ []string) error {
	env, err := readEnv(c.opts.envFile)
	if err != nil {
		return usageError(err)
	}

	flags := cmd.Flags()
	if v := env[EnvLogLevel]; v != "" && !flags.Changed("log-level") {
		c.opts.logLevel = v
	}
	if v := env[EnvLogFormat]; v != "" && !flags.Changed("log-format") {
		c.opts.logFormat = v
	}
	if v := env[EnvCacheSize]; v != "" && !flags.Changed("cache-size") {
		n, err := strconv.Atoi(v)
		if err != nil {
			return usageError(fmt.Errorf("invalid %s %q: %w", EnvCacheSize, v, err))
		}
		c.opts.cacheSize = n
	}

	cfg, err := app.NewConfig(app.Config{
		LogLevel:  c.opts.logLevel,
		LogFormat: c.opts.logFormat,
		CacheSize: c.opts.cacheSize,
	})
	if err != nil {
		return usageError(err)
	}

	c.app, err = c.newApp(c.errW, cfg)
	if err != nil {
		return err
	}
	c.app.Logger().Debug("CLI configuration resolved.",
		"log_level", cfg.LogLevel,
		"log_format", cfg.LogFormat,
		"cache_size", cfg.CacheSize,
		"env_file", c.opts.envFile,
	)
	return nil
}

// readEnv returns the variables of envFile overlaid by the process
// environment. A missing envFile is not an error.
func readEnv(envFile string) (map[string]string, error) {
	env := map[string]string{}
	if envFile != "" {
		fileEnv, err := godotenv.Read(envFile)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to read env file %s: %w", envFile, err)
		default:
			env = fileEnv
		}
	}

	for _, key := range []string{EnvLogLevel, EnvLogFormat, EnvCacheSize} {
		if v, ok := os.LookupEnv(key); ok {
			env[key] = v
		}
	}
	return env, nil
}
