package cli

import (
	"context"
	"errors"
	"github.com/spf13/cobra"
	"stegobmp/internal/logging"
	"stegobmp/pkg/config"
)

type rootOpts struct {
	configPath    string
	logLevel      string
	cpuProfile    string
	memProfileDir string

	fileConfig *config.FileConfig
	profiler   Profiler
	logger     *logging.Logger
}

// Execute runs the stegobmp command line with args. Profilers are stopped and flushed even when the command fails
// or ctx is cancelled mid way
func Execute(ctx context.Context, args []string) (err error) {
	rootCmd, opts := newRootCommand()
	rootCmd.SetArgs(args)
	defer func() {
		err = errors.Join(err, opts.profiler.Stop())
	}()
	return rootCmd.ExecuteContext(ctx)
}

func newRootCommand() (*cobra.Command, *rootOpts) {
	opts := &rootOpts{}

	rootCmd := &cobra.Command{
		Use:           "stegobmp",
		Short:         "Hides files in 24-bit BMP images with LSB1, LSB4 and LSBI steganography",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", config.DefaultPath, "YAML file with default options")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn or error. Overrides the configuration file")
	flags.StringVar(&opts.cpuProfile, "cpu-profile", "", "Dump CPU profile into the supplied file")
	flags.StringVar(&opts.memProfileDir, "mem-profile-dir", "", "Dump memory profiles into the supplied directory")

	rootCmd.AddCommand(
		embedCommand(opts),
		extractCommand(opts),
		analyzeCommand(opts),
		capacityCommand(opts),
		convertCommand(),
		serveCommand(opts),
	)
	return rootCmd, opts
}

func (o *rootOpts) setup() error {
	fileConfig, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	o.fileConfig = fileConfig

	level := fileConfig.Log.Level
	if o.logLevel != "" {
		level = o.logLevel
	}
	if err = logging.SetLevel(level); err != nil {
		return err
	}
	o.logger = logging.BuildLogger()

	if o.cpuProfile != "" {
		if err = o.profiler.StartCPUProfiler(o.cpuProfile); err != nil {
			return err
		}
	}
	if o.memProfileDir != "" {
		o.profiler.StartMemoryProfiler(o.memProfileDir)
	}
	return nil
}
