// Package cli implements the housepriced command line: serve (default),
// predict, check-model and version.
//
// Configuration precedence, lowest first: built-in defaults, config file,
// .env file and environment, command-line flags.
package cli

import (
	"io"

	"github.com/rs/zerolog"

	"housepriced/internal/config"
	"housepriced/internal/logging"
)

// Version is stamped at build time with -ldflags "-X housepriced/internal/cli.Version=...".
var Version = "dev"

// options holds raw flag values before they are merged into config.Config.
type options struct {
	configPath string
	envFile    string
	host       string
	port       int
	modelPath  string
	strict     bool
	logLevel   string
	logFormat  string
	logFile    string
	input      string

	stdin          io.Reader
	stdout, stderr io.Writer
}

// Run executes the command line described by args.
func Run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	opts := &options{stdin: stdin, stdout: stdout, stderr: stderr}
	root := buildRootCmd(opts)
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)
	return root.Execute()
}

// newLogger builds the process logger from cfg, writing to stderr.
func newLogger(cfg config.Config, stderr io.Writer) (zerolog.Logger, io.Closer, error) {
	return logging.New(logging.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		File:   cfg.LogFile,
		Out:    stderr,
	})
}
