package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/exp/slog"

	"github.com/vxdy/open-electribe-editor/core"
	"github.com/vxdy/open-electribe-editor/internal"
	"github.com/vxdy/open-electribe-editor/internal/logging"
	"github.com/vxdy/open-electribe-editor/internal/shell"
	. "github.com/vxdy/open-electribe-editor/internal/utils"
)

var cmdMain = &cobra.Command{
	Use:               "esx",
	Short:             "Inspect and edit KORG Electribe ESX sample card images",
	PersistentPreRun:  setup,
	Run:               printUsageAndExit1,
	CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
}

var flagMain struct {
	Config string
	Output string
}

var v = internal.NewViper()
var config *internal.Config
var logger *slog.Logger

func init() {
	pf := cmdMain.PersistentFlags()
	pf.StringVarP(&flagMain.Config, "config", "c", "", "Config file (toml, yaml or json)")
	pf.String("log-level", internal.DEFAULT_LOG_LEVEL, "Log level (debug, info, warn, error)")
	pf.String("log-format", internal.DEFAULT_LOG_FORMAT, "Log format (text, json)")
	pf.Bool("backup", false, "Copy the image to <image>.bak before overwriting it")
	pf.StringVarP(&flagMain.Output, "output", "o", "", "Write the edited image here instead of over the input")

	Check(v.BindPFlag("log-level", pf.Lookup("log-level")))
	Check(v.BindPFlag("log-format", pf.Lookup("log-format")))
	Check(v.BindPFlag("backup", pf.Lookup("backup")))
}

func main() {
	_ = cmdMain.Execute()
}

func setup(*cobra.Command, []string) {
	var err error
	config, err = internal.LoadConfig(v, flagMain.Config)
	Check(err)

	logger, err = logging.New(os.Stderr, config.LogLevel, config.LogFormat)
	Check(err)
}

func printUsageAndExit1(cmd *cobra.Command, args []string) {
	_ = cmd.Usage()
	os.Exit(1)
}

func openImage(path string) *core.Container {
	c, err := core.OpenFile(path, core.WithLogger(logger))
	Checkf(err, "open %s", path)
	return c
}

// saveImage writes c over the input image, or to --output when given.
func saveImage(c *core.Container, input string) {
	path := input
	if flagMain.Output != "" {
		path = flagMain.Output
	}

	Checkf(shell.SaveImage(c, path, config.Backup), "save %s", path)
	logger.Info("Saved image", "path", path, "size", c.Len())
}
