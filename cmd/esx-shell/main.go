package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/vxdy/open-electribe-editor/core"
	"github.com/vxdy/open-electribe-editor/internal"
	"github.com/vxdy/open-electribe-editor/internal/logging"
	"github.com/vxdy/open-electribe-editor/internal/shell"
	. "github.com/vxdy/open-electribe-editor/internal/utils"
)

var cmdMain = &cobra.Command{
	Use:   "esx-shell <image>",
	Short: "Interactive editor for an ESX sample card image",
	Args:  cobra.ExactArgs(1),
	Run:   run,
}

var flagMain struct {
	Config string
}

var v = internal.NewViper()

func init() {
	pf := cmdMain.Flags()
	pf.StringVarP(&flagMain.Config, "config", "c", "", "Config file (toml, yaml or json)")
	pf.String("log-level", internal.DEFAULT_LOG_LEVEL, "Log level (debug, info, warn, error)")
	pf.Bool("backup", false, "Copy the image to <image>.bak before each save")

	Check(v.BindPFlag("log-level", pf.Lookup("log-level")))
	Check(v.BindPFlag("backup", pf.Lookup("backup")))
}

func main() {
	_ = cmdMain.Execute()
}

func run(_ *cobra.Command, args []string) {
	config, err := internal.LoadConfig(v, flagMain.Config)
	Check(err)

	logger, err := logging.New(os.Stderr, config.LogLevel, config.LogFormat)
	Check(err)

	path := args[0]
	c, err := core.OpenFile(path, core.WithLogger(logger))
	Checkf(err, "open %s", path)

	sh := shell.New(c, path, config, os.Stdout, logger)

	fmt.Printf("Opened %s\n", path)
	fmt.Println("Type commands. 'help' for information or 'exit' to quit.")

	reader := bufio.NewReader(os.Stdin)

	for {
		fmt.Print("> ")

		line, err := reader.ReadString('\n')
		if err == io.EOF {
			fmt.Println()
			return
		}
		if err != nil {
			fmt.Println("input error:", err)
			return
		}

		line = strings.TrimSpace(line)

		if line == "" {
			continue
		}

		cmd, cmdArgs, err := SplitStringIntoCommandAndArguments(line)
		if err != nil {
			fmt.Println("parse error:", err)
			continue
		}

		if shell.IsExit(cmd) {
			if sh.Dirty() {
				Warnf("unsaved changes to %s were discarded", path)
			}
			return
		}

		if err := sh.HandleCommand(cmd, cmdArgs); err != nil {
			printError(err)
		}
	}
}

func printError(err error) {
	if IsTerminal(os.Stdout) {
		fmt.Println(color.RedString("error: %v", err))
		return
	}
	fmt.Println("error:", err)
}
