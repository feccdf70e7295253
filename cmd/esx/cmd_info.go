package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vxdy/open-electribe-editor/core"
	"github.com/vxdy/open-electribe-editor/internal/shell"
	. "github.com/vxdy/open-electribe-editor/internal/utils"
)

var cmdInfo = &cobra.Command{
	Use:   "info <image>",
	Short: "Show the image layout and sample usage",
	Args:  cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		Check(shell.PrintInfo(os.Stdout, openImage(args[0])))
	},
}

var cmdList = &cobra.Command{
	Use:   "list <image>",
	Short: "List sample slots",
	Args:  cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		Check(shell.PrintSamples(os.Stdout, openImage(args[0]), flagList.All))
	},
}

var cmdNew = &cobra.Command{
	Use:   "new <image>",
	Short: "Create an empty image",
	Args:  cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		if PathExists(args[0]) && !flagNew.Force {
			Fatalf("%s already exists, use --force to overwrite it", args[0])
		}

		c, err := core.Open(core.Blank(), core.WithLogger(logger))
		Check(err)
		saveImage(c, args[0])
	},
}

var flagList struct {
	All bool
}

var flagNew struct {
	Force bool
}

func init() {
	cmdList.Flags().BoolVarP(&flagList.All, "all", "a", false, "Include empty slots")
	cmdNew.Flags().BoolVarP(&flagNew.Force, "force", "f", false, "Overwrite an existing file")

	cmdMain.AddCommand(cmdInfo, cmdList, cmdNew)
}
