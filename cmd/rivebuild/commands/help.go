package commands

import (
	"io"

	"go.trai.ch/rivebuild/internal/ui/output"
	"go.trai.ch/rivebuild/internal/ui/style"
)

var examples = []style.Example{
	{
		Command:     "rivebuild -j10 --platform=macosx --target=debug",
		Description: "builds debug for MacOS universal using 10 cores",
	},
	{
		Command:     "rivebuild --platform=macosx --arch=arm64 --target=release",
		Description: "builds release for M1 MacOS",
	},
}

// description renders the help text header for w.
func description(w io.Writer) string {
	styles := style.NewHelpStyles(output.NewRenderer(w), style.DefaultPalette())
	return styles.Description([]string{
		"This script builds Rive Extension and its dependencies.",
		"To see a full list of additional options provided by scons, run " + styles.Command.Render("scons --help"),
	}, examples)
}
