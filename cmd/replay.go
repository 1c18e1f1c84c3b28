package cmd

import (
	"fmt"
	"image"
	"io"

	"github.com/bluekompass/bluekompass/internal/editor"
	"github.com/bluekompass/bluekompass/internal/script"
	"github.com/bluekompass/bluekompass/pkg/export"
	"github.com/bluekompass/bluekompass/pkg/imageio"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	scriptPath string
	imagePath  string
	outPath    string
)

var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "Replay recorded input frames without a window",
	Long: `Replay feeds the input frames of a TOML script to the editor and prints the
resulting shapes. With --out the shapes are drawn over the image (or a blank
canvas of the script's size) and saved as PNG.`,
	Args: cobra.NoArgs,
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().StringVarP(&scriptPath, "script", "s", "", "path to the replay script")
	replayCmd.Flags().StringVarP(&imagePath, "image", "i", "", "background image for the export")
	replayCmd.Flags().StringVarP(&outPath, "out", "o", "", "write the annotated image to this PNG file")
	replayCmd.MarkFlagRequired("script")
	rootCmd.AddCommand(replayCmd)
}

func runReplay(cmd *cobra.Command, args []string) error {
	s, err := script.Load(scriptPath)
	if err != nil {
		return err
	}

	ed := editor.New(append(cfg.Editor.Options(),
		editor.WithStyle(cfg.Style.ShapeStyle()),
		editor.WithLogger(logger),
	)...)

	result, err := script.Run(ed, s, logger)
	if err != nil {
		return err
	}
	printShapes(cmd.OutOrStdout(), ed, result)

	if outPath == "" {
		return nil
	}

	var base image.Image
	if imagePath != "" {
		base, err = imageio.Load(imagePath)
	} else {
		base, err = export.Blank(s.Canvas.Width, s.Canvas.Height)
	}
	if err != nil {
		return err
	}
	if err := export.SavePNG(outPath, base, ed.Draw()); err != nil {
		return err
	}
	logger.WithFields(logrus.Fields{"file": outPath, "shapes": ed.Len()}).Info("snapshot exported")
	return nil
}

func printShapes(w io.Writer, ed *editor.Editor, result script.Result) {
	fmt.Fprintf(w, "Frames: %d\n", result.Frames)
	for _, action := range []editor.Action{
		editor.ActionShapeBuilt,
		editor.ActionRejected,
		editor.ActionSelected,
		editor.ActionDragged,
		editor.ActionDeleted,
	} {
		if n := result.Actions[action]; n > 0 {
			fmt.Fprintf(w, "  %s: %d\n", action, n)
		}
	}

	fmt.Fprintf(w, "\nShapes: %d\n", ed.Len())
	shapeIndex, _, hasSelection := ed.Selection()
	for i, s := range ed.Shapes() {
		marker := " "
		if hasSelection && i == shapeIndex {
			marker = "*"
		}
		fmt.Fprintf(w, "%s %d: %s\n", marker, i, s)
	}
}
