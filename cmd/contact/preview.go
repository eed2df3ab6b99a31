package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/bimkit/contact/render"
)

var (
	previewOut    string
	previewWidth  int
	previewHeight int
)

var previewCmd = &cobra.Command{
	Use:   "preview <file>...",
	Short: "Render an image of the scene with its connections highlighted",
	Long: `Preview runs the same analysis as the analyze command and renders the
scene to a PNG, elements muted and connection geometry highlighted.`,
	Args: cobra.MinimumNArgs(2),
	RunE: runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)

	previewCmd.Flags().StringVarP(&previewOut, "out", "o", "preview.png", "output PNG path")
	previewCmd.Flags().IntVar(&previewWidth, "width", 1600, "image width in pixels")
	previewCmd.Flags().IntVar(&previewHeight, "height", 1200, "image height in pixels")
}

func runPreview(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	elems, _, err := loadScene(args)
	if err != nil {
		return err
	}
	set, err := runPass(ctx, elems)
	if err != nil {
		return err
	}
	if err := render.Snapshot(previewOut, elems, set, previewWidth, previewHeight); err != nil {
		return err
	}
	fmt.Printf("%d connection(s), wrote %s\n", set.Len(), previewOut)
	return nil
}
