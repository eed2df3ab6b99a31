package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

var watchDebounce time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch <file>...",
	Short: "Re-run the analysis whenever a mesh file changes",
	Long: `Watch analyzes the given files once, then keeps watching them and
re-runs the analysis after every change. Useful while iterating on a
model in an external editor. Stop with Ctrl-C.`,
	Args: cobra.MinimumNArgs(2),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 300*time.Millisecond, "delay before re-analyzing after a change")
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	paths := make([]string, len(args))
	for i, arg := range args {
		abs, err := filepath.Abs(arg)
		if err != nil {
			return fmt.Errorf("failed to resolve path %s: %w", arg, err)
		}
		paths[i] = abs
		if err := watcher.Add(abs); err != nil {
			return fmt.Errorf("failed to watch %s: %w", abs, err)
		}
	}

	reanalyze := func() {
		elems, names, err := loadScene(paths)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		set, err := runPass(ctx, elems)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		fmt.Printf("\n[%s]\n", time.Now().Format(time.TimeOnly))
		printConnections(os.Stdout, set, names)
		printStats(os.Stdout, set.Stats)
	}
	reanalyze()

	// Editors fire several write events per save; a debounce timer
	// collapses a burst into one analysis pass.
	var mu sync.Mutex
	var timer *time.Timer
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			mu.Lock()
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(watchDebounce, reanalyze)
			mu.Unlock()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "Watcher error: %v\n", err)
		}
	}
}
