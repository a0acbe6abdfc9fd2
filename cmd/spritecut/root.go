package main

import (
	"fmt"
	"os"

	"github.com/phanxgames/spritecut"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

// flagValues mirrors the command-line overrides. Only flags the user set are
// applied over the other configuration sources.
type flagValues struct {
	config    string
	image     string
	exportDir string
	script    string
	width     int
	height    int
	debug     bool
	clipboard bool
	watch     bool
	exitOnEnd bool
}

var flags flagValues

var rootCmd = &cobra.Command{
	Use:   "spritecut",
	Short: "Cut sprite sheets into named animation tracks.",
	Long: `spritecut opens a sprite sheet in a window. Draw frame rectangles with
the mouse, group them into tracks, preview the tracks animated and export
them as JSON.

Keys: N new track, Tab next track, Delete remove track, Ctrl+Z undo frame,
P play/stop, E export, F12 screenshot, Space+drag pan, wheel zoom.`,
	SilenceUsage: true,
	Args:         cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd.Flags(), flags)
		if err != nil {
			return err
		}
		return runEditor(cfg)
	},
}

func init() {
	bindFlags(rootCmd.Flags(), &flags)
	rootCmd.AddCommand(inspectCmd)
}

func bindFlags(f *pflag.FlagSet, fv *flagValues) {
	f.StringVar(&fv.config, "config", "", "YAML config file")
	f.StringVar(&fv.image, "image", "", "sprite sheet to open")
	f.StringVar(&fv.exportDir, "export-dir", "", "directory for example.txt and exported images")
	f.StringVar(&fv.script, "script", "", "JSON script of editor actions to replay")
	f.IntVar(&fv.width, "width", 0, "window width")
	f.IntVar(&fv.height, "height", 0, "window height")
	f.BoolVar(&fv.debug, "debug", false, "log per-frame timing")
	f.BoolVar(&fv.clipboard, "clipboard", true, "copy exports to the clipboard")
	f.BoolVar(&fv.watch, "watch", false, "reload the image when it changes on disk")
	f.BoolVar(&fv.exitOnEnd, "exit", false, "quit when the script finishes")
}

// resolveConfig layers defaults, the YAML file, the environment and the
// flags that were explicitly set.
func resolveConfig(fs *pflag.FlagSet, fv flagValues) (Config, error) {
	cfg := DefaultConfig()
	if fv.config != "" {
		if err := loadYAML(&cfg, fv.config); err != nil {
			return cfg, err
		}
	}
	loadDotEnv()
	applyEnv(&cfg)

	if fs.Changed("image") {
		cfg.Image = fv.image
	}
	if fs.Changed("export-dir") {
		cfg.ExportDir = fv.exportDir
	}
	if fs.Changed("script") {
		cfg.Script = fv.script
	}
	if fs.Changed("width") {
		cfg.Width = fv.width
	}
	if fs.Changed("height") {
		cfg.Height = fv.height
	}
	if fs.Changed("debug") {
		cfg.Debug = fv.debug
	}
	if fs.Changed("clipboard") {
		cfg.Clipboard = fv.clipboard
	}
	if fs.Changed("watch") {
		cfg.Watch = fv.watch
	}
	if fs.Changed("exit") {
		cfg.ExitOnScriptEnd = fv.exitOnEnd
	}
	return cfg, cfg.Validate()
}

func runEditor(cfg Config) error {
	logger, err := newLogger(cfg.Log, cfg.Debug, nil)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	editor := spritecut.NewEditor(spritecut.EditorOptions{
		ExportDir: cfg.ExportDir,
		Clipboard: cfg.Clipboard,
		Debug:     cfg.Debug,
		Logger:    logger,
	})

	if cfg.Image != "" {
		if err := editor.LoadImageFile(cfg.Image); err != nil {
			// The editor still opens; an image can be dropped onto the window.
			logger.Warn("load image", zap.String("path", cfg.Image), zap.Error(err))
			editor.Logs.Add(err.Error(), true)
		} else if cfg.Watch {
			if err := editor.WatchImage(cfg.Image); err != nil {
				logger.Warn("watch image", zap.Error(err))
			}
		}
	}

	if cfg.Script != "" {
		runner, err := spritecut.LoadScriptFile(cfg.Script)
		if err != nil {
			return err
		}
		runner.ExitOnDone = cfg.ExitOnScriptEnd
		editor.SetScript(runner)
	}

	logger.Info("starting editor",
		zap.String("image", cfg.Image),
		zap.String("export_dir", cfg.ExportDir),
		zap.Int("width", cfg.Width),
		zap.Int("height", cfg.Height))

	return spritecut.Run(editor, spritecut.RunConfig{
		Title:  "spritecut",
		Width:  cfg.Width,
		Height: cfg.Height,
	})
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
