package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"video-transform-preview/internal/config"
	"video-transform-preview/internal/input"
	"video-transform-preview/internal/media"
	"video-transform-preview/internal/transform"
	"video-transform-preview/internal/utils"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type flags struct {
	configPath string
	primary    string
	secondary  string
	pointer    string
	assets     string
	fps        int
	debug      bool
	raylibInfo bool
}

func main() {
	if err := rootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCommand() *cobra.Command {
	return newRootCommand(run)
}

// newRootCommand builds the CLI around start, which receives the merged and
// validated config.
func newRootCommand(start func(context.Context, config.Config) error) *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:           "transform-preview",
		Short:         "Preview position, scale, skew and rotation transforms on a looping video",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, f)
			if err != nil {
				utils.Error("%v", err)
				return err
			}
			if err := start(cmd.Context(), cfg); err != nil {
				utils.Error("%v", err)
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&f.configPath, "config", "c", "", "path to a .yaml or .toml config file")
	cmd.Flags().StringVar(&f.primary, "primary", "", "primary (transformed) video: .gif, .tex, image or frame directory")
	cmd.Flags().StringVar(&f.secondary, "secondary", "", "secondary (background) video")
	cmd.Flags().StringVar(&f.pointer, "pointer", "", "pointer source: raylib or x11")
	cmd.Flags().StringVar(&f.assets, "assets", "", "extra directory searched for videos")
	cmd.Flags().IntVar(&f.fps, "fps", 0, "target frames per second")
	cmd.Flags().BoolVar(&f.debug, "debug", false, "enable verbose debug logging")
	cmd.Flags().BoolVar(&f.raylibInfo, "raylib-info", false, "show raylib info logs")

	return cmd
}

// loadConfig reads the config file and applies any flags set on the
// command line over it.
func loadConfig(cmd *cobra.Command, f flags) (config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return cfg, err
	}

	changed := cmd.Flags().Changed
	if changed("primary") {
		cfg.Videos.Primary = f.primary
	}
	if changed("secondary") {
		cfg.Videos.Secondary = f.secondary
	}
	if changed("pointer") {
		cfg.Pointer = f.pointer
	}
	if changed("assets") {
		cfg.Assets = f.assets
	}
	if changed("fps") {
		cfg.Window.FPS = f.fps
	}
	if changed("debug") {
		cfg.Debug = f.debug
	}
	utils.ShowRaylibInfo = f.raylibInfo

	return cfg, cfg.Validate()
}

func run(ctx context.Context, cfg config.Config) error {
	utils.DebugMode = cfg.Debug
	if utils.DebugMode {
		utils.SetLevel(utils.LevelDebug)
	}
	utils.AssetsDir = cfg.Assets

	utils.Info("--- Transform Preview Start ---")

	paths := []string{
		utils.ResolveAssetPath(cfg.Videos.Primary),
		utils.ResolveAssetPath(cfg.Videos.Secondary),
	}
	clips, err := media.OpenAll(ctx, paths, cfg.Videos.FrameRate)
	if err != nil {
		return fmt.Errorf("loading videos: %w", err)
	}

	store := transform.NewStore(cfg.InitialValues())
	store.Subscribe(func(p transform.Param, v float64) {
		utils.Debug("Transform %s = %.3f", p, v)
	})

	rl.SetTraceLogCallback(utils.RaylibLogCallback)
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint | rl.FlagVsyncHint)
	rl.InitWindow(int32(cfg.Window.Width), int32(cfg.Window.Height), cfg.Window.Title)
	defer rl.CloseWindow()

	if !rl.IsWindowReady() {
		return fmt.Errorf("opening %dx%d window failed", cfg.Window.Width, cfg.Window.Height)
	}

	pointer, err := newPointer(cfg.Pointer)
	if err != nil {
		return err
	}
	defer pointer.Close()

	window, err := NewWindow(cfg, store, clips[0], clips[1], pointer)
	if err != nil {
		return err
	}
	defer window.Close()

	utils.Info("Starting render loop...")
	window.Run()
	return nil
}

func newPointer(kind string) (input.Source, error) {
	switch kind {
	case config.PointerX11:
		p, err := input.NewX11Pointer()
		if err != nil {
			return nil, err
		}
		utils.Info("Using X11 global pointer")
		return p, nil
	default:
		return input.NewRaylibPointer(), nil
	}
}
