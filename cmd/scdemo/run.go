package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gogpu/swapchain"
	"github.com/gogpu/swapchain/internal/config"
	"github.com/gogpu/swapchain/platform"
)

var (
	frames int
	window string
)

var probeCmd = &cobra.Command{
	Use:   "probe",
	Short: "Report tearing support and the preferred fullscreen mode",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		dev, closeDev, err := openDevice(cfg)
		if err != nil {
			return err
		}
		defer closeDev()

		tearing := swapchain.ProbeTearingSupport(dev.Factory())
		mode := swapchain.PreferredFullscreenModeFor(tearing)
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "backend:    %s\n", cfg.Backend)
		fmt.Fprintf(out, "tearing:    %v\n", tearing)
		fmt.Fprintf(out, "fullscreen: %s\n", mode)
		return nil
	},
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Create a swap chain, present frames and resize it",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("frames") {
			cfg.Frames = frames
		}
		return run(cfg, cmd.OutOrStdout())
	},
}

func init() {
	runCmd.Flags().IntVar(&frames, "frames", 0, "frames to present (overrides config)")
	runCmd.Flags().StringVar(&window, "window", "1", "native window handle to present to")
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	if backend != "" {
		cfg.Backend = backend
	}
	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	swapchain.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	return cfg, nil
}

func openDevice(cfg *config.Config) (platform.Device, func(), error) {
	b, err := platform.Open(cfg.Backend)
	if err != nil {
		return nil, nil, fmt.Errorf("backend %q: %w (available: %v)", cfg.Backend, err, platform.Available())
	}
	dev, err := b.OpenDevice(platform.DeviceOptions{Label: "scdemo"})
	if err != nil {
		return nil, nil, fmt.Errorf("open device: %w", err)
	}
	closeDev := func() {
		if c, ok := dev.(io.Closer); ok {
			_ = c.Close()
		}
	}
	return dev, closeDev, nil
}

func run(cfg *config.Config, out io.Writer) error {
	dims, err := cfg.Dimensions()
	if err != nil {
		return err
	}
	hwnd, err := strconv.ParseUint(window, 0, 64)
	if err != nil {
		return fmt.Errorf("window %q: %w", window, err)
	}

	dev, closeDev, err := openDevice(cfg)
	if err != nil {
		return err
	}
	defer closeDev()

	sc, err := swapchain.Create(dev, platform.Window(hwnd), dims)
	if err != nil {
		return err
	}
	defer sc.Destroy()

	fmt.Fprintf(out, "created %dx%d %s, %d images, color space %s, preferred %s\n",
		dims.Width, dims.Height, dims.Format, sc.ImageCount(), sc.ColorSpace(), sc.PreferredFullscreenMode())

	half := cfg.Frames / 2
	for i := 0; i < half; i++ {
		sc.Present()
	}

	if sc.PreferredFullscreenMode() == swapchain.ExclusiveFullscreen {
		sc.RequestExclusiveFullscreen(true)
	}
	resized := dims
	resized.Width, resized.Height = dims.Width/2, dims.Height/2
	if err := sc.Resize(resized); err != nil {
		return err
	}
	fmt.Fprintf(out, "resized to %dx%d, exclusive fullscreen %v\n",
		resized.Width, resized.Height, sc.ExclusiveFullscreenState())

	for i := half; i < cfg.Frames; i++ {
		sc.Present()
	}
	fmt.Fprintf(out, "presented %d frames, next image %d\n", cfg.Frames, sc.CurrentImageIndex())
	return nil
}
