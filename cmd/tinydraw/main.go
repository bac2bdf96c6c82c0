// Command tinydraw mounts a canvas stack into a simulated page and reports
// where it landed.
//
// The page comes from a host backend (-host, "memory" by default; -hosts
// lists them) and is described by a JSON layout (see memhost.Layout). With
// -out the composited canvas is written as a PNG at logical resolution.
// With -watch
// the layout file is reloaded on every write and the offset is reported
// again, as a browser would after a resize.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image/png"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/muesli/termenv"
	tinydraw "github.com/zeronehost/tiny-draw"
	"github.com/zeronehost/tiny-draw/host"
	"github.com/zeronehost/tiny-draw/host/memhost"
)

const defaultHost = "memory"

// page is a host document the command can lay out and drive.
type page interface {
	host.Document
	AddElement(id, parent string, top, left int) (*memhost.Element, error)
	ApplyLayout(l *memhost.Layout) error
	SetDevicePixelRatio(dpr float64)
	DispatchResize()
}

type config struct {
	host       string
	layout     string
	container  string
	width      int
	height     int
	dpr        float64
	background string
	out        string
	watch      bool
	verbose    bool
}

func main() {
	var cfg config
	var listHosts bool
	flag.StringVar(&cfg.host, "host", defaultHost,
		"document backend (available: "+strings.Join(host.Available(), ", ")+")")
	flag.BoolVar(&listHosts, "hosts", false, "list registered document backends and exit")
	flag.StringVar(&cfg.layout, "layout", "", "page layout JSON file")
	flag.StringVar(&cfg.container, "container", "app", "container element id")
	flag.IntVar(&cfg.width, "width", 300, "logical canvas width")
	flag.IntVar(&cfg.height, "height", 150, "logical canvas height")
	flag.Float64Var(&cfg.dpr, "dpr", 0, "device pixel ratio override")
	flag.StringVar(&cfg.background, "background", "#ffffff", "background color")
	flag.StringVar(&cfg.out, "out", "", "write a PNG snapshot to this file")
	flag.BoolVar(&cfg.watch, "watch", false, "reload the layout when it changes")
	flag.BoolVar(&cfg.verbose, "v", false, "verbose logging")
	flag.Parse()

	level := slog.LevelInfo
	if cfg.verbose {
		level = slog.LevelDebug
	}
	tinydraw.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if listHosts {
		printHosts(os.Stdout)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg, os.Stdout); err != nil {
		log.Fatalf("tinydraw: %v", err)
	}
}

func run(ctx context.Context, cfg config, w io.Writer) error {
	bg, err := tinydraw.ParseHex(cfg.background)
	if err != nil {
		return fmt.Errorf("background: %w", err)
	}

	doc, err := loadDocument(cfg)
	if err != nil {
		return err
	}

	c, err := tinydraw.New(cfg.container, cfg.width, cfg.height,
		tinydraw.WithDocument(doc), tinydraw.WithBackground(bg))
	if err != nil {
		return err
	}
	defer c.Close()

	report(w, c)

	if cfg.out != "" {
		if err := writePNG(cfg.out, c); err != nil {
			return err
		}
	}
	if cfg.watch && cfg.layout != "" {
		return watch(ctx, cfg, doc, c, w)
	}
	return nil
}

// loadDocument opens the page on the configured backend. Without a layout
// file the page holds just the container at the origin.
func loadDocument(cfg config) (page, error) {
	doc, err := openPage(cfg.host)
	if err != nil {
		return nil, err
	}
	if cfg.layout == "" {
		if _, err := doc.AddElement(cfg.container, "", 0, 0); err != nil {
			return nil, err
		}
	} else if err := applyLayoutFile(doc, cfg.layout); err != nil {
		return nil, err
	}
	if cfg.dpr > 0 {
		doc.SetDevicePixelRatio(cfg.dpr)
	}
	return doc, nil
}

func openPage(name string) (page, error) {
	if name == "" {
		name = defaultHost
	}
	doc, err := host.Open(name)
	if err != nil {
		return nil, err
	}
	p, ok := doc.(page)
	if !ok {
		return nil, fmt.Errorf("host %q cannot load layouts", name)
	}
	return p, nil
}

func applyLayoutFile(doc page, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	l, err := memhost.LoadLayout(f)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return doc.ApplyLayout(l)
}

// printHosts lists the registered backends, highest priority first.
func printHosts(w io.Writer) {
	available := make(map[string]bool)
	for _, name := range host.Available() {
		available[name] = true
	}
	for _, name := range host.List() {
		entry, ok := host.Get(name)
		if !ok {
			continue
		}
		state := "unavailable"
		if available[name] {
			state = "available"
		}
		fmt.Fprintf(w, "%-8s priority=%d %s\n", entry.Name, entry.Priority, state)
	}
}

func report(w io.Writer, c *tinydraw.Canvas) {
	p := termenv.ColorProfile()
	swatch := termenv.String("  ").Background(p.FromColor(c.Background()))
	fmt.Fprintf(w, "%s %s offset=%s size=%dx%d dpr=%g\n",
		swatch, c.Background().Hex(), c.Offset(), c.Width(), c.Height(), c.ScaleFactor())
}

func writePNG(path string, c *tinydraw.Canvas) error {
	img, err := c.SnapshotLogical()
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// watch reapplies the layout file on every write, then lets the canvas
// observe a resize. The directory is watched so that saves which replace
// the file keep being seen.
func watch(ctx context.Context, cfg config, doc page, c *tinydraw.Canvas, w io.Writer) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fw.Close()

	if err := fw.Add(filepath.Dir(cfg.layout)); err != nil {
		return err
	}
	target := filepath.Clean(cfg.layout)

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !isLayoutWrite(ev, target) {
				continue
			}
			if err := reload(cfg, doc, c); err != nil {
				tinydraw.Logger().Warn("tinydraw: layout reload failed", "path", ev.Name, "err", err)
				continue
			}
			report(w, c)
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			if errors.Is(err, fsnotify.ErrEventOverflow) {
				tinydraw.Logger().Warn("tinydraw: watch overflow", "err", err)
				continue
			}
			return err
		}
	}
}

// isLayoutWrite reports whether ev left new content at path. A save by
// rename shows up as Create.
func isLayoutWrite(ev fsnotify.Event, path string) bool {
	return filepath.Clean(ev.Name) == path && ev.Op&(fsnotify.Write|fsnotify.Create) != 0
}

func reload(cfg config, doc page, c *tinydraw.Canvas) error {
	before := doc.DevicePixelRatio()
	if err := applyLayoutFile(doc, cfg.layout); err != nil {
		return err
	}
	if cfg.dpr > 0 {
		doc.SetDevicePixelRatio(cfg.dpr)
	}
	doc.DispatchResize()
	if doc.DevicePixelRatio() != before {
		return c.Rescale()
	}
	return nil
}
