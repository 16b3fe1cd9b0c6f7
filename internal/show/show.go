package show

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"

	"galadeck/internal/audio"
	"galadeck/internal/cli/render"
	"galadeck/internal/cli/scheme/colours"
	"galadeck/internal/config"
	"galadeck/internal/deck"
	"galadeck/internal/domain/slide"
	"galadeck/internal/presenter"
	"galadeck/internal/storage"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Gala main application structure
type Gala struct {
	cfg      config.Config
	writer   *storage.AsyncWriter
	store    *deck.Store
	registry *deck.AudioRegistry
	player   audio.Player

	in  io.Reader
	out io.Writer

	ctx       context.Context
	Cancel    context.CancelFunc
	closeOnce sync.Once
}

func NewGala(cfg config.Config) (*Gala, error) {
	backend, err := storage.NewBackend(storage.Config{
		Type: cfg.Storage.Type,
		Path: cfg.Storage.Path,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}

	writer := storage.NewAsyncWriter(backend)
	ctx, cancel := context.WithCancel(context.Background())
	return &Gala{
		cfg:      cfg,
		writer:   writer,
		store:    deck.NewStore(writer, slide.DefaultDeck()),
		registry: deck.NewAudioRegistry(writer, cfg.Audio.DefaultSource),
		in:       os.Stdin,
		out:      os.Stdout,
		ctx:      ctx,
		Cancel:   cancel,
	}, nil
}

// Close stops the music and flushes pending writes. Safe to call twice.
func (g *Gala) Close() {
	g.closeOnce.Do(func() {
		g.Cancel()
		if g.player != nil {
			if err := g.player.Close(); err != nil {
				logrus.WithError(err).Debug("Failed to close player")
			}
		}
		if err := g.writer.Close(); err != nil {
			logrus.WithError(err).Warn("Failed to close storage")
		}
	})
}

func (g *Gala) ShowWelcome() {
	fmt.Fprintln(g.out)
	colours.Title.Fprintln(g.out, "🎉 Welcome to GalaDeck! 🎉")
	fmt.Fprintln(g.out)
	colours.Info.Fprintln(g.out, "📚 Available commands:")
	fmt.Fprintln(g.out, "  • galadeck present    - Run the show")
	fmt.Fprintln(g.out, "  • galadeck list       - List every slide")
	fmt.Fprintln(g.out, "  • galadeck edit ID    - Change a slide's text or image")
	fmt.Fprintln(g.out, "  • galadeck audio      - Show or set the closing track")
	fmt.Fprintln(g.out, "  • galadeck scale W H  - Preview the canvas scale for a screen")
	fmt.Fprintln(g.out, "  • galadeck reset      - Forget every edit")
	fmt.Fprintln(g.out)
	colours.Prompt.Fprintln(g.out, "✨ Break a leg! ✨")
}

func (g *Gala) options() presenter.Options {
	return presenter.Options{
		Topology:       g.cfg.Quiz,
		CreditsCue:     g.cfg.Audio.CreditsCue,
		DoubleClick:    g.cfg.Input.DoubleClick,
		CanvasWidth:    g.cfg.Canvas.Width,
		CanvasHeight:   g.cfg.Canvas.Height,
		Margin:         g.cfg.Canvas.Margin,
		ViewportWidth:  g.cfg.View.Width,
		ViewportHeight: g.cfg.View.Height,
	}
}

// Present runs the show at the prompt until 'q', end of input or a signal
func (g *Gala) Present(cmd *cobra.Command, args []string) {
	loop := presenter.NewLoop()

	player, err := audio.NewPlayer(audio.Config{Type: g.cfg.Audio.Engine, Dispatch: loop.Post})
	if err != nil {
		colours.Error.Fprintf(g.out, "❌ Audio unavailable: %v\n", err)
		player = audio.NewMockPlayer(audio.Config{Dispatch: loop.Post})
	}
	g.player = player

	fullscreen := render.NewFullscreen(os.Stdout)
	defer fullscreen.Restore()

	started := make(chan error, 1)
	var con *console
	loop.Post(func() {
		session, err := presenter.NewSession(g.store, g.registry, player, presenter.LoopScheduler{Loop: loop}, g.options())
		if err != nil {
			started <- err
			return
		}

		renderer := render.New(g.out, session)
		if rows, _ := cmd.Flags().GetInt("rows"); rows > 0 {
			renderer.SetRows(rows)
		}
		session.SetMeasurer(renderer)
		session.SetFullscreen(fullscreen)
		session.OnRender(func() {
			renderer.Frame()
			colours.Prompt.Fprint(g.out, "🎤 > ")
		})
		session.OnNotice(func(msg string) {
			colours.Warning.Fprintf(g.out, "⚠️  %s\n", msg)
		})

		con = &console{session: session, out: g.out}
		renderer.Frame()
		colours.Prompt.Fprint(g.out, "🎤 > ")
		started <- nil
	})

	go loop.Run(g.ctx)

	if err := <-started; err != nil {
		colours.Error.Fprintf(g.out, "❌ Cannot start the show: %v\n", err)
		return
	}

	go g.readInput(loop, func(line string) {
		if con.handle(line) {
			con.session.Close()
			g.Cancel()
		}
	})

	<-g.ctx.Done()
	fmt.Fprintln(g.out)
	colours.Warning.Fprintln(g.out, "👋 That's a wrap!")
}

// readInput posts each prompt line to the loop
func (g *Gala) readInput(loop *presenter.Loop, handle func(string)) {
	scanner := bufio.NewScanner(g.in)
	for scanner.Scan() {
		line := scanner.Text()
		select {
		case <-g.ctx.Done():
			return
		default:
			loop.Post(func() { handle(line) })
		}
	}
	if err := scanner.Err(); err != nil {
		logrus.WithError(err).Debug("Input closed")
	}
	g.Cancel()
}

func (g *Gala) ListSlides(cmd *cobra.Command, args []string) {
	d := g.store.Load()

	fmt.Fprintln(g.out)
	colours.Title.Fprintln(g.out, "🎞️  Slides 🎞️")
	fmt.Fprintln(g.out)
	render.List(g.out, d, g.cfg.Quiz)
}

func (g *Gala) EditSlide(cmd *cobra.Command, args []string) {
	id, err := strconv.Atoi(args[0])
	if err != nil {
		colours.Error.Fprintf(g.out, "❌ Slide id must be a number, got %q\n", args[0])
		return
	}

	d := g.store.Load()
	if d.IndexOf(id) < 0 {
		colours.Error.Fprintf(g.out, "❌ Slide with id %d not found!\n", id)
		return
	}

	patch, err := patchFromFlags(cmd)
	if err != nil {
		colours.Error.Fprintf(g.out, "❌ %v\n", err)
		return
	}
	if patch.Empty() {
		colours.Warning.Fprintln(g.out, "🔍 Nothing to change. See 'galadeck edit --help'.")
		return
	}

	d = g.store.UpdateSlide(id, patch)
	colours.Success.Fprintf(g.out, "✅ Updated slide %d: %s\n", id, d[d.IndexOf(id)].Title)
}

func patchFromFlags(cmd *cobra.Command) (slide.Patch, error) {
	var patch slide.Patch
	flags := cmd.Flags()

	for _, name := range []string{"title", "subtitle", "image"} {
		if !flags.Changed(name) {
			continue
		}
		v, _ := flags.GetString(name)
		switch name {
		case "title":
			patch.Title = &v
		case "subtitle":
			patch.Subtitle = &v
		case "image":
			patch.Image = &v
		}
	}

	lines, _ := flags.GetStringArray("line")
	for _, entry := range lines {
		n, text, ok := strings.Cut(entry, "=")
		i, err := strconv.Atoi(strings.TrimSpace(n))
		if !ok || err != nil || i < 1 {
			return patch, fmt.Errorf("line edits look like N=TEXT, got %q", entry)
		}
		if patch.Lines == nil {
			patch.Lines = make(map[int]string)
		}
		patch.Lines[i-1] = text
	}
	return patch, nil
}

func (g *Gala) ShowAudio(cmd *cobra.Command, args []string) {
	colours.Info.Fprintf(g.out, "🎵 Closing track: %s\n", g.registry.Load())
	colours.Muted.Fprintf(g.out, "   cued at %s on the credits slide\n", g.cfg.Audio.CreditsCue)
}

func (g *Gala) SetAudio(cmd *cobra.Command, args []string) {
	g.registry.Load()
	g.registry.SetSource(args[0])
	colours.Success.Fprintf(g.out, "✅ Closing track set to %s\n", g.registry.Source())
}

func (g *Gala) Reset(cmd *cobra.Command, args []string) {
	g.store.Reset()
	source := g.registry.Reset()
	colours.Success.Fprintln(g.out, "✅ Slides restored to the built-in show")
	colours.Info.Fprintf(g.out, "🎵 Closing track back to %s\n", source)
}

func (g *Gala) PreviewScale(cmd *cobra.Command, args []string) {
	w, errW := strconv.ParseFloat(args[0], 64)
	h, errH := strconv.ParseFloat(args[1], 64)
	if errW != nil || errH != nil {
		colours.Error.Fprintln(g.out, "❌ Width and height must be numbers")
		return
	}

	c := g.cfg.Canvas
	scale := presenter.ComputeScale(w, h, c.Width, c.Height, c.Margin)
	colours.Info.Fprintf(g.out, "📐 %gx%g canvas on a %gx%g screen: scale %.4f (%gx%g)\n",
		c.Width, c.Height, w, h, scale, c.Width*scale, c.Height*scale)
}
