//go:build cgo

package preview

import (
	"context"
	"fmt"
	"image"

	"raytray/canvas"

	"github.com/hajimehoshi/ebiten/v2"
)

// Run opens the window and blocks until it is closed, ctx is cancelled, or
// step fails. step runs on the window's update loop, the same goroutine
// that reads the canvas, so no locking is needed.
func Run(ctx context.Context, c *canvas.Canvas, step StepFunc, opts Options) error {
	if c.Width() == 0 || c.Height() == 0 {
		return fmt.Errorf("preview: %w: %dx%d", canvas.ErrInvalidSize, c.Width(), c.Height())
	}
	scale := frameScale(c.Width(), c.Height(), opts.Scale)
	opts = opts.withDefaults()

	g := &game{ctx: ctx, c: c, step: step, scale: scale, dirty: true}
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowSize(c.Width()*scale, c.Height()*scale)
	ebiten.SetTPS(opts.TPS)
	return ebiten.RunGame(g)
}

type game struct {
	ctx   context.Context
	c     *canvas.Canvas
	step  StepFunc
	done  bool
	scale int
	dirty bool
	img   *image.RGBA
	frame *ebiten.Image
}

func (g *game) Update() error {
	if err := g.ctx.Err(); err != nil {
		return err
	}
	if g.done || g.step == nil {
		return nil
	}
	done, err := g.step()
	if err != nil {
		return err
	}
	g.done = done
	g.dirty = true
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.frame == nil {
		g.img = image.NewRGBA(image.Rect(0, 0, g.c.Width()*g.scale, g.c.Height()*g.scale))
		g.frame = ebiten.NewImage(g.img.Rect.Dx(), g.img.Rect.Dy())
	}
	if g.dirty {
		renderFrame(g.img, g.c)
		g.frame.WritePixels(g.img.Pix)
		g.dirty = false
	}
	screen.DrawImage(g.frame, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.c.Width() * g.scale, g.c.Height() * g.scale
}
