// Command fxdemo spins a wireframe cube rendered entirely with fxmath's
// fixed-point arithmetic: LUT sine/cosine for the rotation, the reciprocal
// table for the perspective divide, and integer points for the screen space.
// No floating point touches the transform path.
package main

import (
	"flag"
	"image/color"
	"log"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gogpu/fxmath"
	"github.com/gogpu/fxmath/debugcon"
)

const camDist = 4 // camera distance from the cube center, in integer units

// cube vertices at +-1.0 fixed-point; edges index into this list.
var verts = [8]fxmath.Vec3{
	fxmath.V3(-fxmath.One, -fxmath.One, -fxmath.One),
	fxmath.V3(+fxmath.One, -fxmath.One, -fxmath.One),
	fxmath.V3(+fxmath.One, +fxmath.One, -fxmath.One),
	fxmath.V3(-fxmath.One, +fxmath.One, -fxmath.One),
	fxmath.V3(-fxmath.One, -fxmath.One, +fxmath.One),
	fxmath.V3(+fxmath.One, -fxmath.One, +fxmath.One),
	fxmath.V3(+fxmath.One, +fxmath.One, +fxmath.One),
	fxmath.V3(-fxmath.One, +fxmath.One, +fxmath.One),
}

var edges = [12][2]int{
	{0, 1}, {1, 2}, {2, 3}, {3, 0},
	{4, 5}, {5, 6}, {6, 7}, {7, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

type game struct {
	w, h       int
	focal      int
	yaw, pitch uint32
}

func (g *game) Update() error {
	g.yaw += 0x0120
	g.pitch += 0x00a0
	if g.yaw&0xFFFF < 0x0120 {
		// One full turn completed; report through the debug channel.
		debugcon.Printf("full turn: yaw=%#06x pitch=%#06x", g.yaw, g.pitch)
		if err := debugcon.Flush(); err != nil {
			return err
		}
	}
	return nil
}

// rotate spins v around the Y axis by yaw, then around the X axis by pitch.
// The .12 table values are narrowed to .8 so the vector operators apply.
func rotate(v fxmath.Vec3, yaw, pitch uint32) fxmath.Vec3 {
	sy := fxmath.Fix(fxmath.Sin(yaw) >> 4)
	cy := fxmath.Fix(fxmath.Cos(yaw) >> 4)
	v = fxmath.V3(
		v.X.Mul(cy)-v.Z.Mul(sy),
		v.Y,
		v.X.Mul(sy)+v.Z.Mul(cy),
	)
	sp := fxmath.Fix(fxmath.Sin(pitch) >> 4)
	cp := fxmath.Fix(fxmath.Cos(pitch) >> 4)
	return fxmath.V3(
		v.X,
		v.Y.Mul(cp)-v.Z.Mul(sp),
		v.Y.Mul(sp)+v.Z.Mul(cp),
	)
}

// project maps a rotated vertex to screen space. The perspective divide is a
// reciprocal table lookup on the integer depth followed by a multiply.
func (g *game) project(v fxmath.Vec3) fxmath.Point {
	depth := fxmath.Clamp(v.Z.Int()+camDist, 1, 257)
	r := fxmath.Recip(uint32(depth)) // 1/depth at .16

	// (component * r) >> 16 keeps the .8 format, now divided by depth.
	xz := int(int64(v.X) * int64(r) >> 16)
	yz := int(int64(v.Y) * int64(r) >> 16)
	return fxmath.Pt(
		g.w/2+xz*g.focal>>fxmath.Shift,
		g.h/2+yz*g.focal>>fxmath.Shift,
	)
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 0x10, G: 0x12, B: 0x1a, A: 0xff})
	bounds := fxmath.RectXYWH(0, 0, g.w, g.h)

	var pts [8]fxmath.Point
	for i, v := range verts {
		pts[i] = g.project(rotate(v, g.yaw, g.pitch))
	}
	for _, e := range edges {
		a, b := pts[e[0]], pts[e[1]]
		if !a.In(bounds) && !b.In(bounds) {
			continue
		}
		vector.StrokeLine(screen,
			float32(a.X), float32(a.Y),
			float32(b.X), float32(b.Y),
			1, color.RGBA{R: 0x7f, G: 0xd7, B: 0xff, A: 0xff}, false)
	}
}

func (g *game) Layout(int, int) (int, int) {
	return g.w, g.h
}

func main() {
	var (
		width   = flag.Int("width", 640, "window width")
		height  = flag.Int("height", 480, "window height")
		verbose = flag.Bool("v", false, "log debug output to stderr")
	)
	flag.Parse()

	if *verbose {
		fxmath.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	g := &game{w: *width, h: *height, focal: *height}
	ebiten.SetWindowSize(g.w, g.h)
	ebiten.SetWindowTitle("fxmath demo")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
