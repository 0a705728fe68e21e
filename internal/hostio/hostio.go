// Package hostio is the External IO collaborator named in spec.md §6:
// an ebiten.Game that presents the VIC-II's frame, scans the host
// keyboard into an 8x8 matrix, and queues synthetic keystrokes for the
// Loader, grounded on the teacher's internal/ui/ui.go and on
// emudore's io.cpp.
package hostio

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/nevisdale/c64core/internal/c64"
)

const (
	frameWidth  = c64Width
	frameHeight = c64Height
	windowScale = 2

	c64Width  = 320 + 2*42
	c64Height = 298 - 14

	// typeDelayCycles matches emudore's io.cpp fixed inter-keystroke
	// delay: the KERNAL's keyboard scan only samples every so many
	// cycles, so injecting characters back-to-back drops most of them.
	typeDelayCycles = 18000
)

type keyBinding struct {
	key      ebiten.Key
	row, col uint8
}

// keymap is a small, representative subset of the C64 keyboard matrix
// (spec.md's loader/typing scenarios only exercise letters, digits,
// RETURN and space), grounded on emudore/io.cpp's keymap_ table.
var keymap = []keyBinding{
	{ebiten.KeyEnter, 0, 1},
	{ebiten.KeySpace, 7, 4},
	{ebiten.KeyA, 1, 2}, {ebiten.KeyB, 3, 4}, {ebiten.KeyC, 2, 4},
	{ebiten.KeyD, 2, 2}, {ebiten.KeyE, 1, 6}, {ebiten.KeyF, 2, 5},
	{ebiten.KeyG, 3, 2}, {ebiten.KeyH, 3, 5}, {ebiten.KeyI, 4, 1},
	{ebiten.KeyJ, 4, 2}, {ebiten.KeyK, 4, 5}, {ebiten.KeyL, 5, 2},
	{ebiten.KeyM, 4, 4}, {ebiten.KeyN, 4, 7}, {ebiten.KeyO, 4, 6},
	{ebiten.KeyP, 5, 1}, {ebiten.KeyQ, 7, 6}, {ebiten.KeyR, 2, 1},
	{ebiten.KeyS, 1, 5}, {ebiten.KeyT, 2, 6}, {ebiten.KeyU, 3, 6},
	{ebiten.KeyV, 3, 7}, {ebiten.KeyW, 1, 1}, {ebiten.KeyX, 2, 7},
	{ebiten.KeyY, 3, 1}, {ebiten.KeyZ, 1, 4},
	{ebiten.Key0, 4, 3}, {ebiten.Key1, 7, 0}, {ebiten.Key2, 7, 3},
	{ebiten.Key3, 1, 0}, {ebiten.Key4, 1, 3}, {ebiten.Key5, 2, 0},
	{ebiten.Key6, 2, 3}, {ebiten.Key7, 3, 0}, {ebiten.Key8, 3, 3},
	{ebiten.Key9, 4, 0},
}

// charToBinding maps injected ASCII characters, from BASIC listings or
// "RUN\n", back onto the same matrix positions.
var charToBinding = map[byte]keyBinding{
	'\n': {row: 0, col: 1},
	' ':  {row: 7, col: 4},
}

func init() {
	for c := byte('A'); c <= 'Z'; c++ {
		for _, b := range keymap {
			if b.key == ebiten.Key(uint(ebiten.KeyA)+uint(c-'A')) {
				charToBinding[c] = b
				charToBinding[c+('a'-'A')] = b
			}
		}
	}
	for c := byte('0'); c <= '9'; c++ {
		for _, b := range keymap {
			if b.key == ebiten.Key(uint(ebiten.Key0)+uint(c-'0')) {
				charToBinding[c] = b
			}
		}
	}
}

// HostIO implements c64.HostIO (FrameSink + KeyboardMatrix + KeyTyper
// + Tick) as an ebiten.Game. Draw/Update run on ebiten's own loop;
// Machine.Tick is pumped from Update once per host frame until the VIC
// reports a new frame, mirroring the teacher's ui.Update calling
// bus.Tic() every tick.
type HostIO struct {
	machine *c64.Machine

	back, front *image.RGBA

	realPressed [8]uint8 // host keyboard state, sampled once per Update()
	pressed     [8]uint8 // realPressed with the active synthetic key OR'd in

	queue          []keyBinding // pending synthetic keystrokes, in order
	activeKey      *keyBinding  // currently held-down synthetic key, if any
	activeDeadline uint64       // cycle count at which activeKey releases

	quit bool
}

func New() *HostIO {
	return &HostIO{
		back:  image.NewRGBA(image.Rect(0, 0, frameWidth, frameHeight)),
		front: image.NewRGBA(image.Rect(0, 0, frameWidth, frameHeight)),
	}
}

// Attach wires the Machine this HostIO drives, resolving the
// construction-order cycle: Machine needs a HostIO to be built, and
// this HostIO needs the Machine to pump ticks from ebiten's loop.
func (h *HostIO) Attach(m *c64.Machine) { h.machine = m }

// UpdatePixel implements c64.FrameSink.
func (h *HostIO) UpdatePixel(x, y int, colorIndex uint8) {
	h.setPixel(x, y, colorIndex)
}

// DrawRect implements c64.FrameSink: n pixels starting at (x, y),
// used by the VIC for full-width border rows.
func (h *HostIO) DrawRect(x, y, n int, colorIndex uint8) {
	for i := 0; i < n; i++ {
		h.setPixel(x+i, y, colorIndex)
	}
}

func (h *HostIO) setPixel(x, y int, colorIndex uint8) {
	if x < 0 || y < 0 || x >= frameWidth || y >= frameHeight {
		return
	}
	argb := c64.Palette[colorIndex&0xF]
	h.back.SetRGBA(x, y, color.RGBA{
		R: uint8(argb >> 16),
		G: uint8(argb >> 8),
		B: uint8(argb),
		A: 0xFF,
	})
}

// Refresh implements c64.FrameSink: swap the completed frame into
// front so Draw always presents a whole frame, never a partial one.
func (h *HostIO) Refresh() {
	h.front, h.back = h.back, h.front
}

// RowForColumn implements c64.KeyboardMatrix.
func (h *HostIO) RowForColumn(col uint8) uint8 {
	var v uint8 = 0xFF
	for row := uint8(0); row < 8; row++ {
		if h.pressed[row]&(1<<col) != 0 {
			v &^= 1 << row
		}
	}
	return v
}

// TypeCharacter implements c64.KeyTyper: queues one matrix keypress.
// Tick schedules it typeDelayCycles cycles after the machine's current cycle
// count once it becomes the active key, matching emudore's io.cpp
// (`next_key_event_at_ = cpu_->cycles() + kWait`) rather than a
// deadline measured from cycle zero.
func (h *HostIO) TypeCharacter(ch byte) {
	b, ok := charToBinding[ch]
	if !ok {
		return
	}
	h.queue = append(h.queue, b)
}

// Tick implements c64.HostIO: advances the synthetic keystroke queue
// one key at a time and reports whether the host still wants to run.
func (h *HostIO) Tick() bool {
	if h.machine == nil {
		return !h.quit
	}
	cyc := h.machine.CPU.Cycles()

	if h.activeKey != nil && cyc >= h.activeDeadline {
		h.activeKey = nil
	}
	if h.activeKey == nil && len(h.queue) > 0 {
		b := h.queue[0]
		h.queue = h.queue[1:]
		h.activeKey = &b
		h.activeDeadline = cyc + typeDelayCycles
	}

	h.pressed = h.realPressed
	if h.activeKey != nil {
		h.pressed[h.activeKey.row] |= 1 << h.activeKey.col
	}
	return !h.quit
}

// Update implements ebiten.Game: sample the host keyboard, then pump
// the machine until a new frame is produced.
func (h *HostIO) Update() error {
	h.realPressed = [8]uint8{}
	for _, b := range keymap {
		if ebiten.IsKeyPressed(b.key) {
			h.realPressed[b.row] |= 1 << b.col
		}
	}
	h.pressed = h.realPressed
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		h.quit = true
	}
	if h.machine == nil {
		return nil
	}

	startFrame := h.machine.VIC.FrameCount()
	for h.machine.VIC.FrameCount() == startFrame {
		ok, err := h.machine.Tick()
		if err != nil {
			return err
		}
		if !ok {
			return ebiten.Termination
		}
	}
	return nil
}

func (h *HostIO) Draw(screen *ebiten.Image) {
	img := ebiten.NewImageFromImage(h.front)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(windowScale, windowScale)
	screen.DrawImage(img, op)
}

func (h *HostIO) Layout(_, _ int) (int, int) {
	return frameWidth * windowScale, frameHeight * windowScale
}

// Run starts ebiten's game loop, matching the teacher's RunUI helper.
func Run(h *HostIO) error {
	ebiten.SetWindowSize(frameWidth*windowScale, frameHeight*windowScale)
	ebiten.SetWindowTitle("c64core")
	ebiten.SetTPS(50) // PAL frame rate
	return ebiten.RunGame(h)
}
