//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"math"
	"strconv"

	"continent/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Source is what the HUD reads from: the generator's parameter snapshot and
// map dimensions.
type Source interface {
	Name() string
	Size() core.Size
	Parameters() core.ParameterSnapshot
}

var (
	panelColor  = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	titleColor  = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	labelColor  = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	mutedColor  = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	buttonColor = color.RGBA{R: 54, G: 56, B: 64, A: 255}
	buttonOff   = color.RGBA{R: 32, G: 34, B: 40, A: 255}
	buttonText  = color.RGBA{R: 230, G: 230, B: 240, A: 255}
	buttonMuted = color.RGBA{R: 120, G: 120, B: 130, A: 255}
)

var keyHelp = []string{
	"G regenerate  S new seed",
	"V regions  C clear  R reset",
	"M region fill",
	"1 borders  2 roads  3 sites",
}

// HUD renders the parameter panel to the right of the map view.
type HUD struct {
	src        Source
	width      int
	panel      *ebiten.Image
	lastHeight int
	snapshot   core.ParameterSnapshot

	controls     []hudControlState
	intSetter    core.IntParameterSetter
	floatSetter  core.FloatParameterSetter
	panelOffsetX int
	title        string
	summary      string

	pixel *ebiten.Image
}

// NewHUD constructs a HUD for src and the given panel width.
func NewHUD(src Source, width int) *HUD {
	h := &HUD{src: src, width: max(width, 0), title: "Controls"}
	if h.width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	if src != nil && src.Name() != "" {
		h.title = src.Name() + " controls"
	}
	if provider, ok := src.(core.ParameterControlsProvider); ok {
		controls := provider.ParameterControls()
		h.controls = make([]hudControlState, len(controls))
		for i, ctrl := range controls {
			h.controls[i] = hudControlState{control: ctrl, value: "--"}
		}
		h.layoutControls()
	}
	h.intSetter, _ = src.(core.IntParameterSetter)
	h.floatSetter, _ = src.(core.FloatParameterSetter)
	return h
}

// Update refreshes the parameter snapshot and handles clicks on the panel.
// It reports whether a tunable changed.
func (h *HUD) Update(panelOffsetX int) bool {
	if h == nil || h.src == nil {
		return false
	}
	h.panelOffsetX = panelOffsetX
	h.refresh()
	return h.handleInput()
}

// Draw paints the HUD panel at offsetX, to the right of the map.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil || h.width <= 0 || h.src == nil {
		return
	}
	height := h.src.Size().H * max(scale, 1)
	if height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(panelColor)
	h.drawControls()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) refresh() {
	h.snapshot = h.src.Parameters()
	h.summary = ""
	params := map[string]core.Parameter{}
	for _, group := range h.snapshot.Groups {
		if group.Summary != "" && h.summary == "" {
			h.summary = group.Summary
		}
		for _, param := range group.Params {
			params[param.Key] = param
		}
	}
	for i := range h.controls {
		state := &h.controls[i]
		state.hasValue = false
		state.value = "--"
		param, ok := params[state.control.Key]
		if !ok {
			continue
		}
		v, err := strconv.ParseFloat(param.Value, 64)
		if err != nil {
			continue
		}
		state.current = v
		state.hasValue = true
		state.value = formatValue(state.control, v)
	}
}

func (h *HUD) handleInput() bool {
	if len(h.controls) == 0 || !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return false
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return false
	}
	px := mx - h.panelOffsetX
	for i := range h.controls {
		state := &h.controls[i]
		switch {
		case pointInRect(px, my, state.minusRect):
			return h.apply(state, -1)
		case pointInRect(px, my, state.plusRect):
			return h.apply(state, 1)
		}
	}
	return false
}

// step returns the value one click away from the current one, and whether
// that click is allowed.
func (h *HUD) step(state *hudControlState, direction int) (float64, bool) {
	if !state.hasValue || direction == 0 {
		return 0, false
	}
	ctrl := state.control
	size := ctrl.Step
	switch ctrl.Type {
	case core.ParamTypeInt:
		if h.intSetter == nil {
			return 0, false
		}
		size = math.Max(math.Round(size), 1)
	case core.ParamTypeFloat:
		if h.floatSetter == nil {
			return 0, false
		}
		if size <= 0 {
			size = 0.05
		}
	default:
		return 0, false
	}
	target := ctrl.ClampFloat(state.current + float64(direction)*size)
	if math.Abs(target-state.current) < 1e-9 {
		return 0, false
	}
	return target, true
}

func (h *HUD) apply(state *hudControlState, direction int) bool {
	target, ok := h.step(state, direction)
	if !ok {
		return false
	}
	var changed bool
	if state.control.Type == core.ParamTypeInt {
		changed = h.intSetter.SetIntParameter(state.control.Key, int(math.Round(target)))
	} else {
		changed = h.floatSetter.SetFloatParameter(state.control.Key, target)
	}
	if changed {
		state.current = target
		state.value = formatValue(state.control, target)
	}
	return changed
}

func (h *HUD) drawControls() {
	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	text.Draw(h.panel, h.title, face, panelPadding, y, titleColor)
	if h.summary != "" {
		text.Draw(h.panel, h.summary, face, panelPadding, y+summarySpacing, mutedColor)
	}
	if len(h.controls) == 0 {
		text.Draw(h.panel, "No adjustable parameters", face, panelPadding, y+infoSpacing, mutedColor)
		return
	}
	for i := range h.controls {
		state := &h.controls[i]
		baseline := state.top + labelBaseline
		text.Draw(h.panel, state.control.Label, face, panelPadding, baseline, labelColor)

		valueColor := labelColor
		if !state.hasValue {
			valueColor = mutedColor
		}
		valueX := state.minusRect.Min.X - buttonGap - text.BoundString(face, state.value).Dx()
		text.Draw(h.panel, state.value, face, valueX, baseline, valueColor)

		_, minus := h.step(state, -1)
		_, plus := h.step(state, 1)
		h.drawButton(state.minusRect, "-", minus)
		h.drawButton(state.plusRect, "+", plus)
	}

	helpY := controlsTop + len(h.controls)*lineHeight + infoSpacing
	for i, line := range keyHelp {
		text.Draw(h.panel, line, face, panelPadding, helpY+i*helpSpacing, mutedColor)
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	if h.pixel == nil {
		return
	}
	bg, fg := buttonColor, buttonText
	if !enabled {
		bg, fg = buttonOff, buttonMuted
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorM.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

func (h *HUD) layoutControls() {
	if h.width <= 0 {
		return
	}
	for i := range h.controls {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plusRect := image.Rect(h.width-panelPadding-buttonSize, buttonY, h.width-panelPadding, buttonY+buttonSize)
		minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
		h.controls[i].top = top
		h.controls[i].minusRect = minusRect
		h.controls[i].plusRect = plusRect
	}
}

func formatValue(ctrl core.ParameterControl, v float64) string {
	if ctrl.Type == core.ParamTypeInt {
		return strconv.Itoa(int(math.Round(v)))
	}
	precision := 1
	switch step := ctrl.Step; {
	case step <= 0:
		precision = 2
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(v, 'f', precision, 64)
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return image.Pt(x, y).In(rect)
}

type hudControlState struct {
	control core.ParameterControl
	value   string

	current  float64
	hasValue bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	summarySpacing = 16
	infoSpacing    = 36
	helpSpacing    = 16
	controlsTop    = panelPadding + headerBaseline + 30
)
