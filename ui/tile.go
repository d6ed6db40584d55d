package ui

import (
	"image/color"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/sahib855/8-puzzle/puzzle"
)

const (
	tileSize         = 96
	tileCornerRadius = 10
	tileFontSize     = 28
)

// tapArea is a transparent clickable overlay.
type tapArea struct {
	widget.BaseWidget
	onTap func()
}

func newTapArea(onTap func()) *tapArea {
	t := &tapArea{onTap: onTap}
	t.ExtendBaseWidget(t)
	return t
}

func (t *tapArea) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(color.NRGBA{0, 0, 0, 0})
	return widget.NewSimpleRenderer(rect)
}

func (t *tapArea) Tapped(*fyne.PointEvent) {
	if t.onTap != nil {
		t.onTap()
	}
}

func (t *tapArea) TappedSecondary(*fyne.PointEvent) {}
func (t *tapArea) MinSize() fyne.Size               { return fyne.NewSize(tileSize, tileSize) }

// tile is one board cell: rounded rectangle plus centered number.
type tile struct {
	background *canvas.Rectangle
	label      *canvas.Text
	wrapper    *fyne.Container
}

func newTile(onTap func()) *tile {
	bg := canvas.NewRectangle(mustHex(colorTileHex))
	bg.CornerRadius = tileCornerRadius
	lbl := canvas.NewText("", mustHex(colorFgDarkHex))
	lbl.TextStyle = fyne.TextStyle{Bold: true}
	lbl.TextSize = tileFontSize

	center := container.NewCenter(lbl)
	tapper := newTapArea(onTap)
	wrap := container.NewMax(bg, center, tapper)

	return &tile{
		background: bg,
		label:      lbl,
		wrapper:    wrap,
	}
}

func (t *tile) setNumber(n int) {
	if n == puzzle.BlankTile {
		t.label.Text = ""
		t.background.FillColor = mustHex(colorTileBlankHex)
	} else {
		t.label.Text = strconv.Itoa(n)
		t.background.FillColor = mustHex(colorTileHex)
	}
	t.label.Refresh()
	t.background.Refresh()
}
