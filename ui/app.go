// Package ui is the fyne front-end: a clickable board over the puzzle
// search core.
package ui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/sahib855/8-puzzle/internal/render"
	"github.com/sahib855/8-puzzle/puzzle"
)

const (
	windowTitle  = "8-Puzzle (A* / Manhattan)"
	windowWidth  = 420
	windowHeight = 640
	labelTitle   = "8-Puzzle • A* with Manhattan distance"

	statusReadyMessage = "Set up your puzzle or click Shuffle."
	statusResetMessage = "Board reset to the goal."
	statusSetMessage   = "Board set. Click Solve."
	statusSolvingMsg   = "Solving..."
	msgShuffledFmt     = "Shuffled with %d valid moves."
	msgSolvedFmt       = "Solved in %d moves • Explored %d nodes • %s"
	msgStepFmt         = "Step %d / %d"

	buttonSetText     = "Set"
	buttonShuffleText = "Shuffle"
	buttonSolveText   = "Solve"
	buttonResetText   = "Reset"

	inputPlaceholder = "1,2,3,7,4,5,0,8,6"

	shuffleSteps = 100

	// One animation frame per solution step.
	animateFrame = 400 * time.Millisecond
)

var (
	errUnsolvable = errors.New("this puzzle configuration is unsolvable")
	errNoSolution = errors.New("search exhausted without reaching the goal")
)

type puzzleUI struct {
	ctx    context.Context
	window fyne.Window

	tiles        [puzzle.BoardLen]*tile
	currentState puzzle.State
	goal         puzzle.State

	inputEntry  *widget.Entry
	statusLabel *widget.Label

	// busy is true while a solve or animation is running; input and
	// controls are frozen for the duration.
	busy       bool
	animCancel chan struct{}

	btnSet     *widget.Button
	btnShuffle *widget.Button
	btnSolve   *widget.Button
	btnReset   *widget.Button
}

// Run opens the window and blocks until it is closed.
func Run(ctx context.Context) {
	a := app.New()
	a.Settings().SetTheme(sleekTheme{})

	w := a.NewWindow(windowTitle)
	w.Resize(fyne.NewSize(windowWidth, windowHeight))

	ui := &puzzleUI{
		ctx:          ctx,
		window:       w,
		currentState: puzzle.Goal(),
		goal:         puzzle.Goal(),
		statusLabel:  widget.NewLabel(statusReadyMessage),
	}

	ui.inputEntry = widget.NewEntry()
	ui.inputEntry.SetPlaceHolder(inputPlaceholder)
	ui.inputEntry.SetText(render.Line(ui.currentState))

	grid := ui.buildGrid()

	ui.btnSet = widget.NewButton(buttonSetText, func() { ui.setFromInput() })
	ui.btnShuffle = widget.NewButton(buttonShuffleText, func() { ui.shuffle() })
	ui.btnSolve = widget.NewButton(buttonSolveText, func() { ui.solveAnimated() })
	ui.btnReset = widget.NewButton(buttonResetText, func() { ui.reset() })

	controls := widget.NewCard("Controls", "",
		container.NewVBox(
			container.NewBorder(nil, nil, nil, ui.btnSet, ui.inputEntry),
			widget.NewSeparator(),
			container.NewHBox(ui.btnShuffle, ui.btnSolve, ui.btnReset),
		),
	)

	titleText := canvas.NewText(labelTitle, mustHex(colorFgDarkHex))
	titleText.TextStyle = fyne.TextStyle{Bold: true}
	titleText.Alignment = fyne.TextAlignCenter
	titleBar := container.NewPadded(container.NewCenter(titleText))

	root := container.NewBorder(
		titleBar,
		ui.statusLabel,
		nil,
		nil,
		container.NewVBox(container.NewCenter(grid), controls),
	)

	w.SetContent(container.NewPadded(root))
	ui.paint(ui.currentState)
	w.ShowAndRun()
}

// Actions

func (ui *puzzleUI) setFromInput() {
	if ui.busy {
		return
	}
	state, err := puzzle.Parse(ui.inputEntry.Text)
	if err != nil {
		dialog.ShowError(err, ui.window)
		return
	}
	ui.setState(state)
	ui.statusLabel.SetText(statusSetMessage)
}

func (ui *puzzleUI) shuffle() {
	if ui.busy {
		return
	}
	state, err := puzzle.Shuffle(shuffleSteps, nil)
	if err != nil {
		dialog.ShowError(err, ui.window)
		return
	}
	ui.setState(state)
	ui.statusLabel.SetText(fmt.Sprintf(msgShuffledFmt, shuffleSteps))
}

func (ui *puzzleUI) reset() {
	ui.stopAnimation()
	ui.setState(ui.goal)
	ui.statusLabel.SetText(statusResetMessage)
}

// solveAnimated hands the board to the solver goroutine, then plays the
// returned path one frame at a time.
func (ui *puzzleUI) solveAnimated() {
	if ui.busy {
		return
	}
	ui.setBusy(true)
	ui.statusLabel.SetText(statusSolvingMsg)
	ui.animCancel = make(chan struct{})

	outcomes := puzzle.SolveAsync(ui.ctx, ui.currentState, ui.goal)
	go func() {
		outcome := <-outcomes
		if outcome.Err != nil {
			ui.finishWithError(outcome.Err)
			return
		}
		switch outcome.Result.Status {
		case puzzle.StatusUnsolvable:
			ui.finishWithError(errUnsolvable)
			return
		case puzzle.StatusNoSolutionFound:
			ui.finishWithError(errNoSolution)
			return
		}
		ui.animate(outcome.Result)
	}()
}

func (ui *puzzleUI) animate(result puzzle.Result) {
	ticker := time.NewTicker(animateFrame)
	defer ticker.Stop()

	total := len(result.Path) - 1
	for step := 0; step < len(result.Path); step++ {
		select {
		case <-ui.animCancel:
			return
		case <-ticker.C:
			ui.paint(result.Path[step])
			ui.statusLabel.SetText(fmt.Sprintf(msgStepFmt, step, total))
		}
	}

	ui.currentState = result.Path[total]
	ui.inputEntry.SetText(render.Line(ui.currentState))
	ui.statusLabel.SetText(fmt.Sprintf(msgSolvedFmt,
		result.MoveCount, result.Explored, result.Elapsed.Round(time.Millisecond)))
	ui.setBusy(false)
}

func (ui *puzzleUI) finishWithError(err error) {
	dialog.ShowError(err, ui.window)
	ui.statusLabel.SetText(statusReadyMessage)
	ui.setBusy(false)
}

// tileTapped slides the tapped tile into the blank when they are
// adjacent, matching a physical puzzle.
func (ui *puzzleUI) tileTapped(index int) {
	if ui.busy {
		return
	}
	blank := ui.currentState.Blank()
	if blank == index {
		return
	}
	blankRow, blankCol := blank/puzzle.GridSize, blank%puzzle.GridSize
	row, col := index/puzzle.GridSize, index%puzzle.GridSize
	if absInt(blankRow-row)+absInt(blankCol-col) != 1 {
		return
	}
	next := ui.currentState
	next[blank], next[index] = next[index], next[blank]
	ui.setState(next)
	ui.statusLabel.SetText(statusSetMessage)
}

// Helpers

func (ui *puzzleUI) setState(state puzzle.State) {
	ui.currentState = state
	ui.inputEntry.SetText(render.Line(state))
	ui.paint(state)
}

func (ui *puzzleUI) stopAnimation() {
	if ui.busy {
		if ui.animCancel != nil {
			close(ui.animCancel)
		}
		ui.animCancel = nil
		ui.setBusy(false)
	}
}

func (ui *puzzleUI) setBusy(busy bool) {
	ui.busy = busy
	if busy {
		ui.btnSet.Disable()
		ui.btnShuffle.Disable()
		ui.btnSolve.Disable()
		ui.btnReset.Disable()
		ui.inputEntry.Disable()
	} else {
		ui.btnSet.Enable()
		ui.btnShuffle.Enable()
		ui.btnSolve.Enable()
		ui.btnReset.Enable()
		ui.inputEntry.Enable()
	}
}

func (ui *puzzleUI) buildGrid() *fyne.Container {
	objects := make([]fyne.CanvasObject, 0, puzzle.BoardLen)
	for i := 0; i < puzzle.BoardLen; i++ {
		index := i
		t := newTile(func() { ui.tileTapped(index) })
		ui.tiles[i] = t
		objects = append(objects, t.wrapper)
	}
	return container.NewGridWithColumns(puzzle.GridSize, objects...)
}

func (ui *puzzleUI) paint(state puzzle.State) {
	for i, v := range state {
		ui.tiles[i].setNumber(v)
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
