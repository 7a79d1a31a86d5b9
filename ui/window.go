// Package ui provides the desktop game window. It displays the stage's
// canvas surface in a Fyne window and repaints it on a fixed frame tick.
package ui

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"

	"github.com/chrisuehlinger/vibecraft/stage"
)

// DefaultFrameInterval is the tick rate for the render loop.
const DefaultFrameInterval = time.Second / 30

// Window hosts a stage inside a desktop window.
type Window struct {
	app    fyne.App
	window fyne.Window
	stage  *stage.Stage
	image  *fynecanvas.Image

	interval time.Duration
	stop     chan struct{}
}

// NewWindow creates a window sized to the stage.
func NewWindow(title string, s *stage.Stage) *Window {
	a := app.New()
	w := a.NewWindow(title)

	width, height := s.Size()
	w.Resize(fyne.NewSize(float32(width), float32(height)))

	img := fynecanvas.NewImageFromImage(s.Context().Canvas().ToImage())
	img.FillMode = fynecanvas.ImageFillOriginal
	img.ScaleMode = fynecanvas.ImageScalePixels
	w.SetContent(container.NewStack(img))

	return &Window{
		app:      a,
		window:   w,
		stage:    s,
		image:    img,
		interval: DefaultFrameInterval,
		stop:     make(chan struct{}),
	}
}

// SetFrameInterval overrides the render tick rate. Call before Run.
func (w *Window) SetFrameInterval(d time.Duration) {
	w.interval = d
}

// Run starts the render loop and shows the window. It blocks until the
// window closes.
func (w *Window) Run() {
	go w.loop()
	w.window.ShowAndRun()
}

// Close stops the render loop and closes the window.
func (w *Window) Close() {
	select {
	case <-w.stop:
	default:
		close(w.stop)
	}
	w.window.Close()
}

func (w *Window) loop() {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.stop:
			return
		case <-ticker.C:
			if !w.stage.Step() {
				continue
			}
			img := w.stage.Context().Canvas().ToImage()
			// Widget updates must run on the Fyne main thread
			fyne.Do(func() {
				w.image.Image = img
				w.image.Refresh()
			})
		}
	}
}
