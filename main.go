package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/chrisuehlinger/vibecraft/component"
	"github.com/chrisuehlinger/vibecraft/script"
	"github.com/chrisuehlinger/vibecraft/stage"
	"github.com/chrisuehlinger/vibecraft/ui"
)

func main() {
	width := flag.Int("width", 640, "stage width in pixels")
	height := flag.Int("height", 480, "stage height in pixels")
	scriptPath := flag.String("script", "", "JavaScript file to run against the stage")
	headless := flag.Bool("headless", false, "step the stage without opening a window")
	flag.Parse()

	s := stage.New(*width, *height)

	if *scriptPath != "" {
		if err := runScript(s, *scriptPath); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	} else {
		demo(s)
	}

	if *headless {
		fmt.Println("Running in headless mode...")
		s.Step()
		return
	}

	ui.NewWindow("Vibecraft", s).Run()
}

// runScript executes a game script with the stage bound as a global.
func runScript(s *stage.Stage, path string) error {
	code, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading script: %w", err)
	}

	r := script.NewRuntime()
	script.NewStageBinder(r).BindStage(s)
	if _, err := r.Execute(string(code)); err != nil {
		return err
	}
	return nil
}

// demo populates the stage with a couple of text entities when no script
// is given.
func demo(s *stage.Stage) {
	title := s.Create(&component.TwoD{X: 20, Y: 20, H: 28}, &component.Canvas{}, component.NewText())
	txt, _ := component.TextOf(title)
	txt.SetFontMap(map[string]string{
		component.FontSize:   "28px",
		component.FontWeight: "bold",
	})
	txt.SetTextColor("#ffffff")
	txt.SetText("Vibecraft")

	sub := s.Create(&component.TwoD{X: 20, Y: 60, H: 14}, &component.Canvas{}, component.NewText())
	subTxt, _ := component.TextOf(sub)
	subTxt.SetFont(component.FontSize, "14px")
	subTxt.SetTextColor("#a0a0a0")
	subTxt.SetText("a tiny entity-component playground")
}
