// Tweenplot prints easing curves in the terminal. It plays a 0→1 float tween
// through a tweens.Driver frame by frame and plots the written values, so
// loop types and directions from a preset file show up exactly as a game
// would see them.
//
//	tweenplot -formula OutBounce
//	tweenplot -presets presets.toml -preset pulse
//	tweenplot -list
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/phanxgames/tweens"
)

var (
	frameStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	curveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	axisStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

func main() {
	formula := flag.String("formula", "Linear", "formula name")
	presetFile := flag.String("presets", "", "TOML preset file")
	preset := flag.String("preset", "", "preset name from -presets")
	width := flag.Int("width", 60, "plot width in columns")
	height := flag.Int("height", 16, "plot height in rows")
	list := flag.Bool("list", false, "list formulas and presets, then exit")
	flag.Parse()
	if *width < 2 || *height < 2 {
		log.Fatal("width and height must be at least 2")
	}

	var presets *tweens.Presets
	if *presetFile != "" {
		var err error
		if presets, err = tweens.LoadPresets(*presetFile); err != nil {
			log.Fatal(err)
		}
	}

	if *list {
		for _, f := range tweens.Formulas() {
			fmt.Println(f.Name())
		}
		if presets != nil {
			for _, name := range presets.Names() {
				fmt.Println(titleStyle.Render("preset " + name))
			}
		}
		return
	}

	cfg, title, err := resolve(*formula, presets, *preset)
	if err != nil {
		log.Fatal(err)
	}
	samples, err := sample(cfg, *width)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(frameStyle.Render(titleStyle.Render(title) + "\n" + plot(samples, *height)))
}

func resolve(formula string, presets *tweens.Presets, preset string) (tweens.Config, string, error) {
	if preset != "" {
		if presets == nil {
			return tweens.Config{}, "", fmt.Errorf("-preset needs -presets")
		}
		cfg, ok := presets.Config(preset)
		if !ok {
			return tweens.Config{}, "", fmt.Errorf("unknown preset %q", preset)
		}
		if cfg.Loops == tweens.Infinite {
			// Plot a few loops of an endless preset.
			cfg.Loops = 3
		}
		return cfg, fmt.Sprintf("%s (%s, %d loops, %s, %s)",
			preset, cfg.Formula, cfg.Loops, cfg.LoopType, cfg.Direction), nil
	}
	f, ok := tweens.FormulaByName(formula)
	if !ok {
		return tweens.Config{}, "", fmt.Errorf("unknown formula %q", formula)
	}
	return tweens.Config{Formula: f}, f.Name(), nil
}

// sample plays a one second per loop tween and records one value per column.
func sample(cfg tweens.Config, columns int) ([]float64, error) {
	var value float64
	tw, err := tweens.NewFloatTween("plot", 0, 1, func(v float64) { value = v }, 1, cfg)
	if err != nil {
		return nil, err
	}
	d := tweens.NewDriver()
	if err := d.Add(tw); err != nil {
		return nil, err
	}
	tw.Reset().Play()

	dt := tw.TotalDuration() / float64(columns-1)
	out := make([]float64, 0, columns)
	out = append(out, value)
	for len(out) < columns {
		if err := d.Tick(dt); err != nil {
			return nil, err
		}
		out = append(out, value)
	}
	return out, nil
}

func plot(samples []float64, rows int) string {
	lo, hi := 0.0, 1.0
	for _, v := range samples {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	grid := make([][]rune, rows)
	for r := range grid {
		grid[r] = []rune(strings.Repeat(" ", len(samples)))
	}
	for c, v := range samples {
		r := int(math.Round((hi - v) / (hi - lo) * float64(rows-1)))
		grid[r][c] = '•'
	}

	var b strings.Builder
	for r, line := range grid {
		label := "     "
		switch r {
		case 0:
			label = fmt.Sprintf("%5.2f", hi)
		case rows - 1:
			label = fmt.Sprintf("%5.2f", lo)
		}
		b.WriteString(axisStyle.Render(label+" │"))
		b.WriteString(curveStyle.Render(string(line)))
		if r < rows-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
