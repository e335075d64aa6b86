package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"fiveline/config"
	"fiveline/debug"
	"fiveline/playback"
	"fiveline/score"
	"fiveline/theme"
	"fiveline/tui"
)

var (
	editScoreName string
	editDebug     bool
)

func init() {
	editCmd.Flags().StringVar(&editScoreName, "score", "", "saved score to open")
	editCmd.Flags().BoolVar(&editDebug, "debug", false, "log to ~/.config/fiveline/debug.log")
	rootCmd.AddCommand(editCmd)
}

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the interactive staff editor",
	Run: func(cmd *cobra.Command, args []string) {
		if editDebug {
			if err := debug.Enable(); err != nil {
				fmt.Fprintf(os.Stderr, "debug log: %v\n", err)
			}
			defer debug.Disable()
		}

		cfg, err := config.Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "config: %v\n", err)
			os.Exit(1)
		}

		ed, err := buildEditor(cfg, editScoreName)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}

		player := playback.NewPlayer(cfg.MIDI.PortName)
		th := theme.New(theme.LoadGPLOr(cfg.UI.Palette, theme.DefaultPalette()))

		m := tui.NewModel(ed, player, th, editScoreName)
		p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
		if _, err := p.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}

		cfg.UI.LastTempo = ed.Tempo()
		cfg.UI.LastScore = editScoreName
		cfg.Save()
	},
}

// buildEditor assembles an editor from config geometry plus an optional
// saved score as the seed collection.
func buildEditor(cfg *config.Config, scoreName string) (*score.Editor, error) {
	opts := score.Options{
		Left:        tui.StaffLeft,
		BottomLineY: tui.BottomLineY,
		LineGap:     cfg.Staff.LineGap,
		BeatWidth:   cfg.Staff.BeatWidth,
		Measures:    cfg.Staff.Measures,
		TempoBPM:    cfg.UI.LastTempo,
	}

	if scoreName != "" {
		sf, err := score.LoadScore(scoreName)
		if err != nil {
			return nil, fmt.Errorf("load score %q: %w", scoreName, err)
		}
		opts.Seed = sf.Notes
		if sf.TempoBPM > 0 {
			opts.TempoBPM = sf.TempoBPM
		}
		if sf.Measures > 0 {
			opts.Measures = sf.Measures
		}
	}

	return score.NewEditor(opts), nil
}
