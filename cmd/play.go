package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"fiveline/config"
	"fiveline/playback"
	"fiveline/score"
)

func init() {
	rootCmd.AddCommand(playCmd)
}

var playCmd = &cobra.Command{
	Use:   "play <score>",
	Short: "Play a saved score once and exit",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "config: %v\n", err)
			os.Exit(1)
		}

		ed, err := buildEditor(cfg, args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}

		events := ed.Schedule()
		if len(events) == 0 {
			fmt.Println("nothing to play")
			return
		}

		player := playback.NewPlayer(cfg.MIDI.PortName)
		defer player.Close()
		player.Play(events)

		// Playback is fire-and-forget; hold the process open until the
		// last note has ended.
		last := events[len(events)-1]
		time.Sleep(last.Start + last.Duration + 200*time.Millisecond)
	},
}
