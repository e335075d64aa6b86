package playback

import (
	"time"

	gomidi "gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // register MIDI driver

	"fiveline/debug"
	"fiveline/score"
)

// Player realizes a computed schedule as timed MIDI messages. Playback
// is fire-and-forget: each event gets its own timers and the caller is
// never blocked, so editing can continue while notes sound. Already
// scheduled sound is never cancelled by later edits.
type Player struct {
	send    func(gomidi.Message) error
	channel uint8
}

const velocity = 100

// NewPlayer opens the named MIDI out port, or the first available port
// when name is empty. With no port at all it returns a silent player
// rather than failing: the editor stays usable without audio.
func NewPlayer(portName string) *Player {
	ports := gomidi.GetOutPorts()
	for _, port := range ports {
		if portName != "" && port.String() != portName {
			continue
		}
		send, err := gomidi.SendTo(port)
		if err != nil {
			debug.Log("playback", "open %q failed: %v", port.String(), err)
			continue
		}
		debug.Log("playback", "using MIDI out %q", port.String())
		return &Player{send: send}
	}
	debug.Log("playback", "no MIDI out port, playback is silent")
	return Silent()
}

// Silent returns a player that swallows every message.
func Silent() *Player {
	return &Player{send: func(gomidi.Message) error { return nil }}
}

// Play schedules every event on its own timer and returns immediately.
func (p *Player) Play(events []score.PlaybackEvent) {
	for _, ev := range events {
		ev := ev
		time.AfterFunc(ev.Start, func() {
			if err := p.send(gomidi.NoteOn(p.channel, uint8(ev.MIDI), velocity)); err != nil {
				debug.Log("playback", "note on failed: %v", err)
			}
		})
		time.AfterFunc(ev.Start+ev.Duration, func() {
			if err := p.send(gomidi.NoteOff(p.channel, uint8(ev.MIDI))); err != nil {
				debug.Log("playback", "note off failed: %v", err)
			}
		})
	}
}

// Close releases the MIDI driver.
func (p *Player) Close() {
	gomidi.CloseDriver()
}
