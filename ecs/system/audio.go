package system

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/santa/assets"
	"github.com/milk9111/santa/ecs"
	"github.com/milk9111/santa/ecs/component"
)

// SpeechPlayer starts the audio for a dialogue cue. Completion is never
// reported back; cues advance on player input only.
type SpeechPlayer interface {
	Play(cue string) error
}

// AudioSystem hands queued speech requests to the player.
type AudioSystem struct {
	player SpeechPlayer
}

func NewAudioSystem(player SpeechPlayer) *AudioSystem {
	return &AudioSystem{player: player}
}

func (a *AudioSystem) Update(w *ecs.World) {
	req := ecs.MustResource(w, component.SpeechRequestsComponent.Kind())
	if len(req.Cues) == 0 {
		return
	}
	for _, cue := range req.Cues {
		if a.player == nil {
			continue
		}
		if err := a.player.Play(cue); err != nil {
			log.Printf("audio: play %s: %v", cue, err)
		}
	}
	req.Cues = req.Cues[:0]
}

// EbitenSpeechPlayer plays decoded speech through an ebiten audio context.
// Starting a cue stops the previous one.
type EbitenSpeechPlayer struct {
	ctx     *audio.Context
	lib     *assets.Library
	current *audio.Player
}

func NewEbitenSpeechPlayer(ctx *audio.Context, lib *assets.Library) *EbitenSpeechPlayer {
	return &EbitenSpeechPlayer{ctx: ctx, lib: lib}
}

func (p *EbitenSpeechPlayer) Play(cue string) error {
	speech, ok := p.lib.Speech(cue)
	if !ok {
		return assets.ErrUnknownAsset
	}
	pcm := p.lib.Loader().PCM(speech.Handle)
	if pcm == nil {
		// The caption still shows without audio.
		if err := p.lib.Loader().Err(speech.Handle); err != nil {
			return err
		}
		return fmt.Errorf("speech %s is still loading", cue)
	}

	if p.current != nil {
		p.current.Pause()
		_ = p.current.Close()
	}
	p.current = p.ctx.NewPlayerFromBytes(pcm)
	p.current.Play()
	return nil
}
