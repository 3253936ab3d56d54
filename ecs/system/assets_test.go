package system

import (
	"context"
	"testing"
	"testing/fstest"
	"time"

	"github.com/milk9111/santa/assets"
	"github.com/milk9111/santa/ecs"
	"github.com/milk9111/santa/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssetReadySystemCountsAndFlips(t *testing.T) {
	loader := assets.NewLoader(fstest.MapFS{
		"speech/a.pcm": {Data: []byte{1, 2, 3, 4}},
		"speech/b.pcm": {Data: []byte{5, 6}},
	}, 44100, 2)
	defer loader.Close()

	w := ecs.NewWorld()
	ecs.SetResource(w, component.AssetsReadyComponent.Kind(), &component.AssetsReady{})
	sys := NewAssetReadySystem(loader)

	loader.Load(assets.KindAudio, "speech/a.pcm")
	loader.Load(assets.KindAudio, "speech/b.pcm")
	loader.Load(assets.KindAudio, "speech/missing.pcm")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, loader.Wait(ctx))

	sys.Update(w)

	ready := ecs.MustResource(w, component.AssetsReadyComponent.Kind())
	assert.True(t, ready.Ready)
	assert.Equal(t, 2, ready.Loaded)
	assert.Equal(t, 1, ready.Failed)
	assert.Equal(t, uint64(6), sys.bytes)

	sys.Update(w)
	assert.Equal(t, 2, ready.Loaded, "finished handles are counted once")
}

func TestAssetReadyWithoutLoader(t *testing.T) {
	w := ecs.NewWorld()
	ecs.SetResource(w, component.AssetsReadyComponent.Kind(), &component.AssetsReady{})
	NewAssetReadySystem(nil).Update(w)
	assert.True(t, ecs.MustResource(w, component.AssetsReadyComponent.Kind()).Ready)
}
