package system

import (
	"log"

	"github.com/dustin/go-humanize"
	"github.com/milk9111/santa/assets"
	"github.com/milk9111/santa/ecs"
	"github.com/milk9111/santa/ecs/component"
)

// AssetReadySystem watches the loader and flips AssetsReady once every
// requested asset has finished, loaded or not. Failures are logged once and
// never retried.
type AssetReadySystem struct {
	loader *assets.Loader
	bytes  uint64
}

func NewAssetReadySystem(loader *assets.Loader) *AssetReadySystem {
	return &AssetReadySystem{loader: loader}
}

func (as *AssetReadySystem) Update(w *ecs.World) {
	ready := ecs.MustResource(w, component.AssetsReadyComponent.Kind())
	if as.loader == nil {
		ready.Ready = true
		return
	}

	for _, h := range as.loader.DrainFinished() {
		switch as.loader.State(h) {
		case assets.LoadLoaded:
			ready.Loaded++
			as.bytes += uint64(as.loader.Size(h))
		case assets.LoadFailed:
			ready.Failed++
			log.Printf("assets: could not load %s: %v", as.loader.Path(h), as.loader.Err(h))
		}
	}

	if ready.Ready || as.loader.Pending() > 0 {
		return
	}
	ready.Ready = true
	log.Printf("assets: ready, %d loaded (%s), %d failed", ready.Loaded, humanize.Bytes(as.bytes), ready.Failed)
}
