package component

// AssetsReady flips to true once every requested asset has either loaded or
// failed.
type AssetsReady struct {
	Ready  bool
	Loaded int
	Failed int
}

var AssetsReadyComponent = NewComponent[AssetsReady]()
