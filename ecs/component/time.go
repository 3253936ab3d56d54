package component

// Time is advanced once per tick before any other system runs.
type Time struct {
	Delta   float64
	Elapsed float64
	Tick    uint64
}

var TimeComponent = NewComponent[Time]()
