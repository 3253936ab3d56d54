package component

type LevelID string

const (
	LevelOutside LevelID = "outside"
	LevelIndoors LevelID = "indoors"
)

// LevelState holds the one active level. Pending is set when a level must be
// entered on the next level tick, which is how the first level starts.
type LevelState struct {
	Current LevelID
	Pending LevelID
}

var LevelStateComponent = NewComponent[LevelState]()

// LevelRoot tags the entity every level-scoped entity hangs under.
type LevelRoot struct {
	Level LevelID
}

var LevelRootComponent = NewComponent[LevelRoot]()
