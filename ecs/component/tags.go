package component

type SantaTag struct{}

var SantaTagComponent = NewComponent[SantaTag]()

type CameraTag struct{}

var CameraTagComponent = NewComponent[CameraTag]()

// Snowflake marks a decorative particle. Its Position is the logical fall
// position; Transform additionally carries the noise drift.
type Snowflake struct{}

var SnowflakeComponent = NewComponent[Snowflake]()

type Background struct{}

var BackgroundComponent = NewComponent[Background]()
