package component

// SpeechRequests queues cue names whose audio should start this tick.
type SpeechRequests struct {
	Cues []string
}

var SpeechRequestsComponent = NewComponent[SpeechRequests]()
