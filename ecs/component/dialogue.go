package component

// DialogueStateID only ever moves forward and stops at DialogueFinished.
type DialogueStateID int

const (
	DialogueHello DialogueStateID = iota
	DialogueTutorial
	DialogueArrive
	DialogueEnterHouse
	DialogueFinished
)

var dialogueStateNames = [...]string{"hello", "tutorial", "arrive", "enter_house", "finished"}

func (s DialogueStateID) String() string {
	if s < 0 || int(s) >= len(dialogueStateNames) {
		return "unknown"
	}
	return dialogueStateNames[s]
}

// ParseDialogueState maps a prefab state name to its id.
func ParseDialogueState(name string) (DialogueStateID, bool) {
	for i, n := range dialogueStateNames {
		if n == name {
			return DialogueStateID(i), true
		}
	}
	return 0, false
}

type DialogueState struct {
	Current DialogueStateID
}

var DialogueStateComponent = NewComponent[DialogueState]()

// DialogueQueue holds cue names waiting to be shown, front first.
type DialogueQueue struct {
	Backlog []string
}

func (q *DialogueQueue) Push(cues ...string) {
	q.Backlog = append(q.Backlog, cues...)
}

func (q *DialogueQueue) Pop() (string, bool) {
	if len(q.Backlog) == 0 {
		return "", false
	}
	cue := q.Backlog[0]
	q.Backlog = q.Backlog[1:]
	return cue, true
}

var DialogueQueueComponent = NewComponent[DialogueQueue]()

// ActiveDialogue is the cue currently on screen, if any.
type ActiveDialogue struct {
	Active bool
	Cue    string
	Text   string
}

var ActiveDialogueComponent = NewComponent[ActiveDialogue]()

// DialogueTimer counts seconds since the last cue started or was dismissed.
type DialogueTimer struct {
	Elapsed float64
}

var DialogueTimerComponent = NewComponent[DialogueTimer]()
