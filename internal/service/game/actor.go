package game

type ActorState string

const (
	ActorIdle      ActorState = "idle"
	ActorAnimating ActorState = "animating"
)

// Actor serializes the animations of one independently moving thing
// (the cursor or the falling token). Each Begin hands out a ticket, and only
// that ticket can bring the actor back to idle.
type Actor struct {
	name   string
	state  ActorState
	ticket uint64
}

func NewActor(name string) *Actor {
	return &Actor{name: name, state: ActorIdle}
}

func (a *Actor) Name() string {
	return a.name
}

func (a *Actor) State() ActorState {
	return a.state
}

func (a *Actor) Busy() bool {
	return a.state == ActorAnimating
}

// Begin returns false when the actor is already animating.
func (a *Actor) Begin() (uint64, bool) {
	if a.state == ActorAnimating {
		return 0, false
	}
	a.ticket++
	a.state = ActorAnimating
	return a.ticket, true
}

// Finish reports whether the ticket ended the current animation. Stale or
// repeated tickets are ignored.
func (a *Actor) Finish(ticket uint64) bool {
	if a.state != ActorAnimating || ticket != a.ticket {
		return false
	}
	a.state = ActorIdle
	return true
}
