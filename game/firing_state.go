package game

type FiringState int

const (
	FiringStateReloading FiringState = iota
	FiringStateAiming
	FiringStateLocked
	FiringStateOutOfAmmo
)

func (s FiringState) ToString() string {
	switch s {
	case FiringStateReloading:
		return "Reloading"
	case FiringStateAiming:
		return "Aiming"
	case FiringStateLocked:
		return "Locked"
	case FiringStateOutOfAmmo:
		return "OutOfAmmo"
	default:
		return "Unknown"
	}
}

func (s FiringState) CanFire() bool {
	return s == FiringStateLocked || s == FiringStateAiming
}

// firingInputs is everything the firing state is derived from.
type firingInputs struct {
	roundsLeft          int
	secondsSinceFire    float64
	reloadTimeInSeconds float64
	barrelMoving        bool
	// legacyPriority keeps evaluating after OutOfAmmo matched.
	legacyPriority bool
}

type firingGuard struct {
	name  string
	state FiringState
	holds func(in firingInputs) bool
}

// firingGuards in priority order. The last one always holds.
var firingGuards = []firingGuard{
	{
		name:  "out of ammo",
		state: FiringStateOutOfAmmo,
		holds: func(in firingInputs) bool { return in.roundsLeft <= 0 },
	},
	{
		name:  "reloading",
		state: FiringStateReloading,
		holds: func(in firingInputs) bool { return in.secondsSinceFire < in.reloadTimeInSeconds },
	},
	{
		name:  "barrel moving",
		state: FiringStateAiming,
		holds: func(in firingInputs) bool { return in.barrelMoving },
	},
	{
		name:  "locked",
		state: FiringStateLocked,
		holds: func(in firingInputs) bool { return true },
	},
}

// evaluateFiringState returns the new state and the name of the guard that decided it.
func evaluateFiringState(in firingInputs) (FiringState, string) {
	state, reason := FiringStateLocked, "locked"
	for _, guard := range firingGuards {
		if !guard.holds(in) {
			continue
		}
		state, reason = guard.state, guard.name
		if guard.state == FiringStateOutOfAmmo && in.legacyPriority {
			continue
		}
		break
	}
	return state, reason
}
