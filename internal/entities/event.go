package entities

// Event is a world state change that unlocks further logic.
type Event string

// Events referenced by placement logic.
const (
	EventWaterSwitch   Event = "WaterSwitch"
	EventDartsPlayed   Event = "DartsPlayed"
	EventHelmKeyAccess Event = "HelmKeyAccess"
	EventMillSwitch    Event = "MillSwitch"
	EventIglooOpened   Event = "IglooOpened"
)

// AllEvents lists every event.
var AllEvents = []Event{
	EventWaterSwitch,
	EventDartsPlayed,
	EventHelmKeyAccess,
	EventMillSwitch,
	EventIglooOpened,
}

func (e Event) String() string { return string(e) }
