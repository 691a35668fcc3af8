package batch

// ActionKind is the closed set of action variants the vocabulary models.
// Every other action name is ActionUnrecognized.
type ActionKind int

const (
	// ActionUnrecognized is any action name without a dedicated class.
	ActionUnrecognized ActionKind = iota
	ActionAdd
	ActionSetTemperature
)

// Action names as they appear in batch records.
const (
	ActionNameAdd            = "AddAction"
	ActionNameSetTemperature = "setTemperatureAction"
)

// ParseActionKind maps an action name to its variant. Matching is exact.
func ParseActionKind(name string) ActionKind {
	switch name {
	case ActionNameAdd:
		return ActionAdd
	case ActionNameSetTemperature:
		return ActionSetTemperature
	default:
		return ActionUnrecognized
	}
}

func (k ActionKind) String() string {
	switch k {
	case ActionAdd:
		return ActionNameAdd
	case ActionSetTemperature:
		return ActionNameSetTemperature
	default:
		return "unrecognized"
	}
}
