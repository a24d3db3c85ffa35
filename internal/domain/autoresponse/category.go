package autoresponse

// Type classifies both incoming messages and their reply templates.
// The set is closed.
type Type string

const (
	TypeGeneral      Type = "general"
	TypeMissedCall   Type = "missed_call"
	TypeReschedule   Type = "reschedule"
	TypeCancellation Type = "cancellation"
	TypeConfirmation Type = "confirmation"
	TypeEmergency    Type = "emergency"
)

var allTypes = map[Type]struct{}{
	TypeGeneral:      {},
	TypeMissedCall:   {},
	TypeReschedule:   {},
	TypeCancellation: {},
	TypeConfirmation: {},
	TypeEmergency:    {},
}

func (t Type) Valid() bool {
	_, ok := allTypes[t]
	return ok
}
