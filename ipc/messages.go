package ipc

// These constants must stay in sync with the AntServer message structs.
// All multi-byte fields are little-endian with no padding between fields.
const (
	NumTeams = 16 // team records carried by every turn message
	NumSlots = 16 // action slots, one per ant of a team
	NameSize = 16 // fixed name buffer in hello and team records

	ActionSize = NumSlots
	HelloSize  = 2 + NameSize
	TeamSize   = 2 + 2 + NameSize
	ObjectSize = 1 + 1 + 2 + 2

	// TurnHeaderSize covers everything before the object tail:
	// current team id, the team records and the object count.
	TurnHeaderSize = 2 + NumTeams*TeamSize + 2
)

// Hello types sent by a client when it joins.
const (
	HelloPlayer uint16 = 1
	HelloViewer uint16 = 2
)

// Hello announces a client and its team name.
type Hello struct {
	Type uint16
	Name string
}

// TeamRecord is one team's row in a turn message.
type TeamRecord struct {
	Points   uint16
	AntCount uint16
	Name     string
}

// ObjectRecord is a raw world object. The meaning of its bits is owned by
// the field package; the codec only moves bytes.
type ObjectRecord struct {
	B0 uint8
	B1 uint8
	W0 uint16
	W1 uint16
}

// Turn is a full server snapshot. Teams is indexed by team id.
type Turn struct {
	TeamID  int16
	Teams   [NumTeams]TeamRecord
	Objects []ObjectRecord
}

// Action carries one move code per ant slot.
type Action [NumSlots]byte
