package netmsg

import (
	"fmt"

	"github.com/blockspacer/odamex/stringify"
)

// Type identifies the kind of payload a Message carries. The integer values
// are wire constants shared with every released client and must never
// change.
type Type uint8

const (
	// TypeNoOp does nothing.
	TypeNoOp Type = 0
	// TypeReplication carries world state replicated to clients.
	TypeReplication Type = 1
	// TypeTiccmd carries a player's input command for one gametic.
	TypeTiccmd Type = 2
	// TypeLoadMap instructs a client to load a map.
	TypeLoadMap Type = 10
	// TypeClientStatus carries a client's connection status.
	TypeClientStatus Type = 11
	// TypeChat carries a chat line.
	TypeChat Type = 20
	// TypeObituary announces a player's death.
	TypeObituary Type = 21
)

func (t Type) String() string {
	switch t {
	case TypeNoOp:
		return "NoOp"
	case TypeReplication:
		return "Replication"
	case TypeTiccmd:
		return "Ticcmd"
	case TypeLoadMap:
		return "LoadMap"
	case TypeClientStatus:
		return "ClientStatus"
	case TypeChat:
		return "Chat"
	case TypeObituary:
		return "Obituary"
	default:
		return fmt.Sprintf("Type(%d)", uint8(t))
	}
}

// Message tags a component tree with a message type. Concrete message
// layouts embed Message and compose their payload out of the leaf and
// composite components of this package, overriding Size, Clear, Read,
// Write and Clone to defer to it; the base behavior below is the
// documented default for an empty message.
type Message struct {
	fieldName
	messageType Type
}

// NewMessage creates a message wrapper with the given type tag.
func NewMessage(messageType Type) *Message {
	return &Message{messageType: messageType}
}

// Type returns the message's type tag. The tag is read-only after
// construction.
func (m *Message) Type() Type {
	return m.messageType
}

// Size returns 0, the size of an empty message.
func (m *Message) Size() int {
	return 0
}

// Clear does nothing on an empty message.
func (m *Message) Clear() {}

// Read consumes nothing from the stream.
func (m *Message) Read(_ BitReadStream) (int, error) {
	return 0, nil
}

// Write emits nothing to the stream.
func (m *Message) Write(_ BitWriteStream) (int, error) {
	return 0, nil
}

// Clone returns an independent copy of the message wrapper.
func (m *Message) Clone() Component {
	clone := *m

	return &clone
}

func (m *Message) String() string {
	return stringify.Struct("Message",
		stringify.NewStructField("type", m.messageType),
	)
}

var _ Component = (*Message)(nil)
