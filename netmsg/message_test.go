package netmsg_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/blockspacer/odamex/bitstream"
	"github.com/blockspacer/odamex/netmsg"
)

func TestMessage_WireTypeConstants(t *testing.T) {
	// Shared with every released client, so the values are frozen.
	require.EqualValues(t, 0, netmsg.TypeNoOp)
	require.EqualValues(t, 1, netmsg.TypeReplication)
	require.EqualValues(t, 2, netmsg.TypeTiccmd)
	require.EqualValues(t, 10, netmsg.TypeLoadMap)
	require.EqualValues(t, 11, netmsg.TypeClientStatus)
	require.EqualValues(t, 20, netmsg.TypeChat)
	require.EqualValues(t, 21, netmsg.TypeObituary)
}

func TestMessage_TypeString(t *testing.T) {
	require.Equal(t, "NoOp", netmsg.TypeNoOp.String())
	require.Equal(t, "Chat", netmsg.TypeChat.String())
	require.Equal(t, "Obituary", netmsg.TypeObituary.String())
	require.Equal(t, "Type(42)", netmsg.Type(42).String())
}

func TestMessage_EmptyBase(t *testing.T) {
	message := netmsg.NewMessage(netmsg.TypeNoOp)
	require.Equal(t, netmsg.TypeNoOp, message.Type())
	require.Equal(t, 0, message.Size())

	stream := bitstream.New()
	written, err := message.Write(stream)
	require.NoError(t, err)
	require.Equal(t, 0, written)
	require.Equal(t, 0, stream.BitsWritten())

	consumed, err := message.Read(stream)
	require.NoError(t, err)
	require.Equal(t, 0, consumed)
}

func TestMessage_Clone(t *testing.T) {
	message := netmsg.NewMessage(netmsg.TypeChat)
	message.SetFieldName("chat")

	//nolint:forcetypeassert // Clone returns the concrete type
	clone := message.Clone().(*netmsg.Message)
	require.Equal(t, netmsg.TypeChat, clone.Type())
	require.Equal(t, "chat", clone.FieldName())
	require.NotSame(t, message, clone)
}

// chatMessage is a representative concrete layout: a Message wrapper whose
// payload is composed from the component kit.
type chatMessage struct {
	*netmsg.Message

	fields *netmsg.Group
}

func newChatMessage() *chatMessage {
	fields := netmsg.NewGroup()

	sender := netmsg.NewRange(0)
	sender.SetBounds(0, 255)
	sender.SetFieldName("sender")
	fields.AddField(sender, false)

	line := netmsg.NewString("")
	line.SetFieldName("line")
	fields.AddField(line, false)

	team := netmsg.NewBool(false)
	team.SetFieldName("team")
	fields.AddField(team, true)

	return &chatMessage{
		Message: netmsg.NewMessage(netmsg.TypeChat),
		fields:  fields,
	}
}

func (m *chatMessage) Size() int                                { return m.fields.Size() }
func (m *chatMessage) Clear()                                   { m.fields.Clear() }
func (m *chatMessage) Read(s netmsg.BitReadStream) (int, error) { return m.fields.Read(s) }
func (m *chatMessage) Write(s netmsg.BitWriteStream) (int, error) {
	return m.fields.Write(s)
}

func TestMessage_ConcreteLayoutRoundTrip(t *testing.T) {
	message := newChatMessage()
	require.Equal(t, netmsg.TypeChat, message.Type())

	sender, ok := message.fields.Field("sender")
	require.True(t, ok)
	//nolint:forcetypeassert // the field was added as *netmsg.Range
	sender.(*netmsg.Range).Set(13)

	line, ok := message.fields.Field("line")
	require.True(t, ok)
	//nolint:forcetypeassert // the field was added as *netmsg.String
	line.(*netmsg.String).Set("gg")
	message.fields.InvalidateSize()

	// 1 presence bit + 8 bit sender + 3 byte line; team stays absent.
	require.Equal(t, 1+8+8*3, message.Size())

	stream := bitstream.New()
	written, err := message.Write(stream)
	require.NoError(t, err)
	require.Equal(t, message.Size(), written)

	restored := newChatMessage()
	consumed, err := restored.Read(stream)
	require.NoError(t, err)
	require.Equal(t, written, consumed)

	restoredSender, ok := restored.fields.Field("sender")
	require.True(t, ok)
	//nolint:forcetypeassert // the field was added as *netmsg.Range
	require.EqualValues(t, 13, restoredSender.(*netmsg.Range).Get())

	restoredLine, ok := restored.fields.Field("line")
	require.True(t, ok)
	//nolint:forcetypeassert // the field was added as *netmsg.String
	require.Equal(t, "gg", restoredLine.(*netmsg.String).Get())

	require.False(t, restored.fields.Present("team"))
}
