package netmsg_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/blockspacer/odamex/netmsg"
)

func TestTypeDatabase_BuiltinTypes(t *testing.T) {
	db := netmsg.NewTypeDatabase()

	sizes := map[string]int{
		"bool":     1,
		"u8":       8,
		"s8":       8,
		"u16":      16,
		"s16":      16,
		"u32":      32,
		"s32":      32,
		"range":    32,
		"float":    32,
		"string":   8,
		"v2fixed":  64,
		"v3fixed":  96,
		"bitfield": 32,
		"md5sum":   128,
	}
	for typeName, size := range sizes {
		component, ok := db.BuildComponent(typeName)
		require.True(t, ok, "missing built-in type %q", typeName)
		require.Equal(t, size, component.Size(), "wrong default size for %q", typeName)
	}
}

func TestTypeDatabase_BuildUnknownType(t *testing.T) {
	db := netmsg.NewTypeDatabase()

	component, ok := db.BuildComponent("quaternion")
	require.False(t, ok)
	require.Nil(t, component)
}

func TestTypeDatabase_BuildsClones(t *testing.T) {
	db := netmsg.NewTypeDatabase()

	first, ok := db.BuildComponent("u8")
	require.True(t, ok)
	second, ok := db.BuildComponent("u8")
	require.True(t, ok)
	require.NotSame(t, first, second)

	//nolint:forcetypeassert // the built-in prototype is *netmsg.U8
	first.(*netmsg.U8).Set(99)
	//nolint:forcetypeassert // the built-in prototype is *netmsg.U8
	require.EqualValues(t, 0, second.(*netmsg.U8).Get())
}

func TestTypeDatabase_RegisterKeepsCallerOwnership(t *testing.T) {
	db := netmsg.NewTypeDatabase()

	prototype := netmsg.NewU16(7)
	db.RegisterType("frags", "u16", prototype)

	// Mutating the caller's component must not affect later builds.
	prototype.Set(1000)

	component, ok := db.BuildComponent("frags")
	require.True(t, ok)
	//nolint:forcetypeassert // the prototype is *netmsg.U16
	require.EqualValues(t, 7, component.(*netmsg.U16).Get())
}

func TestTypeDatabase_ReregisterReplaces(t *testing.T) {
	db := netmsg.NewTypeDatabase()

	db.RegisterType("payload", "", netmsg.NewU8(0))
	db.RegisterType("payload", "", netmsg.NewU32(0))

	component, ok := db.BuildComponent("payload")
	require.True(t, ok)
	require.Equal(t, 32, component.Size())
}

func TestTypeDatabase_Unregister(t *testing.T) {
	db := netmsg.NewTypeDatabase()

	db.RegisterType("frags", "u16", netmsg.NewU16(0))
	db.UnregisterType("frags")

	_, ok := db.BuildComponent("frags")
	require.False(t, ok)

	// Built-ins survive unrelated removals.
	_, ok = db.BuildComponent("u16")
	require.True(t, ok)
}

func TestTypeDatabase_ClearTypes(t *testing.T) {
	db := netmsg.NewTypeDatabase()
	db.ClearTypes()

	_, ok := db.BuildComponent("u8")
	require.False(t, ok)
}

func TestTypeDatabase_Descendant(t *testing.T) {
	db := netmsg.NewTypeDatabase()
	db.RegisterType("actor", "", netmsg.NewGroup())
	db.RegisterType("player", "actor", netmsg.NewGroup())
	db.RegisterType("spectator", "player", netmsg.NewGroup())

	// A type descends from itself.
	require.True(t, db.Descendant("actor", "actor"))
	require.True(t, db.Descendant("player", "actor"))
	require.True(t, db.Descendant("spectator", "actor"))

	require.False(t, db.Descendant("actor", "player"))
	require.False(t, db.Descendant("u8", "actor"))
	require.False(t, db.Descendant("ghost", "actor"))
}

func TestTypeDatabase_DescendantCycle(t *testing.T) {
	db := netmsg.NewTypeDatabase()
	db.RegisterType("a", "b", netmsg.NewU8(0))
	db.RegisterType("b", "a", netmsg.NewU8(0))

	require.False(t, db.Descendant("a", "c"))
	require.True(t, db.Descendant("a", "b"))
}
