package netmsg

import (
	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// TypeDatabase is a registry of named component prototypes. New component
// instances are built by cloning the registered prototype, so a layout only
// has to be assembled once. Types carry an optional parent type name, which
// lets callers query ancestry with Descendant.
type TypeDatabase struct {
	types *linkedhashmap.Map
}

type typeRecord struct {
	typeName       string
	parentTypeName string
	prototype      Component
}

// NewTypeDatabase creates a database pre-populated with the built-in leaf
// component types under their canonical names.
func NewTypeDatabase() *TypeDatabase {
	db := &TypeDatabase{types: linkedhashmap.New()}

	db.RegisterType("bool", "", NewBool(false))
	db.RegisterType("u8", "", NewU8(0))
	db.RegisterType("s8", "", NewS8(0))
	db.RegisterType("u16", "", NewU16(0))
	db.RegisterType("s16", "", NewS16(0))
	db.RegisterType("u32", "", NewU32(0))
	db.RegisterType("s32", "", NewS32(0))
	db.RegisterType("range", "", NewRange(0))
	db.RegisterType("float", "", NewFloat(0))
	db.RegisterType("string", "", NewString(""))
	db.RegisterType("v2fixed", "", NewV2Fixed(Vec2{}))
	db.RegisterType("v3fixed", "", NewV3Fixed(Vec3{}))
	db.RegisterType("bitfield", "", NewBitField(32))
	db.RegisterType("md5sum", "", NewDigest())

	return db
}

// RegisterType registers a prototype under the given type name, cloned so
// the caller keeps ownership of the passed component. Registering a name a
// second time replaces the earlier record.
func (db *TypeDatabase) RegisterType(typeName string, parentTypeName string, prototype Component) {
	if _, replaced := db.types.Get(typeName); replaced {
		log.Warnf("component type %q registered more than once, replacing the earlier prototype", typeName)
	}

	db.types.Put(typeName, &typeRecord{
		typeName:       typeName,
		parentTypeName: parentTypeName,
		prototype:      prototype.Clone(),
	})
}

// UnregisterType removes the record registered under the given type name.
func (db *TypeDatabase) UnregisterType(typeName string) {
	db.types.Remove(typeName)
}

// ClearTypes removes every registered record.
func (db *TypeDatabase) ClearTypes() {
	db.types.Clear()
}

// BuildComponent builds a new instance of the named type by cloning its
// prototype. An unknown type name yields (nil, false).
func (db *TypeDatabase) BuildComponent(typeName string) (Component, bool) {
	record, has := db.record(typeName)
	if !has {
		return nil, false
	}

	return record.prototype.Clone(), true
}

// Descendant reports whether the named type equals the given ancestor type
// or descends from it through its parent links.
func (db *TypeDatabase) Descendant(typeName string, ancestorTypeName string) bool {
	seen := make(map[string]struct{})
	for typeName != "" {
		if typeName == ancestorTypeName {
			return true
		}
		if _, cyclic := seen[typeName]; cyclic {
			return false
		}
		seen[typeName] = struct{}{}

		record, has := db.record(typeName)
		if !has {
			return false
		}
		typeName = record.parentTypeName
	}

	return false
}

func (db *TypeDatabase) record(typeName string) (*typeRecord, bool) {
	value, has := db.types.Get(typeName)
	if !has {
		return nil, false
	}

	//nolint:forcetypeassert // the table only ever holds type records
	return value.(*typeRecord), true
}
