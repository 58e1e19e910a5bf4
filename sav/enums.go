package sav

import (
	"fmt"
	"strings"
)

// MapVersion identifies which game wrote a map file.
type MapVersion int32

const (
	MapVersionFallout1 MapVersion = 19
	MapVersionFallout2 MapVersion = 20
)

func ParseMapVersion(v int32) (MapVersion, error) {
	switch m := MapVersion(v); m {
	case MapVersionFallout1, MapVersionFallout2:
		return m, nil
	}
	return 0, &UnknownEnumError{Enum: "MapVersion", Value: v}
}

func (v MapVersion) String() string {
	switch v {
	case MapVersionFallout1:
		return "Fallout 1"
	case MapVersionFallout2:
		return "Fallout 2"
	}
	return fmt.Sprintf("MapVersion(%d)", int32(v))
}

// MapFlags is the flag word of a map header. Bits outside the named ones are
// kept as read.
type MapFlags uint32

const (
	MapFlagSave       MapFlags = 0x1 // map save rather than a pristine map
	MapFlagElevation0 MapFlags = 0x2
	MapFlagElevation1 MapFlags = 0x4
	MapFlagElevation2 MapFlags = 0x8

	knownMapFlags = MapFlagSave | MapFlagElevation0 | MapFlagElevation1 | MapFlagElevation2
)

// Contains reports whether every bit of mask is set.
func (f MapFlags) Contains(mask MapFlags) bool {
	return f&mask == mask
}

// Elevations lists the elevation levels flagged in f.
func (f MapFlags) Elevations() []int {
	var levels []int
	for i, flag := range []MapFlags{MapFlagElevation0, MapFlagElevation1, MapFlagElevation2} {
		if f.Contains(flag) {
			levels = append(levels, i)
		}
	}
	return levels
}

func (f MapFlags) String() string {
	if f == 0 {
		return "0"
	}
	var parts []string
	names := []struct {
		flag MapFlags
		name string
	}{
		{MapFlagSave, "Save"},
		{MapFlagElevation0, "Elevation0"},
		{MapFlagElevation1, "Elevation1"},
		{MapFlagElevation2, "Elevation2"},
	}
	for _, n := range names {
		if f.Contains(n.flag) {
			parts = append(parts, n.name)
		}
	}
	if rest := f &^ knownMapFlags; rest != 0 {
		parts = append(parts, fmt.Sprintf("%#x", uint32(rest)))
	}
	return strings.Join(parts, "|")
}

// ScriptTagType is the category of a script instance. It is not stored in the
// record; the group a record is read from decides it.
type ScriptTagType int32

const (
	ScriptTagSpatial  ScriptTagType = 1
	ScriptTagCritical ScriptTagType = 2
	ScriptTagItem     ScriptTagType = 3
	ScriptTagGeneric  ScriptTagType = 4
)

// ScriptTagTypes is the order in which script groups appear in a map save.
var ScriptTagTypes = [...]ScriptTagType{
	ScriptTagSpatial,
	ScriptTagCritical,
	ScriptTagItem,
	ScriptTagGeneric,
}

func ParseScriptTagType(v int32) (ScriptTagType, error) {
	t := ScriptTagType(v)
	for _, known := range ScriptTagTypes {
		if t == known {
			return t, nil
		}
	}
	return 0, &UnknownEnumError{Enum: "ScriptTagType", Value: v}
}

func (t ScriptTagType) String() string {
	switch t {
	case ScriptTagSpatial:
		return "spatial"
	case ScriptTagCritical:
		return "critical"
	case ScriptTagItem:
		return "item"
	case ScriptTagGeneric:
		return "generic"
	}
	return fmt.Sprintf("ScriptTagType(%d)", int32(t))
}
