package sav

import "time"

// SaveHeader is the fixed-size header at the start of SAVE.DAT.
type SaveHeader struct {
	Magic                        string
	Version                      uint32 // packed major<<16 | minor, 65538 for Fallout 2
	ReleaseType                  uint8  // 'R'
	PlayerName                   string
	SaveName                     string
	SaveDay, SaveMonth, SaveYear uint16
	SaveTime                     uint32
	GameMonth, GameDay, GameYear uint16
	GameTicks                    uint32
	CurrentElevation             uint16
	CurrentMap                   uint16
	CurrentMapFilename           string
	Thumbnail                    []byte // ThumbnailWidth x ThumbnailHeight palette indices
}

func (h *SaveHeader) VersionMajor() uint16 {
	return uint16(h.Version >> 16)
}

func (h *SaveHeader) VersionMinor() uint16 {
	return uint16(h.Version)
}

// GameElapsed is the in-game time since the start of the game.
func (h *SaveHeader) GameElapsed() time.Duration {
	return time.Duration(h.GameTicks) * time.Second / TicksPerSecond
}

// MapSaveHeader is the fixed-size header of a map save.
type MapSaveHeader struct {
	Version             MapVersion
	Filename            string
	PlayerPosition      int32 // default spawn tile
	PlayerElevation     int32
	PlayerOrientation   int32
	LocalVariableCount  int32
	ScriptID            int32 // map script, -1 if none
	Flags               MapFlags
	Darkness            int32
	GlobalVariableCount int32
	MapID               int32
	Ticks               uint32
	MysteryBytes        [MysteryBytesLength]byte // unknown structure, kept verbatim
}

// VariableTables holds map variables by slot index.
type VariableTables struct {
	LocalVariables  []int32
	GlobalVariables []int32
}

type ScriptInstance struct {
	ID                  int32
	LocalVariableOffset int32 // NoLocalVariables if the instance owns no slots
	LocalVariableCount  int32
	ScriptType          ScriptTagType
}

// HasLocals reports whether the instance points at local variable slots.
func (s ScriptInstance) HasLocals() bool {
	return s.LocalVariableOffset != NoLocalVariables
}

// Map is a decoded map save.
type Map struct {
	Header        MapSaveHeader
	Variables     VariableTables
	Scripts       []ScriptInstance // grouped in ScriptTagTypes order
	TrailingBytes int              // undecoded bytes after the script groups
}

// ScriptsOf returns the instances read from the group of type t.
func (m *Map) ScriptsOf(t ScriptTagType) []ScriptInstance {
	var out []ScriptInstance
	for _, s := range m.Scripts {
		if s.ScriptType == t {
			out = append(out, s)
		}
	}
	return out
}
