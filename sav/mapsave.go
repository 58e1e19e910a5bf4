package sav

import "fmt"

type int32Field struct {
	name string
	v    *int32
}

// readFields reads consecutive signed 32-bit fields in order.
func (c *cursor) readFields(fields ...int32Field) error {
	for _, f := range fields {
		v, err := c.readI()
		if err != nil {
			return fmt.Errorf("%s: %w", f.name, err)
		}
		*f.v = v
	}
	return nil
}

func readMapHeader(c *cursor) (MapSaveHeader, error) {
	h := MapSaveHeader{}

	v, err := c.readI()
	if err != nil {
		return h, fmt.Errorf("version: %w", err)
	}
	h.Version, err = ParseMapVersion(v)
	if err != nil {
		return h, err
	}
	h.Filename, err = c.readString(mapFilenameLength)
	if err != nil {
		return h, fmt.Errorf("filename: %w", err)
	}

	err = c.readFields(
		int32Field{"player position", &h.PlayerPosition},
		int32Field{"player elevation", &h.PlayerElevation},
		int32Field{"player orientation", &h.PlayerOrientation},
		int32Field{"local variable count", &h.LocalVariableCount},
		int32Field{"script id", &h.ScriptID},
	)
	if err != nil {
		return h, err
	}
	flags, err := c.readL()
	if err != nil {
		return h, fmt.Errorf("flags: %w", err)
	}
	h.Flags = MapFlags(flags)
	err = c.readFields(
		int32Field{"darkness", &h.Darkness},
		int32Field{"global variable count", &h.GlobalVariableCount},
		int32Field{"map id", &h.MapID},
	)
	if err != nil {
		return h, err
	}

	h.Ticks, err = c.readL()
	if err != nil {
		return h, fmt.Errorf("ticks: %w", err)
	}
	mystery, err := c.read(MysteryBytesLength)
	if err != nil {
		return h, fmt.Errorf("mystery bytes: %w", err)
	}
	copy(h.MysteryBytes[:], mystery)

	return h, nil
}

func readScriptInstance(c *cursor, tag ScriptTagType) (ScriptInstance, error) {
	s := ScriptInstance{ScriptType: tag}
	var err error
	if s.ID, err = c.readI(); err != nil {
		return s, err
	}
	if s.LocalVariableOffset, err = c.readI(); err != nil {
		return s, err
	}
	if s.LocalVariableCount, err = c.readI(); err != nil {
		return s, err
	}
	return s, nil
}

// readScriptGroup reads one count-prefixed group of script instances, all of
// type tag, and appends them to scripts.
func readScriptGroup(c *cursor, tag ScriptTagType, scripts []ScriptInstance) ([]ScriptInstance, error) {
	count, err := c.readI()
	if err != nil {
		return nil, fmt.Errorf("%v scripts: count: %w", tag, err)
	}
	if count < 0 {
		return nil, fmt.Errorf("%v scripts: %w: %d", tag, ErrInvalidCount, count)
	}
	if have := len(c.remaining()); int(count) > have/scriptRecordSize {
		return nil, fmt.Errorf("%v scripts: %w", tag, truncated(c.index, int(count)*scriptRecordSize, have))
	}
	for i := range int(count) {
		s, err := readScriptInstance(c, tag)
		if err != nil {
			return nil, fmt.Errorf("%v scripts: record %d: %w", tag, i, err)
		}
		scripts = append(scripts, s)
	}
	return scripts, nil
}

// MapSave decodes an inflated map save. Bytes after the last script group are
// not decoded.
func MapSave(buf []byte) (*Map, error) {
	c := newCursor(buf)
	m := &Map{}

	var err error
	m.Header, err = readMapHeader(c)
	if err != nil {
		return nil, fmt.Errorf("map header: %w", err)
	}

	m.Variables.LocalVariables, err = c.readInts(m.Header.LocalVariableCount)
	if err != nil {
		return nil, fmt.Errorf("local variables: %w", err)
	}
	m.Variables.GlobalVariables, err = c.readInts(m.Header.GlobalVariableCount)
	if err != nil {
		return nil, fmt.Errorf("global variables: %w", err)
	}

	m.Scripts = []ScriptInstance{}
	for _, tag := range ScriptTagTypes {
		m.Scripts, err = readScriptGroup(c, tag, m.Scripts)
		if err != nil {
			return nil, err
		}
	}

	m.TrailingBytes = len(c.remaining())
	return m, nil
}

// DecodeMap inflates a raw map save file if needed and decodes it.
func DecodeMap(raw []byte) (*Map, error) {
	buf, err := TryGunzipBuffer(raw)
	if err != nil {
		return nil, err
	}
	return MapSave(buf)
}
