package sav

import (
	"bytes"
	"slices"
	"testing"

	"github.com/klauspost/compress/gzip"
)

func pad(b []byte, l int) []byte {
	return append(b, slices.Repeat([]byte{0}, l-len(b))...)
}

func b(i uint8) []byte {
	return []byte{i}
}

func w(i uint16) []byte {
	return []byte{byte(i >> 8), byte(i)}
}

func l(i uint32) []byte {
	return []byte{byte(i >> 24), byte(i >> 16), byte(i >> 8), byte(i)}
}

func li(i int32) []byte {
	return l(uint32(i))
}

func str(s string, n int) []byte {
	return pad([]byte(s), n)
}

func encodeHeader(h *SaveHeader) []byte {
	var out []byte
	out = append(out, str(Magic, signatureField)...)
	out = append(out, l(h.Version)...)
	out = append(out, b(h.ReleaseType)...)
	out = append(out, str(h.PlayerName, playerNameLength)...)
	out = append(out, str(h.SaveName, saveNameLength)...)
	for _, v := range []uint16{h.SaveDay, h.SaveMonth, h.SaveYear} {
		out = append(out, w(v)...)
	}
	out = append(out, l(h.SaveTime)...)
	for _, v := range []uint16{h.GameMonth, h.GameDay, h.GameYear} {
		out = append(out, w(v)...)
	}
	out = append(out, l(h.GameTicks)...)
	out = append(out, w(h.CurrentElevation)...)
	out = append(out, w(h.CurrentMap)...)
	out = append(out, str(h.CurrentMapFilename, mapFilenameLength)...)
	return append(out, pad(slices.Clone(h.Thumbnail), thumbnailLength)...)
}

// encodeMap writes m in map save layout. m.Scripts must already be grouped in
// ScriptTagTypes order.
func encodeMap(m *Map) []byte {
	h := m.Header
	var out []byte
	out = append(out, li(int32(h.Version))...)
	out = append(out, str(h.Filename, mapFilenameLength)...)
	for _, v := range []int32{h.PlayerPosition, h.PlayerElevation, h.PlayerOrientation, h.LocalVariableCount, h.ScriptID} {
		out = append(out, li(v)...)
	}
	out = append(out, l(uint32(h.Flags))...)
	for _, v := range []int32{h.Darkness, h.GlobalVariableCount, h.MapID} {
		out = append(out, li(v)...)
	}
	out = append(out, l(h.Ticks)...)
	out = append(out, h.MysteryBytes[:]...)
	for _, v := range m.Variables.LocalVariables {
		out = append(out, li(v)...)
	}
	for _, v := range m.Variables.GlobalVariables {
		out = append(out, li(v)...)
	}
	for _, tag := range ScriptTagTypes {
		group := m.ScriptsOf(tag)
		out = append(out, li(int32(len(group)))...)
		for _, s := range group {
			out = append(out, li(s.ID)...)
			out = append(out, li(s.LocalVariableOffset)...)
			out = append(out, li(s.LocalVariableCount)...)
		}
	}
	return out
}

func gzipBytes(t testing.TB, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write(data); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}
