package main

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fosave/sav"

	"github.com/google/go-cmp/cmp"
	"github.com/klauspost/compress/gzip"
	"github.com/segmentio/encoding/json"
	"github.com/stretchr/testify/require"
)

func writeSlot(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	header := make([]byte, sav.HeaderSize)
	copy(header, sav.Magic)
	copy(header[0x18:], []byte{0, 1, 0, 2, 'R'})
	copy(header[0x1d:], "diglet")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "SAVE.DAT"), header, 0o644))

	m := make([]byte, sav.MapHeaderSize+4*len(sav.ScriptTagTypes))
	copy(m, []byte{0, 0, 0, byte(sav.MapVersionFallout2)})
	copy(m[4:], "ARTEMPLE.MAP")
	var z bytes.Buffer
	zw := gzip.NewWriter(&z)
	_, err := zw.Write(m)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ARTEMPLE.SAV"), z.Bytes(), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("not a save"), 0o644))
	return dir
}

func TestExpand(t *testing.T) {
	dir := writeSlot(t)
	got, err := expand([]string{dir, filepath.Join(dir, "notes.txt")}, DefaultPattern)
	require.NoError(t, err)
	want := []string{
		filepath.Join(dir, "SAVE.DAT"),
		filepath.Join(dir, "ARTEMPLE.SAV"),
		filepath.Join(dir, "notes.txt"),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Diff: %v", diff)
	}

	_, err = expand([]string{filepath.Join(dir, "missing")}, DefaultPattern)
	require.Error(t, err)
}

func TestMatchPattern(t *testing.T) {
	require.True(t, matchPattern("*.SAV", "ARTEMPLE.SAV"))
	require.True(t, matchPattern("*.SAV", "artemple.sav"))
	require.False(t, matchPattern("*.SAV", "SAVE.DAT"))
	require.False(t, matchPattern("[", "x"))
}

func TestRunText(t *testing.T) {
	dir := writeSlot(t)
	var out bytes.Buffer
	require.NoError(t, run([]string{dir}, &out))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	require.Contains(t, lines[0], "by diglet, v1.2R")
	require.Contains(t, lines[1], "Fallout 2 ARTEMPLE.MAP")
	require.Contains(t, lines[1], "scripts 0 (spatial 0, critical 0, item 0, generic 0)")
}

func TestDecodeAllJSON(t *testing.T) {
	dir := writeSlot(t)
	paths, err := expand([]string{dir}, DefaultPattern)
	require.NoError(t, err)
	conf := DefaultConfig()
	results := decodeAll(discardLogger(), paths, conf)

	var out bytes.Buffer
	require.NoError(t, writeJSON(&out, results))
	var decoded []struct {
		Path   string `json:"path"`
		Header *struct {
			PlayerName string `json:"PlayerName"`
		} `json:"header"`
		Map *struct {
			Scripts []any `json:"Scripts"`
		} `json:"map"`
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	require.Len(t, decoded, 2)
	require.Equal(t, "diglet", decoded[0].Header.PlayerName)
	require.NotNil(t, decoded[1].Map)
	require.Empty(t, decoded[1].Map.Scripts)
	require.Empty(t, decoded[1].Error)
}

func TestRunReportsFailures(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "SAVE.DAT")
	require.NoError(t, os.WriteFile(path, []byte("FALLOUT LOAD FILE\x00"), 0o644))

	var out bytes.Buffer
	err := run([]string{path}, &out)
	require.ErrorContains(t, err, "1 of 1 files failed")
	require.Contains(t, out.String(), "invalid save file signature")

	require.ErrorContains(t, run(nil, &out), "usage: fosave")
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
