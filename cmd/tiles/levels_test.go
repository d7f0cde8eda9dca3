package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-tiles/internal/core"
	"github.com/vovakirdan/tui-tiles/internal/world"
)

func TestPrintLevels(t *testing.T) {
	var buf bytes.Buffer
	printLevels(&buf, []world.LevelFile{
		{Level: world.Level{ID: "1", Name: "1", Width: 24, Height: 13, Spawn: core.Vec2i(2, 10)}},
		{Level: world.Level{ID: "caves", Name: "Caves", Width: 24, Height: 13, Spawn: core.Vec2i(1, 9)}},
	})
	out := buf.String()

	for _, want := range []string{"24x13", "2,10", "caves", "Caves", "ansi", "tcell"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPrintLevelsEmpty(t *testing.T) {
	var buf bytes.Buffer
	printLevels(&buf, nil)
	if !strings.Contains(buf.String(), "No levels") {
		t.Errorf("output = %q", buf.String())
	}
}
