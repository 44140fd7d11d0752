package render

import (
	"strings"
	"testing"
	"time"

	"github.com/Iron-Ham/sixgun/internal/match"
)

func TestEventAndWarning(t *testing.T) {
	var buf strings.Builder
	c := NewConsole(&buf, false, true)

	c.Event("the trigger advanced")
	c.Warning("invalid item")

	out := buf.String()
	if !strings.Contains(out, "➤ the trigger advanced") {
		t.Errorf("output missing event line: %q", out)
	}
	if !strings.Contains(out, "⚠ invalid item") {
		t.Errorf("output missing warning line: %q", out)
	}
}

func TestSpectatorSuppressed(t *testing.T) {
	var buf strings.Builder
	c := NewConsole(&buf, false, false)

	c.Spectator("Bill holds: Push")
	c.Cylinder(match.CylinderView{Chambers: 2, Position: 0, Loaded: []bool{true, false}})

	if got := buf.String(); got != "" {
		t.Errorf("player-safe console printed ground truth: %q", got)
	}
}

func TestCylinderDiagram(t *testing.T) {
	var buf strings.Builder
	c := NewConsole(&buf, false, true)

	c.Cylinder(match.CylinderView{Chambers: 3, Position: 1, Loaded: []bool{true, false, true}})

	out := buf.String()
	if !strings.Contains(out, "cylinder (2/3):") {
		t.Errorf("diagram missing trigger summary: %q", out)
	}
	if !strings.Contains(out, "● chamber 1") || !strings.Contains(out, "○ chamber 2") {
		t.Errorf("diagram missing round markers: %q", out)
	}
	if !strings.Contains(out, "👉 ○ chamber 2") {
		t.Errorf("diagram missing trigger pointer: %q", out)
	}
}

func TestHeaderCentersMultibyteText(t *testing.T) {
	var buf strings.Builder
	c := NewConsole(&buf, false, true)

	// 7 display cells, 14 bytes; centering must count cells, not bytes.
	text := "дуэль ○"
	c.Header(text)

	line := strings.Trim(buf.String(), "\n")
	wantPad := (80 - 7) / 2
	if got := len(line) - len(text); got != wantPad {
		t.Errorf("leading pad = %d spaces, want %d", got, wantPad)
	}
}

func TestAgentResponseTruncatesLongLines(t *testing.T) {
	var buf strings.Builder
	c := NewConsole(&buf, false, true)

	long := strings.Repeat("x", 200)
	c.AgentResponse("Bill", long+"\nshort", 1500*time.Millisecond)

	out := buf.String()
	if !strings.Contains(out, "Bill responds (1.50s)") {
		t.Errorf("output missing response header: %q", out)
	}
	if strings.Contains(out, long) {
		t.Error("overlong line was not truncated")
	}
	if !strings.Contains(out, "...") {
		t.Errorf("truncated line missing ellipsis: %q", out)
	}
	if !strings.Contains(out, "short") {
		t.Errorf("short line dropped: %q", out)
	}
}
