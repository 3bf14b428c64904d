package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/vdobler/studychart"
	"github.com/vdobler/studychart/data"
)

func setFlags(t *testing.T) {
	t.Helper()
	width, height, textSize = 800, 400, 16
	periodName, fixturePath, seed, verbose = "month", "", 1, false
}

func TestDescribe(t *testing.T) {
	setFlags(t)
	_, sheet, err := compose("hourly-breakdown")
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := describe(&buf, sheet, studychart.DefaultTable()); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")

	// Header, two scales, then two bars, three axes and the grid.
	if len(lines) != 9 {
		t.Fatalf("got %d lines, want 9:\n%s", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[0], "hourly-breakdown  frame=48") {
		t.Errorf("header %q", lines[0])
	}
	for i, want := range []string{
		`bars  primary    "Reviews"`,
		`bars  secondary  "% Correct"`,
		`"Hours"`,
		"side=left",
		"side=right",
		"grid",
	} {
		if !strings.Contains(lines[3+i], want) {
			t.Errorf("row %d %q lacks %q", i, lines[3+i], want)
		}
	}
}

func TestComposeFlags(t *testing.T) {
	setFlags(t)
	if _, _, err := compose("histogram"); err == nil {
		t.Errorf("unknown kind accepted")
	}

	periodName = "week"
	if _, _, err := compose("forecast"); err == nil {
		t.Errorf("unknown period accepted")
	}

	setFlags(t)
	width = 0
	if _, _, err := compose("forecast"); err == nil {
		t.Errorf("empty canvas accepted")
	}
}

func TestDump(t *testing.T) {
	setFlags(t)
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)
	if err := runDump(cmd, nil); err != nil {
		t.Fatal(err)
	}

	fx, err := data.LoadFixture(&buf)
	if err != nil {
		t.Fatal(err)
	}
	for _, k := range studychart.Kinds() {
		if _, err := fx.Stats(k, studychart.AllTime); err != nil {
			t.Errorf("dumped fixture: %v", err)
		}
	}
}
