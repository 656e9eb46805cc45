package cmd

import "testing"

func TestForceTrueColorSkipsAnsiTheme(t *testing.T) {
	if forceTrueColor("terminal") {
		t.Fatal("ANSI-16 theme must not force a truecolor profile")
	}
	for _, name := range []string{"flexoki-dark", "flexoki-light", ""} {
		if !forceTrueColor(name) {
			t.Fatalf("theme %q should force truecolor", name)
		}
	}
}
