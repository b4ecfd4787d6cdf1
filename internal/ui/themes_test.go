package ui

import "testing"

func TestSetTheme(t *testing.T) {
	original := GetCurrentTheme()
	defer SetCurrentTheme(original)

	cases := []struct {
		name string
		want string
	}{
		{"dark", "dark"},
		{"light", "light"},
		{"orange", "orange"},
		{"none", "none"},
		{"unknown", "dark"},
	}
	for _, tc := range cases {
		SetTheme(tc.name)
		if got := GetCurrentTheme().Name; got != tc.want {
			t.Errorf("SetTheme(%q) active theme = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestInitTheme(t *testing.T) {
	original := GetCurrentTheme()
	defer SetCurrentTheme(original)

	t.Run("noColor flag disables colors", func(t *testing.T) {
		InitTheme(true)
		if GetCurrentTheme().Name != "none" {
			t.Errorf("InitTheme(true) theme = %q, want none", GetCurrentTheme().Name)
		}
		if ColorSuccess() != "" || ColorReset() != "" {
			t.Error("no-color theme should return empty escape codes")
		}
	})

	t.Run("NO_COLOR env disables colors", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")
		InitTheme(false)
		if GetCurrentTheme().Name != "none" {
			t.Errorf("theme = %q, want none with NO_COLOR set", GetCurrentTheme().Name)
		}
	})
}

func TestGetCurrentTUITheme(t *testing.T) {
	original := GetCurrentTheme()
	defer SetCurrentTheme(original)

	SetTheme("none")
	if got := GetCurrentTUITheme(); got != NoColorTUITheme {
		t.Error("no-color theme should map to NoColorTUITheme")
	}

	SetTheme("dark")
	if got := GetCurrentTUITheme(); got != DarkTUITheme {
		t.Error("dark theme should map to DarkTUITheme")
	}
}
