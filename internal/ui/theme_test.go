package ui

import "testing"

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	want := []string{"Nightfox", "Kanagawa", "Slate"}
	if len(names) != len(want) {
		t.Fatalf("ThemeNames() = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("ThemeNames() = %v, want %v", names, want)
		}
	}
}

func TestNextTheme(t *testing.T) {
	tests := []struct {
		current string
		want    string
	}{
		{"Nightfox", "Kanagawa"},
		{"Kanagawa", "Slate"},
		{"Slate", "Nightfox"},
		{"Unknown", "Nightfox"},
	}
	for _, tt := range tests {
		if got := NextTheme(tt.current); got != tt.want {
			t.Fatalf("NextTheme(%s) = %q, want %q", tt.current, got, tt.want)
		}
	}
}

func TestGetTheme(t *testing.T) {
	for _, name := range ThemeNames() {
		if got := GetTheme(name).Name; got != name {
			t.Fatalf("GetTheme(%s).Name = %q", name, got)
		}
	}

	unknown := GetTheme("Dracula")
	if unknown.Name != defaultThemeName {
		t.Fatalf("GetTheme(Dracula).Name = %q, want %s (fallback)", unknown.Name, defaultThemeName)
	}
}

func TestThemesDefineEveryColor(t *testing.T) {
	for _, name := range ThemeNames() {
		th := GetTheme(name)
		colors := map[string]string{
			"Background": th.Background, "Surface": th.Surface, "SurfaceAlt": th.SurfaceAlt,
			"FocusBg": th.FocusBg, "SelectionBg": th.SelectionBg, "SelectionText": th.SelectionText,
			"Border": th.Border, "BorderFocus": th.BorderFocus, "Text": th.Text, "Muted": th.Muted,
			"Faint": th.Faint, "Accent": th.Accent, "Warning": th.Warning, "Danger": th.Danger, "Info": th.Info,
		}
		for field, value := range colors {
			if value == "" {
				t.Fatalf("%s theme has empty %s", name, field)
			}
		}
	}
}

func TestLevelStyle(t *testing.T) {
	styles := GetTheme("Slate").Styles()

	if got := styles.LevelStyle("ERR").GetForeground(); got != styles.DangerText.GetForeground() {
		t.Fatalf("LevelStyle(ERR) foreground = %v, want danger", got)
	}
	if got := styles.LevelStyle("WRN").GetForeground(); got != styles.WarningText.GetForeground() {
		t.Fatalf("LevelStyle(WRN) foreground = %v, want warning", got)
	}
	if got := styles.LevelStyle("INF").GetForeground(); got != styles.InfoText.GetForeground() {
		t.Fatalf("LevelStyle(INF) foreground = %v, want info", got)
	}
	if got := styles.LevelStyle("").GetForeground(); got != styles.FaintText.GetForeground() {
		t.Fatalf("LevelStyle(empty) foreground = %v, want faint", got)
	}
}
