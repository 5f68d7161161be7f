package theme

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{"#fff", color.NRGBA{255, 255, 255, 255}, false},
		{"#ff0000", color.NRGBA{255, 0, 0, 255}, false},
		{"#00000066", color.NRGBA{0, 0, 0, 102}, false},
		{"steelblue", color.NRGBA{70, 130, 180, 255}, false},
		{"Red", color.NRGBA{255, 0, 0, 255}, false},
		{"#12345", color.NRGBA{}, true},
		{"#gggggg", color.NRGBA{}, true},
		{"notacolor", color.NRGBA{}, true},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if (err != nil) != tt.wantErr {
			t.Fatalf("ParseColor(%q) err = %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestHex(t *testing.T) {
	if got := Hex(color.NRGBA{0xAB, 0xCD, 0xEF, 0xFF}); got != "#ABCDEF" {
		t.Fatalf("Hex = %q", got)
	}
	if got := Hex(color.NRGBA{0, 0, 0, 0x66}); got != "#00000066" {
		t.Fatalf("Hex = %q", got)
	}
}

func TestEmbeddedDefaultMatchesBuiltin(t *testing.T) {
	got, err := NewLoader().Load("default")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if diff := cmp.Diff(Default(), got); diff != "" {
		t.Fatalf("embedded default differs (-builtin +embedded):\n%s", diff)
	}
}

func TestEmbeddedThemesParse(t *testing.T) {
	names := Names()
	if len(names) < 2 {
		t.Fatalf("embedded themes = %v", names)
	}
	for _, name := range names {
		if _, err := NewLoader().Load(name); err != nil {
			t.Errorf("Load(%q): %v", name, err)
		}
	}
}

func TestParseKeepsDefaultsAndIgnoresUnknown(t *testing.T) {
	in := `# comment
Name: Mine
dim: #11223344
Sparkle: #FFFFFF
Border: white
`
	got, err := Parse(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := Default()
	want.Name = "Mine"
	want.Dim = color.NRGBA{0x11, 0x22, 0x33, 0x44}
	want.Border = color.NRGBA{255, 255, 255, 255}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("theme mismatch (-want +got):\n%s", diff)
	}
	if _, err := Parse(strings.NewReader("Dim: nope\n")); err == nil {
		t.Fatal("expected error for a bad colour")
	}
}

func TestLoaderOrder(t *testing.T) {
	dir := t.TempDir()
	cfgDir := filepath.Join(dir, "cfg")
	sysDir := filepath.Join(dir, "sys")
	for _, d := range []string{cfgDir, sysDir} {
		if err := os.MkdirAll(d, 0o755); err != nil {
			t.Fatal(err)
		}
	}
	write := func(path, body string) {
		t.Helper()
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	write(filepath.Join(cfgDir, "solar.theme"), "Name: cfg\n")
	write(filepath.Join(sysDir, "solar.theme"), "Name: sys\n")
	write(filepath.Join(sysDir, "moon.theme"), "Name: moon\n")
	write(filepath.Join(cfgDir, "dark.theme"), "Name: shadowed\n")
	direct := filepath.Join(dir, "direct.theme")
	write(direct, "Name: direct\n")

	l := &Loader{ConfigDir: cfgDir, SystemDir: sysDir}
	tests := map[string]string{
		"":      "Default",
		direct:  "direct",
		"dark":  "Dark",
		"solar": "cfg",
		"moon":  "moon",
	}
	for name, want := range tests {
		got, err := l.Load(name)
		if err != nil {
			t.Fatalf("Load(%q): %v", name, err)
		}
		if got.Name != want {
			t.Errorf("Load(%q).Name = %q, want %q", name, got.Name, want)
		}
	}
	if _, err := l.Load("missing"); err == nil {
		t.Fatal("expected error for a missing theme")
	}
}

func TestStyle(t *testing.T) {
	th := Default()
	th.Dim = color.NRGBA{1, 2, 3, 4}
	st := th.Style(14)
	if st.Dim != (color.NRGBA{1, 2, 3, 4}) || st.HandleSize != 14 {
		t.Fatalf("style = %+v", st)
	}
	if st := th.Style(0); st.HandleSize != 10 {
		t.Fatalf("default handle size = %d", st.HandleSize)
	}
}
