package spritecut

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"
)

func newExportStore() *TrackStore {
	s := NewTrackStore(nil)
	s.CreateTrack("walk", 200)
	s.AppendFrame("walk", Frame{X: 40, Y: 30, W: -30, H: -20})
	s.AppendFrame("walk", Frame{X: 0, Y: 0, W: 4, H: 4})
	s.CreateTrack("idle", 0)
	return s
}

func TestExportJSON(t *testing.T) {
	data, err := ExportJSON(newExportStore())
	if err != nil {
		t.Fatal(err)
	}
	want := `[{"name":"walk","updateRate":200,"frames":[{"x":10,"y":10,"w":30,"h":20},{"x":0,"y":0,"w":4,"h":4}]},` +
		`{"name":"idle","updateRate":0,"frames":[]}]`
	if string(data) != want {
		t.Errorf("ExportJSON =\n%s\nwant\n%s", data, want)
	}

	empty, _ := ExportJSON(NewTrackStore(nil))
	if string(empty) != "[]" {
		t.Errorf("empty store = %s, want []", empty)
	}
}

func TestParseExport(t *testing.T) {
	data, _ := ExportJSON(newExportStore())
	tracks, err := ParseExport(data)
	if err != nil {
		t.Fatal(err)
	}
	if len(tracks) != 2 {
		t.Fatalf("tracks = %d, want 2", len(tracks))
	}
	if tracks[0].Name != "walk" || tracks[0].UpdateRate != 200 || len(tracks[0].Frames) != 2 {
		t.Errorf("walk = %+v", tracks[0])
	}
	if tracks[1].Frames == nil {
		t.Error("empty frames should decode as an empty slice")
	}

	if _, err := ParseExport([]byte(`{"name":1}`)); err == nil {
		t.Error("ParseExport accepted an object")
	}
}

func fillSheet(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestExporterWithoutImage(t *testing.T) {
	dir := t.TempDir()
	x := &Exporter{Dir: dir}
	res, err := x.Export(newExportStore(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if res.JSONPath != filepath.Join(dir, ExportFileName) {
		t.Errorf("JSONPath = %s", res.JSONPath)
	}
	data, err := os.ReadFile(res.JSONPath)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ParseExport(data); err != nil {
		t.Errorf("written file does not parse: %v", err)
	}
	if res.OverviewPath != "" || len(res.StripPaths) != 0 || res.Copied {
		t.Errorf("result = %+v, want JSON only", res)
	}
}

func TestExporterWithImage(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	x := &Exporter{Dir: dir}
	sheet := NewSheet(fillSheet(64, 64, color.White), "sheet.png")
	res, err := x.Export(newExportStore(), sheet)
	if err != nil {
		t.Fatal(err)
	}
	if res.OverviewPath != filepath.Join(dir, OverviewFileName) {
		t.Errorf("OverviewPath = %s", res.OverviewPath)
	}
	if len(res.StripPaths) != 1 || res.StripPaths[0] != filepath.Join(dir, "walk_strip.png") {
		t.Errorf("StripPaths = %v", res.StripPaths)
	}
	for _, p := range append([]string{res.OverviewPath}, res.StripPaths...) {
		if _, err := os.Stat(p); err != nil {
			t.Errorf("missing %s: %v", p, err)
		}
	}
}

func TestEditorExportNow(t *testing.T) {
	e, _ := newTestEditor(t)
	e.Store.CreateTrack("walk", 100)
	e.ExportNow()
	if got := lastLog(e); got == "" || e.Logs.Entries()[0].IsError {
		t.Errorf("log = %q", got)
	}
	if _, err := os.Stat(filepath.Join(e.exporter.Dir, ExportFileName)); err != nil {
		t.Error(err)
	}
}

func TestRenderStrip(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 16, 16))
	red := color.RGBA{255, 0, 0, 255}
	blue := color.RGBA{0, 0, 255, 255}
	src.Set(0, 0, red)
	src.Set(8, 5, blue)

	tr := &Track{Name: "t"}
	tr.push(Frame{X: 0, Y: 0, W: 4, H: 4})
	tr.push(Frame{X: 10, Y: 0, W: -2, H: 6})
	tr.push(Frame{X: 14, Y: 14, W: 10, H: 10}) // clipped to 2x2

	strip := RenderStrip(src, tr)
	if strip == nil {
		t.Fatal("RenderStrip = nil")
	}
	if b := strip.Bounds(); b.Dx() != 8 || b.Dy() != 6 {
		t.Fatalf("strip = %v, want 8x6", b)
	}
	if got := color.RGBAModel.Convert(strip.At(0, 0)); got != red {
		t.Errorf("At(0,0) = %v, want red", got)
	}
	if got := color.RGBAModel.Convert(strip.At(4, 5)); got != blue {
		t.Errorf("At(4,5) = %v, want blue", got)
	}

	if RenderStrip(src, &Track{}) != nil {
		t.Error("empty track should give nil")
	}
}

func TestRenderOverview(t *testing.T) {
	src := fillSheet(32, 32, color.White)
	s := NewTrackStore(nil)
	s.CreateTrack("walk", 100)
	s.AppendFrame("walk", Frame{X: 20, Y: 20, W: -10, H: -10})

	out := RenderOverview(src, s)
	if out.Bounds() != src.Bounds() {
		t.Fatalf("bounds = %v", out.Bounds())
	}
	// The outline runs along the frame's left edge, x = 10.
	_, g, b, _ := out.At(10, 15).RGBA()
	if g>>8 > 230 && b>>8 > 230 {
		t.Errorf("no outline at (10,15)")
	}
	if r, g, b, _ := out.At(15, 15).RGBA(); r>>8 != 255 || g>>8 != 255 || b>>8 != 255 {
		t.Errorf("interior changed at (15,15)")
	}
}

func TestRenderOffsetOrigin(t *testing.T) {
	full := fillSheet(40, 40, color.White)
	blue := color.RGBA{0, 0, 255, 255}
	full.Set(8, 8, blue)
	src := full.SubImage(image.Rect(8, 8, 40, 40))

	s := NewTrackStore(nil)
	s.CreateTrack("walk", 100)
	s.AppendFrame("walk", Frame{X: 0, Y: 0, W: 4, H: 4})
	tr, _ := s.Track("walk")

	strip := RenderStrip(src, tr)
	if strip == nil {
		t.Fatal("RenderStrip = nil")
	}
	if got := color.RGBAModel.Convert(strip.At(0, 0)); got != blue {
		t.Errorf("strip At(0,0) = %v, want blue", got)
	}

	out := RenderOverview(src, s)
	if b := out.Bounds(); b != image.Rect(0, 0, 32, 32) {
		t.Fatalf("overview bounds = %v, want 32x32 at origin", b)
	}
	// Same frame, same place: the left edge of the outline is column 0.
	if _, _, b, _ := out.At(0, 2).RGBA(); b>>8 > 128 {
		t.Errorf("no outline at (0,2)")
	}
	if r, g, b, _ := out.At(20, 20).RGBA(); r>>8 != 255 || g>>8 != 255 || b>>8 != 255 {
		t.Errorf("outside the frame changed at (20,20)")
	}
}
