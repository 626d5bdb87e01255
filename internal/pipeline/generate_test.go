package pipeline

import (
	"io"
	"log/slog"
	"testing"

	"erptgen/internal"
	"erptgen/internal/config"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testBoard() config.Board {
	return config.Board{FolderName: "tdk_rsu_v2", BoardID: 3}
}

func TestGenerate(t *testing.T) {
	gen, err := NewGenerator("RS", testBoard(), testLogger())
	if err != nil {
		t.Fatal(err)
	}

	records := []internal.FaultRecord{
		{
			Member:         "ps1",
			Component:      "U12",
			ComponentIndex: "4",
			ByteOffset:     "5.0",
			BitOffset:      "",
			NativeDesc:     "过压\r\n保护",
			EnglishDesc:    "Over Voltage!",
		},
	}

	out, err := gen.Generate(records)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 1 {
		t.Fatalf("len=%d", len(out))
	}
	rec := out[0]
	if rec.ActiveName != "RS_ERPT_ACTIVE.RSU_PS1_U12_4" {
		t.Fatalf("active name: %q", rec.ActiveName)
	}
	if rec.InjectExpr != "rsspm_erpt.RSSPM_ERPT_Varpool.errRptInject[3][5][0]" {
		t.Fatalf("inject expr: %q", rec.InjectExpr)
	}
	if rec.NativeDesc != "过压 保护" {
		t.Fatalf("native desc: %q", rec.NativeDesc)
	}
	if rec.FaultCode != "" {
		t.Fatalf("fault code must start empty, got %q", rec.FaultCode)
	}
	if rec.Board != "tdk_rsu_v2" {
		t.Fatalf("board tag: %q", rec.Board)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	gen, err := NewGenerator("RS", testBoard(), testLogger())
	if err != nil {
		t.Fatal(err)
	}
	rec := internal.FaultRecord{Member: "Ps1", Component: "U12", ComponentIndex: "4"}
	first, err := gen.Generate([]internal.FaultRecord{rec})
	if err != nil {
		t.Fatal(err)
	}
	second, err := gen.Generate([]internal.FaultRecord{rec})
	if err != nil {
		t.Fatal(err)
	}
	a, b := first[0], second[0]
	if a != b {
		t.Fatalf("not deterministic: %+v vs %+v", a, b)
	}
	if a.ActiveName != "RS_ERPT_ACTIVE.RSU_PS1_U12_4" {
		t.Fatalf("member not uppercased: %q", a.ActiveName)
	}
}

func TestUnknownPlatformUsesDefaultPrefix(t *testing.T) {
	gen, err := NewGenerator("ZZ", testBoard(), testLogger())
	if err != nil {
		t.Fatal(err)
	}
	out, err := gen.Generate([]internal.FaultRecord{{Member: "a", Component: "b", ComponentIndex: "1"}})
	if err != nil {
		t.Fatal(err)
	}
	want := "wsetc.WsetcVarpool.errRptInject[3][0][0]"
	if out[0].InjectExpr != want {
		t.Fatalf("got %q want %q", out[0].InjectExpr, want)
	}
}

func TestModuleCodeRequired(t *testing.T) {
	if _, err := NewGenerator("RS", config.Board{FolderName: "noseparator"}, testLogger()); err == nil {
		t.Fatal("expected error for folder name without module code")
	}
}

func TestOffsetValue(t *testing.T) {
	cases := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{input: "5", want: 5},
		{input: "5.0", want: 5},
		{input: " 12 ", want: 12},
		{input: "1,000", want: 1000},
		{input: "", want: 0},
		{input: "n/a", wantErr: true},
		{input: "garbage", wantErr: true},
	}
	for _, tc := range cases {
		got, err := offsetValue(tc.input)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("offsetValue(%q): expected error", tc.input)
			}
			continue
		}
		if err != nil {
			t.Fatalf("offsetValue(%q): %v", tc.input, err)
		}
		if got != tc.want {
			t.Fatalf("offsetValue(%q)=%d want %d", tc.input, got, tc.want)
		}
	}
}

func TestGenerateRejectsUnparsableOffset(t *testing.T) {
	gen, err := NewGenerator("RS", testBoard(), testLogger())
	if err != nil {
		t.Fatal(err)
	}
	_, err = gen.Generate([]internal.FaultRecord{
		{Member: "ps1", Component: "U12", ComponentIndex: "4", ByteOffset: "garbage", BitOffset: "7"},
	})
	if err == nil {
		t.Fatal("expected error for unparsable byte offset")
	}
}
