package pdf

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestGenerateVoucherWritesPDF(t *testing.T) {
	dir := t.TempDir()
	g := NewVoucherGenerator(dir, "")

	path, err := g.GenerateVoucher(VoucherData{
		BookingID:  "B-2001",
		Company:    "Summit Trails",
		TourName:   "Sunrise Hike",
		Date:       "2026-11-02",
		ClientName: "Ana Müller",
		Pax:        2,
		Status:     "Confirmed",
		Notes:      "Vegetarian lunch",
	})
	if err != nil {
		t.Fatalf("GenerateVoucher: %v", err)
	}
	if filepath.Dir(path) != dir || filepath.Base(path) != "voucher_B-2001.pdf" {
		t.Fatalf("unexpected path %s", path)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read voucher: %v", err)
	}
	if !bytes.HasPrefix(raw, []byte("%PDF")) {
		t.Fatalf("output is not a PDF")
	}
}

func TestGenerateVoucherStripsDirectories(t *testing.T) {
	dir := t.TempDir()
	g := NewVoucherGenerator(dir, "")

	path, err := g.GenerateVoucher(VoucherData{BookingID: "B-1", Pax: 1, Filename: "../../escape.pdf"})
	if err != nil {
		t.Fatalf("GenerateVoucher: %v", err)
	}
	if path != filepath.Join(dir, "escape.pdf") {
		t.Fatalf("path escaped root dir: %s", path)
	}
}
