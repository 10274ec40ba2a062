package pdf

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// Generator renders booking documents; mocked in service tests.
type Generator interface {
	GenerateVoucher(data VoucherData) (string, error)
}

type VoucherGenerator struct {
	RootDir  string // where vouchers are written, e.g. "./files"
	FontPath string // optional TTF for non-Latin names
	fontName string
	now      func() time.Time
}

type VoucherData struct {
	BookingID  string
	Company    string
	TourName   string
	Date       string
	ClientName string
	Pax        int
	Status     string
	Pickup     string
	Notes      string
	Filename   string // base name only; derived from BookingID when empty
}

func NewVoucherGenerator(rootDir, fontPath string) *VoucherGenerator {
	g := &VoucherGenerator{
		RootDir:  filepath.Clean(rootDir),
		FontPath: fontPath,
		fontName: "Helvetica",
		now:      time.Now,
	}
	if fontPath != "" {
		g.fontName = "DejaVu"
	}
	return g
}

// GenerateVoucher writes the voucher and returns its path on disk.
func (g *VoucherGenerator) GenerateVoucher(data VoucherData) (string, error) {
	filename := data.Filename
	if filename == "" {
		filename = fmt.Sprintf("voucher_%s.pdf", data.BookingID)
	}
	absPath, err := g.ensureTarget(filename)
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Booking voucher "+data.BookingID, true)
	pdf.SetAuthor(data.Company, true)
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 20)
	g.addFont(pdf)
	tr := g.translator(pdf)
	pdf.AddPage()

	pdf.SetFont(g.fontName, "B", 18)
	pdf.CellFormat(0, 10, "BOOKING VOUCHER", "", 1, "C", false, 0, "")
	pdf.SetFont(g.fontName, "", 12)
	sub := fmt.Sprintf("%s  |  issued %s", data.BookingID, g.now().Format("02 Jan 2006"))
	pdf.CellFormat(0, 7, tr(sub), "", 1, "C", false, 0, "")
	g.hr(pdf)
	pdf.Ln(3)

	g.sectionTitle(pdf, "Tour")
	g.kvLine(pdf, tr, "Tour", data.TourName)
	g.kvLine(pdf, tr, "Date", data.Date)
	if data.Pickup != "" {
		g.kvLine(pdf, tr, "Pickup", data.Pickup)
	}
	pdf.Ln(2)
	g.hr(pdf)

	g.sectionTitle(pdf, "Guest")
	g.kvLine(pdf, tr, "Lead guest", data.ClientName)
	g.kvLine(pdf, tr, "Travellers", fmt.Sprintf("%d", data.Pax))
	g.kvLine(pdf, tr, "Status", data.Status)
	pdf.Ln(2)

	if data.Notes != "" {
		g.hr(pdf)
		g.sectionTitle(pdf, "Notes")
		pdf.SetFont(g.fontName, "", 11)
		pdf.MultiCell(0, 6, tr(data.Notes), "", "L", false)
		pdf.Ln(2)
	}
	g.hr(pdf)

	pdf.SetFont(g.fontName, "", 10)
	pdf.MultiCell(0, 5, tr("Please present this voucher to your guide at pickup. Issued by "+data.Company+"."), "", "L", false)

	pdf.AliasNbPages("")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-15)
		pdf.SetFont(g.fontName, "", 9)
		pdf.CellFormat(0, 10, fmt.Sprintf("Page %d/{nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
	})

	if err := pdf.OutputFileAndClose(absPath); err != nil {
		return "", fmt.Errorf("write voucher: %w", err)
	}
	return absPath, nil
}

func (g *VoucherGenerator) sectionTitle(pdf *gofpdf.Fpdf, s string) {
	pdf.SetFont(g.fontName, "B", 12)
	pdf.CellFormat(0, 7, s, "", 1, "L", false, 0, "")
	pdf.SetFont(g.fontName, "", 11)
}

func (g *VoucherGenerator) kvLine(pdf *gofpdf.Fpdf, tr func(string) string, key, val string) {
	pdf.SetFont(g.fontName, "B", 11)
	pdf.CellFormat(45, 6, key+":", "", 0, "L", false, 0, "")
	pdf.SetFont(g.fontName, "", 11)
	pdf.CellFormat(0, 6, tr(val), "", 1, "L", false, 0, "")
}

func (g *VoucherGenerator) hr(pdf *gofpdf.Fpdf) {
	y := pdf.GetY() + 1.5
	pdf.SetLineWidth(0.2)
	pdf.Line(20, y, 190, y)
	pdf.SetY(y + 2)
}

func (g *VoucherGenerator) ensureTarget(filename string) (string, error) {
	if err := os.MkdirAll(g.RootDir, 0o755); err != nil {
		return "", fmt.Errorf("create files dir: %w", err)
	}
	return filepath.Join(g.RootDir, filepath.Base(filename)), nil
}

func (g *VoucherGenerator) addFont(pdf *gofpdf.Fpdf) {
	if g.FontPath == "" {
		return
	}
	pdf.AddUTF8Font(g.fontName, "", g.FontPath)
	pdf.AddUTF8Font(g.fontName, "B", g.FontPath)
}

// translator maps UTF-8 to cp1252 for the core fonts; a TTF needs no mapping.
func (g *VoucherGenerator) translator(pdf *gofpdf.Fpdf) func(string) string {
	if g.FontPath != "" {
		return func(s string) string { return s }
	}
	return pdf.UnicodeTranslatorFromDescriptor("")
}
