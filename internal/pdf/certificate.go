package pdf

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// Generator renders completion certificates. Kept as an interface so the
// certificate service can be tested without touching the filesystem.
type Generator interface {
	GenerateCertificate(data CertificateData) (string, error)
}

type CertificateData struct {
	StudentName string
	CourseTitle string
	Code        string
	IssuedAt    time.Time
	Filename    string // base name only; generated from the code when empty
}

type CertificateGenerator struct {
	RootDir  string // storage root, e.g. "./files/certificates"
	FontPath string // path to a TTF; core fonts are used when empty
	fontName string
}

func NewCertificateGenerator(rootDir, fontPath string) *CertificateGenerator {
	g := &CertificateGenerator{
		RootDir:  filepath.Clean(rootDir),
		FontPath: fontPath,
		fontName: "Helvetica",
	}
	if fontPath != "" {
		g.fontName = "DejaVu"
	}
	return g
}

// GenerateCertificate writes a landscape A4 certificate and returns the path
// relative to the storage root.
func (g *CertificateGenerator) GenerateCertificate(data CertificateData) (string, error) {
	filename := data.Filename
	if filename == "" {
		filename = fmt.Sprintf("certificate_%s.pdf", data.Code)
	}
	absPath, err := g.ensureTarget(filename)
	if err != nil {
		return "", err
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetTitle("Certificate of Completion", false)
	pdf.SetAuthor("Prolync", false)
	pdf.SetMargins(25, 20, 25)
	pdf.SetAutoPageBreak(false, 0)

	g.addFont(pdf)
	pdf.AddPage()

	// border
	w, h := pdf.GetPageSize()
	pdf.SetLineWidth(1.2)
	pdf.Rect(10, 10, w-20, h-20, "D")
	pdf.SetLineWidth(0.3)
	pdf.Rect(13, 13, w-26, h-26, "D")

	pdf.SetY(35)
	pdf.SetFont(g.fontName, "B", 30)
	pdf.CellFormat(0, 14, "CERTIFICATE OF COMPLETION", "", 1, "C", false, 0, "")

	pdf.Ln(8)
	pdf.SetFont(g.fontName, "", 13)
	pdf.CellFormat(0, 8, "This is to certify that", "", 1, "C", false, 0, "")

	pdf.Ln(4)
	pdf.SetFont(g.fontName, "B", 24)
	pdf.CellFormat(0, 12, data.StudentName, "", 1, "C", false, 0, "")

	lineY := pdf.GetY() + 1
	pdf.SetLineWidth(0.4)
	pdf.Line(w/2-60, lineY, w/2+60, lineY)

	pdf.Ln(6)
	pdf.SetFont(g.fontName, "", 13)
	pdf.CellFormat(0, 8, "has successfully completed the course", "", 1, "C", false, 0, "")

	pdf.Ln(3)
	pdf.SetFont(g.fontName, "B", 18)
	pdf.CellFormat(0, 10, data.CourseTitle, "", 1, "C", false, 0, "")

	pdf.Ln(10)
	pdf.SetFont(g.fontName, "", 12)
	issued := fmt.Sprintf("Issued on %s", data.IssuedAt.Format("January 2, 2006"))
	pdf.CellFormat(0, 7, issued, "", 1, "C", false, 0, "")

	pdf.SetY(h - 35)
	pdf.SetFont(g.fontName, "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Verification code: %s", data.Code), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 6, "Verify at prolync.in/verify-certificate", "", 1, "C", false, 0, "")

	if err := pdf.OutputFileAndClose(absPath); err != nil {
		return "", err
	}
	return "/" + filepath.ToSlash(filepath.Base(absPath)), nil
}

// ===== helpers =====

func (g *CertificateGenerator) ensureTarget(filename string) (string, error) {
	if err := os.MkdirAll(g.RootDir, 0o755); err != nil {
		return "", fmt.Errorf("create certificates dir: %w", err)
	}
	filename = filepath.Base(filename)
	return filepath.Join(g.RootDir, filename), nil
}

func (g *CertificateGenerator) addFont(pdf *gofpdf.Fpdf) {
	if g.FontPath == "" {
		return
	}
	pdf.AddUTF8Font(g.fontName, "", g.FontPath)
	pdf.AddUTF8Font(g.fontName, "B", g.FontPath)
}
