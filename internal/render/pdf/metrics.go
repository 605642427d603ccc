package pdf

import (
	"sync"

	"codeberg.org/go-pdf/fpdf"

	"github.com/gompdf/gomdialog/internal/text"
)

// courierLineHeight is the line pitch of Courier relative to its size.
const courierLineHeight = 1.2

// Singleton PDF instance for text measurement using go-pdf/fpdf metrics
var (
	measureOnce sync.Once
	measurePDF  *fpdf.Fpdf
	measureMu   sync.Mutex
)

var _ = text.Metrics(CourierMetrics{})

// CourierMetrics measures the core Courier font at Size points, the font
// storyboard PDFs are written in.
type CourierMetrics struct {
	Size float64
}

func initMeasurePDF() {
	measurePDF = fpdf.New("P", "pt", "", "")
	measurePDF.SetFont("Courier", "", 12)
}

func (m CourierMetrics) MeasureCharacter(r rune) (float64, float64) {
	if m.Size <= 0 {
		return 0, 0
	}
	measureOnce.Do(initMeasurePDF)
	measureMu.Lock()
	defer measureMu.Unlock()
	measurePDF.SetFontSize(m.Size)
	return measurePDF.GetStringWidth(string(r)), m.Size * courierLineHeight
}
