package services

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"go.uber.org/zap"

	"voyager/internal/planner"
	"voyager/pkg/utils"
)

const (
	FormatMarkdown = "markdown"
	FormatPDF      = "pdf"
)

type ExportServiceInterface interface {
	RenderMarkdown(plan planner.Plan) (string, error)
	RenderPDF(plan planner.Plan) ([]byte, error)
	Render(plan planner.Plan, format string) (Document, error)
}

type Document struct {
	Body        []byte
	ContentType string
	Filename    string
}

type ExportService struct {
	log *zap.Logger
}

func NewExportService(log *zap.Logger) ExportServiceInterface {
	return &ExportService{log: log}
}

// Render dispatches on format; an empty format means markdown.
func (s *ExportService) Render(plan planner.Plan, format string) (Document, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", FormatMarkdown, "md":
		md, err := s.RenderMarkdown(plan)
		if err != nil {
			return Document{}, err
		}
		return Document{
			Body:        []byte(md),
			ContentType: "text/markdown; charset=utf-8",
			Filename:    exportName(plan, "md"),
		}, nil
	case FormatPDF:
		pdf, err := s.RenderPDF(plan)
		if err != nil {
			return Document{}, err
		}
		return Document{
			Body:        pdf,
			ContentType: "application/pdf",
			Filename:    exportName(plan, "pdf"),
		}, nil
	default:
		return Document{}, fmt.Errorf("%w: %q", utils.ErrUnsupportedFormat, format)
	}
}

func exportName(plan planner.Plan, ext string) string {
	dest := strings.ToLower(strings.ReplaceAll(plan.Summary.Destination, " ", "-"))
	return fmt.Sprintf("trip-%s-%s.%s", dest, plan.Summary.StartDate, ext)
}

func (s *ExportService) RenderMarkdown(plan planner.Plan) (string, error) {
	if !plan.Ready() || plan.Summary == nil {
		return "", utils.ErrPlanNotReady
	}
	sum := plan.Summary

	var b strings.Builder
	fmt.Fprintf(&b, "# Trip to %s\n\n", sum.Destination)
	fmt.Fprintf(&b, "**Dates:** %s to %s  \n", sum.StartDate, sum.EndDate)
	fmt.Fprintf(&b, "**Duration:** %d days  \n", sum.NDays)
	fmt.Fprintf(&b, "**Estimated cost:** ₹%d (%s stay)\n\n", sum.EstCostINR, sum.StayTier)

	b.WriteString("## Day-by-day\n")
	for _, day := range plan.Days {
		fmt.Fprintf(&b, "\n### %s\n\n", day.Date)
		if len(day.Items) == 0 {
			b.WriteString("- Free day\n")
			continue
		}
		for _, item := range day.Items {
			fmt.Fprintf(&b, "- %s — %s (%s) — %s\n", item.Time, item.Name, item.Category, item.Notes)
		}
	}

	b.WriteString("\n## Notes & Assumptions\n\n")
	fmt.Fprintf(&b, "- %s\n", sum.Notes)
	for _, a := range plan.Assumptions {
		fmt.Fprintf(&b, "- %s\n", a)
	}
	return b.String(), nil
}

func (s *ExportService) RenderPDF(plan planner.Plan) ([]byte, error) {
	md, err := s.RenderMarkdown(plan)
	if err != nil {
		return nil, err
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.SetAutoPageBreak(true, 15)
	pdf.SetTitle("Trip to "+plan.Summary.Destination, true)
	pdf.AddPage()
	pdf.SetFont("Arial", "", 10)

	source := []byte(md)
	doc := goldmark.New().Parser().Parse(text.NewReader(source))
	r := &pdfRenderer{
		pdf:       pdf,
		source:    source,
		translate: pdf.UnicodeTranslatorFromDescriptor(""),
		size:      10,
	}
	if err := ast.Walk(doc, r.walk); err != nil {
		s.log.Error("Failed to render PDF", zap.Error(err))
		return nil, fmt.Errorf("failed to render PDF: %w", err)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		s.log.Error("Failed to write PDF", zap.Error(err))
		return nil, fmt.Errorf("failed to write PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// pdfRenderer draws the subset of markdown RenderMarkdown produces.
type pdfRenderer struct {
	pdf       *fpdf.Fpdf
	source    []byte
	translate func(string) string
	size      float64
	bold      bool
	listDepth int
}

// The core fonts are cp1252 and have no rupee sign.
var pdfReplacer = strings.NewReplacer("₹", "Rs ")

func (r *pdfRenderer) write(s string) {
	r.pdf.Write(5, r.translate(pdfReplacer.Replace(s)))
}

func (r *pdfRenderer) setFont() {
	style := ""
	if r.bold {
		style = "B"
	}
	r.pdf.SetFont("Arial", style, r.size)
}

func (r *pdfRenderer) walk(n ast.Node, entering bool) (ast.WalkStatus, error) {
	switch node := n.(type) {
	case *ast.Heading:
		if entering {
			r.pdf.Ln(4)
			sizes := map[int]float64{1: 16, 2: 13, 3: 11}
			size, ok := sizes[node.Level]
			if !ok {
				size = 10
			}
			r.pdf.SetFont("Arial", "B", size)
		} else {
			r.pdf.Ln(7)
			r.setFont()
		}
	case *ast.Paragraph:
		if !entering && r.listDepth == 0 {
			r.pdf.Ln(6)
		}
	case *ast.List:
		if entering {
			r.listDepth++
		} else {
			r.listDepth--
			r.pdf.Ln(2)
		}
	case *ast.ListItem:
		if entering {
			r.write("  - ")
		} else {
			r.pdf.Ln(5)
		}
	case *ast.Emphasis:
		if node.Level == 2 {
			r.bold = entering
			r.setFont()
		}
	case *ast.Text:
		if entering {
			r.write(string(node.Segment.Value(r.source)))
			if node.HardLineBreak() {
				r.pdf.Ln(5)
			} else if node.SoftLineBreak() {
				r.write(" ")
			}
		}
	}
	return ast.WalkContinue, nil
}
