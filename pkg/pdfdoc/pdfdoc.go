// Package pdfdoc opens PDF files for page extraction.
//
// A Document combines three libraries behind one value:
//
//   - pdfcpu validates the file structure when it is opened, so corrupt input
//     is rejected before any page work starts.
//   - ledongthuc/pdf reads each page's native text layer as positioned glyphs,
//     which are coalesced into word-sized runs for layout analysis.
//   - go-fitz (MuPDF) rasterises pages for OCR.
//
// Page numbers are 1-based throughout.
//
// Example:
//
//	doc, err := pdfdoc.OpenFile("notes.pdf")
//	if err != nil {
//	    return err
//	}
//	defer doc.Close()
//
//	runs, err := doc.TextRuns(ctx, 1)
//	img, err := doc.Render(ctx, 1, 2.0)
package pdfdoc
