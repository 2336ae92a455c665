package hocr

// HOCR represents a parsed hOCR document
type HOCR struct {
	Title    string            // Document title
	Language string            // Document language, if declared
	Metadata map[string]string // ocr-system, ocr-capabilities, ...
	Pages    []Page            // Pages in document order
}

// Page is one page of recognized text
// Corresponds to hOCR element with class: 'ocr_page'
type Page struct {
	ID         string      // Unique identifier
	PageNumber int         // ppageno, 0-based as emitted by the engine
	BBox       BoundingBox // Page coordinates
	Lines      []Line      // Text lines in reading order
}

// Line represents a line of text
type Line struct {
	ID       string      // Unique identifier
	Class    string      // hOCR class the line was read from
	BBox     BoundingBox // Line coordinates
	Baseline string      // Baseline information
	Words    []Word      // Words in this line
}

// Word is a recognized word with bounding box
// Corresponds to hOCR element with class: 'ocrx_word'
type Word struct {
	ID         string      // Unique identifier
	Text       string      // The actual text content
	BBox       BoundingBox // Word coordinates
	Confidence float64     // Recognition confidence (0-100), -1 when absent
}

// BoundingBox represents a rectangle in the page image
// Used to store hOCR 'bbox' property values
type BoundingBox struct {
	X1 float64 // Left coordinate
	Y1 float64 // Top coordinate
	X2 float64 // Right coordinate
	Y2 float64 // Bottom coordinate
}

// Width returns the horizontal extent of the box.
func (b BoundingBox) Width() float64 { return b.X2 - b.X1 }

// Height returns the vertical extent of the box.
func (b BoundingBox) Height() float64 { return b.Y2 - b.Y1 }
