// Package gdocai provides a Google Document AI OCR engine for page extraction.
//
// The engine sends one rendered page image per request to a Document AI OCR
// processor and converts the response into the hOCR object model of package
// hocr, so that text reconstruction and confidence filtering work exactly as
// they do for Tesseract output.
//
// Key Features:
//
// - One processor client per engine, reused for every page of a run
// - Lines rebuilt from Document AI tokens, in the processor's reading order
// - Word confidences carried over (0-100) for filtering and reporting
// - Raw responses dumped as JSON at trace level for debugging
//
// Main Functions:
//
// - NewEngine: Creates an engine for a processor
// - Factory: Adapts NewEngine to ocr.Factory for use with ocr.Worker
// - PageFromProto: Converts a Document AI page to an hocr.Page
//
// Usage Requirements:
//
// - Google Cloud project with Document AI API enabled
// - Document AI processor configured for OCR
// - Authentication via GOOGLE_APPLICATION_CREDENTIALS or Config.CredentialsFile
package gdocai
