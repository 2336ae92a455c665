// Package hocr reads hOCR, the HTML-based format OCR engines such as Tesseract
// use to report recognised text with its layout.
//
// Only the part of the hierarchy needed to rebuild text is modelled:
// Document → Pages → Lines → Words, each with its bounding box. Areas and
// paragraphs are flattened away; line order follows document order, which is
// the engine's reading order.
//
// Key Types:
//
// - HOCR: the parsed document
// - Page: one element with class 'ocr_page'
// - Line: a text line ('ocr_line', 'ocr_header', 'ocr_caption', 'ocr_textfloat')
// - Word: a recognised word ('ocrx_word') with its confidence
// - BoundingBox: a rectangle in image pixel coordinates
//
// Main Functions:
//
// - Parse: parses hOCR HTML into the object model
// - Page.Text: rebuilds the page text, optionally dropping low-confidence words
package hocr
