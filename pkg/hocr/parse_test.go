package hocr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
)

const tesseractHOCR = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE html PUBLIC "-//W3C//DTD XHTML 1.0 Transitional//EN"
    "http://www.w3.org/TR/xhtml1/DTD/xhtml1-transitional.dtd">
<html xmlns="http://www.w3.org/1999/xhtml" xml:lang="en" lang="en">
 <head>
  <title></title>
  <meta http-equiv="Content-Type" content="text/html;charset=utf-8"/>
  <meta name='ocr-system' content='tesseract 5.3.0' />
  <meta name='ocr-capabilities' content='ocr_page ocr_carea ocr_par ocr_line ocrx_word ocrp_wconf'/>
 </head>
 <body>
  <div class='ocr_page' id='page_1' title='image "unknown"; bbox 0 0 1224 1584; ppageno 0; scan_res 144 144'>
   <div class='ocr_carea' id='block_1_1' title="bbox 100 80 900 200">
    <p class='ocr_par' id='par_1_1' lang='eng' title="bbox 100 80 900 200">
     <span class='ocr_header' id='line_1_1' title="bbox 100 80 600 120; baseline 0 -8; x_size 40">
      <span class='ocrx_word' id='word_1_1' title='bbox 100 80 300 120; x_wconf 96'>Photosynthesis</span>
     </span>
     <span class='ocr_line' id='line_1_2' title="bbox 100 150 900 200; baseline 0 -10">
      <span class='ocrx_word' id='word_1_2' title='bbox 100 150 200 200; x_wconf 91'>Plants</span>
      <span class='ocrx_word' id='word_1_3' title='bbox 210 150 300 200; x_wconf 12'>~~</span>
      <span class='ocrx_word' id='word_1_4' title='bbox 310 150 420 200; x_wconf 88'><strong>convert</strong></span>
      <span class='ocrx_word' id='word_1_5' title='bbox 430 150 520 200; x_wconf 90'>light.</span>
     </span>
    </p>
   </div>
   <div class='ocr_carea' id='block_1_2' title="bbox 100 300 900 340">
    <p class='ocr_par' id='par_1_2' title="bbox 100 300 900 340">
     <span class='ocr_caption' id='line_1_3' title="bbox 100 300 900 340">
      <span class='ocrx_word' id='word_1_6' title='bbox 100 300 200 340; x_wconf 70'>Figure</span>
      <span class='ocrx_word' id='word_1_7' title='bbox 210 300 260 340; x_wconf 75'>1</span>
     </span>
    </p>
   </div>
  </div>
 </body>
</html>`

func TestParse(t *testing.T) {
	doc, err := Parse([]byte(tesseractHOCR))
	require.NoError(t, err)

	assert.Equal(t, "en", doc.Language)
	assert.Equal(t, "tesseract 5.3.0", doc.Metadata["ocr-system"])
	require.Len(t, doc.Pages, 1)

	page := doc.Pages[0]
	assert.Equal(t, "page_1", page.ID)
	assert.Equal(t, 0, page.PageNumber)
	assert.Equal(t, BoundingBox{X1: 0, Y1: 0, X2: 1224, Y2: 1584}, page.BBox)
	require.Len(t, page.Lines, 3)

	assert.Equal(t, "ocr_header", page.Lines[0].Class)
	assert.Equal(t, "ocr_line", page.Lines[1].Class)
	assert.Equal(t, "ocr_caption", page.Lines[2].Class)
	assert.Equal(t, "0 -10", page.Lines[1].Baseline)

	words := page.Lines[1].Words
	require.Len(t, words, 4)
	assert.Equal(t, "convert", words[2].Text)
	assert.Equal(t, 88.0, words[2].Confidence)
	assert.Equal(t, 110.0, words[2].BBox.Width())
	assert.Equal(t, 50.0, words[2].BBox.Height())
}

func TestPageText(t *testing.T) {
	doc, err := Parse([]byte(tesseractHOCR))
	require.NoError(t, err)
	page := doc.Pages[0]

	assert.Equal(t, "Photosynthesis\nPlants ~~ convert light.\nFigure 1", page.Text(0))
	assert.Equal(t, "Photosynthesis\nPlants convert light.\nFigure 1", page.Text(50))
	assert.Equal(t, "Photosynthesis", page.Text(95))
}

func TestMeanConfidence(t *testing.T) {
	doc, err := Parse([]byte(tesseractHOCR))
	require.NoError(t, err)

	// (96 + 91 + 12 + 88 + 90 + 70 + 75) / 7
	assert.InDelta(t, 74.571, doc.Pages[0].MeanConfidence(), 0.001)
	assert.Equal(t, 0.0, Page{}.MeanConfidence())
}

func TestParseNoPages(t *testing.T) {
	_, err := Parse([]byte("<html><body><p>plain</p></body></html>"))
	assert.Error(t, err)
}

func TestParseLatin1(t *testing.T) {
	src := `<html><head><meta http-equiv="Content-Type" content="text/html; charset=iso-8859-1"></head><body>
<div class="ocr_page" title="bbox 0 0 10 10"><span class="ocr_line"><span class="ocrx_word">café</span></span></div>
</body></html>`
	encoded, err := charmap.ISO8859_1.NewEncoder().String(src)
	require.NoError(t, err)

	doc, err := Parse([]byte(encoded))
	require.NoError(t, err)
	assert.Equal(t, "café", doc.Pages[0].Text(0))
}

func TestParseTitle(t *testing.T) {
	props := ParseTitle("bbox 1 2 3 4; x_wconf 95; ;baseline 0.01 -3")
	assert.Equal(t, []string{"1", "2", "3", "4"}, props["bbox"])
	assert.Equal(t, []string{"95"}, props["x_wconf"])
	assert.Equal(t, []string{"0.01", "-3"}, props["baseline"])

	assert.Nil(t, ParseBoundingBoxFromTitle("x_wconf 3"))
	assert.Nil(t, ParseBoundingBoxFromTitle("bbox 1 2 x 4"))
	assert.Equal(t, &BoundingBox{1, 2, 3, 4}, ParseBoundingBoxFromTitle("bbox 1 2 3 4"))
}
