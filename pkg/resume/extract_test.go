package resume

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildDocx(t *testing.T, documentXML string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(documentXML))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestSupported(t *testing.T) {
	assert.True(t, Supported("resume.pdf"))
	assert.True(t, Supported("resume.DOCX"))
	assert.False(t, Supported("resume.doc"))
	assert.False(t, Supported("resume.txt"))
	assert.False(t, Supported("resume"))
}

func TestExtractTextFromDocx(t *testing.T) {
	doc := `<w:document><w:body>` +
		`<w:p><w:r><w:t>Python developer</w:t></w:r></w:p>` +
		`<w:p><w:r><w:t>5 years</w:t><w:tab/><w:t>of experience</w:t></w:r></w:p>` +
		`</w:body></w:document>`

	got, err := ExtractText("resume.docx", buildDocx(t, doc))
	require.NoError(t, err)
	assert.Contains(t, got, "Python developer")
	assert.Contains(t, got, "5 years")
	assert.Contains(t, got, "of experience")
	// paragraphs end up on separate lines
	lines := bytes.Split([]byte(got), []byte("\n"))
	assert.Len(t, lines, 2)
}

func TestExtractTextFromDocxNoDocumentXML(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/styles.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte("<w:styles/>"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	_, err = ExtractText("resume.docx", buf.Bytes())
	assert.ErrorContains(t, err, "document.xml")
}

func TestExtractTextFromBrokenDocx(t *testing.T) {
	_, err := ExtractText("resume.docx", []byte("definitely not a zip archive"))
	assert.Error(t, err)
}

func TestExtractTextFromBrokenPDF(t *testing.T) {
	_, err := ExtractText("resume.pdf", []byte("definitely not a pdf"))
	assert.Error(t, err)
}

func TestExtractTextUnsupportedFormat(t *testing.T) {
	_, err := ExtractText("resume.txt", []byte("plain text"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestCollapseWhitespace(t *testing.T) {
	got := collapseWhitespace("  Python developer \t with\n\n\nDocker  ")
	assert.Equal(t, "Python developer with\nDocker", got)
}
