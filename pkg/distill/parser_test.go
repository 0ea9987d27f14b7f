package distill

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

func TestExtractTextFromDocx(t *testing.T) {
	data := buildDocx(t, `<w:document><w:body>`+
		`<w:p><w:r><w:t>Docker basics &amp; images</w:t></w:r></w:p>`+
		`<w:p><w:r><w:t>build</w:t></w:r><w:r><w:tab/></w:r><w:r><w:t>run</w:t></w:r></w:p>`+
		`<w:p><w:r><w:t>Kube</w:t></w:r><w:r><w:t>rnetes</w:t></w:r></w:p>`+
		`</w:body></w:document>`)

	text, err := ExtractText("notes.docx", data)
	require.NoError(t, err)
	assert.Equal(t, "Docker basics & images\nbuild run\nKubernetes", text)
}

func TestExtractTextFromDocxMissingBody(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	_, err := zw.Create("word/styles.xml")
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	_, err = ExtractText("notes.docx", buf.Bytes())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "document body")
}

func TestExtractTextFromDocxNotAnArchive(t *testing.T) {
	_, err := ExtractText("notes.docx", []byte("not a zip"))
	assert.Error(t, err)
}
