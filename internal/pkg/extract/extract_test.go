package extract

import (
	"CareerBridge/internal/pkg/consts"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResumeTextPlain(t *testing.T) {
	text, err := ResumeText(consts.MimeTypeText, []byte("  Python developer\nGo, SQL  "))
	require.NoError(t, err)
	assert.Equal(t, "Python developer\nGo, SQL", text)
}

func TestResumeTextDropsInvalidUTF8(t *testing.T) {
	text, err := ResumeText(consts.MimeTypeText, []byte("Caf\xe9 Python\xff dev"))
	require.NoError(t, err)
	assert.True(t, utf8.ValidString(text))
	assert.Equal(t, "Caf Python dev", text)
}

func TestResumeTextUnsupported(t *testing.T) {
	_, err := ResumeText("image/png", []byte{0x89, 0x50})
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestResumeTextBrokenPDF(t *testing.T) {
	_, err := ResumeText(consts.MimeTypePDF, []byte("%PDF-1.4 not really"))
	assert.Error(t, err)
}

func TestStripXML(t *testing.T) {
	xml := `<w:body><w:p><w:r><w:t>Jane  Smith</w:t></w:r></w:p><w:p><w:r><w:t>React,</w:t></w:r><w:r><w:t> Node.js</w:t></w:r></w:p></w:body>`
	assert.Equal(t, "Jane Smith\nReact, Node.js", stripXML(xml))
}
