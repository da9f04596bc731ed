package extract

import (
	"CareerBridge/internal/pkg/consts"
	"bytes"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
	"github.com/pkg/errors"
)

// MaxTextLength 抽取文本的最大长度（按字符）
const MaxTextLength = 200000

var (
	ErrUnsupportedType = errors.New("unsupported file type")

	xmlTagPattern   = regexp.MustCompile(`<[^>]+>`)
	paragraphEnd    = regexp.MustCompile(`</w:p>`)
	blankRunPattern = regexp.MustCompile(`[ \t]+`)
)

// ResumeText 按 MIME 类型抽取简历中的纯文本
func ResumeText(mime string, data []byte) (string, error) {
	var (
		text string
		err  error
	)
	switch mime {
	case consts.MimeTypeText:
		text = string(data)
	case consts.MimeTypePDF:
		text, err = pdfText(data)
	case consts.MimeTypeDOCX:
		text, err = docxText(data)
	default:
		return "", errors.Wrap(ErrUnsupportedType, mime)
	}
	if err != nil {
		return "", err
	}
	// 列为 utf8mb4，非法字节直接丢弃
	text = strings.ToValidUTF8(text, "")
	return truncate(strings.TrimSpace(text)), nil
}

func pdfText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", errors.Wrap(err, "failed to read pdf")
	}

	var builder strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return "", errors.Wrapf(err, "failed to read pdf page %d", i)
		}
		builder.WriteString(text)
		builder.WriteString("\n")
	}
	return builder.String(), nil
}

func docxText(data []byte) (string, error) {
	doc, err := docx.ReadDocxFromMemory(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", errors.Wrap(err, "failed to parse docx")
	}
	defer func() {
		_ = doc.Close()
	}()

	return stripXML(doc.Editable().GetContent()), nil
}

// stripXML 段落结束处换行，其余标签直接去除
func stripXML(content string) string {
	content = paragraphEnd.ReplaceAllString(content, "\n")
	content = xmlTagPattern.ReplaceAllString(content, "")
	content = blankRunPattern.ReplaceAllString(content, " ")

	lines := strings.Split(content, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}

func truncate(s string) string {
	runes := []rune(s)
	if len(runes) <= MaxTextLength {
		return s
	}
	return string(runes[:MaxTextLength])
}
