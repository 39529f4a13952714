// Package docx extracts plain paragraph text from Word documents.
//
// A DOCX file is a ZIP archive of OOXML parts; the document body lives at
// word/document.xml. The deals parser only needs trimmed paragraph text in
// reading order, so the reader stream-parses that XML and concatenates the
// text nodes of each paragraph, ignoring formatting, styles, and tables'
// cell structure. Plain text files are also accepted, one paragraph per
// line.
package docx

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

const documentPart = "word/document.xml"

// ReadParagraphs reads the paragraph stream from a source document,
// dispatching on file extension. Word documents go through the OOXML
// reader; anything else is treated as plain text with one paragraph per
// line, which is what hand-authored documents use.
func ReadParagraphs(path string) ([]string, error) {
	if strings.EqualFold(filepath.Ext(path), ".docx") {
		return Paragraphs(path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read source: %w", err)
	}
	return strings.Split(string(data), "\n"), nil
}

// Paragraphs returns the plain text of every paragraph in the document, in
// reading order. Paragraph text is trimmed; empty paragraphs are kept so
// callers see the document's full shape.
func Paragraphs(path string) ([]string, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("open docx: %w", err)
	}
	defer zr.Close()

	var docFile *zip.File
	for _, f := range zr.File {
		if f.Name == documentPart {
			docFile = f
			break
		}
	}
	if docFile == nil {
		return nil, fmt.Errorf("%s not found in %s", documentPart, path)
	}

	rc, err := docFile.Open()
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", documentPart, err)
	}
	defer rc.Close()

	return parseDocumentXML(rc)
}

func parseDocumentXML(r io.Reader) ([]string, error) {
	dec := xml.NewDecoder(r)

	var paragraphs []string
	var para strings.Builder
	inPara := false
	inText := false

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse document xml: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "p":
				inPara = true
				para.Reset()
			case "t":
				inText = inPara
			case "tab", "br":
				if inPara {
					para.WriteByte(' ')
				}
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "p":
				if inPara {
					paragraphs = append(paragraphs, strings.TrimSpace(para.String()))
					inPara = false
				}
			case "t":
				inText = false
			}
		case xml.CharData:
			if inText {
				para.Write(t)
			}
		}
	}

	return paragraphs, nil
}
