// Package etree reads and writes XML Spreadsheet 2003 workbooks
// (SpreadsheetML), the XML format spreadsheet software opens and saves as
// "XML Spreadsheet".
package etree

import (
	"strconv"
	"strings"

	"github.com/beevik/etree"
)

const (
	spreadsheetNS = "urn:schemas-microsoft-com:office:spreadsheet"
	officeNS      = "urn:schemas-microsoft-com:office:office"
)

// newWorkbook returns a workbook document with one empty worksheet, and the
// table element of that worksheet.
func newWorkbook(sheetName string) (*etree.Document, *etree.Element) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	doc.CreateProcInst("mso-application", `progid="Excel.Sheet"`)

	workbook := doc.CreateElement("Workbook")
	workbook.CreateAttr("xmlns", spreadsheetNS)
	workbook.CreateAttr("xmlns:o", officeNS)
	workbook.CreateAttr("xmlns:ss", spreadsheetNS)

	worksheet := workbook.CreateElement("Worksheet")
	worksheet.CreateAttr("ss:Name", sheetName)
	return doc, worksheet.CreateElement("Table")
}

// appendRow adds a row of cells to table and returns it. Cells at the
// numeric positions are typed as numbers, the others as strings.
func appendRow(table *etree.Element, values []string, numeric ...int) *etree.Element {
	row := table.CreateElement("Row")
	for i, v := range values {
		typ := "String"
		for _, n := range numeric {
			if n == i {
				typ = "Number"
			}
		}
		data := row.CreateElement("Cell").CreateElement("Data")
		data.CreateAttr("ss:Type", typ)
		data.SetText(v)
	}
	return row
}

// records returns the cell values of the first worksheet of doc, row by
// row. Rows and cells skipped with ss:Index are filled with empty values.
func records(doc *etree.Document) ([][]string, bool) {
	workbook := doc.SelectElement("Workbook")
	if workbook == nil {
		return nil, false
	}
	worksheet := workbook.SelectElement("Worksheet")
	if worksheet == nil {
		return nil, false
	}
	table := worksheet.SelectElement("Table")
	if table == nil {
		return nil, true
	}

	var out [][]string
	for _, row := range table.SelectElements("Row") {
		rowNum := len(out) + 1
		if i, ok := index(row); ok && i > rowNum {
			rowNum = i
		}
		for len(out) < rowNum-1 {
			out = append(out, nil)
		}

		var cells []string
		for _, cell := range row.SelectElements("Cell") {
			colNum := len(cells) + 1
			if i, ok := index(cell); ok && i > colNum {
				colNum = i
			}
			for len(cells) < colNum-1 {
				cells = append(cells, "")
			}
			var v string
			if data := cell.SelectElement("Data"); data != nil {
				v = innerText(data)
			}
			cells = append(cells, v)
		}
		out = append(out, cells)
	}
	return out, true
}

// index reads the 1-based ss:Index attribute of a row or cell.
func index(e *etree.Element) (int, bool) {
	v := e.SelectAttrValue("Index", "")
	if v == "" {
		return 0, false
	}
	i, err := strconv.Atoi(v)
	if err != nil || i < 1 {
		return 0, false
	}
	return i, true
}

// innerText concatenates the character data of e and its descendants, which
// covers rich text cells.
func innerText(e *etree.Element) string {
	var b strings.Builder
	for _, tok := range e.Child {
		switch t := tok.(type) {
		case *etree.CharData:
			b.WriteString(t.Data)
		case *etree.Element:
			b.WriteString(innerText(t))
		}
	}
	return b.String()
}
