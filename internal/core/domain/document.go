package domain

import "fmt"

// DocumentKind identifies the table a document number series is probed against.
type DocumentKind string

const (
	DocumentPosting DocumentKind = "posting"
	DocumentSale    DocumentKind = "sale"
	DocumentExpense DocumentKind = "expense"
)

// Series describes how a document number is rendered: PREFIX-NNN.
type Series struct {
	Kind   DocumentKind
	Prefix string
	Width  int
}

var (
	PostingSeries = Series{Kind: DocumentPosting, Prefix: "GL", Width: 3}
	SaleSeries    = Series{Kind: DocumentSale, Prefix: "SALE", Width: 4}
	ExpenseSeries = Series{Kind: DocumentExpense, Prefix: "EXP", Width: 4}
)

// Format renders n as a document number. Numbers wider than Width are not truncated.
func (s Series) Format(n int64) string {
	return fmt.Sprintf("%s-%0*d", s.Prefix, s.Width, n)
}
