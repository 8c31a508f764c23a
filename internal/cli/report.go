package cli

import (
	"bufio"
	"io"
	"math/big"
	"strconv"
)

// Report is one line of output.
type Report interface {
	Line() string
}

// Single is the token count of plain text.
type Single struct {
	Count uint64
}

func (r Single) Line() string {
	return strconv.FormatUint(r.Count, 10)
}

// Pair is the added and removed token totals of a diff.
type Pair struct {
	Added   uint64
	Removed uint64
}

func (r Pair) Line() string {
	return strconv.FormatUint(r.Added, 10) + " " + strconv.FormatUint(r.Removed, 10)
}

// Net is the signed difference added - removed.
type Net struct {
	Delta *big.Int
}

func (r Net) Line() string {
	if r.Delta == nil {
		return "0"
	}
	return r.Delta.String()
}

// FileLine prefixes another report with a file path.
type FileLine struct {
	Path   string
	Report Report
}

func (r FileLine) Line() string {
	return r.Path + " " + r.Report.Line()
}

// WriteReports writes each report on its own line.
func WriteReports(w io.Writer, reports ...Report) error {
	bw := bufio.NewWriter(w)
	for _, r := range reports {
		if _, err := bw.WriteString(r.Line()); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
