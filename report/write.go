// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

// Write renders doc to w. Matrix entries are rounded to precision decimals
// in both formats; a negative precision selects DefaultPrecision.
func Write(w io.Writer, doc *Document, format Format, precision int) error {
	if precision < 0 {
		precision = DefaultPrecision
	}
	switch format {
	case Text:
		return writeText(w, doc, precision)
	case YAML:
		return writeYAML(w, doc, precision)
	default:
		return fmt.Errorf("report.Write: %w: %s", ErrUnknownFormat, format)
	}
}

func writeYAML(w io.Writer, doc *Document, precision int) error {
	out := *doc
	out.Matrices = make([]Matrix, len(doc.Matrices))
	for k, m := range doc.Matrices {
		data := make([][]float64, len(m.Data))
		for i, row := range m.Data {
			data[i] = make([]float64, len(row))
			for j, v := range row {
				data[i][j] = round(v, precision)
			}
		}
		m.Data = data
		out.Matrices[k] = m
	}

	// An explicit start marker keeps consecutive writes a valid YAML stream.
	if _, err := io.WriteString(w, "---\n"); err != nil {
		return fmt.Errorf("report.Write: %w", err)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&out); err != nil {
		return fmt.Errorf("report.Write: %w", err)
	}

	return enc.Close()
}

func writeText(w io.Writer, doc *Document, precision int) error {
	var b strings.Builder
	fmt.Fprintf(&b, "== %s [%s] ==\n", doc.Kind, doc.Status)

	keys := make([]string, 0, len(doc.Summary))
	for k := range doc.Summary {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, "%s: %s\n", k, doc.Summary[k])
	}
	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("report.Write: %w", err)
	}

	for _, m := range doc.Matrices {
		if err := writeMatrixText(w, m, precision); err != nil {
			return fmt.Errorf("report.Write: %s: %w", m.Name, err)
		}
	}

	return nil
}

// writeMatrixText prints m as right-aligned columns under a "name (r×c):" header.
func writeMatrixText(w io.Writer, m Matrix, precision int) error {
	if _, err := fmt.Fprintf(w, "%s (%dx%d):\n", m.Name, m.Rows, m.Cols); err != nil {
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	for _, row := range m.Data {
		cells := make([]string, len(row))
		for j, v := range row {
			cells[j] = strconv.FormatFloat(round(v, precision), 'f', precision, 64)
		}
		if _, err := fmt.Fprintf(tw, "%s\t\n", strings.Join(cells, "\t")); err != nil {
			return err
		}
	}

	return tw.Flush()
}
