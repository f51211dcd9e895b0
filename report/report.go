// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"math"

	"github.com/katalvlaran/orthospace/gramschmidt"
	"github.com/katalvlaran/orthospace/matrix"
	"github.com/katalvlaran/orthospace/nullspace"
	"github.com/katalvlaran/orthospace/qr"
	"github.com/katalvlaran/orthospace/status"
)

const (
	opBasis      = "report.Basis"
	opQR         = "report.QR"
	opNullSpace  = "report.NullSpace"
	opComplement = "report.Complement"
)

// Matrix is a named matrix snapshot in row-major form.
type Matrix struct {
	Name string      `yaml:"name"`
	Rows int         `yaml:"rows"`
	Cols int         `yaml:"cols"`
	Data [][]float64 `yaml:"data,flow"`
}

// Document is the rendered form of one computation: summary values plus
// every matrix worth inspecting, in the order they were produced.
type Document struct {
	Kind     string            `yaml:"kind"`
	Status   string            `yaml:"status"`
	Summary  map[string]string `yaml:"summary,omitempty"`
	Matrices []Matrix          `yaml:"matrices,omitempty"`
}

// named pairs a matrix with its label in a Document.
type named struct {
	name string
	m    matrix.Matrix
}

func newDocument(kind string, s status.Status) *Document {
	return &Document{Kind: kind, Status: s.String(), Summary: make(map[string]string)}
}

// add appends a snapshot of m; a nil m is skipped.
func (d *Document) add(name string, m matrix.Matrix) error {
	if m == nil {
		return nil
	}
	if dm, ok := m.(*matrix.Dense); ok && dm == nil {
		return nil
	}
	rows, err := matrix.ToRows(m)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	d.Matrices = append(d.Matrices, Matrix{Name: name, Rows: m.Rows(), Cols: m.Cols(), Data: rows})

	return nil
}

func (d *Document) set(key string, format string, args ...interface{}) {
	d.Summary[key] = fmt.Sprintf(format, args...)
}

// Lookup returns the matrix snapshot called name.
func (d *Document) Lookup(name string) (Matrix, bool) {
	for _, m := range d.Matrices {
		if m.Name == name {
			return m, true
		}
	}

	return Matrix{}, false
}

// Basis documents an Orthonormalize run on a: the input, Q, and the Gram
// matrix of the orthonormal prefix with its deviation from the identity.
// depErr is the error Orthonormalize returned alongside b, if any.
func Basis(a matrix.Matrix, b *gramschmidt.Basis, depErr error) (*Document, error) {
	doc := newDocument("orthonormalize", b.Status)
	doc.set("variant", "%s", b.Variant)
	doc.set("rank", "%d", b.Rank)
	doc.set("columns", "%d", b.Q.Cols())
	if depErr != nil {
		doc.set("error", "%v", depErr)
	}
	if err := doc.add("A", a); err != nil {
		return nil, fmt.Errorf("%s: %w", opBasis, err)
	}
	if err := doc.add("Q", b.Q); err != nil {
		return nil, fmt.Errorf("%s: %w", opBasis, err)
	}

	q1, err := b.Orthonormal()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opBasis, err)
	}
	if q1 == nil {
		return doc, nil
	}
	qt, err := matrix.Transpose(q1)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opBasis, err)
	}
	gram, err := matrix.Mul(qt, q1)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opBasis, err)
	}
	if err = doc.add("QtQ", gram); err != nil {
		return nil, fmt.Errorf("%s: %w", opBasis, err)
	}
	dev, err := matrix.OrthonormalityDeviation(q1)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opBasis, err)
	}
	doc.set("orthonormality_deviation", "%.3e", dev)

	return doc, nil
}

// QR documents a factorization of a: Q, R, P, the product Q·R (which
// equals A·P) and the reconstruction Q·R·Pᵀ with its error against a.
func QR(a matrix.Matrix, res *qr.Result) (*Document, error) {
	doc := newDocument("factorize", status.OK)
	doc.set("mode", "%s", res.Mode)
	doc.set("numerical_rank", "%d", res.NumericalRank())
	if res.Mode.Pivoted() {
		doc.set("perm", "%v", res.Perm)
	}
	if res.RowSwaps != nil {
		doc.set("row_swaps", "%v", res.RowSwaps)
	}

	qrProd, err := matrix.Mul(res.Q, res.R)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opQR, err)
	}
	parts := []named{{"A", a}, {"Q", res.Q}, {"R", res.R}}
	if res.Mode.Pivoted() {
		p, err := res.P()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", opQR, err)
		}
		parts = append(parts, named{"P", p})
	}
	parts = append(parts, named{"QR", qrProd})
	for _, nm := range parts {
		if err = doc.add(nm.name, nm.m); err != nil {
			return nil, fmt.Errorf("%s: %w", opQR, err)
		}
	}

	back, err := res.Reconstruct()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opQR, err)
	}
	if res.Mode.Pivoted() {
		if err = doc.add("QRPt", back); err != nil {
			return nil, fmt.Errorf("%s: %w", opQR, err)
		}
	}
	diff, err := matrix.MaxAbsDiff(back, a)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opQR, err)
	}
	doc.set("reconstruction_error", "%.3e", diff)

	return doc, nil
}

// NullSpace documents a null-space extraction for b: the R1/R2 blocks,
// the basis N and the product B·N with its Frobenius norm. A non-empty R1
// also gets its Frobenius condition number ‖R1‖·‖R1⁻¹‖.
func NullSpace(b matrix.Matrix, basis *nullspace.Basis) (*Document, error) {
	doc := newDocument("nullspace", basis.Status)
	doc.set("mode", "%s", basis.Mode)
	doc.set("strategy", "%s", basis.Strategy)
	doc.set("rank", "%d", basis.Rank)
	doc.set("dim", "%d", basis.Dim)
	if basis.QR != nil && basis.Mode.Pivoted() {
		doc.set("perm", "%v", basis.QR.Perm)
	}

	for _, nm := range []named{{"R1", basis.R1}, {"R2", basis.R2}, {"N", basis.N}} {
		if err := doc.add(nm.name, nm.m); err != nil {
			return nil, fmt.Errorf("%s: %w", opNullSpace, err)
		}
	}
	if basis.R1 != nil && basis.R1.Rows() > 0 {
		cond, err := frobeniusCondition(basis.R1)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", opNullSpace, err)
		}
		doc.set("r1_condition", "%.3e", cond)
	}
	if basis.N == nil {
		doc.set("residual", "%.3e", 0.0)
		return doc, nil
	}
	bn, err := matrix.Mul(b, basis.N)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opNullSpace, err)
	}
	if err = doc.add("BN", bn); err != nil {
		return nil, fmt.Errorf("%s: %w", opNullSpace, err)
	}
	res, err := nullspace.Residual(b, basis.N)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opNullSpace, err)
	}
	doc.set("residual", "%.3e", res)

	return doc, nil
}

// Complement documents an orthogonal complement of range(a): Q2, the
// product Aᵀ·Q2 and the numerical rank of [A | Q2], which is rows(A)
// exactly when Q2 completes a full-column-rank A to the whole space.
func Complement(a matrix.Matrix, c *nullspace.Complement) (*Document, error) {
	doc := newDocument("complement", c.Status)
	doc.set("dim", "%d", c.Dim)
	if c.Q2 == nil {
		return doc, nil
	}
	if err := doc.add("Q2", c.Q2); err != nil {
		return nil, fmt.Errorf("%s: %w", opComplement, err)
	}
	at, err := matrix.Transpose(a)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opComplement, err)
	}
	atq, err := matrix.Mul(at, c.Q2)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opComplement, err)
	}
	if err = doc.add("AtQ2", atq); err != nil {
		return nil, fmt.Errorf("%s: %w", opComplement, err)
	}
	worst, err := matrix.MaxAbs(atq)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opComplement, err)
	}
	doc.set("residual", "%.3e", worst)
	dev, err := matrix.OrthonormalityDeviation(c.Q2)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opComplement, err)
	}
	doc.set("orthonormality_deviation", "%.3e", dev)
	joint, err := matrix.HStack(a, c.Q2)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opComplement, err)
	}
	rank, err := nullspace.Rank(joint, nullspace.DefaultTolerance)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opComplement, err)
	}
	doc.set("joint_rank", "%d", rank)

	return doc, nil
}

// frobeniusCondition returns ‖m‖_F·‖m⁻¹‖_F for a square nonsingular m.
func frobeniusCondition(m *matrix.Dense) (float64, error) {
	inv, err := matrix.Inverse(m)
	if err != nil {
		return 0, err
	}
	fm, err := matrix.FrobeniusNorm(m)
	if err != nil {
		return 0, err
	}
	fi, err := matrix.FrobeniusNorm(inv)
	if err != nil {
		return 0, err
	}

	return fm * fi, nil
}

// Failure documents a computation that produced no result.
func Failure(kind string, err error) *Document {
	s, ok := status.Of(err)
	doc := &Document{Kind: kind, Summary: map[string]string{"error": err.Error()}}
	if ok {
		doc.Status = s.String()
	} else {
		doc.Status = "error"
	}

	return doc
}

// round returns x rounded half away from zero to p decimals; -0 becomes 0.
func round(x float64, p int) float64 {
	scale := math.Pow(10, float64(p))
	r := math.Round(x*scale) / scale
	if r == 0 {
		return 0
	}

	return r
}
