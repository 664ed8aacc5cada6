// Package output writes relative operator blocks as flat text files, one
// file per chiral order plus one cumulative file per run.
//
// The format is deliberately plain: a commented header identifying the
// operator, truncation and run, then one line per independent matrix
// element. Files are byte-stable given identical inputs and run token,
// which the golden tests rely on.
package output

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/chiraleft/chime/internal/basis"
)

// Header identifies one operator file.
type Header struct {
	Operator string
	Order    string
	J0, G0   int
	Nmax     int
	Jmax     int
	Hw       float64
	RunToken string
}

// SectorBlock is the dense matrix of one sector, indexed [bra, ket] by
// position within the bra and ket subspaces.
type SectorBlock [][]float64

// NewSectorBlock allocates a zeroed rows x cols block.
func NewSectorBlock(rows, cols int) SectorBlock {
	block := make(SectorBlock, rows)
	for i := range block {
		block[i] = make([]float64, cols)
	}
	return block
}

// T0Component is the sector decomposition of one isospin transfer rank.
type T0Component struct {
	T0      int
	Sectors basis.RelativeSectorsLSJT
	Blocks  []SectorBlock
}

// Filename assembles the conventional output filename:
//
//	<operator>_2b_rel_<order>[_cumulative]_N<Nmax>_J<Jmax>_hw<hw>_<token>.dat
func Filename(h Header, cumulative bool) string {
	name := h.Operator + "_2b_rel_" + h.Order
	if cumulative {
		name += "_cumulative"
	}
	return fmt.Sprintf("%s_N%d_J%d_hw%s_%s.dat",
		name, h.Nmax, h.Jmax,
		strconv.FormatFloat(h.Hw, 'g', -1, 64), h.RunToken)
}

// WriteRelativeOperator writes the header and every T0 component to w.
func WriteRelativeOperator(w io.Writer, h Header, components []T0Component) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "# chime relative operator\n")
	fmt.Fprintf(bw, "# operator %s order %s\n", h.Operator, h.Order)
	fmt.Fprintf(bw, "# J0 %d G0 %d\n", h.J0, h.G0)
	fmt.Fprintf(bw, "# Nmax %d Jmax %d hw %s\n",
		h.Nmax, h.Jmax, strconv.FormatFloat(h.Hw, 'g', -1, 64))
	fmt.Fprintf(bw, "# run %s\n", h.RunToken)
	fmt.Fprintf(bw, "# columns: T0 Lp Sp Jp Tp np L S J T n value\n")

	for _, comp := range components {
		for si := 0; si < comp.Sectors.Size(); si++ {
			sec := comp.Sectors.Sector(si)
			bra := sec.BraSubspace()
			ket := sec.KetSubspace()
			block := comp.Blocks[si]
			for bi := 0; bi < bra.Size(); bi++ {
				kstart := 0
				if sec.IsDiagonal() {
					kstart = bi
				}
				for ki := kstart; ki < ket.Size(); ki++ {
					fmt.Fprintf(bw, "%d  %2d %2d %2d %2d %3d  %2d %2d %2d %2d %3d  %+.8e\n",
						comp.T0,
						bra.L(), bra.S(), bra.J(), bra.T(), bi,
						ket.L(), ket.S(), ket.J(), ket.T(), ki,
						block[bi][ki])
				}
			}
		}
	}
	return bw.Flush()
}

// WriteRelativeOperatorFile writes one operator file under dir and returns
// its path.
func WriteRelativeOperatorFile(dir string, h Header, cumulative bool, components []T0Component) (string, error) {
	path := filepath.Join(dir, Filename(h, cumulative))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating operator file: %w", err)
	}
	if err := WriteRelativeOperator(f, h, components); err != nil {
		f.Close()
		return "", fmt.Errorf("writing operator file %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("closing operator file %s: %w", path, err)
	}
	return path, nil
}
