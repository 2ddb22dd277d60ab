package residue

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// FormatLine renders a residue set as
// "Quadratic residues mod <m>: [r0, r1, ...]" with residues ascending.
func FormatLine(s Set) string {
	residues := s.Sorted()
	parts := make([]string, len(residues))
	for i, r := range residues {
		parts[i] = strconv.Itoa(r)
	}

	return fmt.Sprintf("Quadratic residues mod %d: [%s]", s.Modulus(), strings.Join(parts, ", "))
}

// WriteReport writes one line per table entry, in table order.
// Each line is terminated by a newline.
func WriteReport(w io.Writer, t *Table) error {
	for _, m := range t.moduli {
		if _, err := io.WriteString(w, FormatLine(t.sets[m])+"\n"); err != nil {
			return errors.Wrapf(err, "failed to write residues for modulus %d", m)
		}
	}

	return nil
}
