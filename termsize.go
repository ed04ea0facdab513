package flexbox

import "golang.org/x/term"

// RootSizeFromTerminal queries the terminal attached to fd (typically
// int(os.Stdout.Fd())) for its current cell dimensions, for callers
// that want to seed CalculateLayout's root constraints from the real
// terminal rather than a hardcoded size. Grounded in the teacher's own
// direct use of term.GetSize for exactly this purpose.
func RootSizeFromTerminal(fd int) (width, height float64, err error) {
	w, h, err := term.GetSize(fd)
	if err != nil {
		return 0, 0, err
	}
	return float64(w), float64(h), nil
}
