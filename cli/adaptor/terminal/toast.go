package terminal

import (
	"fmt"
	"io"
	"sync"

	"github.com/ponyo877/sharesh/cli/domain"
)

// Surface prints each toast once when shown. Fading and removal have no
// terminal representation.
type Surface struct {
	mu  sync.Mutex
	out io.Writer
}

func NewSurface(out io.Writer) *Surface {
	return &Surface{out: out}
}

func (s *Surface) ShowToast(t domain.Toast) {
	s.mu.Lock()
	defer s.mu.Unlock()
	mark := "✔"
	if t.Severity == domain.SeverityError {
		mark = "✘"
	}
	fmt.Fprintf(s.out, "%s %s\n", mark, t.Message)
}

func (s *Surface) FadeToast(domain.Toast) {}

func (s *Surface) RemoveToast(domain.Toast) {}
