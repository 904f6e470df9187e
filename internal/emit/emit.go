// Package emit writes sorted tokens one per line
package emit

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"syscall"
)

// Lines writes each token followed by a newline. A reader that goes away
// early (EPIPE or io.ErrClosedPipe) ends output without an error. The
// returned count is the number of tokens accepted before output stopped
func Lines(w io.Writer, tokens []string) (int, error) {
	bw := bufio.NewWriter(w)
	n := 0
	for _, tok := range tokens {
		if _, err := bw.WriteString(tok); err != nil {
			return n, classify(err)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return n, classify(err)
		}
		n++
	}
	if err := bw.Flush(); err != nil {
		return n, classify(err)
	}
	return n, nil
}

// Closed reports whether err means the downstream reader stopped reading
func Closed(err error) bool {
	return errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe)
}

func classify(err error) error {
	if Closed(err) {
		return nil
	}
	return fmt.Errorf("failed to write output: %w", err)
}
