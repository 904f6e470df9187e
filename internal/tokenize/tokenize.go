// Package tokenize extracts alphabetic tokens from line-based text
package tokenize

import (
	"bufio"
	"fmt"
	"io"
	"regexp"

	"github.com/spf13/afero"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Stdin is the file name that selects standard input
const Stdin = "-"

var tokenPattern = regexp.MustCompile(`[A-Za-z]+`)

// Bag is an ordered sequence of tokens, duplicates included
type Bag struct {
	Tokens    []string
	MaxLength int
	Lines     int
}

// Scan reads r line by line and collects every maximal run of ASCII
// letters. Lines may be of any length. A leading byte order mark is
// dropped, and a UTF-16 one switches decoding
func Scan(r io.Reader) (*Bag, error) {
	bag := &Bag{}
	br := bufio.NewReader(transform.NewReader(r, unicode.BOMOverride(transform.Nop)))

	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			bag.Lines++
			for _, tok := range tokenPattern.FindAllString(line, -1) {
				bag.MaxLength = max(bag.MaxLength, len(tok))
				bag.Tokens = append(bag.Tokens, tok)
			}
		}
		if err == io.EOF {
			return bag, nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read input: %w", err)
		}
	}
}

// Source resolves input names to token bags
type Source struct {
	Fs    afero.Fs
	Stdin io.Reader
}

// Read tokenizes the named file from s.Fs, or s.Stdin when name is Stdin
func (s Source) Read(name string) (*Bag, error) {
	if name == Stdin {
		if s.Stdin == nil {
			return nil, fmt.Errorf("no standard input available")
		}
		return Scan(s.Stdin)
	}

	f, err := s.Fs.Open(name)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", name, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", name, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", name)
	}

	return Scan(f)
}
