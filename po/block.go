package po

import (
	"bufio"
	"errors"
	"io"
)

// BlockScanner splits a PO stream into blank-line delimited blocks.
//
// Lines keep their terminators. A line consisting of a terminator only ends
// the current block. When the input is exhausted the remaining lines are
// returned as one last block, which may be empty.
type BlockScanner struct {
	r     *bufio.Reader
	block []string
	err   error
	done  bool
}

// NewBlockScanner returns a BlockScanner reading from r.
func NewBlockScanner(r io.Reader) *BlockScanner {
	return &BlockScanner{r: bufio.NewReader(r)}
}

// Scan advances to the next block. It returns false when the input is
// exhausted or a read error occurred.
func (s *BlockScanner) Scan() bool {
	if s.done {
		s.block = nil
		return false
	}
	var block []string
	for {
		line, err := s.r.ReadString('\n')
		if line != "" {
			if isBlankLine(line) {
				s.block = block
				return true
			}
			block = append(block, line)
		}
		if err != nil {
			s.done = true
			if !errors.Is(err, io.EOF) {
				s.err = err
				s.block = nil
				return false
			}
			s.block = block
			return true
		}
	}
}

// Block returns the lines of the block found by the last Scan.
func (s *BlockScanner) Block() []string {
	return s.block
}

// Err returns the first non-EOF read error.
func (s *BlockScanner) Err() error {
	return s.err
}

func isBlankLine(line string) bool {
	return line == "\n" || line == "\r\n"
}
