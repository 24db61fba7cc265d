package datasets

import "bufio"
import "bytes"
import "fmt"
import "io"
import "os"
import "strconv"

import "github.com/pkg/errors"

// ParseError is a malformed token in a pairs file
type ParseError struct {
	Line  int
	Token string
	Msg   string
}

func (e *ParseError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
	}
	return fmt.Sprintf("line %d: %s %q", e.Line, e.Msg, e.Token)
}

// lineCounter wraps bufio.ScanWords and tracks the line of the last token
type lineCounter struct {
	line      int // line of the next byte to scan
	tokenLine int // line the last returned token is on
}

func (c *lineCounter) split(data []byte, atEOF bool) (int, []byte, error) {
	advance, token, err := bufio.ScanWords(data, atEOF)
	if token == nil {
		c.line += bytes.Count(data[:advance], newline)
		return advance, token, err
	}
	// token is a subslice of data
	begin := cap(data) - cap(token)
	c.line += bytes.Count(data[:begin], newline)
	c.tokenLine = c.line
	c.line += bytes.Count(data[begin+len(token):advance], newline)
	return advance, token, err
}

var newline = []byte{'\n'}

// ParsePairs reads whitespace separated integer pairs. Line breaks are not significant,
// every two consecutive tokens form one input-target pair.
func ParsePairs(r io.Reader) (Dataset, error) {
	var d = New()
	var pending bool
	var x, pendingLine int
	var lines = lineCounter{line: 1}

	s := bufio.NewScanner(r)
	s.Split(lines.split)
	for s.Scan() {
		tok := s.Text()
		v, err := strconv.Atoi(tok)
		if err != nil {
			return d, &ParseError{Line: lines.tokenLine, Token: tok, Msg: "invalid integer"}
		}
		if !pending {
			x, pendingLine, pending = v, lines.tokenLine, true
			continue
		}
		d.Append(x, v)
		pending = false
	}
	if err := s.Err(); err != nil {
		return d, errors.Wrap(err, "reading pairs")
	}
	if pending {
		return d, &ParseError{Line: pendingLine, Token: strconv.Itoa(x), Msg: "unpaired input"}
	}
	return d, nil
}

// LoadPairs reads the pairs file at path
func LoadPairs(path string) (Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return Dataset{}, errors.Wrap(err, "opening target-value file")
	}
	defer file.Close()

	d, err := ParsePairs(file)
	if err != nil {
		return d, errors.Wrapf(err, "parsing %s", path)
	}
	return d, nil
}
