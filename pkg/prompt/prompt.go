package prompt

import (
	"bufio"
	"io"
	"strconv"
)

// Asker asks the user a single question and returns the raw answer line.
// Implementations must strip the line ending but keep all other characters,
// so answers consisting of spaces survive unchanged.
type Asker interface {
	Ask(question string) (string, error)
}

// Reader is an Asker backed by an input and an output stream, typically
// stdin and stdout.
type Reader struct {
	in  *bufio.Reader
	out io.Writer
}

// NewReader creates an Asker that prints questions to out and reads
// answers from in.
func NewReader(in io.Reader, out io.Writer) *Reader {
	return &Reader{in: bufio.NewReader(in), out: out}
}

// Ask prints the question verbatim and reads one answer line.
func (r *Reader) Ask(question string) (string, error) {
	if _, err := io.WriteString(r.out, question); err != nil {
		return "", err
	}

	line, err := r.in.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return trimLineEnding(line), nil
		}
		return "", err
	}
	return trimLineEnding(line), nil
}

// Static is an Asker that replays a fixed list of answers. Asking more
// questions than there are answers returns io.EOF, like a closed stdin.
type Static struct {
	answers []string
	next    int
}

// NewStatic creates an Asker with canned answers.
func NewStatic(answers ...string) *Static {
	return &Static{answers: answers}
}

// Ask returns the next canned answer.
func (s *Static) Ask(string) (string, error) {
	if s.next >= len(s.answers) {
		return "", io.EOF
	}
	answer := s.answers[s.next]
	s.next++
	return answer, nil
}

// Defaults is an Asker that answers every question with an empty string,
// accepting whatever default the caller falls back to.
type Defaults struct{}

// Ask returns an empty answer.
func (Defaults) Ask(string) (string, error) {
	return "", nil
}

// String asks a question and substitutes fallback for an empty answer.
func String(a Asker, question, fallback string) (string, error) {
	answer, err := a.Ask(question)
	if err != nil {
		return "", err
	}
	if answer == "" {
		return fallback, nil
	}
	return answer, nil
}

// IntInRange asks a question until the answer is a digit string whose value
// lies in [min, max]. An empty answer stands for the fallback value, which
// goes through the same validation. Invalid answers re-ask without comment.
func IntInRange(a Asker, question string, fallback, min, max int) (int, error) {
	for {
		answer, err := a.Ask(question)
		if err != nil {
			return 0, err
		}
		if answer == "" {
			answer = strconv.Itoa(fallback)
		}
		if !isDigits(answer) {
			continue
		}
		value, err := strconv.Atoi(answer)
		if err != nil {
			continue
		}
		if value >= min && value <= max {
			return value, nil
		}
	}
}

// isDigits reports whether s is non-empty and made of ASCII digits only.
// Signs, spaces and unicode digits all fail, so answers like " 320" or
// "+320" are rejected and re-asked.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func trimLineEnding(line string) string {
	if n := len(line); n > 0 && line[n-1] == '\n' {
		line = line[:n-1]
	}
	if n := len(line); n > 0 && line[n-1] == '\r' {
		line = line[:n-1]
	}
	return line
}
