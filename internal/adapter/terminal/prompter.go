package terminal

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rl1809/cafe-pos/internal/port"
)

// maxReadFailures bounds consecutive failed reads before the prompter gives
// up on the stream. A closed stdin would otherwise spin forever.
const maxReadFailures = 3

// Prompter reads line-oriented answers from an input stream. All rejection
// feedback goes through the Display so styling stays in one place.
type Prompter struct {
	reader  *bufio.Reader
	writer  io.Writer
	display port.Display
}

func NewPrompter(r io.Reader, w io.Writer, display port.Display) *Prompter {
	return &Prompter{
		reader:  bufio.NewReader(r),
		writer:  w,
		display: display,
	}
}

func (p *Prompter) readLine(prompt string) (string, error) {
	failures := 0
	for {
		fmt.Fprint(p.writer, prompt)
		line, err := p.reader.ReadString('\n')
		if err != nil && line == "" {
			failures++
			if failures >= maxReadFailures {
				return "", port.ErrInputClosed
			}
			continue
		}
		// TrimSpace also strips the CR a CRLF stream leaves behind
		return strings.TrimSpace(line), nil
	}
}

// ReadName reads a non-empty trimmed name, re-prompting while the answer is
// blank.
func (p *Prompter) ReadName(prompt string) (string, error) {
	for {
		name, err := p.readLine(prompt)
		if err != nil {
			return "", err
		}
		if name == "" {
			p.display.Errorf("Name cannot be empty.")
			continue
		}
		return name, nil
	}
}

// ReadIntInRange reads an integer in [min, max]. Non-numeric input, trailing
// garbage, and out-of-range values each get their own message and a retry.
func (p *Prompter) ReadIntInRange(prompt string, min, max int) (int, error) {
	for {
		line, err := p.readLine(prompt)
		if err != nil {
			return 0, err
		}
		n, convErr := strconv.Atoi(line)
		if convErr != nil {
			p.display.Errorf("Invalid number. Try again.")
			continue
		}
		if n < min || n > max {
			p.display.Errorf("Please enter a number between %d and %d.", min, max)
			continue
		}
		return n, nil
	}
}

// ReadYesNo accepts y/yes/n/no in any case and re-prompts on anything else.
func (p *Prompter) ReadYesNo(prompt string) (bool, error) {
	for {
		line, err := p.readLine(prompt)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(line) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		default:
			p.display.Errorf("Please answer Y or N.")
		}
	}
}
