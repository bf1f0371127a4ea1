package terminal

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/rl1809/cafe-pos/internal/core/domain"
	"github.com/rl1809/cafe-pos/internal/port"
)

// feedbackRecorder captures validation messages emitted by the prompter.
type feedbackRecorder struct {
	errors []string
}

func (d *feedbackRecorder) Greeting()                                              {}
func (d *feedbackRecorder) NewCustomer()                                           {}
func (d *feedbackRecorder) Categories(*domain.Catalog)                             {}
func (d *feedbackRecorder) AvailableItems(*domain.Catalog, domain.Category, []int) {}
func (d *feedbackRecorder) LineAdded(domain.MenuItem, int)                         {}
func (d *feedbackRecorder) Receipt(*domain.Order)                                  {}
func (d *feedbackRecorder) Cancelled()                                             {}
func (d *feedbackRecorder) Summary(domain.DaySummary)                              {}
func (d *feedbackRecorder) Errorf(format string, args ...any) {
	d.errors = append(d.errors, fmt.Sprintf(format, args...))
}

func newTestPrompter(input string) (*Prompter, *feedbackRecorder, *bytes.Buffer) {
	var out bytes.Buffer
	display := &feedbackRecorder{}
	return NewPrompter(strings.NewReader(input), &out, display), display, &out
}

func TestReadIntInRange_Valid(t *testing.T) {
	p, _, out := newTestPrompter("3\n")

	n, err := p.ReadIntInRange("Enter quantity: ", 1, 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 3 {
		t.Errorf("expected 3, got %d", n)
	}
	if !strings.Contains(out.String(), "Enter quantity: ") {
		t.Errorf("prompt not written, got %q", out.String())
	}
}

func TestReadIntInRange_RejectsBadInput(t *testing.T) {
	// garbage, trailing garbage, out of range low, out of range high,
	// then finally a valid answer
	p, display, _ := newTestPrompter("abc\n12abc\n0\n21\n7\n")

	n, err := p.ReadIntInRange("Enter quantity: ", 1, 20)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 7 {
		t.Errorf("expected 7, got %d", n)
	}
	if len(display.errors) != 4 {
		t.Fatalf("expected 4 rejection messages, got %v", display.errors)
	}
	for _, msg := range display.errors[:2] {
		if !strings.Contains(msg, "Invalid number") {
			t.Errorf("expected invalid-number message, got %q", msg)
		}
	}
	for _, msg := range display.errors[2:] {
		if !strings.Contains(msg, "between 1 and 20") {
			t.Errorf("expected range message, got %q", msg)
		}
	}
}

func TestReadIntInRange_TrimsCRLF(t *testing.T) {
	p, _, _ := newTestPrompter("5\r\n")

	n, err := p.ReadIntInRange("? ", 1, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 5 {
		t.Errorf("expected 5, got %d", n)
	}
}

func TestReadYesNo(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"Y\n", true},
		{"yes\n", true},
		{"YES\n", true},
		{"n\n", false},
		{"No\n", false},
	}
	for _, tc := range cases {
		p, _, _ := newTestPrompter(tc.input)
		got, err := p.ReadYesNo("? ")
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", tc.input, err)
		}
		if got != tc.want {
			t.Errorf("%q: expected %v, got %v", tc.input, tc.want, got)
		}
	}
}

func TestReadYesNo_RejectsAmbiguous(t *testing.T) {
	p, display, _ := newTestPrompter("maybe\nyep\ny\n")

	got, err := p.ReadYesNo("? ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got {
		t.Error("expected true after retries")
	}
	if len(display.errors) != 2 {
		t.Errorf("expected 2 rejections, got %v", display.errors)
	}
}

func TestReadName_TrimsAndRejectsEmpty(t *testing.T) {
	p, display, _ := newTestPrompter("\n   \n  Ana \r\n")

	name, err := p.ReadName("Enter customer name: ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if name != "Ana" {
		t.Errorf("expected trimmed %q, got %q", "Ana", name)
	}
	if len(display.errors) != 2 {
		t.Errorf("expected 2 empty-name rejections, got %v", display.errors)
	}
}

func TestReadName_UnterminatedLastLine(t *testing.T) {
	// a final line without a newline still counts as an answer
	p, _, _ := newTestPrompter("Ana")

	name, err := p.ReadName("? ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if name != "Ana" {
		t.Errorf("expected %q, got %q", "Ana", name)
	}
}

func TestPrompter_InputClosed(t *testing.T) {
	p, _, _ := newTestPrompter("")

	if _, err := p.ReadName("? "); !errors.Is(err, port.ErrInputClosed) {
		t.Errorf("ReadName: expected ErrInputClosed, got %v", err)
	}
	if _, err := p.ReadIntInRange("? ", 0, 4); !errors.Is(err, port.ErrInputClosed) {
		t.Errorf("ReadIntInRange: expected ErrInputClosed, got %v", err)
	}
	if _, err := p.ReadYesNo("? "); !errors.Is(err, port.ErrInputClosed) {
		t.Errorf("ReadYesNo: expected ErrInputClosed, got %v", err)
	}
}
