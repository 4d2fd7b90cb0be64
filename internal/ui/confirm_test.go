package ui

import (
	"bytes"
	"strings"
	"testing"
)

func TestConfirmYes(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompterWithStreams(strings.NewReader("y\n"), &out)

	ok, err := p.Confirm("Would you like to apply this map?")
	if err != nil {
		t.Fatalf("Confirm() error = %v", err)
	}
	if !ok {
		t.Error("Expected confirmation, got decline")
	}
	if !strings.Contains(out.String(), "(y/n)") {
		t.Errorf("Prompt missing y/n hint: %q", out.String())
	}
}

func TestConfirmNo(t *testing.T) {
	p := NewPrompterWithStreams(strings.NewReader("n\n"), &bytes.Buffer{})

	ok, err := p.Confirm("Apply?")
	if err != nil {
		t.Fatalf("Confirm() error = %v", err)
	}
	if ok {
		t.Error("Expected decline, got confirmation")
	}
}

func TestConfirmRepromptsOnInvalidInput(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompterWithStreams(strings.NewReader("maybe\nY\ny\n"), &out)

	ok, err := p.Confirm("Apply?")
	if err != nil {
		t.Fatalf("Confirm() error = %v", err)
	}
	if !ok {
		t.Error("Expected eventual confirmation")
	}

	// "maybe" and uppercase "Y" are both invalid; three prompts total.
	if got := strings.Count(out.String(), "(y/n)"); got != 3 {
		t.Errorf("Expected 3 prompts, got %d:\n%q", got, out.String())
	}
}

func TestConfirmTrimsWhitespace(t *testing.T) {
	p := NewPrompterWithStreams(strings.NewReader("  y  \n"), &bytes.Buffer{})

	ok, err := p.Confirm("Apply?")
	if err != nil {
		t.Fatalf("Confirm() error = %v", err)
	}
	if !ok {
		t.Error("Expected confirmation with surrounding whitespace trimmed")
	}
}

func TestConfirmEOFIsError(t *testing.T) {
	p := NewPrompterWithStreams(strings.NewReader(""), &bytes.Buffer{})

	ok, err := p.Confirm("Apply?")
	if err == nil {
		t.Fatal("Expected error on EOF, got nil")
	}
	if ok {
		t.Error("EOF must not confirm")
	}
}

func TestConfirmAcceptsUnterminatedFinalLine(t *testing.T) {
	// Input ends without a newline; the pending answer still counts.
	p := NewPrompterWithStreams(strings.NewReader("n"), &bytes.Buffer{})

	ok, err := p.Confirm("Apply?")
	if err != nil {
		t.Fatalf("Confirm() error = %v", err)
	}
	if ok {
		t.Error("Expected decline")
	}
}

func TestSequentialConfirmsShareReader(t *testing.T) {
	// Two answers on one stream: buffered input must survive across calls.
	p := NewPrompterWithStreams(strings.NewReader("y\nn\n"), &bytes.Buffer{})

	first, err := p.Confirm("Apply?")
	if err != nil || !first {
		t.Fatalf("First Confirm() = %v, %v; want true, nil", first, err)
	}
	second, err := p.Confirm("Apply?")
	if err != nil || second {
		t.Fatalf("Second Confirm() = %v, %v; want false, nil", second, err)
	}
}
