package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// TerminalNotifier renders transient notifications as prefixed lines.
type TerminalNotifier struct {
	out io.Writer
}

func NewTerminalNotifier(out io.Writer) *TerminalNotifier {
	return &TerminalNotifier{out: out}
}

func (n *TerminalNotifier) Success(title, text string) {
	fmt.Fprintf(n.out, "[ok] %s %s\n", title, text)
}

func (n *TerminalNotifier) Warn(title, text string) {
	fmt.Fprintf(n.out, "[warn] %s %s\n", title, text)
}

func (n *TerminalNotifier) Error(title, text string) {
	fmt.Fprintf(n.out, "[error] %s %s\n", title, text)
}

// TerminalConfirmer implements the modal confirmation prompt on the
// terminal. Anything other than "yes"/"y" counts as declining, so a bare
// Enter dismisses safely.
type TerminalConfirmer struct {
	reader *bufio.Reader
	out    io.Writer
}

func NewTerminalConfirmer(reader *bufio.Reader, out io.Writer) *TerminalConfirmer {
	return &TerminalConfirmer{reader: reader, out: out}
}

func (c *TerminalConfirmer) Confirm(_ context.Context, title, text string) (bool, error) {
	answer, err := GetSimpleText(c.reader, fmt.Sprintf("%s %s [y/N]", title, text), c.out)
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
