package migrate

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Confirmer answers the single yes/no question the migrator asks.
// Injectable so automated tests never touch a real terminal.
type Confirmer interface {
	Confirm(question string) (bool, error)
}

// affirmatives are the accepted single-letter yes answers. "s" covers
// the localized affirmative (sim/sí) the tool has always accepted.
var affirmatives = map[string]bool{
	"y": true,
	"s": true,
}

// StdinConfirmer asks on Out and reads one line from In. It blocks
// until the operator answers; an unattended run will wait indefinitely.
type StdinConfirmer struct {
	In  io.Reader
	Out io.Writer
}

// Confirm prints the question and interprets the answer. Only a lone
// affirmative letter counts as yes; everything else, including an empty
// line or EOF, is no.
func (c *StdinConfirmer) Confirm(question string) (bool, error) {
	fmt.Fprintf(c.Out, "%s [y/N] ", question)

	reader := bufio.NewReader(c.In)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		// EOF with no input: treat as the default (no)
		return false, nil
	}

	answer := strings.ToLower(strings.TrimSpace(line))
	return affirmatives[answer], nil
}

// StaticConfirmer always answers the same way. Used by tests.
type StaticConfirmer struct {
	Answer bool
	Asked  []string
}

// Confirm records the question and returns the canned answer
func (c *StaticConfirmer) Confirm(question string) (bool, error) {
	c.Asked = append(c.Asked, question)
	return c.Answer, nil
}
