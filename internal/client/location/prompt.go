package location

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// PromptLocator asks the user for a "lat,lon" pair on the terminal, the
// only positioning source available without platform location services.
type PromptLocator struct {
	reader *bufio.Reader
	out    io.Writer
}

func NewPromptLocator(reader *bufio.Reader, out io.Writer) *PromptLocator {
	return &PromptLocator{reader: reader, out: out}
}

func (p *PromptLocator) Current(ctx context.Context) (Coordinates, error) {
	if _, err := fmt.Fprint(p.out, "Enter location (lat,lon)\n> "); err != nil {
		return Coordinates{}, err
	}
	line, err := p.reader.ReadString('\n')
	if err != nil && !(err == io.EOF && len(line) > 0) {
		return Coordinates{}, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return Parse(strings.TrimSpace(line))
}
