package shell

import (
	"bufio"
	"context"
	"io"
)

type inputLine struct {
	text string
	err  error
}

// readLines feeds in line by line until it fails or ctx is done. Lines have
// no length limit. The last value carries the read error (io.EOF at the end
// of input) and the channel is closed after it.
func readLines(ctx context.Context, in io.Reader) <-chan inputLine {
	lines := make(chan inputLine)
	go func() {
		defer close(lines)
		reader := bufio.NewReader(in)
		for {
			text, err := reader.ReadString('\n')
			if text != "" && !send(ctx, lines, inputLine{text: text}) {
				return
			}
			if err != nil {
				send(ctx, lines, inputLine{err: err})
				return
			}
		}
	}()
	return lines
}

func send(ctx context.Context, lines chan<- inputLine, line inputLine) bool {
	select {
	case lines <- line:
		return true
	case <-ctx.Done():
		return false
	}
}
