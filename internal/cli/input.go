package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// getSimpleText prints a prompt to w and reads a single line of input from
// reader. The trailing newline is trimmed. If EOF occurs after some input was
// read, the partial line is returned.
func getSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// getList prompts for a comma-separated list and returns the trimmed,
// non-empty items. An empty answer yields an empty list.
func getList(reader *bufio.Reader, prompt string, w io.Writer) ([]string, error) {
	line, err := getSimpleText(reader, prompt+" (comma-separated)", w)
	if err != nil {
		return nil, err
	}
	items := []string{}
	for _, part := range strings.Split(line, ",") {
		if part = strings.TrimSpace(part); part != "" {
			items = append(items, part)
		}
	}
	return items, nil
}
