package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fieldware/fieldbill/internal/models"
)

// GetSimpleText prints a prompt to w and reads a single line of input from reader.
// The trailing newline is trimmed. If EOF occurs after some input was read,
// the partial line is returned.
//
// Example prompt format:
//
//	Prompt text
//	> _
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
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

// GetMultiline prints a prompt to w and reads multiple lines until an empty
// line is entered (i.e., the user presses Enter twice). The trailing newline
// on each line is trimmed and the collected text is joined with '\n'.
//
// This helper is useful for estimate and invoice notes.
func GetMultiline(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n(press Enter on an empty line to finish)\n"); err != nil {
		return "", err
	}

	var lines []string
	for {
		line, _ := reader.ReadString('\n')
		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			break
		}
		lines = append(lines, line)
	}

	return strings.TrimSpace(strings.Join(lines, "\n")), nil
}

// GetLineItems prompts for line items one at a time, ending on an empty item
// name. Each item asks for a name, a quantity, and a unit price. Ids and
// totals are left zero; the services layer assigns them.
func GetLineItems(reader *bufio.Reader, w io.Writer) ([]models.LineItem, error) {
	fmt.Fprintln(w, "Enter line items (empty name to finish)")

	items := make([]models.LineItem, 0)
	for {
		name, err := GetSimpleText(reader, "Item name", w)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return items, nil
			}
			return nil, err
		}
		if name == "" {
			return items, nil
		}

		qty, err := getNumber(reader, "Quantity", w)
		if err != nil {
			return nil, err
		}
		price, err := getNumber(reader, "Unit price", w)
		if err != nil {
			return nil, err
		}

		items = append(items, models.LineItem{Name: name, Quantity: qty, UnitPrice: price})
	}
}

// getNumber prompts for a decimal number. An empty answer is treated as zero.
func getNumber(reader *bufio.Reader, prompt string, w io.Writer) (float64, error) {
	text, err := GetSimpleText(reader, prompt, w)
	if err != nil {
		return 0, err
	}
	if text == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not a number", strings.ToLower(prompt), text)
	}
	return v, nil
}
