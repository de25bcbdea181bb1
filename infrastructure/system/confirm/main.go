package confirm

import (
	"bufio"
	"fmt"
	"github.com/rotisserie/eris"
	domainConfirm "github.com/t-kuni/stignore/domain/system/confirm"
	"io"
	"strings"
)

type PromptConfirm struct {
	in  *bufio.Reader
	out io.Writer
}

func NewPromptConfirm(in io.Reader, out io.Writer) domainConfirm.IConfirm {
	return &PromptConfirm{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Confirm repeats the question until it gets y, n or an empty answer.
func (c *PromptConfirm) Confirm(question string) (bool, error) {
	fmt.Fprintf(c.out, "%s [Y/n] ", question)
	for {
		text, err := c.in.ReadString('\n')
		if err != nil && err != io.EOF {
			return false, eris.Wrap(err, "failed to read answer")
		}

		switch strings.ToLower(strings.TrimSpace(text)) {
		case "", "y", "yes":
			if err == io.EOF && text == "" {
				// Closed input means no.
				fmt.Fprintln(c.out)
				return false, nil
			}
			return true, nil
		case "n", "no":
			return false, nil
		}

		if err == io.EOF {
			fmt.Fprintln(c.out)
			return false, nil
		}
		fmt.Fprint(c.out, "Please answer y or n: ")
	}
}
