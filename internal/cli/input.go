package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/SeamusWaldron/cubesolve"
	"github.com/SeamusWaldron/cubesolve/internal/statefile"
)

// readState gets the facelet text from a state file, the arguments, or
// one line of stdin, in that order, and builds a State. Arguments are
// joined so faces may be passed as separate words.
func readState(args []string, file string, stdin io.Reader) (cubesolve.State, error) {
	raw, err := readFacelets(args, file, stdin)
	if err != nil {
		return cubesolve.State{}, err
	}
	return cubesolve.NewState(cubesolve.Normalize(raw))
}

func readFacelets(args []string, file string, stdin io.Reader) (string, error) {
	if file != "" {
		if len(args) > 0 {
			return "", errors.New("give the state either as arguments or with --file, not both")
		}
		raw, err := statefile.DecodeFile(file)
		if err != nil {
			return "", fmt.Errorf("read %s: %w", file, err)
		}
		return raw, nil
	}

	if len(args) > 0 {
		return strings.Join(args, ""), nil
	}

	line, err := bufio.NewReader(stdin).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	if strings.TrimSpace(line) == "" {
		return "", errors.New("no cube state given (pass it as an argument, with --file, or on stdin)")
	}
	return line, nil
}
