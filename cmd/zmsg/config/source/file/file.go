package file

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/blocknative/zmsg/cmd/zmsg/config"
)

// Source reads a zcash.conf style file of key=value lines.
type Source struct {
	filepath string
}

func NewSource(filepath string) (s *Source) {
	return &Source{
		filepath: filepath,
	}
}

func (s *Source) Load(c *config.Config) error {
	fh, err := os.Open(s.filepath)
	if err != nil {
		return err
	}
	defer fh.Close()

	if err := parseConf(fh, c); err != nil {
		return fmt.Errorf("%s: %w", s.filepath, err)
	}
	return nil
}

// parseConf drops everything after a '#' and skips lines without '='. The
// value is everything after the first '='.
func parseConf(r io.Reader, c *config.Config) error {
	s := bufio.NewScanner(r)
	for n := 1; s.Scan(); n++ {
		line, _, _ := strings.Cut(s.Text(), "#")

		key, value, found := strings.Cut(line, "=")
		if !found {
			continue
		}

		if err := c.Set(strings.TrimSpace(key), strings.TrimSpace(value)); err != nil {
			return fmt.Errorf("line %d: %w", n, err)
		}
	}

	return s.Err()
}
