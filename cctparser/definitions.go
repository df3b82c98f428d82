package cctparser

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/carbocation/pfx"
)

// ParseDefinitionsFile reads a two-column tab-separated term dictionary
// (term<TAB>definition, one per line).
func ParseDefinitionsFile(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, pfx.Err(err)
	}
	defer f.Close()

	out := make(map[string]string)

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for line := 1; scanner.Scan(); line++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		term, def, found := strings.Cut(text, "\t")
		if !found {
			return nil, fmt.Errorf("definitions %s line %d: expected term<TAB>definition", path, line)
		}
		out[term] = def
	}
	if err := scanner.Err(); err != nil {
		return nil, pfx.Err(err)
	}

	return out, nil
}
