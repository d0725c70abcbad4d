// Package report renders search results and reads candidate lists.
package report

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/afero"

	"github.com/Blackdeer1524/joaat/src/pkg/utils"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

var ErrUnknownFormat = errors.New("unknown output format")

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatText, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Result is the outcome of one preimage search.
type Result struct {
	Target    uint32   `json:"-"`
	Length    int      `json:"length"`
	Alphabet  string   `json:"alphabet"`
	Preimages []string `json:"preimages"`
}

func (r Result) MarshalJSON() ([]byte, error) {
	type plain Result
	preimages := r.Preimages
	if preimages == nil {
		preimages = []string{}
	}
	r.Preimages = preimages

	return json.Marshal(struct {
		Target string `json:"target"`
		plain
	}{
		Target: utils.FormatHex(r.Target),
		plain:  plain(r),
	})
}

// Write renders results to w. In text form a single result is printed
// as one preimage per line; several results get a header line each.
func Write(w io.Writer, format Format, results []Result) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(results); err != nil {
			return fmt.Errorf("report.Write json: %w", err)
		}

		return nil
	case FormatText:
		return writeText(w, results)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func writeText(w io.Writer, results []Result) error {
	bw := bufio.NewWriter(w)

	for _, r := range results {
		if len(results) > 1 {
			fmt.Fprintf(bw, "# %s length=%d preimages=%d\n",
				utils.FormatHex(r.Target), r.Length, len(r.Preimages))
		}

		for _, p := range r.Preimages {
			bw.WriteString(p)
			bw.WriteByte('\n')
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("report.Write text: %w", err)
	}

	return nil
}

// WriteFile is Write into a file on fs, replacing its contents.
func WriteFile(fs afero.Fs, path string, format Format, results []Result) (err error) {
	f, err := fs.Create(path)
	if err != nil {
		return fmt.Errorf("report.WriteFile create %s: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("report.WriteFile close %s: %w", path, closeErr)
		}
	}()

	return Write(f, format, results)
}

// ReadCandidates returns the non-empty lines of a file on fs. Trailing
// carriage returns are dropped; other whitespace is part of the candidate.
func ReadCandidates(fs afero.Fs, path string) ([]string, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("report.ReadCandidates open %s: %w", path, err)
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSuffix(sc.Text(), "\r")
		if line == "" {
			continue
		}
		out = append(out, line)
	}

	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("report.ReadCandidates scan %s: %w", path, err)
	}

	return out, nil
}
