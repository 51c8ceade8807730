/*
Package dictionary builds and opens compiled vaguetrie dictionaries.

Compile turns a plaintext word<TAB>frequency file into the flat VGT1
binary (pkg/trie does the actual tree-to-bytes work); OpenView maps or
reads that binary back into a byte slice a pkg/trie.Reader can wrap.
*/
package dictionary

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/kjhall/vaguetrie/pkg/patricia"
	"github.com/kjhall/vaguetrie/pkg/trie"
)

// InputMalformed marks a skipped line of a plaintext dictionary: missing
// tab separator, empty word, or a non-numeric frequency field.
var InputMalformed = errors.New("dictionary: malformed input line")

// IoError wraps a failure to read the input file or write the compiled
// output file.
var IoError = errors.New("dictionary: io error")

// CompileOptions controls compile-time validation and encoding choices.
type CompileOptions struct {
	// MaxWordCount rejects a plaintext file that looks corrupt before
	// compilation runs to completion. Zero disables the check.
	MaxWordCount int
	// RangeNodeMinSpan is forwarded to the node-shape heuristic.
	RangeNodeMinSpan int
}

// Compile reads a plaintext word<TAB>frequency dictionary from inputPath,
// builds the build-time Patricia trie, flattens it, and writes the
// resulting VGT1 binary to outputPath. It returns the number of words
// accepted and the number of malformed lines skipped; malformed lines never
// abort compilation.
func Compile(inputPath, outputPath string, opts CompileOptions) (accepted, skipped int, err error) {
	in, err := os.Open(inputPath)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: opening %s: %v", IoError, inputPath, err)
	}
	defer in.Close()

	trieBuilder := patricia.New()
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		word, freq, perr := parseLine(line)
		if perr != nil {
			log.Warnf("skipping malformed line: %v", perr)
			skipped++
			continue
		}
		trieBuilder.Insert([]rune(word), freq)
		accepted++
		if opts.MaxWordCount > 0 && accepted > opts.MaxWordCount {
			return accepted, skipped, fmt.Errorf("%w: exceeded max word count %d", InputMalformed, opts.MaxWordCount)
		}
	}
	if err := scanner.Err(); err != nil {
		return accepted, skipped, fmt.Errorf("%w: reading %s: %v", IoError, inputPath, err)
	}

	data := trie.Flatten(trieBuilder, opts.RangeNodeMinSpan)

	out, err := os.Create(outputPath)
	if err != nil {
		return accepted, skipped, fmt.Errorf("%w: creating %s: %v", IoError, outputPath, err)
	}
	defer out.Close()
	if _, err := out.Write(data); err != nil {
		return accepted, skipped, fmt.Errorf("%w: writing %s: %v", IoError, outputPath, err)
	}

	log.Debugf("compiled %d words (%d skipped) into %s (%d bytes)", accepted, skipped, outputPath, len(data))
	return accepted, skipped, nil
}

func parseLine(line string) (string, uint32, error) {
	idx := strings.IndexByte(line, '\t')
	if idx < 0 {
		return "", 0, fmt.Errorf("%w: no tab separator: %q", InputMalformed, line)
	}
	word := line[:idx]
	if word == "" {
		return "", 0, fmt.Errorf("%w: empty word: %q", InputMalformed, line)
	}
	freqStr := strings.TrimSpace(line[idx+1:])
	freq, err := strconv.ParseUint(freqStr, 10, 32)
	if err != nil {
		return "", 0, fmt.Errorf("%w: non-numeric frequency %q: %v", InputMalformed, freqStr, err)
	}
	return word, uint32(freq), nil
}
