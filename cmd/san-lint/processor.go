// processor.go - Token stream processing
package main

import (
	"bufio"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/rs/zerolog"

	"github.com/unchess/sanmove/internal/config"
	"github.com/unchess/sanmove/internal/notation"
	"github.com/unchess/sanmove/internal/output"
	"github.com/unchess/sanmove/internal/worker"
)

// Stats accumulates counts for a processing run.
type Stats struct {
	Tokens  int // All whitespace-separated tokens seen
	Moves   int // Tokens decoded as moves
	Skipped int // Move numbers, results, and annotation glyphs
	Invalid int // Tokens that failed to decode
}

// gameResults are the movetext terminators that are not move tokens.
var gameResults = map[string]bool{
	"1-0":     true,
	"0-1":     true,
	"1/2-1/2": true,
	"*":       true,
}

// moveToken extracts the decodable move token from a raw movetext
// token, or reports that the token is stream plumbing to skip. Game
// results, NAGs, and bare move numbers are skipped; a move-number
// prefix glued to a move ("1.e4") is stripped.
func moveToken(raw string) (string, bool) {
	if gameResults[raw] || strings.HasPrefix(raw, "$") {
		return "", false
	}
	tok := strings.TrimLeft(raw, "0123456789.")
	if tok == "" {
		return "", false
	}
	return tok, true
}

// openInput opens an input file, transparently decompressing gzip.
func openInput(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(path, ".gz") {
		return f, nil
	}
	zr, err := gzip.NewReader(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	return &gzipInput{zr: zr, f: f}, nil
}

// gzipInput pairs a gzip reader with its underlying file so both close.
type gzipInput struct {
	zr *gzip.Reader
	f  *os.File
}

func (g *gzipInput) Read(p []byte) (int, error) { return g.zr.Read(p) }

func (g *gzipInput) Close() error {
	zerr := g.zr.Close()
	ferr := g.f.Close()
	if zerr != nil {
		return zerr
	}
	return ferr
}

// decodeToken is the worker function: decode one token and, on success,
// re-encode it canonically.
func decodeToken(item worker.WorkItem) worker.Result {
	res := worker.Result{Index: item.Index}
	mv, err := notation.Decode(item.Token)
	if err != nil {
		res.Err = err
		return res
	}
	res.Move = mv
	res.Canonical, res.Err = notation.Encode(mv)
	return res
}

// processReader decodes every move token from r. Results are handled in
// stream order regardless of worker count, so canonical output is
// deterministic. In strict mode the first invalid token aborts the run.
func processReader(r io.Reader, name string, cfg *config.Config, log zerolog.Logger, tw *output.TokenWriter, stats *Stats) error {
	tokens := scanMoveTokens(r, stats)

	var results []worker.Result
	if cfg.Workers > 1 {
		results = decodeParallel(tokens, cfg.Workers)
	} else {
		results = make([]worker.Result, len(tokens))
		for i, tok := range tokens {
			results[i] = decodeToken(worker.WorkItem{Token: tok, Index: i})
		}
	}

	for i, res := range results {
		if res.Err != nil {
			stats.Invalid++
			log.Error().Str("input", name).Str("token", tokens[i]).Err(res.Err).Msg("invalid move token")
			if cfg.Strict {
				return res.Err
			}
			continue
		}
		stats.Moves++
		if cfg.Verbosity >= 2 {
			log.Debug().Str("token", tokens[i]).Str("canonical", res.Canonical).Msg("decoded")
		}
		if tw != nil {
			if err := tw.WriteToken(res.Canonical); err != nil {
				return err
			}
		}
	}
	return nil
}

// scanMoveTokens reads whitespace-separated tokens and keeps the
// decodable ones, counting the rest as skipped.
func scanMoveTokens(r io.Reader, stats *Stats) []string {
	var tokens []string
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		stats.Tokens++
		tok, ok := moveToken(scanner.Text())
		if !ok {
			stats.Skipped++
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

// decodeParallel fans tokens out over a worker pool and reorders the
// results by stream index.
func decodeParallel(tokens []string, workers int) []worker.Result {
	pool := worker.NewPool(decodeToken, worker.WithWorkers(workers))
	pool.Start()

	go func() {
		for i, tok := range tokens {
			pool.Submit(worker.WorkItem{Token: tok, Index: i})
		}
		pool.Close()
	}()

	results := make([]worker.Result, 0, len(tokens))
	for res := range pool.Results() {
		results = append(results, res)
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Index < results[j].Index })
	return results
}
