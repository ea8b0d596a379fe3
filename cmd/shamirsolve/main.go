package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"shamir"
)

func main() {
	var (
		mode    = flag.String("mode", "exact", "arithmetic mode: exact, prime or multiprime")
		prime   = flag.Uint64("prime", 2147483647, "field prime for -mode prime")
		primes  = flag.String("primes", "2147483647,2147483629,2147483587", "comma-separated field primes for -mode multiprime")
		strict  = flag.Bool("strict", false, "abort on the first undecodable share instead of dropping it")
		workers = flag.Int("workers", 1, "goroutines evaluating candidate subsets")
		budget  = flag.Int("budget", -1, "shares a candidate may fail to reproduce; -1 picks floor((n-k)/2)")
		sample  = flag.String("sample", "", "write the canonical testcase files into this directory and exit")
		verbose = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if *verbose {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	if *sample != "" {
		if err := writeSamples(*sample); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: shamirsolve [flags] testcase.json...")
		flag.PrintDefaults()
		os.Exit(2)
	}

	for _, path := range flag.Args() {
		res, err := solveFile(path, *mode, *prime, *primes, *strict, *workers, *budget)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
			os.Exit(1)
		}

		fmt.Printf("%s: secret = %s (shares %v)\n", path, res.Secret, res.Subset)
	}
}

func solveFile(path, mode string, prime uint64, primes string, strict bool, workers, budget int) (*shamir.Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	doc, err := shamir.ParseDocument(data)
	if err != nil {
		return nil, err
	}

	switch mode {
	case "multiprime":
		qs, err := parsePrimes(primes)
		if err != nil {
			return nil, err
		}

		solver, err := shamir.NewMultiPrimeSolver(qs)
		if err != nil {
			return nil, err
		}
		solver.MaxMismatches = budget

		return solver.Reconstruct(doc.Records, doc.K)

	case "prime":
		ar, err := shamir.NewPrimeArithmetic(prime)
		if err != nil {
			return nil, err
		}

		return solveShares(doc, ar, strict, workers, budget)

	case "exact":
		return solveShares(doc, shamir.ExactArithmetic{}, strict, workers, budget)
	}

	return nil, fmt.Errorf("unknown mode %q", mode)
}

func solveShares(doc *shamir.Document, ar shamir.Arithmetic, strict bool, workers, budget int) (*shamir.Result, error) {
	shares, err := shamir.DecodeRecords(doc.Records, ar, strict)
	if err != nil {
		return nil, err
	}

	solver := shamir.NewSolver(ar)
	solver.Workers = workers
	solver.MaxMismatches = budget

	return solver.Reconstruct(shares, doc.K)
}

func parsePrimes(list string) ([]uint64, error) {
	parts := strings.Split(list, ",")
	qs := make([]uint64, 0, len(parts))

	for _, part := range parts {
		q, err := strconv.ParseUint(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("bad prime list %q: %w", list, err)
		}
		qs = append(qs, q)
	}

	return qs, nil
}

func writeSamples(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	for name, content := range map[string]string{
		"testcase1.json": sampleTestcase1,
		"testcase2.json": sampleTestcase2,
	} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			return err
		}
	}

	return nil
}
