package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/tbeaudouin05/braintree-billing/api/logger"
)

// runner executes compiled package test binaries (go test -c output).
type runner struct {
	testsDir    string
	workDir     string
	short       bool
	pkgParallel int
	count       int
	verbose     bool
	log         *zap.Logger
	// exec is swapped in tests.
	exec func(bin string, args []string, dir string) error
}

func main() {
	r := runner{exec: execBinary}
	var integrationRun, integrationPath, logLevel string

	flag.StringVar(&r.testsDir, "tests-dir", "/app/tests", "directory containing compiled test binaries")
	flag.StringVar(&r.workDir, "work-dir", "/app", "fallback working directory for test binaries")
	flag.BoolVar(&r.short, "short", false, "run tests with -test.short")
	flag.IntVar(&r.pkgParallel, "pkg-parallel", runtime.NumCPU(), "number of packages to run in parallel")
	flag.IntVar(&r.count, "count", 1, "pass -test.count to disable caching when set to 1")
	flag.StringVar(&integrationRun, "integration-run", "", "regex of integration test(s) to run with -test.run, e.g. '_Integration$'")
	flag.StringVar(&integrationPath, "integration-path", "", "relative package path like 'api/router' for integration run")
	flag.BoolVar(&r.verbose, "v", true, "add -test.v to test binaries")
	flag.StringVar(&logLevel, "log-level", "info", "runner log level")
	flag.Parse()

	log, err := logger.New(logLevel, "console")
	if err != nil {
		fatal(err)
	}
	r.log = log
	defer func() { _ = log.Sync() }()

	if err := r.run(integrationRun, integrationPath); err != nil {
		log.Error("test run failed", zap.Error(err))
		_ = log.Sync()
		os.Exit(1)
	}
	log.Info("all tests passed")
}

func (r runner) run(integrationRun, integrationPath string) error {
	bins, err := collectTestBinaries(r.testsDir)
	if err != nil {
		return err
	}
	if len(bins) == 0 {
		return errors.New("no test binaries found")
	}

	var integrationBin string
	if integrationRun != "" {
		if integrationPath == "" {
			return errors.New("integration-path is required when integration-run is set")
		}
		integrationBin = filepath.Join(r.testsDir, filepath.FromSlash(integrationPath)+".test")
		if _, err := os.Stat(integrationBin); err != nil {
			return fmt.Errorf("integration binary not found at %s: %w", integrationBin, err)
		}
	}

	// The integration package is excluded from the unit pass.
	unitBins := make([]string, 0, len(bins))
	for _, b := range bins {
		if integrationBin != "" && sameFile(b, integrationBin) {
			continue
		}
		unitBins = append(unitBins, b)
	}

	r.log.Info("running unit tests", zap.Int("packages", len(unitBins)))
	if err := r.runBinaries(unitBins, testArgs(r.verbose, r.short, r.count, 0), r.pkgParallel); err != nil {
		return err
	}

	if integrationBin != "" {
		r.log.Info("running integration tests", zap.String("package", integrationPath), zap.String("run", integrationRun))
		args := testArgs(r.verbose, r.short, r.count, 1)
		args = append(args, "-test.run", integrationRun)
		if err := r.runBinaries([]string{integrationBin}, args, 1); err != nil {
			return err
		}
	}
	return nil
}

func collectTestBinaries(root string) ([]string, error) {
	var bins []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), ".test") {
			bins = append(bins, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(bins)
	return bins, nil
}

func testArgs(verbose, short bool, count, testParallel int) []string {
	args := []string{}
	if verbose {
		args = append(args, "-test.v")
	}
	if short {
		args = append(args, "-test.short")
	}
	if count > 0 {
		args = append(args, fmt.Sprintf("-test.count=%d", count))
	}
	if testParallel > 0 {
		args = append(args, fmt.Sprintf("-test.parallel=%d", testParallel))
	}
	return args
}

// runBinaries runs bins with at most parallel in flight and returns the first failure.
func (r runner) runBinaries(bins []string, args []string, parallel int) error {
	if parallel < 1 {
		parallel = 1
	}
	sem := make(chan struct{}, parallel)
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	for _, b := range bins {
		wg.Add(1)
		sem <- struct{}{}
		go func(bin string) {
			defer wg.Done()
			defer func() { <-sem }()
			r.log.Debug("run", zap.String("binary", bin), zap.Strings("args", args))
			if err := r.exec(bin, args, r.dirFor(bin)); err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = fmt.Errorf("%s failed: %w", bin, err)
				}
				mu.Unlock()
			}
		}(b)
	}
	wg.Wait()
	return firstErr
}

// dirFor picks the package-like directory next to the binary, if present.
func (r runner) dirFor(bin string) string {
	wd := strings.TrimSuffix(bin, ".test")
	if fi, err := os.Stat(wd); err == nil && fi.IsDir() {
		return wd
	}
	return r.workDir
}

func execBinary(bin string, args []string, dir string) error {
	cmd := exec.Command(bin, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = os.Environ()
	cmd.Dir = dir
	return cmd.Run()
}

func sameFile(a, b string) bool {
	ap, _ := filepath.Abs(a)
	bp, _ := filepath.Abs(b)
	return ap == bp
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
