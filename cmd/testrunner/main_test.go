package main

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, nil, 0o755))
}

type recordedRun struct {
	bin  string
	args []string
}

func newTestRunner(dir string, fail map[string]bool) (*runner, *[]recordedRun) {
	var (
		mu   sync.Mutex
		runs []recordedRun
	)
	r := &runner{
		testsDir:    dir,
		workDir:     dir,
		pkgParallel: 2,
		count:       1,
		log:         zap.NewNop(),
		exec: func(bin string, args []string, _ string) error {
			mu.Lock()
			runs = append(runs, recordedRun{bin: filepath.Base(bin), args: args})
			mu.Unlock()
			if fail[filepath.Base(bin)] {
				return errors.New("exit status 1")
			}
			return nil
		},
	}
	return r, &runs
}

func TestCollectTestBinaries(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "api", "router.test"))
	touch(t, filepath.Join(dir, "api", "config.test"))
	touch(t, filepath.Join(dir, "README"))

	bins, err := collectTestBinaries(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "api", "config.test"),
		filepath.Join(dir, "api", "router.test"),
	}, bins)
}

func TestTestArgs(t *testing.T) {
	assert.Equal(t, []string{"-test.v", "-test.short", "-test.count=1", "-test.parallel=1"}, testArgs(true, true, 1, 1))
	assert.Empty(t, testArgs(false, false, 0, 0))
}

func TestRun_SeparatesIntegrationPackage(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "api", "config.test"))
	touch(t, filepath.Join(dir, "api", "router.test"))

	r, runs := newTestRunner(dir, nil)
	require.NoError(t, r.run("_Integration$", "api/router"))

	require.Len(t, *runs, 2)
	var integration recordedRun
	for _, run := range *runs {
		if run.bin == "router.test" {
			integration = run
		}
	}
	assert.Contains(t, integration.args, "-test.run")
	assert.Contains(t, integration.args, "-test.parallel=1")
}

func TestRun_Errors(t *testing.T) {
	dir := t.TempDir()
	r, _ := newTestRunner(dir, nil)
	assert.Error(t, r.run("", ""), "empty tests dir")

	touch(t, filepath.Join(dir, "api", "config.test"))
	assert.Error(t, r.run("_Integration$", ""), "missing integration path")
	assert.Error(t, r.run("_Integration$", "api/missing"), "missing integration binary")

	r, _ = newTestRunner(dir, map[string]bool{"config.test": true})
	err := r.run("", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config.test failed")
}
