package dataset_test

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/fixturegen/config"
	"github.com/katalvlaran/fixturegen/dataset"
	"github.com/katalvlaran/fixturegen/detgen"
	"github.com/katalvlaran/fixturegen/fixture"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func ptr[T any](v T) *T { return &v }

func detJob(dir string, integer bool) config.Job {
	j := config.Job{
		Kind:                      config.KindDeterminant,
		Name:                      "mtx",
		OutputPath:                dir,
		NTests:                    12,
		Seed:                      ptr[int64](42),
		MatrixSizeRange:           &config.IntBounds{Min: 1, Max: 8},
		DiagElemsRange:            &config.Bounds{Min: -5, Max: 6},
		ElementaryTransformsRange: &config.IntBounds{Min: 0, Max: 40},
		Integer:                   ptr(integer),
	}
	if !integer {
		j.DiagElemsRange = &config.Bounds{Min: 0.5, Max: 3}
		j.Precision = ptr(6)
		j.ElementaryTransformsRange = &config.IntBounds{Min: 0, Max: 12}
	}
	return j
}

func readDir(t *testing.T, dir string) map[string]string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	out := make(map[string]string, len(entries))
	for _, e := range entries {
		b, err := os.ReadFile(filepath.Join(dir, e.Name()))
		require.NoError(t, err)
		out[e.Name()] = string(b)
	}
	return out
}

// Same seed, different worker counts: byte-identical fixture sets.
func TestRunJob_DeterministicAcrossWorkers(t *testing.T) {
	root := t.TempDir()
	ctx := context.Background()

	serial := detJob(filepath.Join(root, "serial"), true)
	serial.Workers = 1
	parallel := detJob(filepath.Join(root, "parallel"), true)
	parallel.Workers = 8

	_, err := dataset.New().RunJob(ctx, serial)
	require.NoError(t, err)
	_, err = dataset.New().RunJob(ctx, parallel)
	require.NoError(t, err)

	a, b := readDir(t, serial.Dir()), readDir(t, parallel.Dir())
	require.Len(t, a, 24)
	require.Contains(t, a, "mtx001.dat")
	require.Contains(t, a, "mtx012.dat.ans")
	if diff := cmp.Diff(a, b); diff != "" {
		t.Fatalf("fixture sets differ (-serial +parallel):\n%s", diff)
	}
}

func TestRun_AllKindsVerify(t *testing.T) {
	root := t.TempDir()
	jobs := []config.Job{
		detJob(filepath.Join(root, "int"), true),
		detJob(filepath.Join(root, "float"), false),
		{
			Kind:       config.KindRange,
			Name:       "rq",
			OutputPath: filepath.Join(root, "range"),
			NTests:     5,
			Seed:       ptr[int64](7),
			NKeysRange: &config.IntBounds{Min: 0, Max: 30},
			NQsRange:   &config.IntBounds{Min: 1, Max: 10},
			KRange:     &config.IntBounds{Min: -40, Max: 40},
		},
		{
			Kind:       config.KindSort,
			OutputPath: filepath.Join(root, "sort"),
			NTests:     4,
			Seed:       ptr[int64](7),
			SizeRange:  &config.IntBounds{Min: 0, Max: 20},
			DataRange:  &config.IntBounds{Min: 0, Max: 1000},
		},
	}

	reports, err := dataset.New(dataset.WithWorkers(3)).Run(context.Background(), jobs)
	require.NoError(t, err)
	require.Len(t, reports, len(jobs))

	for i, want := range []config.Kind{config.KindDeterminant, config.KindDeterminant, config.KindRange, config.KindSort} {
		rep, err := dataset.Verify(reports[i].Dir)
		require.NoError(t, err, "job %s", reports[i].Job)
		require.Equal(t, jobs[i].NTests, rep.Checked)
		require.Equal(t, jobs[i].NTests, rep.ByKind[want])
	}
	// Unnamed sort job: files are just the index.
	require.FileExists(t, filepath.Join(root, "sort", "001.dat"))
}

// Float jobs of the historical shape verify at every precision, including 0.
func TestRun_FloatPrecisionsVerify(t *testing.T) {
	root := t.TempDir()
	var jobs []config.Job
	for _, p := range []int{0, 1, 3} {
		jobs = append(jobs, config.Job{
			Kind:                      config.KindDeterminant,
			Name:                      "mtx",
			OutputPath:                filepath.Join(root, fmt.Sprintf("p%d", p)),
			NTests:                    200,
			Seed:                      ptr[int64](int64(p)),
			MatrixSizeRange:           &config.IntBounds{Min: 2, Max: 10},
			DiagElemsRange:            &config.Bounds{Min: -5, Max: 6},
			ElementaryTransformsRange: &config.IntBounds{Min: 10, Max: 50},
			Integer:                   ptr(false),
			Precision:                 ptr(p),
		})
	}

	reports, err := dataset.New(dataset.WithWorkers(4)).Run(context.Background(), jobs)
	require.NoError(t, err)
	for _, r := range reports {
		rep, err := dataset.Verify(r.Dir)
		require.NoError(t, err, "job %s", r.Job)
		require.Equal(t, 200, rep.ByKind[config.KindDeterminant])
	}
}

func TestRunJob_InvalidRangeTouchesNothing(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "never")
	job := detJob(dir, true)
	job.MatrixSizeRange = &config.IntBounds{Min: 3, Max: 3}

	_, err := dataset.New().RunJob(context.Background(), job)
	require.ErrorIs(t, err, detgen.ErrInvalidRange)
	require.NoDirExists(t, dir)
}

func TestRunJob_ConfigurationErrors(t *testing.T) {
	root := t.TempDir()

	fractional := detJob(filepath.Join(root, "a"), true)
	fractional.DiagElemsRange = &config.Bounds{Min: -1.5, Max: 3}
	_, err := dataset.New().RunJob(context.Background(), fractional)
	require.ErrorIs(t, err, dataset.ErrConfiguration)

	missing := detJob(filepath.Join(root, "b"), true)
	missing.Integer = nil
	_, err = dataset.New().RunJob(context.Background(), missing)
	require.ErrorIs(t, err, dataset.ErrConfiguration)

	// Output path occupied by a regular file.
	blocker := filepath.Join(root, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))
	_, err = dataset.New().RunJob(context.Background(), detJob(blocker, true))
	require.ErrorIs(t, err, dataset.ErrConfiguration)
}

func TestRunJob_Clean(t *testing.T) {
	dir := t.TempDir()
	stale := filepath.Join(dir, "stale.dat")
	require.NoError(t, os.WriteFile(stale, []byte("old"), 0o644))

	job := detJob(dir, true)
	_, err := dataset.New().RunJob(context.Background(), job)
	require.NoError(t, err)
	require.FileExists(t, stale)

	job.Clean = true
	_, err = dataset.New().RunJob(context.Background(), job)
	require.NoError(t, err)
	require.NoFileExists(t, stale)
	require.FileExists(t, filepath.Join(dir, "mtx012.dat"))
}

func TestRunJob_Logging(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	job := detJob(t.TempDir(), true)
	job.Seed = nil
	job.MatrixSizeRange = &config.IntBounds{Min: 1, Max: 2} // always 1x1
	job.NTests = 3

	o := dataset.New(dataset.WithLogger(zap.New(core)), dataset.WithSeedSource(func() int64 { return 99 }))
	rep, err := o.RunJob(context.Background(), job)
	require.NoError(t, err)
	require.EqualValues(t, 99, rep.Seed)

	started := logs.FilterMessage("generating fixtures").All()
	require.Len(t, started, 1)
	fields := started[0].ContextMap()
	require.EqualValues(t, 99, fields["seed"])
	require.Equal(t, false, fields["seeded"])
	require.Equal(t, "determinant/mtx", fields["job"])

	require.Equal(t, 3, logs.FilterMessage("1x1 matrix, transforms skipped").Len())
	require.Equal(t, 3, logs.FilterMessage("case written").Len())
	require.Equal(t, 1, logs.FilterMessage("fixtures written").Len())
}

// memWriter records fixtures and fails on one index.
type memWriter struct {
	mu     sync.Mutex
	failAt int
	saved  map[int]fixture.TestCase
}

func (w *memWriter) Save(ctx context.Context, index int, tc fixture.TestCase) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if index == w.failAt {
		return fmt.Errorf("disk full: %w", dataset.ErrStorage)
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.saved == nil {
		w.saved = make(map[int]fixture.TestCase)
	}
	w.saved[index] = tc
	return nil
}

func constGen(in string) fixture.Generator {
	return fixture.GeneratorFunc(func(rng *rand.Rand) (fixture.TestCase, error) {
		return fixture.TestCase{Input: in, Answer: fmt.Sprint(rng.Intn(10))}, nil
	})
}

func TestGenerate_StorageFailureStopsRun(t *testing.T) {
	w := &memWriter{failAt: 3}
	err := dataset.New().Generate(context.Background(), constGen("x"), w, 50, 1, 4)
	require.ErrorIs(t, err, dataset.ErrStorage)
	require.NotContains(t, w.saved, 3)
}

func TestGenerate_GeneratorErrorPropagates(t *testing.T) {
	gen := fixture.GeneratorFunc(func(*rand.Rand) (fixture.TestCase, error) {
		return fixture.TestCase{}, detgen.ErrOverflow
	})
	err := dataset.New().Generate(context.Background(), gen, &memWriter{}, 5, 1, 2)
	require.ErrorIs(t, err, detgen.ErrOverflow)
}

func TestGenerate_IndicesAndCancellation(t *testing.T) {
	w := &memWriter{}
	require.NoError(t, dataset.New().Generate(context.Background(), constGen("x"), w, 20, 5, 0))
	require.Len(t, w.saved, 20)
	require.Contains(t, w.saved, 1)
	require.Contains(t, w.saved, 20)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := dataset.New().Generate(ctx, constGen("x"), &memWriter{}, 20, 5, 2)
	require.ErrorIs(t, err, context.Canceled)
}

func TestVerify_ReportsEveryBadPair(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}
	write("a001.dat", "2\n2     \t3     \t\n0     \t3     \t\n")
	write("a001.dat.ans", "6")
	write("a002.dat", "2\n0     \t3     \t\n2     \t0     \t\n")
	write("a002.dat.ans", "6") // swapped rows: det is -6
	write("a003.dat", "k 1 k 5 q 0 4 ")
	write("a003.dat.ans", "1 ")
	write("a004.dat", "3 3 1 2 ") // answer missing

	rep, err := dataset.Verify(dir)
	require.Equal(t, 2, rep.Checked)
	require.Equal(t, 1, rep.ByKind[config.KindDeterminant])
	require.Equal(t, 1, rep.ByKind[config.KindRange])
	require.Len(t, multierr.Errors(err), 2)
	require.ErrorIs(t, err, dataset.ErrMismatch)
	require.ErrorIs(t, err, dataset.ErrStorage)

	_, err = dataset.Verify(filepath.Join(dir, "absent"))
	require.ErrorIs(t, err, dataset.ErrStorage)
}

func TestVerifyCase(t *testing.T) {
	for _, tc := range []struct {
		in, ans string
		kind    config.Kind
		err     error
	}{
		{"1\n-7     \t\n", "-7", config.KindDeterminant, nil},
		{"2\n1.500    \t0.000    \t\n0.000    \t2.000    \t\n", "3.000", config.KindDeterminant, nil},
		{"2\n1.500    \t0.000    \t\n0.000    \t2.000    \t\n", "3.100", config.KindDeterminant, dataset.ErrMismatch},
		{"2\n0.1 0.2\n0.3 0.4\n", "-0.0", config.KindDeterminant, nil},
		{"2\n0.1 0.2\n0.3 0.4\n", "-0.2", config.KindDeterminant, dataset.ErrMismatch},
		{"2\n3 4\n1 2\n", "2", config.KindDeterminant, nil},
		{"2\n3 4\n1 2\n", "3", config.KindDeterminant, dataset.ErrMismatch},
		{"", "", config.KindRange, nil},
		{"k 2 q 3 1 q 5 9 ", "1 0 ", config.KindRange, nil},
		{"k 2 q 3 1 ", "0 ", config.KindRange, dataset.ErrMismatch},
		{"k 2 q 3 1 ", "1 1 ", config.KindRange, dataset.ErrMismatch},
		{"0 ", "", config.KindSort, nil},
		{"2 9 4 ", "4 9 ", config.KindSort, nil},
		{"2 9 4 ", "9 4 ", config.KindSort, dataset.ErrMismatch},
		{"2\n1 x\n", "0", config.KindDeterminant, detgen.ErrMalformed},
	} {
		kind, err := dataset.VerifyCase(tc.in, tc.ans)
		require.Equal(t, tc.kind, kind, "input %q", tc.in)
		if tc.err == nil {
			require.NoError(t, err, "input %q", tc.in)
			continue
		}
		require.True(t, errors.Is(err, tc.err), "input %q: got %v", tc.in, err)
	}
}

func TestFileNames(t *testing.T) {
	in, ans := dataset.FileNames("mtx", 7)
	require.Equal(t, "mtx007.dat", in)
	require.Equal(t, "mtx007.dat.ans", ans)
	in, _ = dataset.FileNames("", 1234)
	require.Equal(t, "1234.dat", in)
}

func TestOptionsPanic(t *testing.T) {
	require.Panics(t, func() { dataset.WithLogger(nil) })
	require.Panics(t, func() { dataset.WithWorkers(-1) })
	require.Panics(t, func() { dataset.WithSeedSource(nil) })
}
