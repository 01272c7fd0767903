//go:build unit

package depub

import (
	"context"
	"strings"
	"testing"

	"github.com/lerenn/depub/pkg/dependencies"
	"github.com/lerenn/depub/pkg/fs"
	"github.com/lerenn/depub/pkg/oracle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDepub(t *testing.T, mem *fs.MemoryFS, o oracle.Oracle, maxRounds int) Depub {
	t.Helper()

	d, err := NewDepub(NewDepubParams{
		Dependencies: dependencies.New().WithFS(mem).WithOracle(o),
		MaxRounds:    maxRounds,
	})
	require.NoError(t, err)
	return d
}

func acceptAll() oracle.Oracle {
	return oracle.Func(func(_ context.Context) bool { return true })
}

func TestNewDepub_MissingOracle(t *testing.T) {
	_, err := NewDepub(NewDepubParams{Dependencies: dependencies.New()})
	assert.ErrorIs(t, err, dependencies.ErrOracleMissing)
}

func TestNewDepub_NegativeRounds(t *testing.T) {
	_, err := NewDepub(NewDepubParams{
		Dependencies: dependencies.New().WithOracle(acceptAll()),
		MaxRounds:    -1,
	})
	assert.ErrorIs(t, err, ErrInvalidRounds)
}

func TestRun_AcceptAllConvergesInTwoRounds(t *testing.T) {
	mem := fs.NewMemoryFS()
	mem.AddFile("a.rs", "pub fn a() {}\npub(crate) fn b() {}\n", 0644)
	mem.AddFile("b.rs", "pub(super) struct S;\n", 0644)

	report, err := newTestDepub(t, mem, acceptAll(), 0).Run(context.Background(), []string{"a.rs", "b.rs"})
	require.NoError(t, err)

	assert.Equal(t, "fn a() {}\nfn b() {}\n", mem.Content("a.rs"))
	assert.Equal(t, "struct S;\n", mem.Content("b.rs"))

	require.Len(t, report.Rounds, 2)
	assert.True(t, report.Rounds[0].Changed)
	assert.Equal(t, []FileReport{{Path: "a.rs", Changed: 2}, {Path: "b.rs", Changed: 1}}, report.Rounds[0].Files)
	assert.False(t, report.Rounds[1].Changed)
	assert.Equal(t, 3, report.TotalChanged)
	assert.True(t, report.Converged())
}

func TestRun_CrossFileDependencyNeedsSecondRound(t *testing.T) {
	mem := fs.NewMemoryFS()
	// a.rs is processed first; its item may only go private once b.rs no
	// longer re-exports it publicly.
	mem.AddFile("a.rs", "pub fn helper() {}\n", 0644)
	mem.AddFile("b.rs", "pub use a::helper;\n", 0644)

	o := oracle.Func(func(_ context.Context) bool {
		return !strings.HasPrefix(mem.Content("a.rs"), "fn") ||
			!strings.HasPrefix(mem.Content("b.rs"), "pub ")
	})

	report, err := newTestDepub(t, mem, o, 0).Run(context.Background(), []string{"a.rs", "b.rs"})
	require.NoError(t, err)

	assert.Equal(t, "fn helper() {}\n", mem.Content("a.rs"))
	assert.Equal(t, "use a::helper;\n", mem.Content("b.rs"))
	require.Len(t, report.Rounds, 3)
	assert.Equal(t, 1, report.Rounds[0].Files[0].Changed) // pub -> pub(super)
	assert.Equal(t, 1, report.Rounds[0].Files[1].Changed)
	assert.Equal(t, 1, report.Rounds[1].Files[0].Changed)
	assert.False(t, report.Rounds[2].Changed)
}

func TestRun_RejectAllLeavesFilesIntact(t *testing.T) {
	content := "pub fn a() {}\npub(crate) fn b() {}\n"
	mem := fs.NewMemoryFS()
	mem.AddFile("a.rs", content, 0644)

	o := oracle.Func(func(_ context.Context) bool { return false })
	report, err := newTestDepub(t, mem, o, 0).Run(context.Background(), []string{"a.rs"})
	require.NoError(t, err)

	assert.Equal(t, content, mem.Content("a.rs"))
	require.Len(t, report.Rounds, 1)
	assert.Zero(t, report.TotalChanged)
}

func TestRun_Idempotent(t *testing.T) {
	mem := fs.NewMemoryFS()
	mem.AddFile("a.rs", "pub fn a() {}\npub struct S;\n", 0644)

	keepS := oracle.Func(func(_ context.Context) bool {
		return strings.Contains(mem.Content("a.rs"), "pub struct S")
	})

	d := newTestDepub(t, mem, keepS, 0)
	_, err := d.Run(context.Background(), []string{"a.rs"})
	require.NoError(t, err)
	first := mem.Content("a.rs")
	assert.Equal(t, "fn a() {}\npub struct S;\n", first)

	report, err := d.Run(context.Background(), []string{"a.rs"})
	require.NoError(t, err)
	assert.Equal(t, first, mem.Content("a.rs"))
	assert.Zero(t, report.TotalChanged)
	assert.Len(t, report.Rounds, 1)
}

func TestRun_DuplicatePathsProcessedOnce(t *testing.T) {
	mem := fs.NewMemoryFS()
	mem.AddFile("a.rs", "pub fn a() {}\n", 0644)

	report, err := newTestDepub(t, mem, acceptAll(), 0).Run(context.Background(), []string{"a.rs", "./a.rs"})
	require.NoError(t, err)
	require.NotEmpty(t, report.Rounds)
	assert.Len(t, report.Rounds[0].Files, 1)
}

func TestRun_MaxRoundsReached(t *testing.T) {
	mem := fs.NewMemoryFS()
	mem.AddFile("a.rs", "pub fn a() {}\n", 0644)

	report, err := newTestDepub(t, mem, acceptAll(), 1).Run(context.Background(), []string{"a.rs"})
	assert.ErrorIs(t, err, ErrMaxRoundsReached)
	assert.Len(t, report.Rounds, 1)
	assert.False(t, report.Converged())
	assert.Equal(t, "fn a() {}\n", mem.Content("a.rs"))
}

func TestRun_InputErrors(t *testing.T) {
	mem := fs.NewMemoryFS()
	mem.AddFile("dir/a.rs", "pub fn a() {}\n", 0644)
	d := newTestDepub(t, mem, acceptAll(), 0)

	_, err := d.Run(context.Background(), nil)
	assert.ErrorIs(t, err, ErrNoFiles)

	_, err = d.Run(context.Background(), []string{"missing.rs"})
	assert.ErrorIs(t, err, ErrFileNotFound)

	_, err = d.Run(context.Background(), []string{"dir"})
	assert.ErrorIs(t, err, ErrIsDirectory)

	assert.Zero(t, mem.Writes("dir/a.rs"))
}

func TestRun_Cancelled(t *testing.T) {
	mem := fs.NewMemoryFS()
	mem.AddFile("a.rs", "pub fn a() {}\n", 0644)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestDepub(t, mem, acceptAll(), 0).Run(ctx, []string{"a.rs"})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, "pub fn a() {}\n", mem.Content("a.rs"))
}
