package preset

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MauritiusChief/toki-ante/internal/csvdict"
	"github.com/MauritiusChief/toki-ante/internal/domain"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// ---------------------------------------------------------------------------
// Catalog
// ---------------------------------------------------------------------------

func TestList(t *testing.T) {
	t.Parallel()

	ids := func(ps []Preset) []string {
		var out []string
		for _, p := range ps {
			out = append(out, p.ID)
		}
		return out
	}

	assert.Equal(t, []string{"default", "conservative", "onomatopoeia"}, ids(List(domain.ModeForward)))
	assert.Equal(t, []string{"friendly", "default"}, ids(List(domain.ModeReverse)))
	assert.Empty(t, List(domain.Mode("nope")))
}

func TestFind_FallsBackToFirstOfMode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "conservative", Find(domain.ModeForward, "conservative").ID)
	assert.Equal(t, "default", Find(domain.ModeForward, "friendly").ID)
	assert.Equal(t, "friendly", Find(domain.ModeReverse, "unknown").ID)
	assert.Equal(t, "friendly", Find(domain.ModeReverse, CustomSavedID).ID)
}

func TestLookupAndByFile(t *testing.T) {
	t.Parallel()

	p, ok := Lookup("onomatopoeia")
	require.True(t, ok)
	assert.Equal(t, "dictionary_d.csv", p.File)

	_, ok = Lookup(CustomSavedID)
	assert.False(t, ok)

	p, ok = ByFile("dictionary_f.csv")
	require.True(t, ok)
	assert.Equal(t, "friendly", p.ID)

	_, ok = ByFile("../etc/passwd")
	assert.False(t, ok)
}

func TestUploadName(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "自定义文件: my.csv", UploadName("my.csv"))
}

// ---------------------------------------------------------------------------
// Variants
// ---------------------------------------------------------------------------

func TestEmbeddedBaseParses(t *testing.T) {
	t.Parallel()

	d, err := csvdict.Parse(BaseCSV())
	require.NoError(t, err)
	assert.Greater(t, d.Len(), 100)

	for _, v := range Variants {
		for word := range v.Edits {
			assert.True(t, d.Has(word), "%s edits %q which is missing from the base", v.File, word)
		}
	}
}

func TestDerive(t *testing.T) {
	t.Parallel()

	base := domain.NewDictionary()
	base.Set("toki", "语", "说话")
	base.Set("li", "者", "")
	base.Set("jan", "人", "人")

	got := Derive(base, VariantOnomatopoeia)
	assert.Equal(t, []domain.Entry{
		{Word: "toki", Display: "语", Gloss: "说话"},
		{Word: "li", Display: "哩", Gloss: ""},
		{Word: "jan", Display: "人", Gloss: "人"},
	}, got.Entries())

	// The base is left untouched.
	li, _ := base.Lookup("li")
	assert.Equal(t, "者", li.Display)
}

func TestDeriveCSV(t *testing.T) {
	t.Parallel()

	base := csvdict.Header + "\nmi,吾,我\nla,则,\nsina,你,你"
	out, err := DeriveCSV(base, VariantConservative)
	require.NoError(t, err)

	d, err := csvdict.Parse(out)
	require.NoError(t, err)
	assert.Equal(t, []string{"mi", "la", "sina"}, d.Words())

	la, _ := d.Lookup("la")
	assert.Equal(t, "la", la.Display)
	mi, _ := d.Lookup("mi")
	assert.Equal(t, "吾", mi.Display)
}

func TestDeriveCSV_BadBase(t *testing.T) {
	t.Parallel()

	_, err := DeriveCSV("not a dictionary", VariantFriendly)
	assert.True(t, errors.Is(err, domain.ErrFormat))
}

// ---------------------------------------------------------------------------
// Bundle
// ---------------------------------------------------------------------------

func TestBundle_Embedded(t *testing.T) {
	t.Parallel()

	b, err := NewBundle(discardLogger(), nil)
	require.NoError(t, err)

	for _, p := range All {
		text, err := b.Text(context.Background(), p.ID)
		require.NoError(t, err, p.ID)

		d, err := csvdict.Parse(text)
		require.NoError(t, err, p.ID)
		assert.Greater(t, d.Len(), 0)

		served, ok := b.File(p.File)
		require.True(t, ok)
		assert.Equal(t, text, served)
	}

	friendly, _ := b.Text(context.Background(), "friendly")
	d, _ := csvdict.Parse(friendly)
	toki, _ := d.Lookup("toki")
	assert.Equal(t, "语言话", toki.Display)
}

func TestBundle_UnknownPreset(t *testing.T) {
	t.Parallel()

	b, err := NewBundle(discardLogger(), nil)
	require.NoError(t, err)

	_, err = b.Text(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

type slowFetcher struct {
	calls   atomic.Int32
	release chan struct{}
	err     error
}

func (f *slowFetcher) FetchText(ctx context.Context, file string) (string, error) {
	f.calls.Add(1)
	select {
	case <-f.release:
	case <-ctx.Done():
		return "", ctx.Err()
	}
	if f.err != nil {
		return "", f.err
	}
	return csvdict.Header + "\nremote," + file + ",", nil
}

func TestBundle_RemoteSharesConcurrentFetches(t *testing.T) {
	t.Parallel()

	f := &slowFetcher{release: make(chan struct{})}
	b, err := NewBundle(discardLogger(), f)
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]string, 4)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			text, err := b.Text(context.Background(), "conservative")
			assert.NoError(t, err)
			results[i] = text
		}(i)
	}

	// Let every caller join the in-flight fetch before releasing it.
	time.Sleep(50 * time.Millisecond)
	close(f.release)
	wg.Wait()

	assert.Equal(t, int32(1), f.calls.Load())
	for _, r := range results {
		assert.True(t, strings.HasSuffix(r, "remote,dictionary_c.csv,"))
	}
}

func TestBundle_CancelledCallerDoesNotFailOthers(t *testing.T) {
	t.Parallel()

	f := &slowFetcher{release: make(chan struct{})}
	b, err := NewBundle(discardLogger(), f)
	require.NoError(t, err)

	leaderCtx, cancel := context.WithCancel(context.Background())
	leaderErr := make(chan error, 1)
	go func() {
		_, err := b.Text(leaderCtx, "conservative")
		leaderErr <- err
	}()

	// Wait for the first caller to start the fetch.
	require.Eventually(t, func() bool { return f.calls.Load() == 1 }, time.Second, 5*time.Millisecond)

	followerText := make(chan string, 1)
	followerErr := make(chan error, 1)
	go func() {
		text, err := b.Text(context.Background(), "conservative")
		followerErr <- err
		followerText <- text
	}()
	time.Sleep(50 * time.Millisecond)

	cancel()
	assert.ErrorIs(t, <-leaderErr, context.Canceled)

	close(f.release)
	require.NoError(t, <-followerErr)
	assert.True(t, strings.HasSuffix(<-followerText, "remote,dictionary_c.csv,"))
	assert.Equal(t, int32(1), f.calls.Load())
}

func TestBundle_RemoteError(t *testing.T) {
	t.Parallel()

	cause := domain.NewResourceError("dictionary.csv", errors.New("HTTP 404"))
	f := &slowFetcher{release: make(chan struct{}), err: cause}
	close(f.release)

	b, err := NewBundle(discardLogger(), f)
	require.NoError(t, err)

	_, err = b.Text(context.Background(), "default")
	assert.ErrorIs(t, err, domain.ErrResource)
}
