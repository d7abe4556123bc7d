package segment

import (
	"iter"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		path string
		want []string
	}{
		{
			name: "simple path",
			path: "a/b",
			want: []string{"a", "b"},
		},
		{
			name: "leading and trailing separators",
			path: "/a//b/",
			want: []string{"a", "b"},
		},
		{
			name: "repeated separators",
			path: "/a//b///c",
			want: []string{"a", "b", "c"},
		},
		{
			name: "empty string",
			path: "",
			want: nil,
		},
		{
			name: "only separators",
			path: "///",
			want: nil,
		},
		{
			name: "single segment",
			path: "/users/",
			want: []string{"users"},
		},
		{
			name: "separator only once",
			path: "/",
			want: nil,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, slices.Collect(Split(tc.path, '/')))
		})
	}
}

func TestSplitNoEmptySegments(t *testing.T) {
	t.Parallel()

	paths := []string{"", "/", "//", "a", "/a", "a/", "/a/b/c/", "a//b", "///x///y///"}
	for _, path := range paths {
		for seg := range Split(path, '/') {
			assert.NotEmpty(t, seg, "path %q", path)
			assert.NotContains(t, seg, "/", "path %q", path)
		}
	}
}

func TestSplitPreservesOrder(t *testing.T) {
	t.Parallel()

	path := "/one/two/three/four"
	want := strings.FieldsFunc(path, func(r rune) bool { return r == '/' })
	assert.Equal(t, want, slices.Collect(Split(path, '/')))
}

func TestSplitRestartable(t *testing.T) {
	t.Parallel()

	seq := Split("/a/b/c", '/')
	first := slices.Collect(seq)
	second := slices.Collect(seq)
	assert.Equal(t, first, second)
}

func TestSplitIndependentReaders(t *testing.T) {
	t.Parallel()

	seq := Split("/a/b/c", '/')

	// Interleave two pulls on the same sequence. Each next call advances only
	// its own reader.
	next1, stop1 := iter.Pull(seq)
	defer stop1()
	next2, stop2 := iter.Pull(seq)
	defer stop2()

	v1, ok := next1()
	require.True(t, ok)
	assert.Equal(t, "a", v1)
	v1, ok = next1()
	require.True(t, ok)
	assert.Equal(t, "b", v1)

	v2, ok := next2()
	require.True(t, ok)
	assert.Equal(t, "a", v2)

	v1, ok = next1()
	require.True(t, ok)
	assert.Equal(t, "c", v1)
}

func TestSplitEarlyStop(t *testing.T) {
	t.Parallel()

	var got []string
	for seg := range Split("/a/b/c/d", '/') {
		got = append(got, seg)
		if len(got) == 2 {
			break
		}
	}
	assert.Equal(t, []string{"a", "b"}, got)
}

func TestSplitCustomSeparator(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"a", "b", "c"}, slices.Collect(Split(".a..b.c.", '.')))
}

func TestSplitN(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		path string
		n    int
		want []string
	}{
		{
			name: "limit keeps remainder verbatim",
			path: "/test/this/string/works/fine",
			n:    3,
			want: []string{"test", "this", "string", "works/fine"},
		},
		{
			name: "limit greater than split count",
			path: "/a/b",
			n:    10,
			want: []string{"a", "b"},
		},
		{
			name: "limit exactly at split count",
			path: "/a/b/c",
			n:    2,
			want: []string{"a", "b", "c"},
		},
		{
			name: "zero limit",
			path: "/a/b/c",
			n:    0,
			want: []string{"a/b/c"},
		},
		{
			name: "remainder keeps inner separators",
			path: "a//b///c/d",
			n:    1,
			want: []string{"a", "b///c/d"},
		},
		{
			name: "negative limit behaves like split",
			path: "/a/b/c",
			n:    -1,
			want: []string{"a", "b", "c"},
		},
		{
			name: "only separators",
			path: "///",
			n:    2,
			want: nil,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, slices.Collect(SplitN(tc.path, '/', tc.n)))
		})
	}
}

func TestSplitNMatchesStdlibSplitN(t *testing.T) {
	t.Parallel()

	// The bounded variant must agree with the standard library "split with
	// max splits" contract once empty fragments are dropped.
	path := "/test/this/string/works/fine"
	var want []string
	for _, frag := range strings.SplitN(strings.Trim(path, "/"), "/", 4) {
		if frag != "" {
			want = append(want, frag)
		}
	}
	assert.Equal(t, want, slices.Collect(SplitN(path, '/', 3)))
}
