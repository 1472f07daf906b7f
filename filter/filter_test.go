package filter

import (
	"errors"
	"testing"
)

type matchTest struct {
	src  string
	file File
	want bool
}

func TestMatch(t *testing.T) {
	t.Setenv("PARENRESTORE_TEST_DIALECT", "janet")
	clj := File{Path: "src/app/core.clj", Ext: ".clj", Dialect: "clojure", Size: 1200}
	mts := []matchTest{
		{src: "", file: clj, want: true},
		{src: `dialect == "clojure"`, file: clj, want: true},
		{src: `ext in [".edn", ".bb"]`, file: clj, want: false},
		{src: `glob("src/*/*.clj", path)`, file: clj, want: true},
		{src: `!glob("test/*", path) && size < 1e6`, file: clj, want: true},
		{src: `size > 2000`, file: clj, want: false},
		{src: `path startsWith "src/"`, file: clj, want: true},
		{src: `dialect == getenv("PARENRESTORE_TEST_DIALECT")`, file: clj, want: false},
	}
	for _, mt := range mts {
		f, err := Compile(mt.src)
		if err != nil {
			t.Errorf("%q: %v", mt.src, err)
			continue
		}
		got, err := f.Match(mt.file)
		if err != nil {
			t.Errorf("%q: %v", mt.src, err)
			continue
		}
		if got != mt.want {
			t.Errorf("%q on %+v = %t, want %t", mt.src, mt.file, got, mt.want)
		}
	}
}

func TestCompileErr(t *testing.T) {
	for _, src := range []string{
		`size +`,
		`path`,
		`nosuchfield == 1`,
	} {
		if _, err := Compile(src); !errors.Is(err, ErrFilter) {
			t.Errorf("%q: got %v, want ErrFilter", src, err)
		}
	}
}

func TestMatchErr(t *testing.T) {
	f, err := Compile(`glob("[", path)`)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.Match(File{Path: "x"}); !errors.Is(err, ErrFilter) {
		t.Errorf("got %v, want ErrFilter", err)
	}
}

func TestNilFilter(t *testing.T) {
	var f *Filter
	ok, err := f.Match(File{})
	if !ok || err != nil {
		t.Errorf("nil filter: %t %v", ok, err)
	}
}
