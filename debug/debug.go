package debug

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
)

type debug struct {
	Scan    bool
	Lookup  bool
	Restore bool
	Canon   bool
	Batch   bool
}

var (
	d = &debug{}

	out io.Writer = os.Stderr

	flags = map[string]*bool{
		"PARENRESTORE_DEBUG_SCAN":    &d.Scan,
		"PARENRESTORE_DEBUG_LOOKUP":  &d.Lookup,
		"PARENRESTORE_DEBUG_RESTORE": &d.Restore,
		"PARENRESTORE_DEBUG_CANON":   &d.Canon,
		"PARENRESTORE_DEBUG_BATCH":   &d.Batch,
	}
)

func init() {
	for env, p := range flags {
		*p = boolEnv(env)
	}
}

// Set turns the switch named by its environment variable on or off.
// Unknown names are ignored.
func Set(env string, on bool) {
	if p := flags[env]; p != nil {
		*p = on
	}
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Scan() bool {
	return d.Scan
}
func Lookup() bool {
	return d.Lookup
}
func Restore() bool {
	return d.Restore
}
func Canon() bool {
	return d.Canon
}
func Batch() bool {
	return d.Batch
}

// Output returns the writer debug output goes to, stderr unless replaced
// by SetOutput.
func Output() io.Writer {
	return out
}

func SetOutput(w io.Writer) {
	out = w
}

// Logf writes to Output().  Slices and maps among args are rendered as
// indented JSON.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch a.(type) {
		case []string, map[string]any, map[string][]string, []any:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		}
	}
	fmt.Fprintf(out, msg, args...)
}

// LogAny writes v as one line of JSON.
func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(out, "%v\n", v)
		return
	}
	out.Write(append(d, '\n'))
}
