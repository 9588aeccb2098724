// Package debug holds env-gated debug switches for prop and its
// tooling.
package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Classify bool
	Gen      bool
}

var d *debug

func init() {
	d = &debug{}
	d.Classify = boolEnv("PROP_DEBUG_CLASSIFY")
	d.Gen = boolEnv("PROP_DEBUG_GEN")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

// Classify gates logging of accessor classification decisions.
func Classify() bool {
	return d.Classify
}

// Gen gates logging in the propgen code generator.
func Gen() bool {
	return d.Gen
}

func Logf(msg string, args ...any) {
	if len(msg) == 0 || msg[len(msg)-1] != '\n' {
		msg += "\n"
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}

// JSON renders v for log output, falling back to %v when v does not
// marshal.
func JSON(v any) string {
	d, err := json.MarshalIndent(v, "   |", "  ")
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(d)
}
