// Package debug provides env-var gated diagnostic logging.
//
// Flags are read once at process start from NARCHIVE_DEBUG_* variables.
package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Browse  bool
	Resolve bool
	RPC     bool
}

var d *debug

func init() {
	d = &debug{}
	d.Browse = boolEnv("NARCHIVE_DEBUG_BROWSE")
	d.Resolve = boolEnv("NARCHIVE_DEBUG_RESOLVE")
	d.RPC = boolEnv("NARCHIVE_DEBUG_RPC")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Browse() bool {
	return d.Browse
}
func Resolve() bool {
	return d.Resolve
}
func RPC() bool {
	return d.RPC
}

func Logf(msg string, args ...any) {
	for i := range args {
		switch a := args[i].(type) {
		case map[string]any, []any, json.Number:
			d, err := json.Marshal(a)
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
