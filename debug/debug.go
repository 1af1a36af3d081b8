package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Parse   bool
	Walk    bool
	Emit    bool
	Convert bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("SVGC_DEBUG_PARSE")
	d.Walk = boolEnv("SVGC_DEBUG_WALK")
	d.Emit = boolEnv("SVGC_DEBUG_EMIT")
	d.Convert = boolEnv("SVGC_DEBUG_CONVERT")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Walk() bool {
	return d.Walk
}
func Emit() bool {
	return d.Emit
}
func Convert() bool {
	return d.Convert
}
