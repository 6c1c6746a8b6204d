package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Patch   bool
	Session bool
	Store   bool
	Graph   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Patch = boolEnv("NODEEDIT_DEBUG_PATCH")
	d.Session = boolEnv("NODEEDIT_DEBUG_SESSION")
	d.Store = boolEnv("NODEEDIT_DEBUG_STORE")
	d.Graph = boolEnv("NODEEDIT_DEBUG_GRAPH")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Patch() bool {
	return d.Patch
}
func Session() bool {
	return d.Session
}
func Store() bool {
	return d.Store
}
func Graph() bool {
	return d.Graph
}

// SetAll turns every debug toggle on or off.
func SetAll(v bool) {
	d.Patch = v
	d.Session = v
	d.Store = v
	d.Graph = v
}
