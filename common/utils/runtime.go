package utils

import (
	"runtime"
	"strings"
)

const unknownFunction = "<unknown>"

// GetCallerFunctionName returns the short name of a function on the call
// stack. skip follows runtime.Callers: 0 is Callers itself, 1 is this
// function, 2 its caller and so on.
//
// Methods keep their receiver type: "(*Dashboard).Fetch" becomes
// "Dashboard.Fetch". Closures report their enclosing function.
func GetCallerFunctionName(skip int) string {
	pc := make([]uintptr, 1)
	n := runtime.Callers(skip, pc)
	if n == 0 {
		return unknownFunction
	}
	frame, _ := runtime.CallersFrames(pc[:n]).Next()
	return ShortFunctionName(frame.Function)
}

// ShortFunctionName trims the import path from a fully qualified function name.
func ShortFunctionName(full string) string {
	name := full
	if i := strings.LastIndexByte(name, '/'); i != -1 {
		name = name[i+1:]
	}
	// drop the package name
	if i := strings.IndexByte(name, '.'); i != -1 {
		name = name[i+1:]
	}
	name = strings.NewReplacer("(*", "", ")", "").Replace(name)
	// closures: Fetch.func1 -> Fetch
	if i := strings.Index(name, ".func"); i != -1 {
		name = name[:i]
	}
	if name == "" {
		return unknownFunction
	}
	return name
}
