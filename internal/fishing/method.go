package fishing

import "strings"

// Method is the player's fishing method. It is shown in the HUD but has no
// effect on which creatures can be caught.
type Method int

const (
	MethodRod Method = iota
	MethodLine
	MethodNet
	MethodTrap
	methodCount
)

var methodNames = [methodCount]string{
	MethodRod:  "rod",
	MethodLine: "line",
	MethodNet:  "net",
	MethodTrap: "trap",
}

// String returns the lower-case method name.
func (m Method) String() string {
	if m < 0 || m >= methodCount {
		return "unknown"
	}
	return methodNames[m]
}

// Valid reports whether m is one of the known methods.
func (m Method) Valid() bool {
	return m >= 0 && m < methodCount
}

// ParseMethod maps a case-insensitive name to its Method.
func ParseMethod(name string) (Method, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range methodNames {
		if n == name {
			return Method(i), true
		}
	}
	return 0, false
}
