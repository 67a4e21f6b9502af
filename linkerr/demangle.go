package linkerr

import (
	"regexp"
	"strings"
)

// ArrayWrapper is the template gcj uses for Java arrays in demangled names.
const ArrayWrapper = "JArray"

var arrayPattern = regexp.MustCompile(ArrayWrapper + `<(.*?)>`)

// Demangle turns a demangled native symbol into a dotted Java name.
//
//	java::lang::String*              -> java.lang.String
//	JArray<JArray<jint>*>*           -> jint[][]
//
// Arrays are unwrapped twice. Three or more dimensions stay partially
// wrapped.
func Demangle(raw string) string {
	s := strings.ReplaceAll(raw, "::", ".")
	s = strings.ReplaceAll(s, "*", "")
	s = arrayPattern.ReplaceAllString(s, "${1}[]")
	return arrayPattern.ReplaceAllString(s, "${1}[]")
}
