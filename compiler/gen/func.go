package gen

import (
	"go/token"
	"strings"
	"unicode"

	"github.com/go-openapi/inflect"
)

var (
	// rules capitalizes plain words. Initialisms come from acronyms.
	rules    = inflect.NewDefaultRuleset()
	acronyms = initialisms(
		"ACL", "API", "ASCII", "AWS", "CPU", "CSS", "DNS", "EOF", "GB", "GL", "GUID",
		"HTML", "HTTP", "HTTPS", "ID", "IP", "JSON", "KB", "LOD", "MB", "RGB", "RGBA",
		"RPC", "SQL", "SSH", "TLS", "TTL", "UI", "UID", "URI", "URL", "UTF8", "UUID",
		"UV", "XML", "XSRF", "XSS",
	)
)

// initialisms returns the set of common initialisms from golint and more.
func initialisms(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// AddAcronym adds a new acronym to the set used by the naming helpers.
// It is not safe for concurrent use with code generation.
func AddAcronym(word string) {
	acronyms[strings.ToUpper(word)] = struct{}{}
}

// isSeparator reports if the rune separates words in schema names.
func isSeparator(r rune) bool {
	return r == '_' || r == '-' || unicode.IsSpace(r)
}

func splitWords(s string) []string {
	return strings.FieldsFunc(s, isSeparator)
}

func pascalWords(words []string) string {
	for i, w := range words {
		upper := strings.ToUpper(w)
		if _, ok := acronyms[upper]; ok {
			words[i] = upper
		} else {
			words[i] = rules.Capitalize(w)
		}
	}
	return strings.Join(words, "")
}

// pascal converts the given name into a PascalCase.
//
//	user_info 	=> UserInfo
//	full_name 	=> FullName
//	user_id   	=> UserID
//	full-admin	=> FullAdmin
//	baseColor	=> BaseColor
func pascal(s string) string {
	return pascalWords(splitWords(s))
}

// camel converts the given name into a camelCase.
//
//	user_info  => userInfo
//	full_name  => fullName
//	user_id    => userID
//	full-admin => fullAdmin
//	AlphaMode  => alphaMode
func camel(s string) string {
	words := splitWords(s)
	if len(words) == 0 {
		return ""
	}
	first := words[0]
	if _, ok := acronyms[strings.ToUpper(first)]; ok {
		first = strings.ToLower(first)
	} else {
		first = snake(first)
		if i := strings.IndexByte(first, '_'); i > 0 {
			// A leading initialism such as "HTTPCode" is lowered as a whole.
			first = first[:i] + pascal(first[i+1:])
		}
	}
	return first + pascalWords(words[1:])
}

// snake converts the given struct or field name into a snake_case.
//
//	Username => username
//	FullName => full_name
//	HTTPCode => http_code
func snake(s string) string {
	var (
		j int
		b strings.Builder
	)
	for i := 0; i < len(s); i++ {
		r := rune(s[i])
		// Put '_' if it is not a start or end of a word, current letter is uppercase,
		// and previous is lowercase (cases like: "UserInfo"), or next letter is also
		// a lowercase and previous letter is not "_".
		if i > 0 && i < len(s)-1 && unicode.IsUpper(r) {
			if unicode.IsLower(rune(s[i-1])) ||
				j != i-1 && unicode.IsLower(rune(s[i+1])) && unicode.IsLetter(rune(s[i-1])) {
				j = i
				b.WriteString("_")
			}
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// receiver returns the receiver name of the given type.
//
//	[]T       => t
//	[1]T      => t
//	User      => u
//	UserQuery => uq
func receiver(s string) string {
	s = strings.TrimLeftFunc(s, func(r rune) bool { return !unicode.IsLetter(r) })
	var b strings.Builder
	for _, w := range strings.Split(snake(s), "_") {
		if w != "" {
			b.WriteByte(w[0])
		}
	}
	name := b.String()
	switch {
	case name == "":
		return "_x"
	case token.IsKeyword(name), reservedIdent[name]:
		return "_" + name
	}
	return name
}

// reservedIdent holds identifiers used by generated code that receivers
// must not shadow.
var reservedIdent = map[string]bool{
	"json":      true,
	"doc":       true,
	"iter":      true,
	"it":        true,
	"schemagen": true,
	"data":      true,
	"err":       true,
	"lit":       true,
	"ok":        true,
	"out":       true,
	"plain":     true,
	"v":         true,
	"variant":   true,
}

// typeName returns the exported Go identifier of a schema name. Names that
// already are exported identifiers are kept as written.
func typeName(s string) string {
	if token.IsIdentifier(s) && token.IsExported(s) {
		return s
	}
	name := pascal(s)
	if name == "" || !token.IsIdentifier(name) {
		return "X" + strings.Map(func(r rune) rune {
			if unicode.IsLetter(r) || unicode.IsDigit(r) {
				return r
			}
			return -1
		}, name)
	}
	return name
}

// pkgName returns the package clause name for a module path segment.
func pkgName(s string) string {
	name := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return unicode.ToLower(r)
		}
		return -1
	}, s)
	if name == "" || name[0] >= '0' && name[0] <= '9' || token.IsKeyword(name) {
		name = "pkg" + name
	}
	return name
}
