package reader

// Sanitizer performs §4.1's symbol sanitisation: identifiers that
// collide with a reserved word of the target language (Go) are
// prefixed with "shen_"; every other identifier has each character in
// the rename table replaced by its textual mnemonic. An explicit
// bijective map is kept alongside the substitution (the inverse map
// §4.1 calls for) so Unrename is a lookup, not a re-parse — this is
// what makes the round-trip invariant (§8 property 2) hold by
// construction rather than by hoping the mnemonics never collide.
type Sanitizer struct {
	forward  map[string]string
	backward map[string]string
}

func NewSanitizer() *Sanitizer {
	return &Sanitizer{forward: make(map[string]string), backward: make(map[string]string)}
}

// reservedWords are Go's reserved keywords — the target language this
// implementation compiles identifiers for — plus "true"/"false", which
// get the same "shen_" prefix even though Go only predeclares rather
// than reserves them: the runtime's canonical boolean symbols are
// `shen_true`/`shen_false` (values.True/False), so source-level `true`
// and `false` must sanitise to exactly those spellings for `if`,
// comparisons, and `cond` to ever see a literal boolean as true. A port
// targeting a different host language replaces this set while keeping
// charMnemonics stable (§9 "Symbol sanitisation target").
var reservedWords = map[string]bool{
	"break": true, "default": true, "func": true, "interface": true, "select": true,
	"case": true, "defer": true, "go": true, "map": true, "struct": true,
	"chan": true, "else": true, "goto": true, "package": true, "switch": true,
	"const": true, "fallthrough": true, "if": true, "range": true, "type": true,
	"continue": true, "for": true, "import": true, "return": true, "var": true,
	"true": true, "false": true,
}

// charMnemonics maps every non-alphanumeric character the grammar
// allows in a symbol to a textual mnemonic safe in a Go identifier.
// Letters, digits, and underscore pass through unchanged.
var charMnemonics = map[byte]string{
	'"':  "__DQuote__",
	'=':  "__Equal__",
	'-':  "__Dash__",
	'*':  "__Star__",
	'/':  "__Slash__",
	'+':  "__Plus__",
	'?':  "__Pred__",
	'$':  "__Dollar__",
	'!':  "__Bang__",
	'@':  "__At__",
	'~':  "__Tilde__",
	'.':  "__Dot__",
	'>':  "__GT__",
	'<':  "__LT__",
	'&':  "__Amp__",
	'%':  "__Pct__",
	'\'': "__Quote__",
	'#':  "__Hash__",
	'`':  "__Tick__",
	';':  "__Semi__",
	':':  "__Colon__",
	'{':  "__LBrace__",
	'}':  "__RBrace__",
}

func mnemonicEncode(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if m, special := charMnemonics[ch]; special {
			out = append(out, m...)
			continue
		}
		out = append(out, ch)
	}
	return string(out)
}

// SanitizeKeyword applies the same transformation Rename does, without
// recording it in any instance's tables. It exists so packages that
// need to recognise a fixed special-form or primitive name (e.g.
// codegen's dispatch on "if", which the reader always renames to
// "shen_if" since "if" collides with Go's reserved word) can compute
// the sanitised spelling deterministically, without threading a live
// Sanitizer through code that has no reader-time instance to hand.
func SanitizeKeyword(name string) string {
	if reservedWords[name] {
		return "shen_" + name
	}
	return mnemonicEncode(name)
}

// Rename sanitises original, recording the forward/backward mapping.
// Repeated calls for the same original are idempotent and always
// return the same sanitized form.
func (s *Sanitizer) Rename(original string) string {
	if existing, ok := s.forward[original]; ok {
		return existing
	}

	var sanitized string
	if reservedWords[original] {
		sanitized = "shen_" + original
	} else {
		sanitized = mnemonicEncode(original)
	}

	s.forward[original] = sanitized
	s.backward[sanitized] = original
	return sanitized
}

// Unrename recovers the original printed form of a sanitized symbol
// via the inverse map; symbols never produced by Rename (constants
// like shen_true built directly by the runtime) pass through
// unchanged.
func (s *Sanitizer) Unrename(sanitized string) string {
	if original, ok := s.backward[sanitized]; ok {
		return original
	}
	return sanitized
}
