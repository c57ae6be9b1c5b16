package hidkey

// CharKey is the keystroke producing one printable character on a US layout.
type CharKey struct {
	Key   Key
	Shift bool
}

// charKeys maps printable ASCII (plus \n and \t) to keystrokes. Characters
// outside this table (non-Latin scripts, control codes) have no mapping;
// lookups for them fail rather than guess.
var charKeys = map[rune]CharKey{
	'a': {KeyA, false}, 'b': {KeyB, false}, 'c': {KeyC, false},
	'd': {KeyD, false}, 'e': {KeyE, false}, 'f': {KeyF, false},
	'g': {KeyG, false}, 'h': {KeyH, false}, 'i': {KeyI, false},
	'j': {KeyJ, false}, 'k': {KeyK, false}, 'l': {KeyL, false},
	'm': {KeyM, false}, 'n': {KeyN, false}, 'o': {KeyO, false},
	'p': {KeyP, false}, 'q': {KeyQ, false}, 'r': {KeyR, false},
	's': {KeyS, false}, 't': {KeyT, false}, 'u': {KeyU, false},
	'v': {KeyV, false}, 'w': {KeyW, false}, 'x': {KeyX, false},
	'y': {KeyY, false}, 'z': {KeyZ, false},

	'A': {KeyA, true}, 'B': {KeyB, true}, 'C': {KeyC, true},
	'D': {KeyD, true}, 'E': {KeyE, true}, 'F': {KeyF, true},
	'G': {KeyG, true}, 'H': {KeyH, true}, 'I': {KeyI, true},
	'J': {KeyJ, true}, 'K': {KeyK, true}, 'L': {KeyL, true},
	'M': {KeyM, true}, 'N': {KeyN, true}, 'O': {KeyO, true},
	'P': {KeyP, true}, 'Q': {KeyQ, true}, 'R': {KeyR, true},
	'S': {KeyS, true}, 'T': {KeyT, true}, 'U': {KeyU, true},
	'V': {KeyV, true}, 'W': {KeyW, true}, 'X': {KeyX, true},
	'Y': {KeyY, true}, 'Z': {KeyZ, true},

	'1': {Key1, false}, '2': {Key2, false}, '3': {Key3, false},
	'4': {Key4, false}, '5': {Key5, false}, '6': {Key6, false},
	'7': {Key7, false}, '8': {Key8, false}, '9': {Key9, false},
	'0': {Key0, false},

	'!': {Key1, true}, '@': {Key2, true}, '#': {Key3, true},
	'$': {Key4, true}, '%': {Key5, true}, '^': {Key6, true},
	'&': {Key7, true}, '*': {Key8, true}, '(': {Key9, true},
	')': {Key0, true},

	'\n': {KeyEnter, false},
	'\t': {KeyTab, false},
	' ':  {KeySpace, false},

	'-':  {KeyMinus, false}, '_': {KeyMinus, true},
	'=':  {KeyEqual, false}, '+': {KeyEqual, true},
	'[':  {KeyLeftBrace, false}, '{': {KeyLeftBrace, true},
	']':  {KeyRightBrace, false}, '}': {KeyRightBrace, true},
	'\\': {KeyBackslash, false}, '|': {KeyBackslash, true},
	';':  {KeySemicolon, false}, ':': {KeySemicolon, true},
	'\'': {KeyApostrophe, false}, '"': {KeyApostrophe, true},
	'`':  {KeyGrave, false}, '~': {KeyGrave, true},
	',':  {KeyComma, false}, '<': {KeyComma, true},
	'.':  {KeyDot, false}, '>': {KeyDot, true},
	'/':  {KeySlash, false}, '?': {KeySlash, true},
}

var keyChars map[CharKey]rune

func init() {
	keyChars = make(map[CharKey]rune, len(charKeys))
	for r, ck := range charKeys {
		keyChars[ck] = r
	}
}

// FromChar returns the keystroke for a printable character.
func FromChar(r rune) (CharKey, bool) {
	ck, ok := charKeys[r]
	return ck, ok
}

// ToChar is the inverse of FromChar for keystrokes present in the table.
func ToChar(k Key, shift bool) (rune, bool) {
	r, ok := keyChars[CharKey{Key: k, Shift: shift}]
	return r, ok
}
