package parser

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"
)

// Lexer tokenizes PGN input.
type Lexer struct {
	reader   *bufio.Reader
	line     string
	pos      int
	lineNum  int
	ravLevel int
	log      io.Writer
}

// Character classification table
var chTab [256]TokenType

// Move character classification table
var moveChars [256]bool

func init() {
	initLexTables()
}

// initLexTables initializes the character classification tables.
func initLexTables() {
	for i := range chTab {
		chTab[i] = ErrorToken
	}

	for _, c := range []byte{' ', '\t', '\r', '\n'} {
		chTab[c] = Whitespace
	}

	chTab['['] = TagStart
	chTab[']'] = TagEnd
	chTab['"'] = DoubleQuote
	chTab['{'] = CommentStart
	chTab['}'] = CommentEnd

	chTab['$'] = NAGToken
	chTab['!'] = Annotate
	chTab['?'] = Annotate
	chTab['+'] = CheckSymbol
	chTab['#'] = CheckSymbol
	chTab['.'] = Dot
	chTab['('] = RAVStart
	chTab[')'] = RAVEnd
	chTab['%'] = Percent
	chTab['\\'] = Escape
	chTab[0] = EOS
	chTab['*'] = Star
	chTab['-'] = Dash

	for c := byte('0'); c <= '9'; c++ {
		chTab[c] = Digit
	}
	for c := byte('A'); c <= 'Z'; c++ {
		chTab[c] = Alpha
		chTab[c+32] = Alpha
	}
	chTab['_'] = Alpha

	// Squares, piece letters, capture and promotion marks, castling
	for c := byte('a'); c <= 'h'; c++ {
		moveChars[c] = true
	}
	for c := byte('1'); c <= '8'; c++ {
		moveChars[c] = true
	}
	for _, c := range []byte("KQRNBPxX:-=Oo0") {
		moveChars[c] = true
	}
}

// NewLexer creates a new lexer for the given reader. Warnings about
// malformed input go to log; a nil log discards them.
func NewLexer(r io.Reader, log io.Writer) *Lexer {
	if log == nil {
		log = io.Discard
	}
	return &Lexer{
		reader: bufio.NewReader(r),
		log:    log,
	}
}

// readLine reads the next line from input.
func (l *Lexer) readLine() bool {
	line, err := l.reader.ReadString('\n')
	if err != nil && len(line) == 0 {
		return false
	}
	l.line = line
	l.pos = 0
	l.lineNum++
	return true
}

// currentChar returns the current character or 0 if at end of line.
func (l *Lexer) currentChar() byte {
	if l.pos >= len(l.line) {
		return 0
	}
	return l.line[l.pos]
}

// advance moves to the next character.
func (l *Lexer) advance() {
	if l.pos < len(l.line) {
		l.pos++
	}
}

// skipWhile advances over characters of class t.
func (l *Lexer) skipWhile(t TokenType) {
	for l.pos < len(l.line) && chTab[l.currentChar()] == t {
		l.advance()
	}
}

// NextToken returns the next token from the input.
func (l *Lexer) NextToken() *Token {
	for {
		token := l.getNextSymbol()
		if token.Type != NoToken {
			token.Line = l.lineNum
			return token
		}
	}
}

// getNextSymbol identifies the next symbol.
func (l *Lexer) getNextSymbol() *Token {
	if l.pos >= len(l.line) {
		if !l.readLine() {
			return &Token{Type: EOFToken}
		}
		return &Token{Type: NoToken}
	}

	ch := l.currentChar()
	symbolStart := l.pos
	l.advance()

	switch chTab[ch] {
	case Whitespace, Dot:
		l.skipWhile(chTab[ch])
		return &Token{Type: NoToken}

	case TagStart:
		return l.gatherTag()

	case DoubleQuote:
		return l.gatherString()

	case CommentStart:
		return l.gatherComment()

	case CommentEnd:
		fmt.Fprintf(l.log, "Unmatched comment end on line %d.\n", l.lineNum)
		return &Token{Type: NoToken}

	case NAGToken:
		start := l.pos
		for l.pos < len(l.line) && unicode.IsDigit(rune(l.currentChar())) {
			l.advance()
		}
		return &Token{Type: NAGToken, Text: "$" + l.line[start:l.pos]}

	case Annotate:
		l.skipWhile(Annotate)
		return &Token{Type: NAGToken, Text: annotationToNAG(l.line[symbolStart:l.pos])}

	case CheckSymbol:
		l.skipWhile(CheckSymbol)
		return &Token{Type: CheckSymbol}

	case RAVStart:
		l.ravLevel++
		return &Token{Type: RAVStart}

	case RAVEnd:
		if l.ravLevel > 0 {
			l.ravLevel--
			return &Token{Type: RAVEnd}
		}
		fmt.Fprintf(l.log, "Too many ')' found on line %d.\n", l.lineNum)
		return &Token{Type: NoToken}

	case Percent:
		// Escape line: ignore the rest
		l.pos = len(l.line)
		return &Token{Type: NoToken}

	case Escape:
		l.advance()
		return &Token{Type: NoToken}

	case Alpha:
		return l.gatherAlpha(ch, symbolStart)

	case Digit:
		return l.gatherNumeric(ch)

	case Star:
		return &Token{Type: TerminatingResult, Text: "*"}

	case Dash:
		if chTab[l.currentChar()] == Dash {
			l.advance()
			return &Token{Type: MoveToken, Text: "--"}
		}
		fmt.Fprintf(l.log, "Single '-' not allowed on line %d.\n", l.lineNum)
		return &Token{Type: NoToken}

	case TagEnd:
		return &Token{Type: NoToken}

	case EOS:
		l.pos = len(l.line)
		return &Token{Type: NoToken}

	default:
		fmt.Fprintf(l.log, "Unknown character %c (0x%x) on line %d.\n", ch, ch, l.lineNum)
		l.skipWhile(ErrorToken)
		return &Token{Type: NoToken}
	}
}

// gatherTag gathers a tag name after '['.
func (l *Lexer) gatherTag() *Token {
	l.skipWhile(Whitespace)

	start := l.pos
	for l.pos < len(l.line) {
		ch := rune(l.currentChar())
		if !unicode.IsLetter(ch) && !unicode.IsDigit(ch) && ch != '_' {
			break
		}
		l.advance()
	}

	if l.pos > start {
		return &Token{Type: TagToken, Text: l.line[start:l.pos]}
	}
	return &Token{Type: NoToken}
}

// gatherString gathers a quoted string.
func (l *Lexer) gatherString() *Token {
	var sb strings.Builder
	escaped := false

	for l.pos < len(l.line) {
		ch := l.currentChar()
		l.advance()

		switch {
		case escaped:
			sb.WriteByte(ch)
			escaped = false
		case ch == '\\':
			escaped = true
		case ch == '"':
			return &Token{Type: StringToken, Text: sb.String()}
		default:
			sb.WriteByte(ch)
		}
	}

	fmt.Fprintf(l.log, "Missing closing quote on line %d.\n", l.lineNum)
	return &Token{Type: StringToken, Text: strings.TrimRight(sb.String(), "\r\n")}
}

// gatherComment gathers a comment block, which may span lines.
func (l *Lexer) gatherComment() *Token {
	var sb strings.Builder

	for {
		for l.pos < len(l.line) {
			ch := l.currentChar()
			l.advance()
			if ch == '}' {
				return &Token{Type: CommentToken, Text: strings.TrimSpace(sb.String())}
			}
			sb.WriteByte(ch)
		}
		if !l.readLine() {
			break
		}
	}

	fmt.Fprintf(l.log, "Missing end of comment.\n")
	return &Token{Type: CommentToken, Text: strings.TrimSpace(sb.String())}
}

// gatherAlpha handles alpha characters (potential moves).
func (l *Lexer) gatherAlpha(ch byte, symbolStart int) *Token {
	// Z0 is a null move
	if ch == 'Z' && l.currentChar() == '0' {
		l.advance()
		return &Token{Type: MoveToken, Text: "--"}
	}

	if !moveChars[ch] {
		fmt.Fprintf(l.log, "Unknown character %c (0x%x) on line %d.\n", ch, ch, l.lineNum)
		l.skipWhile(Alpha)
		return &Token{Type: NoToken}
	}

	for l.pos < len(l.line) && moveChars[l.currentChar()] {
		l.advance()
	}

	moveText := l.line[symbolStart:l.pos]
	if moveSeemValid(moveText) {
		return &Token{Type: MoveToken, Text: normaliseCastle(moveText)}
	}

	fmt.Fprintf(l.log, "Unknown move text %s on line %d.\n", moveText, l.lineNum)
	return &Token{Type: NoToken}
}

// gatherNumeric handles numeric tokens (move numbers, results, castling).
func (l *Lexer) gatherNumeric(initialDigit byte) *Token {
	remaining := l.line[l.pos:]

	switch initialDigit {
	case '0':
		// 0-1 (result) or 0-0 / 0-0-0 (castling)
		if strings.HasPrefix(remaining, "-1") {
			l.pos += 2
			return &Token{Type: TerminatingResult, Text: "0-1"}
		}
		if strings.HasPrefix(remaining, "-0-0") {
			l.pos += 4
			return &Token{Type: MoveToken, Text: "O-O-O"}
		}
		if strings.HasPrefix(remaining, "-0") {
			l.pos += 2
			return &Token{Type: MoveToken, Text: "O-O"}
		}
	case '1':
		if strings.HasPrefix(remaining, "-0") {
			l.pos += 2
			return &Token{Type: TerminatingResult, Text: "1-0"}
		}
		if strings.HasPrefix(remaining, "/2") {
			l.pos += 2
			if strings.HasPrefix(l.line[l.pos:], "-1/2") {
				l.pos += 4
			}
			return &Token{Type: TerminatingResult, Text: "1/2-1/2"}
		}
	}

	start := l.pos - 1
	for l.pos < len(l.line) && unicode.IsDigit(rune(l.currentChar())) {
		l.advance()
	}
	l.skipWhile(Dot)
	return &Token{Type: MoveNumber, Text: strings.TrimRight(l.line[start:l.pos], ".")}
}

// annotationToNAG converts annotation symbols to NAG strings.
func annotationToNAG(text string) string {
	switch text {
	case "!":
		return "$1"
	case "?":
		return "$2"
	case "!!":
		return "$3"
	case "??":
		return "$4"
	case "!?":
		return "$5"
	case "?!":
		return "$6"
	default:
		return "$0"
	}
}

// normaliseCastle rewrites the lower-case castling forms.
func normaliseCastle(text string) string {
	switch text {
	case "o-o":
		return "O-O"
	case "o-o-o":
		return "O-O-O"
	}
	return text
}

// moveSeemValid does a basic check if the move text looks valid.
func moveSeemValid(text string) bool {
	switch text {
	case "O-O", "O-O-O", "o-o", "o-o-o":
		return true
	}
	if len(text) < 2 {
		return false
	}

	hasFile, hasRank := false, false
	for _, c := range text {
		if c >= 'a' && c <= 'h' {
			hasFile = true
		}
		if c >= '1' && c <= '8' {
			hasRank = true
		}
	}
	return hasFile && hasRank
}

// LineNumber returns the current line number.
func (l *Lexer) LineNumber() int {
	return l.lineNum
}
