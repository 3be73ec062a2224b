package parser

import (
	"fmt"
	"io"
)

// Move is one main-line move of a game and the line it was read from.
type Move struct {
	Text string
	Line int
}

// Game is one PGN game reduced to what replay needs: its tags and the
// main line. Comments, NAGs and variations are read and dropped.
type Game struct {
	Tags      map[string]string
	Moves     []Move
	Result    string
	StartLine int
}

// Tag returns the value of a tag, or "" when it is absent.
func (g *Game) Tag(name string) string {
	return g.Tags[name]
}

// Parser parses PGN input into Games.
type Parser struct {
	lexer        *Lexer
	currentToken *Token
	ravLevel     int
	log          io.Writer
}

// NewParser creates a new parser for the given reader. Warnings go to
// log; a nil log discards them.
func NewParser(r io.Reader, log io.Writer) *Parser {
	if log == nil {
		log = io.Discard
	}
	return &Parser{
		lexer: NewLexer(r, log),
		log:   log,
	}
}

// nextToken gets the next token from the lexer.
func (p *Parser) nextToken() {
	p.currentToken = p.lexer.NextToken()
}

// ParseGame parses a single game from the input.
// Returns nil if no more games are available.
func (p *Parser) ParseGame() (*Game, error) {
	if p.currentToken == nil {
		p.nextToken()
	}

	p.skipToNextGame()
	p.skipComments()

	game := &Game{
		Tags:      make(map[string]string),
		StartLine: p.lexer.LineNumber(),
	}

	for p.parseTag(game) {
	}
	p.skipComments()

	// Skip any initial NAGs (non-standard but sometimes present)
	for p.currentToken.Type == NAGToken {
		p.nextToken()
	}

	game.Moves = p.parseMoveList()
	p.skipComments()

	if result := p.parseResult(); result != "" {
		game.Result = result
	} else {
		game.Result = game.Tags["Result"]
	}

	if p.currentToken.Type == EOFToken && len(game.Moves) == 0 && len(game.Tags) == 0 {
		return nil, nil
	}
	return game, nil
}

// skipToNextGame skips tokens until the start of a game is found.
func (p *Parser) skipToNextGame() {
	for {
		switch p.currentToken.Type {
		case EOFToken, TagToken, MoveToken, TerminatingResult:
			return
		default:
			p.nextToken()
		}
	}
}

// parseTag parses a single tag.
func (p *Parser) parseTag(game *Game) bool {
	switch p.currentToken.Type {
	case TagToken:
		tagName := p.currentToken.Text
		p.nextToken()

		if p.currentToken.Type == StringToken {
			game.Tags[tagName] = p.currentToken.Text
			p.nextToken()
		} else {
			fmt.Fprintf(p.log, "Missing tag string for %s.\n", tagName)
		}
		return true

	case StringToken:
		fmt.Fprintf(p.log, "Missing tag name for %s.\n", p.currentToken.Text)
		p.nextToken()
		return true
	}
	return false
}

// parseMoveList parses a list of moves and skips their variations.
func (p *Parser) parseMoveList() []Move {
	var moves []Move
	for {
		move, ok := p.parseMove()
		if !ok {
			return moves
		}
		moves = append(moves, move)
		p.skipVariants()
		p.skipComments()
	}
}

// parseMove parses one move with its number, check marks and NAGs.
func (p *Parser) parseMove() (Move, bool) {
	if p.currentToken.Type == MoveNumber {
		p.nextToken()
	}
	if p.currentToken.Type != MoveToken {
		return Move{}, false
	}

	move := Move{Text: p.currentToken.Text, Line: p.currentToken.Line}
	p.nextToken()

	if p.currentToken.Type == CheckSymbol {
		move.Text += "+"
		p.nextToken()
	}

	p.skipComments()
	for p.currentToken.Type == NAGToken {
		p.nextToken()
		p.skipComments()
	}
	return move, true
}

// skipComments skips zero or more comments.
func (p *Parser) skipComments() {
	for p.currentToken.Type == CommentToken {
		p.nextToken()
	}
}

// skipVariants skips zero or more bracketed variations, nested or not.
func (p *Parser) skipVariants() {
	for p.currentToken.Type == RAVStart {
		p.ravLevel++
		p.nextToken()

		p.skipComments()
		if len(p.parseMoveList()) == 0 {
			fmt.Fprintf(p.log, "Missing move list in variation.\n")
		}
		p.parseResult()
		p.skipComments()

		if p.currentToken.Type == RAVEnd {
			p.ravLevel--
			p.nextToken()
		} else {
			p.ravLevel--
			fmt.Fprintf(p.log, "Missing ')' to close variation.\n")
		}
		p.skipComments()
	}
}

// parseResult parses a game result.
func (p *Parser) parseResult() string {
	if p.currentToken.Type != TerminatingResult {
		return ""
	}
	result := p.currentToken.Text
	if p.ravLevel == 0 {
		// Set to NoToken to help skip between games
		p.currentToken = &Token{Type: NoToken}
	} else {
		p.nextToken()
	}
	return result
}

// ParseAllGames parses all games from the input.
func (p *Parser) ParseAllGames() ([]*Game, error) {
	var games []*Game
	for {
		game, err := p.ParseGame()
		if err != nil {
			return games, err
		}
		if game == nil {
			return games, nil
		}
		games = append(games, game)
	}
}
