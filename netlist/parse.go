package netlist

import (
	"fmt"
	"io"
	"regexp"
	"strconv"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/katalvlaran/ronet/hexgrid"
)

// The card grammar: a deck is a stream of newline-separated cards, each
// an instance name followed by whitespace-separated fields. Comments
// (`*…`) and directives (`.…`) are lexed as their own token kinds and
// elided, which is what makes the parser lenient about everything that
// is not an instance card.
var cardLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `\*[^\n]*`},
	{Name: "Directive", Pattern: `\.[^\n]*`},
	{Name: "Ident", Pattern: `[^\s]+`},
	{Name: "EOL", Pattern: `\n`},
	{Name: "Whitespace", Pattern: `[ \t\r]+`},
})

// A card owns its trailing newline run. Elided comment and directive
// tokens are invisible to the parser, so the EOLs around them merge
// into that run. Each card attempt therefore starts directly on an
// Ident: when the deck is exhausted the repetition fails without
// consuming a token and ends cleanly, even after a final `.end`.
type rawCard struct {
	Name   string   `parser:"@Ident"`
	Fields []string `parser:"@Ident* EOL*"`
}

type rawDeck struct {
	Cards []*rawCard `parser:"EOL* @@*"`
}

var deckParser = participle.MustBuild[rawDeck](
	participle.Lexer(cardLexer),
	participle.Elide("Comment", "Directive", "Whitespace"),
)

// Instance-name patterns; coordinates are embedded in the names.
var (
	xroRe  = regexp.MustCompile(`^XRO_(\d+)_(\d+)$`)
	xcplRe = regexp.MustCompile(`^XCPL_(\d+)_(\d+)__(\d+)_(\d+)$`)
)

// Minimum field counts for a card to be classified at all. Shorter
// cards are skipped; the verifier reports the resulting holes.
const (
	minOscFields     = NumPins + 1 // pins + enable (rails and tag may be absent)
	minCouplerFields = 3           // enable + two wired pins
)

// Parse reads a card stream into a Deck. Unrecognized cards — Xdut
// lines, voltage sources, rails, anything foreign — are skipped without
// error; comments and directives never reach the classifier at all.
// Complexity: O(input) time, O(instances) memory.
func Parse(r io.Reader) (*Deck, error) {
	raw, err := deckParser.Parse("", r)
	if err != nil {
		return nil, fmt.Errorf("netlist: %v: %w", err, ErrParse)
	}

	deck := &Deck{}
	for _, card := range raw.Cards {
		if m := xroRe.FindStringSubmatch(card.Name); m != nil {
			if len(card.Fields) < minOscFields {
				continue // malformed card; lenient skip
			}
			deck.Oscillators = append(deck.Oscillators, Oscillator{
				Cell:   hexgrid.Cell{Row: atoi(m[1]), Col: atoi(m[2])},
				Pins:   card.Fields[:NumPins],
				Enable: card.Fields[NumPins],
			})
			continue
		}
		if m := xcplRe.FindStringSubmatch(card.Name); m != nil {
			if len(card.Fields) < minCouplerFields {
				continue
			}
			deck.Couplings = append(deck.Couplings, Coupling{
				From:    hexgrid.Cell{Row: atoi(m[1]), Col: atoi(m[2])},
				To:      hexgrid.Cell{Row: atoi(m[3]), Col: atoi(m[4])},
				Enable:  card.Fields[0],
				FromPin: card.Fields[1],
				ToPin:   card.Fields[2],
			})
			continue
		}
		// foreign card; skip
	}
	return deck, nil
}

// atoi converts a digits-only submatch; the regexp guarantees validity.
func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
