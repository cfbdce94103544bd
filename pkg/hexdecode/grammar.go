package hexdecode

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/hexbug/hexdecode/pkg/hexast"
)

// grammarStart is the root of the parse tree: any number of iotas.
type grammarStart struct {
	Iotas []*grammarIota `@@*`
}

// grammarIota is one alternative of the iota rule. Exactly one field is set
// after a successful parse.
type grammarIota struct {
	List    *grammarList    `  @@`
	Vector  *grammarVector  `| @@`
	Pattern *grammarPattern `| @@`
	Null    bool            `| @"NULL"`
	Number  *string         `| @Number`
	Unknown *string         `| @Ident`
}

type grammarList struct {
	Elements []*grammarIota `"[" ( @@ ( "," @@ )* )? "]"`
}

type grammarVector struct {
	X string `"(" @Number ","`
	Y string `@Number ","`
	Z string `@Number ")"`
}

type grammarPattern struct {
	Direction string  `"HexPattern" "(" @( Hyphenated | Ident )`
	Turns     *string `@Ident? ")"`
}

// Number accepts integers as well as decimals and exponents, so "-2" and "0"
// are numbers and not barewords.
var iotaLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Number", Pattern: hexast.NumberPattern},
	{Name: "Hyphenated", Pattern: hexast.HyphenatedPattern},
	{Name: "Ident", Pattern: hexast.BarewordPattern},
	{Name: "Punct", Pattern: `[\[\](),]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

// iotaParser is built once and shared; participle parsers hold no per-call
// state.
var iotaParser = participle.MustBuild[grammarStart](
	participle.Lexer(iotaLexer),
	participle.Elide("Whitespace"),
	participle.UseLookahead(2),
)
