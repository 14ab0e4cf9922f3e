package lexer

// TokenType identifies the lexical category of a Token. The set is closed:
// every token produced by the lexer carries exactly one of these kinds.
type TokenType int

const (
	// Special
	ILLEGAL TokenType = iota
	EOF_

	// Identifier-like
	Identifier
	ClassType
	PrimitiveType

	// Literals
	IntegerLiteral
	NegativeIntegerLiteral
	FloatLiteral
	StringLiteral
	CharLiteral
	BoolLiteral

	// Binary operators
	Equals
	EqualsEquals
	NotEquals
	GreaterThan
	LessThan
	ShiftLeft
	ShiftRight
	Plus
	Minus
	Divide
	Multiply
	Exponent
	Modulus
	AND
	ANDAND
	OR
	OROR
	Dot
	ColonColon

	// Unary operators
	MinusMinus
	Not
	PlusPlus

	// Sigils
	Pointer
	Reference
	Semicolon
	Colon
	Comma
	OParen
	CParen
	OCurlyBrace
	CCurlyBrace

	// Keywords
	for_
	while_
	if_
	in_
	return_
	null_
	cast_
	constexpr_
	namespace_
	class_
	public_
	private_
	protected_
	mutable_
)

// names gives each TokenType a short debug label, in declaration order.
var names = [...]string{
	ILLEGAL:                "ILLEGAL",
	EOF_:                   "EOF_",
	Identifier:             "Identifier",
	ClassType:              "ClassType",
	PrimitiveType:          "PrimitiveType",
	IntegerLiteral:         "integer_literal",
	NegativeIntegerLiteral: "negative_integer_literal",
	FloatLiteral:           "float_literal",
	StringLiteral:          "string_literal",
	CharLiteral:            "char_literal",
	BoolLiteral:            "bool_literal",
	Equals:                 "Equals",
	EqualsEquals:           "EqualsEquals",
	NotEquals:              "NotEquals",
	GreaterThan:            "GreaterThan",
	LessThan:               "LessThan",
	ShiftLeft:              "ShiftLeft",
	ShiftRight:             "ShiftRight",
	Plus:                   "Plus",
	Minus:                  "Minus",
	Divide:                 "Divide",
	Multiply:               "Multiply",
	Exponent:               "Exponent",
	Modulus:                "Modulus",
	AND:                    "AND",
	ANDAND:                 "ANDAND",
	OR:                     "OR",
	OROR:                   "OROR",
	Dot:                    "Dot",
	ColonColon:             "ColonColon",
	MinusMinus:             "MinusMinus",
	Not:                    "Not",
	PlusPlus:               "PlusPlus",
	Pointer:                "Pointer",
	Reference:              "Reference",
	Semicolon:              "Semicolon",
	Colon:                  "Colon",
	Comma:                  "Comma",
	OParen:                 "OParen",
	CParen:                 "CParen",
	OCurlyBrace:            "OCurlyBrace",
	CCurlyBrace:            "CCurlyBrace",
	for_:                   "for_",
	while_:                 "while_",
	if_:                    "if_",
	in_:                    "in_",
	return_:                "return_",
	null_:                  "null_",
	cast_:                  "cast_",
	constexpr_:             "constexpr_",
	namespace_:             "namespace_",
	class_:                 "class_",
	public_:                "public_",
	private_:               "private_",
	protected_:             "protected_",
	mutable_:               "mutable_",
}

// String returns the debug name of the token kind, e.g. "Plus" or "class_".
func (t TokenType) String() string {
	if int(t) >= 0 && int(t) < len(names) && names[t] != "" {
		return names[t]
	}
	return "UNKNOWN"
}

// KEYWORDS maps every reserved word to its token kind.
var KEYWORDS = map[string]TokenType{
	"for":        for_,
	"while":      while_,
	"if":         if_,
	"in":         in_,
	"return":     return_,
	"null":       null_,
	"cast":       cast_,
	"constexpr":  constexpr_,
	"namespace":  namespace_,
	"class":      class_,
	"public":     public_,
	"private":    private_,
	"protected":  protected_,
	"mutable":    mutable_,
}

// DEFAULT_TYPES maps every built-in type name to the token kind it lexes as.
// Primitive scalar types classify as PrimitiveType; String is the one
// built-in reference type and classifies as ClassType.
var DEFAULT_TYPES = map[string]TokenType{
	"auto":   PrimitiveType,
	"char":   PrimitiveType,
	"int8":   PrimitiveType,
	"int16":  PrimitiveType,
	"int32":  PrimitiveType,
	"int64":  PrimitiveType,
	"uint8":  PrimitiveType,
	"uint16": PrimitiveType,
	"uint32": PrimitiveType,
	"uint64": PrimitiveType,
	"float":  PrimitiveType,
	"double": PrimitiveType,
	"bool":   PrimitiveType,
	"void":   PrimitiveType,
	"String": ClassType,
}

// isBinaryOperatorLike reports whether a token of this kind is a valid
// left-operand terminator for a signed-number prefix: "-3" lexes as a
// negative literal only when the previous token is one of these, an Equals,
// an OParen, or a Comma (see isSignContext).
func (t TokenType) isBinaryOperatorLike() bool {
	switch t {
	case Equals, EqualsEquals, NotEquals, GreaterThan, LessThan, ShiftLeft, ShiftRight,
		Plus, Minus, Divide, Multiply, Exponent, Modulus, AND, ANDAND, OR, OROR,
		OParen, Comma, Dot, ColonColon:
		return true
	}
	return false
}
