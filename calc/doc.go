// Package calc evaluates single-line arithmetic expressions over real
// numbers with single-letter variables.
//
// A line is split into tokens by [Tokenize] and classified by [Lex]. The
// infix tokens are reordered by [ToPostfix] (shunting-yard) and reduced by
// [EvalPostfix] against an [Env]. [Calculator] ties these together and adds
// assignment:
//
//	x = 2 + 3   // stores 5 in x
//	x * 4       // 20
//	y + 1       // 1; unassigned variables read as 0
//
// Four binary operators are supported: "*" and "/" bind tighter than "+" and
// "-", and all are left-associative. Parentheses group. A number is anything
// [strconv.ParseFloat] accepts, so a sign is part of a number ("-3") rather
// than a unary operator.
//
// Every rejected line yields an [*Error] whose [ErrorKind] tells why. The
// user only ever sees [Sentinel]; the kinds are for tests and diagnostics.
package calc
