// Package escape renders strings, identifiers, object keys and record id
// segments as the shortest text the query lexer reads back as the same value.
//
// Strings are always quoted. The quote character is chosen so that prose with
// apostrophes needs no escaping:
//
//	cat           -> 'cat'
//	cat's         -> "cat's"
//	cat's "toy"   -> "cat's \"toy\""
//
// Keys, identifiers and record id segments are only wrapped when they contain
// a byte outside [A-Za-z0-9_]. Identifiers and record id segments are also
// wrapped when they consist solely of digits, since the lexer would otherwise
// read them as numbers:
//
//	user_1  -> user_1
//	1       -> `1`
//	123     -> ⟨123⟩
//
// When no wrapping is needed the input string is returned as is and nothing
// is allocated. All functions are pure and safe for concurrent use.
package escape
