/*
Package lox implements a small subset of the Lox language: a lexer producing
tokens with their source spans, a parser and a tree-walking interpreter.

Grammars

	program --> ( stmt ";" )* EOF ;
	stmt    --> "print" expr
	          | "{" ( stmt ";" )* "}"
	          | "var"? IDENT "=" expr ;
	expr    --> binary(0) ;
	unary   --> ( "!" | "-" ) unary
	          | primary ;
	primary --> NUMBER | STRING | IDENT
	          | "true" | "false" | "nil"
	          | "(" expr ")" ;

Binary operators are parsed by precedence climbing, from the lowest to the
highest precedence:

	1  "==" "!="
	2  "<" "<=" ">" ">="
	3  "+" "-"
	4  "*" "/"

All binary operators are left-associative.

A block opens a new scope. Assignment always binds in the innermost scope, so
assigning to a variable of an enclosing scope shadows it until the block ends.
*/
package lox
