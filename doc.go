/* Package main: gostack, a tiny interactive stack language

gostack reads one line at a time, runs it against a stack of integers that
lives as long as the process, and answers each line with " ok " and the
stack depth, or with the name of whatever went wrong:

	>> 1 2 + .
	3  ok 0
	>> +
	 StackUnderflow

Lines are split on whitespace into tokens. Each token is one of:

	." text"   a quote, written out verbatim when executed
	.          pop and print, followed by a space
	+ - * /    arithmetic; / and mod round towards negative infinity
	mod        remainder, with the sign of the divisor
	dup swap   copy the top value, exchange the top two
	depth      push the number of values on the stack
	clearstack drop everything
	= > <      compare, pushing -1 for true and 0 for false
	if else then
	           conditional: if pops a value, running the part up to else
	           when it is nonzero, or the part after else when it is zero
	name       a word defined by the user
	123 -4     integers, pushed onto the stack

New words are defined with a colon, a name, a body, and a semicolon:

	>> : sq dup * ;
	 ok 0
	>> 5 sq .
	25  ok 0

Word bodies are kept as tokens and looked up by name every time they run,
so redefining a word also changes every word that uses it. The builtin
operators can not be redefined; nor can numbers, or quotes.

Faults come in three kinds: InvalidStructure (an unknown token, unbalanced
if/else/then, or a malformed definition), StackUnderflow, and
DivisionByZero. A fault ends its line, but whatever the line did before the
fault stays done.

When the GOSTACK_TRACE environment variable is set, each line, definition,
fault and word call is logged to stderr.

*/
package main
