// Package calc implements a float64 calculator for expressions like those
// typed into a pocket calculator.
//
// Expressions combine decimal numbers with + - * / % ^ and parentheses. The
// usual precedence applies: ^ binds tightest and is right-associative, then
// * / %, then + -. Unary minus binds tighter than any binary operator, so
// "-2^2" is 4 and "2^-1" is 0.5. The constants PI (also π) and E and the
// functions sin, cos, tan, asin, acos, atan, log, sqrt, abs, exp, ceil, floor,
// and round are available; function arguments are always parenthesized.
// Trigonometric functions use radians, and log is the natural logarithm.
//
// Every failure, whether from malformed input or an undefined calculation like
// division by zero, is reported as an *Error with an ErrorKind and the column
// where it occurred.
package calc
