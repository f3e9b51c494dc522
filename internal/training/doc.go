// Package training computes set suggestions for a periodised resistance program.
//
// Every calculation is pure. Inputs that cannot be used, such as a non-positive weight, a prescription without
// digits, or an unknown equipment code, resolve to a "no value" result and never to an error, so callers can always
// fall through the chain 1RM, then fallback heuristic, then placeholder.
package training
