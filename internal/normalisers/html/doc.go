// Package html provides the Normaliser for the "html" parse mode.
// It removes every angle-bracket tag with a non-greedy match and leaves
// all other text, including entities and script bodies, untouched.
package html
