// File: doc.go
// Title: Parser Package Documentation
// Description: Package documentation for expansion and tokenization.
// Author: avoronin
// Version: v0.1.0
// Created: 2026-02-14
// Modified: 2026-02-14

// Package parser turns a raw command line into tokens.
//
// Processing is strictly two-phase and the phases are owned by different
// types:
//
//  1. Expander.ExpandLine resolves %NAME% environment references on the
//     whole line, before any splitting.
//  2. Lexer/Split performs quote-aware tokenization.
//  3. Expander.ExpandToken resolves a leading ~ per token, after
//     splitting, so a ~ inside a path stays literal.
//
// The engine in the parent package wires the phases together; nothing in
// this package consults the process environment directly.
package parser
