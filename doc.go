// Package reflow rewraps Git commit messages to a configured width while
// preserving their structure.
//
// # Quick Start
//
// Reflow a raw message and print the result:
//
//	output, err := reflow.Reflow(rawMessage, reflow.DefaultOptions())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(output)
//
// # Pipeline
//
// Reflow runs the input through four stages:
//
//  1. Lexing: classify each line into a probability distribution over
//     Category (Lex).
//  2. Classification: refine those distributions using a symmetric
//     neighborhood window and collapse each to a final category
//     (Classify).
//  3. Tree building: group the classified lines into a Document of
//     Chunks (headline, paragraphs, lists, code blocks, tables, URLs,
//     comments, block quotes, footer) (BuildDocument).
//  4. Pretty printing: emit each chunk with content-aware wrapping and
//     verbatim passthrough where appropriate (PrettyPrint).
//
// Reflow is a pure function of its input and Options: the same input
// and configuration always produce the same output.
package reflow
