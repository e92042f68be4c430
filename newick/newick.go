// Copyright ©2016 Dan Kortschak. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package newick serializes and parses the Newick tree format the
// engine hands off to, built as plain recursive string assembly in the
// style of the pack's own hand-rolled Newick readers/writers rather
// than a dedicated parser library, since none appear in the retrieved
// dependency graph.
package newick

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/kortschak/njtree/tree"
)

// Write serializes root as a Newick tree to w, terminated by a
// semicolon. A branch length of +Inf is written as the literal token
// "inf"; no Newick standard governs this case, but the format must
// round-trip a saturated correction rather than silently clamp it.
func Write(w io.Writer, root *tree.ExportedNode) error {
	var buf bytes.Buffer
	writeNode(&buf, root, -1)
	buf.WriteString(";")
	_, err := w.Write(buf.Bytes())
	return err
}

// String returns root's Newick serialization as a string.
func String(root *tree.ExportedNode) string {
	var buf bytes.Buffer
	writeNode(&buf, root, -1)
	buf.WriteString(";")
	return buf.String()
}

func writeNode(w *bytes.Buffer, n *tree.ExportedNode, parentBranch float64) {
	if !n.IsLeaf() {
		w.WriteString("(")
		writeNode(w, n.Left, n.LeftLength)
		w.WriteString(",")
		writeNode(w, n.Right, n.RightLength)
		w.WriteString(")")
	}
	w.WriteString(n.Label)
	if parentBranch >= 0 {
		w.WriteString(":")
		w.WriteString(formatLength(parentBranch))
	}
}

func formatLength(d float64) string {
	if math.IsInf(d, 1) {
		return "inf"
	}
	return strconv.FormatFloat(d, 'g', -1, 64)
}

// Node is the parsed form of a Newick tree, used to round-trip Write's
// output for verification; it carries only what Write emits (labels,
// branch lengths, topology), not Newick's wider comment/quoting grammar.
type Node struct {
	Label     string
	Length    float64
	HasLength bool
	Children  []*Node
}

// Parse reads a single Newick tree from s, which must be terminated by
// a semicolon, following the recursive-descent shape used throughout
// the pack's own Newick readers.
func Parse(s string) (*Node, error) {
	s = strings.TrimSpace(s)
	if s == "" || s[len(s)-1] != ';' {
		return nil, errors.New("newick: input must be terminated by ';'")
	}
	p := &parser{s: s[:len(s)-1]}
	n, err := p.parseNode()
	if err != nil {
		return nil, err
	}
	if p.pos != len(p.s) {
		return nil, fmt.Errorf("newick: unparsed trailing text: %q", p.s[p.pos:])
	}
	return n, nil
}

type parser struct {
	s   string
	pos int
}

func (p *parser) parseNode() (*Node, error) {
	n := &Node{}
	if p.pos < len(p.s) && p.s[p.pos] == '(' {
		p.pos++
		for {
			child, err := p.parseNode()
			if err != nil {
				return nil, err
			}
			n.Children = append(n.Children, child)
			if p.pos >= len(p.s) {
				return nil, errors.New("newick: unterminated subtree")
			}
			if p.s[p.pos] == ',' {
				p.pos++
				continue
			}
			if p.s[p.pos] == ')' {
				p.pos++
				break
			}
			return nil, fmt.Errorf("newick: unexpected character %q", p.s[p.pos])
		}
	}
	n.Label = p.parseLabel()
	if p.pos < len(p.s) && p.s[p.pos] == ':' {
		p.pos++
		lenStr := p.parseLength()
		if lenStr == "inf" {
			n.Length = math.Inf(1)
		} else {
			v, err := strconv.ParseFloat(lenStr, 64)
			if err != nil {
				return nil, fmt.Errorf("newick: invalid branch length %q: %w", lenStr, err)
			}
			n.Length = v
		}
		n.HasLength = true
	}
	return n, nil
}

func (p *parser) parseLabel() string {
	start := p.pos
	for p.pos < len(p.s) && !strings.ContainsRune(",():;", rune(p.s[p.pos])) {
		p.pos++
	}
	return p.s[start:p.pos]
}

func (p *parser) parseLength() string {
	start := p.pos
	for p.pos < len(p.s) && !strings.ContainsRune(",()", rune(p.s[p.pos])) {
		p.pos++
	}
	return p.s[start:p.pos]
}

// Leaves returns the labels of every leaf under n, in left-to-right
// order.
func (n *Node) Leaves() []string {
	if len(n.Children) == 0 {
		return []string{n.Label}
	}
	var out []string
	for _, c := range n.Children {
		out = append(out, c.Leaves()...)
	}
	return out
}
