package fcc

import (
	"strings"

	"github.com/sirupsen/logrus"
)

// lineToken is one surviving line after filtering, paired with its
// post-filter index and its indent width already computed.
type lineToken struct {
	index  int
	indent int
	text   string
}

// cursor walks a slice of lineToken with one-token lookahead.
type cursor struct {
	tokens []lineToken
	pos    int
}

func (c *cursor) peek() (lineToken, bool) {
	if c.pos >= len(c.tokens) {
		return lineToken{}, false
	}
	return c.tokens[c.pos], true
}

func (c *cursor) next() (lineToken, bool) {
	tok, ok := c.peek()
	if ok {
		c.pos++
	}
	return tok, ok
}

// buildTree turns a slice of already-filtered raw lines into an Item tree,
// comparing indentation to decide whether each line is a sibling, a child,
// or closes one or more levels of ancestry.
func buildTree(rawLines []string) ([]Item, error) {
	tokens := make([]lineToken, len(rawLines))
	for i, l := range rawLines {
		tokens[i] = lineToken{index: i, indent: IndentWidth(l), text: strings.TrimLeft(l, " \t\r\n\f\v")}
	}

	root := NewParent(-1, 0, "")
	cur := &cursor{tokens: tokens}
	if err := processNextIndentLevel(cur, root); err != nil {
		return nil, err
	}
	return root.Children(), nil
}

// processNextIndentLevel consumes tokens belonging to parent's indent level,
// recursing into a freshly created Parent whenever indentation increases,
// and returning control to the caller whenever it decreases or input ends.
func processNextIndentLevel(cur *cursor, parent *Parent) error {
	children := parent.Children()

	for {
		tok, ok := cur.peek()
		if !ok {
			parent.SetChildren(children)
			return nil
		}

		switch {
		case tok.indent == parent.Indent():
			cur.next()
			logrus.WithField("line", tok.text).Trace("sibling at current indent")
			children = append(children, NewLine(tok.index, tok.text))

		case tok.indent > parent.Indent():
			if len(children) == 0 {
				return &BadIndentationError{Line: tok.text}
			}
			last := children[len(children)-1]
			lastLine, isLine := last.(*Line)
			if !isLine {
				return &BadIndentationError{Line: tok.text}
			}

			// The new Parent's index is the index of the first child token
			// being promoted into it, not the popped sibling's own index.
			newParent := NewParent(tok.index, tok.indent, lastLine.Key())
			children[len(children)-1] = newParent

			logrus.WithField("key", newParent.Key()).Trace("promoting line to parent")
			if err := processNextIndentLevel(cur, newParent); err != nil {
				return err
			}

		default: // tok.indent < parent.Indent(): this level is closed
			parent.SetChildren(children)
			return nil
		}
	}
}
