package internal

import "strings"

// Cell holds one of three payload variants (empty, text, or formula), a
// memoized value, and the set of positions that depend on it. The sheet
// exclusively owns all cells; a Cell's reference to its sheet exists solely
// so a Formula payload can evaluate against it.
type Cell struct {
	sheet      sheetResolver
	payload    cellPayload
	cached     any
	hasCached  bool
	dependents map[Position]struct{}
}

// cellPayload is the tagged-variant capability set every cell payload
// implements: compute a value against the sheet, render the stored text,
// and enumerate forward references.
type cellPayload interface {
	value(sheet sheetResolver) any
	text() string
	referencedCells() []Position
}

// emptyPayload is the payload of a cell with no content.
type emptyPayload struct{}

func (emptyPayload) value(sheetResolver) any     { return "" }
func (emptyPayload) text() string                { return "" }
func (emptyPayload) referencedCells() []Position { return nil }

// textPayload holds literal text. raw is the stored text, including a
// leading apostrophe escape if present; value strips it.
type textPayload struct {
	raw string
}

func (t textPayload) value(sheetResolver) any {
	if strings.HasPrefix(t.raw, "'") {
		return t.raw[1:]
	}
	return t.raw
}
func (t textPayload) text() string                { return t.raw }
func (t textPayload) referencedCells() []Position { return nil }

// formulaPayload holds a parsed formula.
type formulaPayload struct {
	formula *Formula
}

func (f formulaPayload) value(sheet sheetResolver) any {
	return f.formula.Evaluate(sheet)
}
func (f formulaPayload) text() string {
	return "=" + f.formula.GetExpression()
}
func (f formulaPayload) referencedCells() []Position {
	return f.formula.GetReferencedCells()
}

// newCell creates an Empty cell bound to sheet.
func newCell(sheet sheetResolver) *Cell {
	return &Cell{sheet: sheet, payload: emptyPayload{}}
}

// Set installs text as the cell's payload. An input beginning with '=' and
// longer than one character becomes a Formula (returning ErrFormulaParse,
// wrapped, on a syntax error, leaving the cell's prior payload untouched);
// the empty string becomes Empty; anything else becomes Text.
func (c *Cell) Set(text string) error {
	if text == "" {
		c.payload = emptyPayload{}
		c.ClearCache()
		return nil
	}
	if text[0] == '=' && len(text) > 1 {
		f, err := ParseFormula(text[1:])
		if err != nil {
			return err
		}
		c.payload = formulaPayload{formula: f}
		c.ClearCache()
		return nil
	}
	c.payload = textPayload{raw: text}
	c.ClearCache()
	return nil
}

// Clear replaces the cell's payload with Empty.
func (c *Cell) Clear() {
	c.payload = emptyPayload{}
	c.ClearCache()
}

// GetValue returns the cached value, computing and caching it on a miss.
// The result is a float64, a string, or a FormulaError.
func (c *Cell) GetValue() any {
	if !c.hasCached {
		c.cached = c.payload.value(c.sheet)
		c.hasCached = true
	}
	return c.cached
}

// GetText returns the raw stored text; a Formula renders as "=" followed by
// its canonical expression.
func (c *Cell) GetText() string {
	return c.payload.text()
}

// GetReferencedCells returns the cell's forward edges: the positions its
// payload references. Empty and Text payloads have none.
func (c *Cell) GetReferencedCells() []Position {
	return c.payload.referencedCells()
}

// isEmpty reports whether the cell currently holds an Empty payload.
func (c *Cell) isEmpty() bool {
	_, ok := c.payload.(emptyPayload)
	return ok
}

// ClearCache drops the memoized value, forcing recomputation on next read.
func (c *Cell) ClearCache() {
	c.cached = nil
	c.hasCached = false
}

// AddDependentCell records that pos depends on this cell.
func (c *Cell) AddDependentCell(pos Position) {
	if c.dependents == nil {
		c.dependents = make(map[Position]struct{})
	}
	c.dependents[pos] = struct{}{}
}

// RemoveDependentCell removes pos from this cell's dependents.
func (c *Cell) RemoveDependentCell(pos Position) {
	delete(c.dependents, pos)
}

// GetDependentCells returns the set of positions that reference this cell.
func (c *Cell) GetDependentCells() map[Position]struct{} {
	return c.dependents
}
