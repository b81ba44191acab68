package internal

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/exp/maps"
)

// Sheet is a sparse 2D table of cells addressed by Position. It owns every
// cell exclusively; cells relate to one another only by position, never by
// pointer, so that replacing a cell in place never leaves a stale edge.
type Sheet struct {
	cells map[Position]*Cell
	rows  int
	cols  int
}

// NewSheet returns an empty sheet.
func NewSheet() *Sheet {
	return &Sheet{cells: make(map[Position]*Cell)}
}

// SetCell parses text and installs it at pos. On a parse failure or a
// circular dependency, the sheet is left byte-for-byte unchanged.
func (s *Sheet) SetCell(pos Position, text string) error {
	if !pos.IsValid() {
		return fmt.Errorf("%w: SetCell at %v", ErrInvalidPosition, pos)
	}

	candidate := newCell(s)
	if err := candidate.Set(text); err != nil {
		return err
	}

	if err := s.checkCircularDependencies(pos, candidate.GetReferencedCells()); err != nil {
		return err
	}

	old := s.cells[pos]
	if old != nil {
		s.removeDependentEdges(pos, old.GetReferencedCells())
		candidate.dependents = maps.Clone(old.dependents)
		s.invalidateDependents(pos)
	}

	for _, ref := range candidate.GetReferencedCells() {
		if ref == pos {
			return ErrCircularDependency // defense-in-depth; checkCircularDependencies already rejects this
		}
		if !ref.IsValid() {
			continue // out-of-range refs evaluate to #REF! without ever touching storage
		}
		if _, ok := s.cells[ref]; !ok {
			s.setEmptyCell(ref)
		}
		s.cells[ref].AddDependentCell(pos)
	}

	s.cells[pos] = candidate
	if !candidate.isEmpty() {
		if pos.Row+1 > s.rows {
			s.rows = pos.Row + 1
		}
		if pos.Col+1 > s.cols {
			s.cols = pos.Col + 1
		}
	} else if old != nil && !old.isEmpty() {
		s.recomputePrintableSize()
	}
	return nil
}

// GetCell returns the cell installed at pos, or nil if none exists.
func (s *Sheet) GetCell(pos Position) (*Cell, error) {
	if !pos.IsValid() {
		return nil, fmt.Errorf("%w: GetCell at %v", ErrInvalidPosition, pos)
	}
	return s.cells[pos], nil
}

// ClearCell removes the cell at pos. A cell with dependents is reduced to
// Empty instead of removed, so that reverse edges keep a home; a cell
// without dependents is removed outright and its forward edges are
// unwound. A no-op if pos holds no cell.
func (s *Sheet) ClearCell(pos Position) error {
	if !pos.IsValid() {
		return fmt.Errorf("%w: ClearCell at %v", ErrInvalidPosition, pos)
	}
	cell, ok := s.cells[pos]
	if !ok {
		return nil
	}
	if len(cell.dependents) > 0 {
		cell.Clear()
	} else {
		s.removeDependentEdges(pos, cell.GetReferencedCells())
		delete(s.cells, pos)
	}
	s.recomputePrintableSize()
	s.invalidateDependents(pos)
	return nil
}

// GetPrintableSize returns the smallest rectangle covering all non-empty
// installed cells: (0,0) if the sheet has none.
func (s *Sheet) GetPrintableSize() (rows, cols int) {
	return s.rows, s.cols
}

// PrintValues writes the sheet's cell values to w: tab-separated columns,
// newline-terminated rows, over the printable region.
func (s *Sheet) PrintValues(w io.Writer) error {
	return s.printGrid(w, func(cell *Cell) string {
		if cell == nil || cell.isEmpty() {
			return ""
		}
		return formatCellValue(cell.GetValue())
	})
}

// PrintTexts writes the sheet's raw cell texts to w: tab-separated
// columns, newline-terminated rows, over the printable region.
func (s *Sheet) PrintTexts(w io.Writer) error {
	return s.printGrid(w, func(cell *Cell) string {
		if cell == nil || cell.isEmpty() {
			return ""
		}
		return cell.GetText()
	})
}

func (s *Sheet) printGrid(w io.Writer, render func(*Cell) string) error {
	for r := 0; r < s.rows; r++ {
		var line strings.Builder
		for c := 0; c < s.cols; c++ {
			if c > 0 {
				line.WriteByte('\t')
			}
			line.WriteString(render(s.cells[Position{Row: r, Col: c}]))
		}
		line.WriteByte('\n')
		if _, err := w.Write([]byte(line.String())); err != nil {
			return err
		}
	}
	return nil
}

// formatCellValue renders a cell value (float64, string, or FormulaError)
// the way PrintValues requires: FormulaError always renders as #ARITHM!,
// regardless of category.
func formatCellValue(v any) string {
	switch v := v.(type) {
	case float64:
		return formatNumber(v)
	case string:
		return v
	case FormulaError:
		return v.Error()
	default:
		return ""
	}
}

// setEmptyCell materializes an Empty anchor cell at pos so a reverse edge
// has somewhere to live. Anchor cells never enlarge the printable size.
func (s *Sheet) setEmptyCell(pos Position) {
	s.cells[pos] = newCell(s)
}

// removeDependentEdges removes pos from the dependents set of every cell
// named in refs.
func (s *Sheet) removeDependentEdges(pos Position, refs []Position) {
	for _, ref := range refs {
		if c, ok := s.cells[ref]; ok {
			c.RemoveDependentCell(pos)
		}
	}
}

// checkCircularDependencies raises ErrCircularDependency if findPos is
// reachable from refs along forward edges of already-installed cells (the
// candidate is not installed yet). A visited set prevents both
// re-traversal and non-termination.
func (s *Sheet) checkCircularDependencies(findPos Position, refs []Position) error {
	visited := make(map[Position]struct{})
	var visit func(refs []Position) error
	visit = func(refs []Position) error {
		for _, ref := range refs {
			if ref == findPos {
				return ErrCircularDependency
			}
			if _, seen := visited[ref]; seen {
				continue
			}
			visited[ref] = struct{}{}
			cell, ok := s.cells[ref]
			if !ok {
				continue
			}
			if err := visit(cell.GetReferencedCells()); err != nil {
				return err
			}
		}
		return nil
	}
	return visit(refs)
}

// invalidateDependents clears the cache of every cell transitively
// reachable from pos along reverse (dependent) edges.
func (s *Sheet) invalidateDependents(pos Position) {
	visited := make(map[Position]struct{})
	var visit func(Position)
	visit = func(p Position) {
		cell, ok := s.cells[p]
		if !ok {
			return
		}
		for dep := range cell.dependents {
			if _, seen := visited[dep]; seen {
				continue
			}
			visited[dep] = struct{}{}
			if dc, ok := s.cells[dep]; ok {
				dc.ClearCache()
			}
			visit(dep)
		}
	}
	visit(pos)
}

// recomputePrintableSize scans all installed cells and sets the printable
// size to the smallest rectangle covering those with a non-Empty payload.
func (s *Sheet) recomputePrintableSize() {
	maxRow, maxCol := -1, -1
	for pos, cell := range s.cells {
		if cell.isEmpty() {
			continue
		}
		if pos.Row > maxRow {
			maxRow = pos.Row
		}
		if pos.Col > maxCol {
			maxCol = pos.Col
		}
	}
	s.rows = maxRow + 1
	s.cols = maxCol + 1
}
