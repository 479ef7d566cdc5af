package debugs

import "github.com/reusee/bfc/tapes"

// TapeGlobals exposes a tape to a tap session.
//
//	cells   visited cells, lowest address first
//	first   logical address of cells[0]
//	cursor  logical address under the cursor
//	origin  slots before address zero
//	cell    cell(addr) reads any address without growing the tape
func TapeGlobals(tape *tapes.Tape) map[string]any {
	cells, first := tape.Cells()
	return map[string]any{
		"cells":  cells,
		"first":  first,
		"cursor": tape.Cursor(),
		"origin": tape.Origin(),
		"cell": func(addr int) int {
			return int(tape.Cell(addr))
		},
	}
}
