package types

// EditInfo describes the extent of a buffer mutation so that hosts can
// re-process the changed region incrementally (re-highlight, re-parse, undo
// grouping).
type EditInfo struct {
	Start  Position // Start of the edit
	OldEnd Position // End of the replaced text in the old buffer
	NewEnd Position // End of the inserted text in the new buffer
}
