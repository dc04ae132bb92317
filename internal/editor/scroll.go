package editor

// Scroll is the index of the first visible row. It survives between renders
// and is only moved by Follow.
type Scroll struct {
	Offset int
}

// Follow moves the window the least amount needed to keep row inside
// [Offset, Offset+height). A non-positive height leaves the offset alone.
func (s *Scroll) Follow(row, height int) {
	if height < 1 {
		return
	}
	if row < s.Offset {
		s.Offset = row
	} else if row >= s.Offset+height {
		s.Offset = row - height + 1
	}
	if s.Offset < 0 {
		s.Offset = 0
	}
}
