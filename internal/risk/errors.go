package risk

import "fmt"

// MisalignedInputError indicates the batch arrays have different lengths.
// Profiles, histories and performance data are index-aligned parallel
// arrays; a mismatch is a caller bug, not a data condition.
type MisalignedInputError struct {
	Profiles    int
	Histories   int
	Performance int
}

func (e *MisalignedInputError) Error() string {
	return fmt.Sprintf("misaligned batch input: %d profiles, %d histories, %d performance sets",
		e.Profiles, e.Histories, e.Performance)
}
