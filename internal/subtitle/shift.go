package subtitle

// Shift moves the start and end of every record by offsetMillis. Either
// all records are updated or, on the first failure, none are.
func Shift(records []*Record, offsetMillis int) error {
	if offsetMillis == 0 {
		return nil
	}

	type times struct{ start, end Timestamp }
	shifted := make([]times, len(records))
	for i, r := range records {
		start, err := shiftTimestamp(r.Start, offsetMillis)
		if err != nil {
			return &ShiftError{Position: i, Index: r.Index, Err: err}
		}
		end, err := shiftTimestamp(r.End, offsetMillis)
		if err != nil {
			return &ShiftError{Position: i, Index: r.Index, Err: err}
		}
		shifted[i] = times{start, end}
	}

	for i, r := range records {
		r.Start, r.End = shifted[i].start, shifted[i].end
	}
	return nil
}

func shiftTimestamp(t Timestamp, offsetMillis int) (Timestamp, error) {
	if offsetMillis > 0 {
		return t.PlusMilliseconds(offsetMillis)
	}
	return t.MinusMilliseconds(-offsetMillis)
}
