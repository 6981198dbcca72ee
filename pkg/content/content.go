// Package content implements lossless line handling.
//
// Files are split into lines that keep their exact terminators, so that
// reassembling the surviving lines after a strip never rewrites a byte
// of what it keeps: mixed line endings, a missing final newline, or
// stray carriage returns all travel through untouched.
package content

import "bytes"

// Line is one line of a file, text and terminator kept apart.
// The terminator is "\n", "\r\n", a lone "\r", or empty for a
// final line without end of line.
type Line struct {
	Text       string
	Terminator string
}

// Split cuts data into lines preserving each line's exact terminator.
// Join(Split(data)) is byte identical to data for any input.
func Split(data []byte) []Line {
	var lines []Line
	start := 0
	i := 0
	for i < len(data) {
		switch data[i] {
		case '\n':
			lines = append(lines, Line{Text: string(data[start:i]), Terminator: "\n"})
			i++
			start = i
		case '\r':
			if i+1 < len(data) && data[i+1] == '\n' {
				lines = append(lines, Line{Text: string(data[start:i]), Terminator: "\r\n"})
				i += 2
			} else {
				lines = append(lines, Line{Text: string(data[start:i]), Terminator: "\r"})
				i++
			}
			start = i
		default:
			i++
		}
	}
	if start < len(data) {
		lines = append(lines, Line{Text: string(data[start:]), Terminator: ""})
	}
	return lines
}

// Join reassembles lines into a single byte slice
func Join(lines []Line) []byte {
	var b bytes.Buffer
	for _, l := range lines {
		b.WriteString(l.Text)
		b.WriteString(l.Terminator)
	}
	return b.Bytes()
}

// Texts returns the line texts without terminators, in order
func Texts(lines []Line) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.Text
	}
	return out
}

// StripLines filters out the 1-indexed lines listed in ignored.
// Line numbers beyond the input are silently skipped.
func StripLines(lines []Line, ignored []int) []Line {
	if len(ignored) == 0 {
		return lines
	}
	drop := make(map[int]struct{}, len(ignored))
	for _, n := range ignored {
		drop[n] = struct{}{}
	}
	kept := make([]Line, 0, len(lines))
	for i, l := range lines {
		if _, gone := drop[i+1]; gone {
			continue
		}
		kept = append(kept, l)
	}
	return kept
}

// Strip removes the 1-indexed lines listed in ignored from data.
// Surviving lines keep their exact bytes, terminators included.
func Strip(data []byte, ignored []int) []byte {
	return Join(StripLines(Split(data), ignored))
}
