// seehuhn.de/go/piechart - exploded pie charts
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package layout

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Font describes the size and weight of a text run.
// Weight uses the CSS scale: 400 is regular, 700 is bold.
type Font struct {
	Size   float64
	Weight int
}

// TextMeasurer reports the advance width of a string, in device units.
type TextMeasurer interface {
	MeasureText(text string, f Font) float64
}

// EstimateMeasurer approximates text widths from a small table of
// per-character widths.  It needs no font files and is used when no
// other measurer is available.
type EstimateMeasurer struct{}

// MeasureText implements the TextMeasurer interface.
func (EstimateMeasurer) MeasureText(text string, f Font) float64 {
	avg := 0.55
	if f.Weight >= 600 {
		avg = 0.6
	}
	var em float64
	for _, r := range text {
		switch {
		case r == ' ':
			em += 0.28
		case strings.ContainsRune("iljtfI.,:;'|!()[]", r):
			em += 0.3
		case strings.ContainsRune("mwMW@%", r):
			em += 0.85
		default:
			em += avg
		}
	}
	return em * f.Size
}

// FormatPercent formats a percentage for a slice label.  Values of 10 and
// above are rounded to whole numbers, smaller values keep one decimal
// unless that decimal is zero.
func FormatPercent(value float64) string {
	if value >= 10 {
		return strconv.FormatFloat(math.Round(value), 'f', 0, 64) + "%"
	}
	s := strconv.FormatFloat(math.Round(value*10)/10, 'f', 1, 64)
	s = strings.TrimSuffix(s, ".0")
	return s + "%"
}

// WrapText breaks text into lines no wider than maxWidth.  Words are
// placed greedily; a word which is wider than maxWidth on its own is cut
// into the longest prefixes which fit, at least one character each.
func WrapText(text string, f Font, maxWidth float64, m TextMeasurer) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	if maxWidth <= 0 {
		return []string{strings.Join(words, " ")}
	}

	var lines []string
	line := ""
	for _, word := range words {
		if line != "" {
			candidate := line + " " + word
			if m.MeasureText(candidate, f) <= maxWidth {
				line = candidate
				continue
			}
			lines = append(lines, line)
			line = ""
		}

		if m.MeasureText(word, f) <= maxWidth {
			line = word
			continue
		}
		chunks := splitWord(word, f, maxWidth, m)
		lines = append(lines, chunks[:len(chunks)-1]...)
		line = chunks[len(chunks)-1]
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}

// splitWord cuts a word into chunks which each fit into maxWidth.
func splitWord(word string, f Font, maxWidth float64, m TextMeasurer) []string {
	var chunks []string
	for word != "" {
		end := 0
		for end < len(word) {
			_, size := utf8.DecodeRuneInString(word[end:])
			if end > 0 && m.MeasureText(word[:end+size], f) > maxWidth {
				break
			}
			end += size
		}
		chunks = append(chunks, word[:end])
		word = word[end:]
	}
	return chunks
}

// legendTextWidth estimates the width of a legend label.  The legend is
// centered using this estimate, not the measured width, so that the block
// position does not depend on the fonts available.
func legendTextWidth(text string) float64 {
	return max(40, float64(utf8.RuneCountInString(text))*8.6)
}
