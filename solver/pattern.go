// Package solver implements an entropy-driven guess selection engine
// for Wordle-style word deduction games: feedback pattern computation,
// a precomputed pattern table, entropy scoring of candidate guesses,
// candidate filtering, and the turn-by-turn solving loop.
package solver

// Mark is the feedback state of a single letter position.
type Mark uint8

const (
	Absent  Mark = iota // letter not in the secret (beyond matched copies)
	Present             // letter in the secret at a different position
	Correct             // letter in the secret at this position
)

// Pattern packs one Mark per position, two bits each, position 0 in the
// low bits. A uint32 holds words up to 16 letters.
type Pattern uint32

const maxWordLen = 16

// Mark returns the state at position i.
func (p Pattern) Mark(i int) Mark {
	return Mark(p >> (2 * uint(i)) & 3)
}

func (p Pattern) with(i int, m Mark) Pattern {
	return p | Pattern(m)<<(2*uint(i))
}

// AllCorrect is the pattern reported for a winning guess of the given
// word length.
func AllCorrect(length int) Pattern {
	p := Pattern(0)
	for i := 0; i < length; i++ {
		p = p.with(i, Correct)
	}
	return p
}

// ParsePattern parses a feedback string of one color letter per
// position: r (absent), y (present) or g (correct).
func ParsePattern(colors string) (Pattern, bool) {
	if len(colors) > maxWordLen {
		return 0, false
	}
	p := Pattern(0)
	for i, color := range colors {
		switch color {
		case 'r':
			p = p.with(i, Absent)
		case 'y':
			p = p.with(i, Present)
		case 'g':
			p = p.with(i, Correct)
		default:
			return 0, false
		}
	}
	return p, true
}

// Format renders the pattern with the same r/y/g letters ParsePattern
// accepts.
func (p Pattern) Format(length int) string {
	buf := make([]byte, length)
	for i := 0; i < length; i++ {
		switch p.Mark(i) {
		case Present:
			buf[i] = 'y'
		case Correct:
			buf[i] = 'g'
		default:
			buf[i] = 'r'
		}
	}
	return string(buf)
}

// Compute returns the feedback pattern for guess against secret, both
// lowercase words of equal length.
//
// Exact matches are resolved first and consume their secret letter, so
// a repeated guess letter never collects more Correct plus Present
// marks than the secret has copies of that letter. Folding both passes
// into one over-counts Present for repeated letters.
func Compute(guess, secret string) Pattern {
	n := len(guess)
	var remaining [26]int
	p := Pattern(0)
	for i := 0; i < n; i++ {
		if guess[i] == secret[i] {
			p = p.with(i, Correct)
		} else {
			remaining[secret[i]-'a']++
		}
	}
	for i := 0; i < n; i++ {
		if p.Mark(i) == Correct {
			continue
		}
		j := guess[i] - 'a'
		if remaining[j] > 0 {
			p = p.with(i, Present)
			remaining[j]--
		}
	}
	return p
}
