// apps/go-solver/internal/words/daily_exports.go
//
// Word access for the daily challenge.
//
// Notes:
//   • The answer list is sorted once at load, so an index maps to the same
//     word for as long as the list source does not change.

package words

// AnswerAt returns the answer at i modulo the list length, or "" when the
// list is empty.
func (l *Lists) AnswerAt(i int) string {
	n := len(l.answers)
	if n == 0 {
		return ""
	}
	i %= n
	if i < 0 {
		i += n
	}
	return l.answers[i]
}
