package presenter

// Stages of a question slide
const (
	StageQuestion = iota
	StageHint
	StageAnswer
)

// Reveal steps a question slide through question, hint and answer.
// It goes back to the question on every position change.
type Reveal struct {
	stage int
}

func (r *Reveal) Stage() int {
	return r.stage
}

// Next shows one more stage; false once the answer is up
func (r *Reveal) Next() bool {
	if r.stage >= StageAnswer {
		return false
	}
	r.stage++
	return true
}

func (r *Reveal) Reset() {
	r.stage = StageQuestion
}
