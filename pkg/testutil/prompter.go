package testutil

// Answers replies to confirmation questions from a fixed script. Once the
// script runs out every answer is no.
type Answers struct {
	Replies []bool
	Asked   []string
	Err     error
}

// Yes returns a prompter answering yes n times.
func Yes(n int) *Answers {
	a := &Answers{}
	for i := 0; i < n; i++ {
		a.Replies = append(a.Replies, true)
	}
	return a
}

// Confirm records question and pops the next reply.
func (a *Answers) Confirm(question string) (bool, error) {
	a.Asked = append(a.Asked, question)
	if a.Err != nil {
		return false, a.Err
	}
	if len(a.Replies) == 0 {
		return false, nil
	}
	r := a.Replies[0]
	a.Replies = a.Replies[1:]
	return r, nil
}
