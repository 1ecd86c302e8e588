package text

// Chain carries a string through a sequence of transforms. Once a step fails,
// the remaining steps are skipped and the first error is kept.
type Chain struct {
	value string
	err   error
}

func From(s string) Chain {
	return Chain{value: s}
}

func (c Chain) Result() (string, error) {
	return c.value, c.err
}

func (c Chain) Err() error {
	return c.err
}

// Then composes a transform that may fail.
func (c Chain) Then(step func(s string) (string, error)) Chain {
	if c.err != nil {
		return c
	}
	v, err := step(c.value)
	if err != nil {
		return Chain{value: c.value, err: err}
	}
	return Chain{value: v}
}

// Map composes a transform that cannot fail.
func (c Chain) Map(step func(s string) string) Chain {
	if c.err != nil {
		return c
	}
	return Chain{value: step(c.value)}
}

func (c Chain) StripMarkup() Chain {
	return c.Map(StripMarkup)
}

func (c Chain) OnlyDigits() Chain {
	return c.Map(OnlyDigits)
}

func (c Chain) Reduce(displayLength int, suffix string) Chain {
	return c.Then(func(s string) (string, error) {
		return ReduceForDisplay(s, displayLength, suffix)
	})
}

// Ensure runs side effects for the current state without changing it.
func (c Chain) Ensure(onSuccess func(string), onFailure func(error)) Chain {
	if c.err != nil {
		if onFailure != nil {
			onFailure(c.err)
		}
		return c
	}
	if onSuccess != nil {
		onSuccess(c.value)
	}
	return c
}

// Finally collapses the chain to a single string.
func (c Chain) Finally(onSuccess func(string) string, onFailure func(error) string) string {
	if c.err != nil {
		return onFailure(c.err)
	}
	return onSuccess(c.value)
}
