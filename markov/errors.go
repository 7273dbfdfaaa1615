package markov

// InvalidOrder - Custom error to inform that a model can not be built for the requested order
type InvalidOrder struct {
	msg string
}

// Error - Used to notify that the order is out of range
func (E InvalidOrder) Error() string {
	if E.msg == "" {
		return "order must be at least 1"
	}
	return E.msg
}
