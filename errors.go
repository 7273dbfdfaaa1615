package speakerid

// EmptyText - Custom error to inform that the unattributed text is empty and can not be scored
type EmptyText struct {
	msg string
}

// Error - Used to notify that the text to score is empty
func (E EmptyText) Error() string {
	if E.msg == "" {
		return "unattributed text is empty"
	}
	return E.msg
}
