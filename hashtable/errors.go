package hashtable

// KeyNotFound - Custom error to inform that no entry was found for a key
type KeyNotFound struct {
	msg string
}

// Error - Used to notify that no entry was found
func (E KeyNotFound) Error() string {
	if E.msg == "" {
		return "key not found"
	}
	return E.msg
}

// InvalidParameter - Custom error to inform that a table could not be created from the given configuration
type InvalidParameter struct {
	msg string
}

// Error - Used to notify that a configuration parameter is out of range
func (I InvalidParameter) Error() string {
	if I.msg == "" {
		return "invalid parameter"
	}
	return I.msg
}

// IteratorInvalidated - Custom error to inform that the table has been resized since the iterator was created
type IteratorInvalidated struct {
	msg string
}

// Error - Used to notify that an iterator can not continue
func (I IteratorInvalidated) Error() string {
	if I.msg == "" {
		return "table was resized during iteration"
	}
	return I.msg
}
