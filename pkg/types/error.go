package types

// ConstError is an error type whose values can be declared as constants.
type ConstError string

func (err ConstError) Error() string { return string(err) }
