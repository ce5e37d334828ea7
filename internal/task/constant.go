package task

const (
	// DefaultMaxInputLength bounds parser input, in characters.
	DefaultMaxInputLength = 1000
	// MaxTitleLength bounds stored titles, in characters.
	MaxTitleLength = 255

	DefaultListLimit = 50
	MaxListLimit     = 200
)
