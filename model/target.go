package model

// DeleteTarget names what a teardown invocation should remove. The three
// supported shapes are mutually exclusive: instance only, user+group, or
// group only.
type DeleteTarget struct {
	Instance string
	User     string
	Group    string
}
