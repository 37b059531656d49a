package git

// NewClientWithBinary creates a Client invoking the given git binary.
func NewClientWithBinary(name string) *Client {
	return &Client{binary: name}
}
