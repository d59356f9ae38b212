package domain

// CopyStatus is the terminal state of a single copy command.
type CopyStatus string

const (
	// CopyStatusCopied indicates the canonical URL was written to the clipboard.
	CopyStatusCopied CopyStatus = "COPIED"
	// CopyStatusFailed indicates the command stopped; Message explains why.
	CopyStatusFailed CopyStatus = "FAILED"
)

// CopyResult is the outcome of one copy gesture. It is either a success carrying
// the canonical URL or a failure carrying a human-readable message; there is no
// partial success.
type CopyResult struct {
	Status CopyStatus `json:"status"`
	// URL is the canonical URL that was copied. Empty on failure.
	URL string `json:"url,omitempty"`
	// Message describes the failure. Empty on success.
	Message string `json:"message,omitempty"`
	// Err is the underlying semantic error of a failure, for errors.Is checks.
	Err error `json:"-"`
}

// OK reports whether the copy succeeded.
func (r CopyResult) OK() bool { return r.Status == CopyStatusCopied }

// Copied builds a successful CopyResult.
func Copied(url string) CopyResult {
	return CopyResult{Status: CopyStatusCopied, URL: url}
}

// CopyFailed builds a failed CopyResult from err.
func CopyFailed(err error) CopyResult {
	return CopyResult{Status: CopyStatusFailed, Message: err.Error(), Err: err}
}
