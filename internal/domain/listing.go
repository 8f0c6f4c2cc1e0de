package domain

type ListingStatus string

const (
	ListingOK    ListingStatus = "ok"
	ListingAuth  ListingStatus = "auth"  // 401/403 from the mirror
	ListingError ListingStatus = "error" // Network or parse failure
)

// Listing is the result of reading one remote directory.
// Files is only set for ListingOK and Message only for ListingError.
type Listing struct {
	URL     string        `json:"url"`
	Status  ListingStatus `json:"status"`
	Files   []string      `json:"files,omitempty"`
	Message string        `json:"message,omitempty"`
}

func NewListingOK(url string, files []string) Listing {
	return Listing{URL: url, Status: ListingOK, Files: files}
}

func NewListingAuth(url string) Listing {
	return Listing{URL: url, Status: ListingAuth}
}

func NewListingError(url string, err error) Listing {
	return Listing{URL: url, Status: ListingError, Message: err.Error()}
}
